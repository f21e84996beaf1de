package vo

// ConfigUpdateVO key 不允许修改，只用于校验
type ConfigUpdateVO struct {
	ID          int64  `json:"id,string" binding:"required"`
	Key         string `json:"key" binding:"required"`
	Value       string `json:"value"`
	Description string `json:"description"`
}
