package vo

// RecordingUpdateVO 空字段保持不变
type RecordingUpdateVO struct {
	LiveTitle  string `json:"liveTitle" binding:"max=256"`
	Quality    string `json:"quality" binding:"omitempty,oneof=OD BD UHD HD SD LD"`
	URL        string `json:"url" binding:"omitempty,url"`
	PreviewURL string `json:"previewUrl" binding:"omitempty,url"`
}
