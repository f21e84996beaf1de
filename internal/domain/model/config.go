package model

// Config 持久化的配置项，启动时作为 viper 默认值加载
type Config struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement:false"`
	Key         string `gorm:"column:key;uniqueIndex"`
	Value       string `gorm:"column:value"`
	Description string `gorm:"column:description"`
	CreateTime  int64  `gorm:"column:create_time;autoCreateTime:milli;type:integer"`
	UpdateTime  int64  `gorm:"column:update_time;autoUpdateTime:milli;type:integer"`
}

func (Config) TableName() string {
	return "t_config"
}
