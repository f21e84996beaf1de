package model

// Recording 录制管理模块中的一条录制任务，预览时只读
type Recording struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement:false"`
	StreamerName string `gorm:"column:streamer_name"`
	Platform     string `gorm:"column:platform"`
	LiveTitle    string `gorm:"column:live_title"`
	Quality      string `gorm:"column:quality"`
	URL          string `gorm:"column:url"`         // 直播间地址
	PreviewURL   string `gorm:"column:preview_url"` // 直播流地址
	CreateTime   int64  `gorm:"column:create_time;autoCreateTime:milli;type:integer"`
	UpdateTime   int64  `gorm:"column:update_time;autoUpdateTime:milli;type:integer"`
}

func (Recording) TableName() string {
	return "t_recording"
}
