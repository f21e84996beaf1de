package vo

import "time"

type RecordingVO struct {
	ID           int64     `json:"id,string"`
	StreamerName string    `json:"streamerName"`
	Platform     string    `json:"platform"`
	LiveTitle    string    `json:"liveTitle"`
	Quality      string    `json:"quality"`
	URL          string    `json:"url"`
	PreviewURL   string    `json:"previewUrl"`
	StreamType   string    `json:"streamType"` // m3u8 / flv，无法识别时为空
	CreateTime   time.Time `json:"createTime"`
	UpdateTime   time.Time `json:"updateTime"`
}
