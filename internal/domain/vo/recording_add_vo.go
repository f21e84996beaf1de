package vo

type RecordingAddVO struct {
	StreamerName string `json:"streamerName" binding:"required,max=64"`
	Platform     string `json:"platform" binding:"required,max=32"`
	LiveTitle    string `json:"liveTitle" binding:"max=256"`
	Quality      string `json:"quality" binding:"omitempty,oneof=OD BD UHD HD SD LD"`
	URL          string `json:"url" binding:"omitempty,url"`
	PreviewURL   string `json:"previewUrl" binding:"omitempty,url"`
}
