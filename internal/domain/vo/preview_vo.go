package vo

import "stream-preview/internal/preview"

// PageVO 发起预览的页面信息
type PageVO struct {
	URL    string  `json:"url" form:"page_url"`
	Width  float64 `json:"width" form:"width" binding:"gte=0"`
	Height float64 `json:"height" form:"height" binding:"gte=0"`
	Mobile *bool   `json:"mobile" form:"mobile"` // 为空时根据 User-Agent 判断
}

// PreviewReqVO 直接预览一个流，不依赖已保存的录制任务
type PreviewReqVO struct {
	Stream preview.StreamDescriptor `json:"stream"`
	Page   PageVO                   `json:"page"`
}
