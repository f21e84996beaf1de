package handler

import (
	"errors"

	"stream-preview/internal/api/response"
	"stream-preview/internal/domain/vo"
	"stream-preview/internal/preview"
	"stream-preview/internal/service"
	"stream-preview/internal/view"
	"stream-preview/pkg/util"

	"github.com/gin-gonic/gin"
)

type PreviewHandler struct {
	recordingService *service.RecordingService
	previewService   *service.PreviewService
}

func NewPreviewHandler(recordingService *service.RecordingService, previewService *service.PreviewService) *PreviewHandler {
	return &PreviewHandler{
		recordingService: recordingService,
		previewService:   previewService,
	}
}

// RecordingPreviewHandler 预览已保存的录制任务
// GET /api/recording/:id/preview?page_url=&width=&height=&mobile=
func (h *PreviewHandler) RecordingPreviewHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Error(c, "id 格式不正确")
		return
	}
	var page vo.PageVO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, "参数错误")
		return
	}

	dialog, err := h.previewService.PreviewRecording(id, pageContext(c, page))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OkWithData(c, dialog)
}

// StreamPreviewHandler 直接预览请求体中的流
func (h *PreviewHandler) StreamPreviewHandler(c *gin.Context) {
	var req vo.PreviewReqVO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数错误")
		return
	}

	dialog, err := h.previewService.PreviewDescriptor(req.Stream, pageContext(c, req.Page))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OkWithData(c, dialog)
}

func (h *PreviewHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, preview.ErrMissingPreviewURL):
		response.Fail(c, response.CodeMissingPreviewURL, h.previewService.ErrorMessage(err))
	case errors.Is(err, preview.ErrUnsupportedFormat):
		response.Fail(c, response.CodeUnsupportedFormat, h.previewService.ErrorMessage(err))
	case errors.Is(err, service.ErrRecordingNotFound):
		response.NotFound(c, err.Error())
	default:
		response.Error(c, err.Error())
	}
}

// pageContext 未指定页面地址时使用 Referer，未指定设备类型时根据 User-Agent 判断
func pageContext(c *gin.Context, page vo.PageVO) service.PageContext {
	pageURL := page.URL
	if pageURL == "" {
		pageURL = c.GetHeader("Referer")
	}
	mobile := util.IsMobileUserAgent(c.GetHeader("User-Agent"))
	if page.Mobile != nil {
		mobile = *page.Mobile
	}
	return service.PageContext{
		URL:      pageURL,
		Viewport: view.Viewport{Width: page.Width, Height: page.Height},
		Mobile:   mobile,
	}
}
