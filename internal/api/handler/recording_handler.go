package handler

import (
	"errors"

	"stream-preview/internal/api/response"
	"stream-preview/internal/domain/vo"
	"stream-preview/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

type RecordingHandler struct {
	recordingService *service.RecordingService
}

func NewRecordingHandler(recordingService *service.RecordingService) *RecordingHandler {
	return &RecordingHandler{recordingService: recordingService}
}

// RecordingAddHandler 添加录制任务
func (h *RecordingHandler) RecordingAddHandler(c *gin.Context) {
	var req vo.RecordingAddVO
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			for _, fe := range ve {
				switch fe.Field() {
				case "StreamerName":
					response.Error(c, "主播名称不能为空")
					return
				case "Platform":
					response.Error(c, "平台不能为空")
					return
				case "Quality":
					response.Error(c, "画质参数有误")
					return
				case "URL", "PreviewURL":
					response.Error(c, "地址格式不正确")
					return
				}
			}
		}
		response.Error(c, "参数错误")
		return
	}

	recording, err := h.recordingService.AddRecording(&req)
	if err != nil {
		log.Err(err).Msg("添加录制任务失败")
		response.Error(c, err.Error())
		return
	}
	recordingVO, err := h.recordingService.GetRecordingVO(recording.ID)
	if err != nil {
		response.Error(c, err.Error())
		return
	}
	response.Success(c, recordingVO, "添加成功")
}

func (h *RecordingHandler) RecordingUpdateHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Error(c, "id 格式不正确")
		return
	}
	var req vo.RecordingUpdateVO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数错误")
		return
	}
	if err := h.recordingService.UpdateRecording(id, &req); err != nil {
		if errors.Is(err, service.ErrRecordingNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		log.Err(err).Msgf("更新录制任务失败 %d", id)
		response.Error(c, "更新失败")
		return
	}
	response.OkWithMsg(c, "更新成功")
}

func (h *RecordingHandler) RecordingRemoveHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Error(c, "id 格式不正确")
		return
	}
	if err := h.recordingService.RemoveRecording(id); err != nil {
		if errors.Is(err, service.ErrRecordingNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		log.Err(err).Msgf("删除录制任务失败 %d", id)
		response.Error(c, "删除失败")
		return
	}
	response.OkWithMsg(c, "删除成功")
}

func (h *RecordingHandler) RecordingDetailHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Error(c, "id 格式不正确")
		return
	}
	recordingVO, err := h.recordingService.GetRecordingVO(id)
	if err != nil {
		if errors.Is(err, service.ErrRecordingNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		log.Err(err).Msgf("获取录制任务失败 %d", id)
		response.Error(c, "获取详情失败")
		return
	}
	response.OkWithData(c, recordingVO)
}

func (h *RecordingHandler) RecordingListHandler(c *gin.Context) {
	list, err := h.recordingService.ListRecordings()
	if err != nil {
		log.Err(err).Msg("获取录制任务列表失败")
		response.Error(c, "获取列表失败")
		return
	}
	response.OkWithList(c, list, int64(len(list)))
}
