package handler

import (
	"strconv"

	"stream-preview/internal/service"
	"stream-preview/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	RecordingHandler *RecordingHandler
	PreviewHandler   *PreviewHandler
	PlayerHandler    *PlayerHandler
	ConfigHandler    *ConfigHandler
}

func NewHandler(config *config.AppConfig, service *service.Service) *Handler {
	return &Handler{
		RecordingHandler: NewRecordingHandler(service.RecordingService),
		PreviewHandler:   NewPreviewHandler(service.RecordingService, service.PreviewService),
		PlayerHandler:    NewPlayerHandler(config, service.PlayerService),
		ConfigHandler:    NewConfigHandler(service.ConfigService),
	}
}

// parseID 读取路径参数 id
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
