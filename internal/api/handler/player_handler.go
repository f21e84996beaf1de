package handler

import (
	"stream-preview/internal/api/response"
	"stream-preview/internal/preview"
	"stream-preview/internal/service"
	"stream-preview/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type PlayerHandler struct {
	config        *config.AppConfig
	playerService *service.PlayerService
}

func NewPlayerHandler(config *config.AppConfig, playerService *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		config:        config,
		playerService: playerService,
	}
}

type playerStatus struct {
	Endpoint  string `json:"endpoint"`
	Port      string `json:"port"`
	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`
}

// PlayerStatusHandler 播放服务状态，不可用时仍返回 code 0，由 available 字段区分
func (h *PlayerHandler) PlayerStatusHandler(c *gin.Context) {
	status := playerStatus{
		Endpoint:  h.playerService.Endpoint(),
		Port:      preview.ResolvePort(h.config.PlayerPort()),
		Available: true,
	}
	if err := h.playerService.Check(c.Request.Context()); err != nil {
		log.Warn().Err(err).Str("endpoint", status.Endpoint).Msg("播放服务不可用")
		status.Available = false
		status.Error = err.Error()
	}
	response.OkWithData(c, status)
}
