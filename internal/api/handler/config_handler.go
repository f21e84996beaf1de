package handler

import (
	"fmt"

	"stream-preview/internal/api/response"
	"stream-preview/internal/domain/vo"
	"stream-preview/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ConfigHandler struct {
	configService *service.ConfigService
}

func NewConfigHandler(configService *service.ConfigService) *ConfigHandler {
	return &ConfigHandler{configService: configService}
}

func (h *ConfigHandler) ConfigAddHandler(c *gin.Context) {
	var req vo.ConfigAddVO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数错误")
		return
	}
	if err := h.configService.AddConfig(&req); err != nil {
		log.Err(err).Str("key", req.Key).Msg("添加配置失败")
		response.Error(c, fmt.Sprintf("添加配置失败: %v", err))
		return
	}
	response.OkWithMsg(c, "添加配置成功")
}

func (h *ConfigHandler) ConfigUpdateHandler(c *gin.Context) {
	var req vo.ConfigUpdateVO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, "参数错误")
		return
	}
	if err := h.configService.UpdateConfig(&req); err != nil {
		log.Err(err).Int64("id", req.ID).Msg("更新配置失败")
		response.Error(c, fmt.Sprintf("更新配置失败: %v", err))
		return
	}
	response.OkWithMsg(c, "更新配置成功")
}

func (h *ConfigHandler) ConfigListHandler(c *gin.Context) {
	configs, err := h.configService.ListConfigs()
	if err != nil {
		log.Err(err).Msg("获取配置列表失败")
		response.Error(c, fmt.Sprintf("获取配置列表失败: %v", err))
		return
	}
	response.OkWithList(c, configs, int64(len(configs)))
}
