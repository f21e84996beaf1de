package api

import (
	"regexp"
	"time"

	"stream-preview/internal/api/handler"
	"stream-preview/internal/service"
	"stream-preview/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// LoggerSkipPaths 跳过匹配路径的访问日志
func LoggerSkipPaths(skipPatterns []string) gin.HandlerFunc {
	var regexList []*regexp.Regexp
	for _, pattern := range skipPatterns {
		regexList = append(regexList, regexp.MustCompile(pattern))
	}
	logger := gin.Logger()

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, re := range regexList {
			if re.MatchString(path) {
				c.Next()
				return
			}
		}
		logger(c)
	}
}

func NewEngine(cfg *config.AppConfig, svc *service.Service) *gin.Engine {
	// debug / release / test
	if cfg.GinLogMode != "" {
		gin.SetMode(cfg.GinLogMode)
	}
	r := gin.New()

	r.Use(gin.Recovery())
	// 状态探测请求较频繁，不打印访问日志
	r.Use(LoggerSkipPaths([]string{
		`^/api/player/status$`,
	}))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	setupRoutes(r, handler.NewHandler(cfg, svc))
	return r
}

func setupRoutes(r *gin.Engine, h *handler.Handler) {
	apiGroup := r.Group("/api")

	recordingGroup := apiGroup.Group("/recording")
	{
		recordingGroup.POST("", h.RecordingHandler.RecordingAddHandler)
		recordingGroup.GET("/list", h.RecordingHandler.RecordingListHandler)
		recordingGroup.GET("/:id", h.RecordingHandler.RecordingDetailHandler)
		recordingGroup.PUT("/:id", h.RecordingHandler.RecordingUpdateHandler)
		recordingGroup.DELETE("/:id", h.RecordingHandler.RecordingRemoveHandler)
		recordingGroup.GET("/:id/preview", h.PreviewHandler.RecordingPreviewHandler)
	}

	apiGroup.POST("/preview", h.PreviewHandler.StreamPreviewHandler)
	apiGroup.GET("/player/status", h.PlayerHandler.PlayerStatusHandler)

	configGroup := apiGroup.Group("/config")
	{
		configGroup.GET("/list", h.ConfigHandler.ConfigListHandler)
		configGroup.POST("/add", h.ConfigHandler.ConfigAddHandler)
		configGroup.POST("/update", h.ConfigHandler.ConfigUpdateHandler)
	}
}
