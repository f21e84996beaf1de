package service

import (
	"stream-preview/internal/repository"
	"stream-preview/pkg/config"
)

type Service struct {
	RecordingService *RecordingService
	PreviewService   *PreviewService
	PlayerService    *PlayerService
	ConfigService    *ConfigService
}

func NewService(cfg *config.AppConfig, repo *repository.Repository) *Service {
	recordingService := NewRecordingService(repo.Recording)
	return &Service{
		RecordingService: recordingService,
		PreviewService:   NewPreviewService(cfg, recordingService),
		PlayerService:    NewPlayerService(cfg),
		ConfigService:    NewConfigService(cfg, repo.Config),
	}
}
