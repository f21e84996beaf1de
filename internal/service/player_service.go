package service

import (
	"context"
	"net"
	"time"

	"stream-preview/internal/preview"
	"stream-preview/pkg/config"
	"stream-preview/pkg/fetcher"
)

type PlayerService struct {
	config *config.AppConfig
}

func NewPlayerService(cfg *config.AppConfig) *PlayerService {
	return &PlayerService{config: cfg}
}

// Endpoint 播放服务地址，不带查询参数
func (p *PlayerService) Endpoint() string {
	host := p.config.PlayerHost()
	if host == "" {
		host = preview.DefaultPlayerHost
	}
	port := preview.ResolvePort(p.config.PlayerPort())
	return "http://" + net.JoinHostPort(host, port) + preview.PlayerPath
}

// Check 探测播放服务是否在线
func (p *PlayerService) Check(ctx context.Context) error {
	attempts := uint(1)
	if retry := p.config.PlayerRetry(); retry > 0 {
		attempts = uint(retry)
	}
	return fetcher.Probe(ctx, fetcher.GlobalClient, p.Endpoint(), attempts, 500*time.Millisecond)
}
