package service

import (
	"fmt"
	"sync"

	"stream-preview/internal/i18n"
	"stream-preview/internal/preview"
	"stream-preview/internal/view"
	"stream-preview/pkg/config"

	"github.com/rs/zerolog/log"
)

// PageContext 发起预览的页面
type PageContext struct {
	URL      string
	Viewport view.Viewport
	Mobile   bool
}

type PreviewService struct {
	config           *config.AppConfig
	recordingService *RecordingService
	previewer        *preview.Previewer

	mu         sync.RWMutex
	translator i18n.Translator
}

func NewPreviewService(cfg *config.AppConfig, recordingService *RecordingService) *PreviewService {
	p := &PreviewService{
		config:           cfg,
		recordingService: recordingService,
		previewer:        preview.NewPreviewer(nil, cfg.PlayerPort),
		translator:       i18n.MustLoad(cfg.CurrentLanguage()),
	}
	cfg.AddSubscriber(p)
	return p
}

// OnConfigUpdate 语言变化时重新加载语言包
func (p *PreviewService) OnConfigUpdate(key string, value string) {
	if key != config.KeyLanguage {
		return
	}
	tr := i18n.MustLoad(value)
	p.mu.Lock()
	p.translator = tr
	p.mu.Unlock()
	log.Info().Str("language", value).Msg("[preview] 语言包已切换")
}

func (p *PreviewService) Translator() i18n.Translator {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.translator
}

// PreviewRecording 预览已保存的录制任务
func (p *PreviewService) PreviewRecording(id int64, page PageContext) (*view.Dialog, error) {
	recording, err := p.recordingService.GetRecording(id)
	if err != nil {
		return nil, err
	}
	return p.PreviewDescriptor(Descriptor(recording), page)
}

// PreviewDescriptor 地址为空或格式不支持时返回 preview.ErrMissingPreviewURL / preview.ErrUnsupportedFormat
func (p *PreviewService) PreviewDescriptor(desc preview.StreamDescriptor, page PageContext) (*view.Dialog, error) {
	result, err := p.previewer.Prepare(desc, page.URL)
	if err != nil {
		log.Warn().Err(err).Str("streamer", desc.StreamerName).Msg("[preview] 无法预览")
		return nil, fmt.Errorf("预览失败: %w", err)
	}

	dialog := view.Build(result, desc, page.Viewport, page.Mobile, p.Translator())
	log.Debug().
		Str("type", result.Request.StreamType.String()).
		Str("player", result.PlayerURL).
		Bool("mobile", page.Mobile).
		Msg("[preview] 播放地址已生成")
	return &dialog, nil
}

// ErrorMessage 面向用户的错误提示
func (p *PreviewService) ErrorMessage(err error) string {
	return view.ErrorMessage(err, p.Translator())
}
