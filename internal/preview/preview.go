package preview

import (
	"errors"
	"strings"
)

var (
	// ErrMissingPreviewURL 录制对象没有预览地址
	ErrMissingPreviewURL = errors.New("cannot get preview url")
	// ErrUnsupportedFormat 流格式不是 m3u8 或 flv
	ErrUnsupportedFormat = errors.New("unsupported stream format, only m3u8 and flv are supported")
)

// StreamDescriptor 由录制管理模块提供的直播信息，只读
type StreamDescriptor struct {
	PreviewURL   string `json:"preview_url"`
	StreamerName string `json:"streamer_name"`
	Platform     string `json:"platform"`
	LiveTitle    string `json:"live_title"`
	Quality      string `json:"quality"`
	RoomURL      string `json:"room_url"`
}

// PlayerRequest 一次预览请求，StreamType 一定是 M3U8 或 FLV
type PlayerRequest struct {
	StreamURL  string
	StreamType StreamType
}

// Preview 交给展示层使用的预览结果
type Preview struct {
	Request   PlayerRequest
	PlayerURL string
	Host      string
	Port      string
}

// URLBuilder 构建播放地址
type URLBuilder interface {
	Build(rawURL string, streamType StreamType, host, port string) string
}

// URLBuilderFunc 允许普通函数作为 URLBuilder
type URLBuilderFunc func(rawURL string, streamType StreamType, host, port string) string

func (f URLBuilderFunc) Build(rawURL string, streamType StreamType, host, port string) string {
	return f(rawURL, streamType, host, port)
}

// Previewer 串联 "检查地址 -> 识别格式 -> 构建播放地址"
type Previewer struct {
	builder URLBuilder
	port    func() string
}

// NewPreviewer builder 为 nil 时使用 BuildPlayerURL，port 为 nil 时使用默认端口
func NewPreviewer(builder URLBuilder, port func() string) *Previewer {
	if builder == nil {
		builder = URLBuilderFunc(BuildPlayerURL)
	}
	if port == nil {
		port = func() string { return DefaultPlayerPort }
	}
	return &Previewer{builder: builder, port: port}
}

// Prepare 生成预览结果。地址为空或格式无法识别时直接返回错误，不会调用 builder
// 只含空白的地址视为空，其余地址原样编码
func (p *Previewer) Prepare(desc StreamDescriptor, pageURL string) (*Preview, error) {
	streamURL := desc.PreviewURL
	if strings.TrimSpace(streamURL) == "" {
		return nil, ErrMissingPreviewURL
	}

	streamType := Classify(streamURL)
	if !streamType.Valid() {
		return nil, ErrUnsupportedFormat
	}

	host := ResolveHost(pageURL)
	port := ResolvePort(p.port())
	return &Preview{
		Request: PlayerRequest{
			StreamURL:  streamURL,
			StreamType: streamType,
		},
		PlayerURL: p.builder.Build(streamURL, streamType, host, port),
		Host:      host,
		Port:      port,
	}, nil
}
