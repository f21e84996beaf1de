package preview

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

const (
	DefaultPlayerHost = "localhost"
	DefaultPlayerPort = "6007"
	PlayerPath        = "/api/player"
	// PlayerPortEnv 播放服务端口的环境变量
	PlayerPortEnv = "VIDEO_API_PORT"
)

// EncodeStreamURL 对流地址做完整的百分号编码，不保留任何保留字符
// 空格编码为 %20，仅 A-Z a-z 0-9 - _ . ~ 保持原样
func EncodeStreamURL(rawURL string) string {
	// QueryEscape 会把字面量 + 编码为 %2B，因此剩下的 + 一定来自空格
	return strings.ReplaceAll(url.QueryEscape(rawURL), "+", "%20")
}

// BuildPlayerURL 构建本地播放服务地址
// 播放服务不支持 https，固定使用 http
func BuildPlayerURL(rawURL string, streamType StreamType, host, port string) string {
	return fmt.Sprintf("http://%s%s?stream_url=%s&stream_type=%s",
		net.JoinHostPort(host, port), PlayerPath, EncodeStreamURL(rawURL), streamType)
}

// ResolveHost 从当前页面地址中解析主机名，解析不到时使用 localhost
func ResolveHost(pageURL string) string {
	if pageURL == "" {
		return DefaultPlayerHost
	}
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Hostname() == "" {
		return DefaultPlayerHost
	}
	return parsed.Hostname()
}

// ResolvePort 未配置时使用默认端口 6007
func ResolvePort(configured string) string {
	configured = strings.TrimSpace(configured)
	if configured == "" {
		return DefaultPlayerPort
	}
	return configured
}
