package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"stream-preview/pkg/config"

	"github.com/avast/retry-go/v5"
	"github.com/rs/zerolog/log"
)

const defaultTimeout = 3 * time.Second

// ErrServiceUnavailable 播放服务返回 5xx
var ErrServiceUnavailable = errors.New("player service unavailable")

// GlobalClient 通用的 HTTP 客户端实例
var GlobalClient = &http.Client{Timeout: defaultTimeout}

// Init 根据配置初始化客户端超时
func Init(cfg *config.AppConfig) {
	timeout := defaultTimeout
	if cfg != nil && cfg.PlayerTimeout() > 0 {
		timeout = time.Duration(cfg.PlayerTimeout()) * time.Second
	}
	GlobalClient = &http.Client{Timeout: timeout}
	log.Info().Dur("timeout", timeout).Msg("[fetcher] HTTP 客户端初始化完成")
}

// Fetch 通用请求方法，params 会合并到 baseURL 已有的查询参数中
func Fetch(ctx context.Context, client *http.Client, method string, baseURL string, params url.Values, header http.Header) (*http.Response, error) {
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("解析 baseURL 失败: %w", err))
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, retry.Unrecoverable(fmt.Errorf("baseURL 不完整: %s", baseURL))
	}

	if len(params) > 0 {
		query := parsedURL.Query()
		for key, values := range params {
			for _, value := range values {
				query.Add(key, value)
			}
		}
		parsedURL.RawQuery = query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, method, parsedURL.String(), nil)
	if err != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("创建请求失败: %w", err))
	}
	for k, vv := range header {
		for _, v := range vv {
			request.Header.Add(k, v)
		}
	}

	if client == nil {
		client = GlobalClient
	}
	return client.Do(request)
}

// Probe 检查播放服务是否可用，5xx 或网络错误时重试
// 4xx 说明服务在线（例如缺少 stream_url 参数），视为可用
func Probe(ctx context.Context, client *http.Client, target string, attempts uint, delay time.Duration) error {
	if attempts == 0 {
		attempts = 1
	}

	return retry.New(
		retry.Attempts(attempts),
		retry.Delay(delay),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Err(err).Str("target", target).Msgf("[Probe] 第%d次探测失败", n+1)
		}),
		retry.Context(ctx),
	).Do(func() error {
		resp, err := Fetch(ctx, client, http.MethodGet, target, nil, nil)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)

		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("%w: http status code %d", ErrServiceUnavailable, resp.StatusCode)
		}
		return nil
	})
}
