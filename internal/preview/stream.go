package preview

import "strings"

// StreamType 直播流封装格式
type StreamType int

const (
	NotClassified StreamType = iota // 无法识别
	M3U8
	FLV
)

// String 返回 player 接口使用的小写类型名
func (t StreamType) String() string {
	switch t {
	case M3U8:
		return "m3u8"
	case FLV:
		return "flv"
	default:
		return ""
	}
}

// Valid 是否为可播放的类型
func (t StreamType) Valid() bool {
	return t == M3U8 || t == FLV
}

// Classify 根据流地址判断封装格式，大小写不敏感
// m3u8 优先判断，同时包含 m3u8 和 flv 时按 m3u8 处理
func Classify(streamURL string) StreamType {
	lower := strings.ToLower(streamURL)
	switch {
	case strings.Contains(lower, "m3u8"):
		return M3U8
	case strings.Contains(lower, "flv"):
		return FLV
	default:
		return NotClassified
	}
}
