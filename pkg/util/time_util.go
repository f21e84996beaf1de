package util

import "time"

// MillisToTime 将毫秒级 Unix 时间戳转换为 time.Time，非正数返回零值
func MillisToTime(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
