package util

import "regexp"

var mobileUARegex = regexp.MustCompile(`(?i)android|iphone|ipod|ipad|mobile|harmonyos|windows phone`)

// IsMobileUserAgent 根据 User-Agent 粗略判断是否为移动端
func IsMobileUserAgent(userAgent string) bool {
	return userAgent != "" && mobileUARegex.MatchString(userAgent)
}
