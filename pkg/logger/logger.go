package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger 初始化 zerolog，控制台格式类似 Spring Boot
func InitLogger() {
	Init(os.Stderr, zerolog.DebugLevel)
}

// Init 指定输出和日志级别
func Init(out io.Writer, level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	zerolog.TimestampFieldName = "timestamp"
	zerolog.TimeFieldFormat = time.RFC3339Nano

	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    out != os.Stderr && out != os.Stdout,
		TimeFormat: "2006-01-02 15:04:05.000",
		// 固定宽度的 [LEVEL]
		FormatLevel: func(i interface{}) string {
			levelStr, _ := i.(string)
			return fmt.Sprintf(" %5s ", strings.ToUpper(levelStr))
		},
		// 只保留文件名:行号
		FormatCaller: func(i interface{}) string {
			callerStr, _ := i.(string)
			if lastSlash := strings.LastIndexByte(callerStr, '/'); lastSlash != -1 {
				callerStr = callerStr[lastSlash+1:]
			}
			return fmt.Sprintf("%-25s", callerStr)
		},
		FormatMessage: func(i interface{}) string {
			msg, _ := i.(string)
			return fmt.Sprintf(" : %s", msg)
		},
	}

	log.Logger = zerolog.New(consoleWriter).
		Level(level).
		With().
		Timestamp().
		CallerWithSkipFrameCount(2).
		Logger()
}

// SetLevel 根据配置调整全局日志级别，无法解析时保持不变
func SetLevel(level string) {
	if level == "" {
		return
	}
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		log.Warn().Err(err).Str("level", level).Msg("[logger] 日志级别有误")
		return
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Logger.Level(parsed)
}
