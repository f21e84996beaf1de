package main

import (
	"stream-preview/cmd/cli"
	"stream-preview/pkg/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	// 打包命令 go build -ldflags="-s -w" -o stream-preview ./cmd/app

	// 1. 设置日志格式
	logger.InitLogger()

	// 2. 启动 CLI 应用和配置加载
	if err := cli.Execute(); err != nil {
		log.Fatal().Err(err).Msg("应用启动失败")
	}
}
