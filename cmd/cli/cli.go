package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"stream-preview/internal/api"
	"stream-preview/internal/db"
	"stream-preview/internal/i18n"
	"stream-preview/internal/preview"
	"stream-preview/internal/repository"
	"stream-preview/internal/service"
	"stream-preview/internal/view"
	"stream-preview/pkg/config"
	"stream-preview/pkg/fetcher"
	"stream-preview/pkg/logger"
	"stream-preview/pkg/util"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

// CliFlags 用于在 CLI 解析后临时存储 Flag 值
type CliFlags struct {
	ConfigFile string
	Port       int
	PlayerPort string
	Language   string
	DBPath     string
}

// flagMap 转换为 Viper 键值对，仅包含显式设置的值
func (f *CliFlags) flagMap() map[string]interface{} {
	m := make(map[string]interface{})
	if f.Port != 0 {
		m[config.KeyPort] = f.Port
	}
	if f.PlayerPort != "" {
		m[config.KeyPlayerPort] = f.PlayerPort
	}
	if f.Language != "" {
		m[config.KeyLanguage] = f.Language
	}
	if f.DBPath != "" {
		m["db_path"] = f.DBPath
	}
	return m
}

func Execute() error {
	return NewApp(os.Stdout).Run(os.Args)
}

// NewApp 创建命令行应用，preview/check 的结果写入 out
func NewApp(out io.Writer) *cli.App {
	cliValues := &CliFlags{}

	return &cli.App{
		Name:      "stream-preview",
		Usage:     "直播录制任务的在线预览服务",
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config-file",
				Aliases:     []string{"c"},
				Usage:       "配置文件 (JSON) 路径",
				Destination: &cliValues.ConfigFile,
				Value:       "./conf/config.json",
			},
			&cli.IntFlag{
				Name:        "port",
				Aliases:     []string{"p"},
				Usage:       "服务监听端口",
				Destination: &cliValues.Port,
			},
			&cli.StringFlag{
				Name:        "player-port",
				Usage:       "播放服务端口，优先于环境变量 " + preview.PlayerPortEnv,
				Destination: &cliValues.PlayerPort,
			},
			&cli.StringFlag{
				Name:        "language",
				Usage:       "界面语言 (zh_CN / en)",
				Destination: &cliValues.Language,
			},
			&cli.StringFlag{
				Name:        "db",
				Usage:       "SQLite 数据库文件路径",
				Destination: &cliValues.DBPath,
			},
		},
		Action: serve(cliValues),
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "启动 HTTP 服务 (默认)",
				Action: serve(cliValues),
			},
			{
				Name:      "preview",
				Usage:     "生成播放地址",
				ArgsUsage: "<stream-url>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "page-url",
						Usage: "发起预览的页面地址，用于确定播放服务主机",
					},
				},
				Action: previewAction(cliValues),
			},
			{
				Name:   "check",
				Usage:  "检查播放服务是否可用",
				Action: check(cliValues),
			},
		},
	}
}

// loadConfig 只读取配置文件、环境变量和命令行，不访问数据库
func loadConfig(cliValues *CliFlags) (*config.AppConfig, error) {
	cfg, err := config.InitViper(cliValues.ConfigFile, cliValues.flagMap(), nil)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(cfg.LogLevel)
	return cfg, nil
}

func serve(cliValues *CliFlags) cli.ActionFunc {
	return func(c *cli.Context) error {
		// 先读一次配置，确定数据库位置
		bootCfg, err := loadConfig(cliValues)
		if err != nil {
			return err
		}
		gdb, err := db.InitDB(bootCfg.DBPath)
		if err != nil {
			return err
		}
		repo := repository.NewRepository(gdb)

		// 数据库中的配置作为默认值参与合并
		configMap, err := repo.Config.ListConfigsMap()
		if err != nil {
			return err
		}
		cfg, err := config.InitViper(cliValues.ConfigFile, cliValues.flagMap(), configMap)
		if err != nil {
			return err
		}
		logger.SetLevel(cfg.LogLevel)

		if err := util.Init(1); err != nil {
			return err
		}
		fetcher.Init(cfg)

		svc := service.NewService(cfg, repo)
		if err := svc.PlayerService.Check(c.Context); err != nil {
			log.Warn().Err(err).Str("endpoint", svc.PlayerService.Endpoint()).Msg("播放服务暂不可用，预览页面将无法播放")
		}

		log.Info().Msgf("服务将监听端口: %d", cfg.Port)
		routerEngine := api.NewEngine(cfg, svc)
		return routerEngine.Run(fmt.Sprintf(":%d", cfg.Port))
	}
}

func previewAction(cliValues *CliFlags) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.NArg() > 1 {
			return errors.New("只能指定一个流地址")
		}
		cfg, err := loadConfig(cliValues)
		if err != nil {
			return err
		}
		tr := i18n.MustLoad(cfg.Language)

		previewer := preview.NewPreviewer(nil, cfg.PlayerPort)
		result, err := previewer.Prepare(preview.StreamDescriptor{PreviewURL: c.Args().First()}, c.String("page-url"))
		if err != nil {
			return cli.Exit(view.ErrorMessage(err, tr), 1)
		}
		_, err = fmt.Fprintln(c.App.Writer, result.PlayerURL)
		return err
	}
}

func check(cliValues *CliFlags) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := loadConfig(cliValues)
		if err != nil {
			return err
		}
		fetcher.Init(cfg)

		player := service.NewPlayerService(cfg)
		ctx := c.Context
		if ctx == nil {
			ctx = context.Background()
		}
		if err := player.Check(ctx); err != nil {
			tr := i18n.MustLoad(cfg.Language)
			return cli.Exit(fmt.Sprintf("%s: %s (%v)", tr("player_unavailable", "播放服务不可用"), player.Endpoint(), err), 1)
		}
		_, err = fmt.Fprintf(c.App.Writer, "ok %s\n", player.Endpoint())
		return err
	}
}
