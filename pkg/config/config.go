package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"stream-preview/internal/iface"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	KeyPort       = "port"
	KeyLanguage   = "language"
	KeyLogLevel   = "log_level"
	KeyPlayerHost = "player.host"
	KeyPlayerPort = "player.port"
)

// AppConfig 包含应用程序的所有配置项
type AppConfig struct {
	Viper       *viper.Viper `json:"-" mapstructure:"-"`
	subscribers []iface.ConfigSubscriber
	mu          sync.RWMutex

	Port       int    `json:"port" mapstructure:"port"`                 // 监听端口
	GinLogMode string `json:"gin_log_mode" mapstructure:"gin_log_mode"` // gin 日志模式
	LogLevel   string `json:"log_level" mapstructure:"log_level"`
	Language   string `json:"language" mapstructure:"language"` // 界面语言
	DBPath     string `json:"db_path" mapstructure:"db_path"`
	Player     struct {
		Host    string `json:"host" mapstructure:"host"` // 探测播放服务时使用的主机
		Port    string `json:"port" mapstructure:"port"` // 播放服务端口，环境变量 VIDEO_API_PORT
		Timeout int    `json:"timeout" mapstructure:"timeout"`
		Retry   int    `json:"retry" mapstructure:"retry"`
	} `json:"player" mapstructure:"player"`
}

// MarshalZerologObject 实现 zerolog 接口，用于打印配置
// 直接读取字段，配置共享后只能在持有锁时调用
func (config *AppConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Int("port", config.Port).
		Str("gin_log_mode", config.GinLogMode).
		Str("log_level", config.LogLevel).
		Str("language", config.Language).
		Str("db_path", config.DBPath)

	e.Dict("player", zerolog.Dict().
		Str("host", config.Player.Host).
		Str("port", config.Player.Port).
		Int("timeout", config.Player.Timeout).
		Int("retry", config.Player.Retry))
}

// PlayerPort 读取播放服务端口，配置更新时可能被并发修改
func (config *AppConfig) PlayerPort() string {
	config.mu.RLock()
	defer config.mu.RUnlock()
	return config.Player.Port
}

func (config *AppConfig) PlayerHost() string {
	config.mu.RLock()
	defer config.mu.RUnlock()
	return config.Player.Host
}

// PlayerTimeout 探测超时，单位秒
func (config *AppConfig) PlayerTimeout() int {
	config.mu.RLock()
	defer config.mu.RUnlock()
	return config.Player.Timeout
}

func (config *AppConfig) PlayerRetry() int {
	config.mu.RLock()
	defer config.mu.RUnlock()
	return config.Player.Retry
}

func (config *AppConfig) CurrentLanguage() string {
	config.mu.RLock()
	defer config.mu.RUnlock()
	return config.Language
}

func (config *AppConfig) AddSubscriber(subscriber iface.ConfigSubscriber) {
	config.mu.Lock()
	config.subscribers = append(config.subscribers, subscriber)
	config.mu.Unlock()
	log.Info().Msgf("[config] 订阅者注册成功")
}

// Check 在副本上应用 key=value 并反序列化，不修改当前配置
func (config *AppConfig) Check(key string, value string) error {
	if config.Viper == nil {
		return errors.New("配置未初始化")
	}

	config.mu.RLock()
	settings := config.Viper.AllSettings()
	config.mu.RUnlock()

	scratch := viper.New()
	if err := scratch.MergeConfigMap(settings); err != nil {
		return fmt.Errorf("复制配置失败: %w", err)
	}
	scratch.Set(key, value)
	if err := scratch.Unmarshal(&AppConfig{}); err != nil {
		return fmt.Errorf("配置值无效, key: %s, value: %s: %w", key, value, err)
	}
	return nil
}

// OnUpdate 校验通过后更新单个配置并通知所有订阅者，校验失败时配置保持不变
func (config *AppConfig) OnUpdate(key string, value string) error {
	log.Info().Msgf("[config] 更新配置, key: %s, value: %s", key, value)
	if err := config.Check(key, value); err != nil {
		log.Error().Err(err).Msgf("[config] 配置校验失败, key: %s", key)
		return err
	}

	config.mu.Lock()
	previous := config.Viper.Get(key)
	config.Viper.Set(key, value)
	if err := config.Viper.Unmarshal(config); err != nil {
		config.Viper.Set(key, previous)
		_ = config.Viper.Unmarshal(config)
		config.mu.Unlock()
		log.Error().Err(err).Msgf("[config] 反序列化更新失败, key: %s", key)
		return fmt.Errorf("反序列化更新失败: %w", err)
	}
	log.Info().Object("config", config).Msg("[config] 配置更新成功")
	subscribers := append([]iface.ConfigSubscriber(nil), config.subscribers...)
	config.mu.Unlock()

	for _, subscriber := range subscribers {
		subscriber.OnConfigUpdate(key, value)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, 8090)
	v.SetDefault("gin_log_mode", "release")
	v.SetDefault(KeyLogLevel, "debug")
	v.SetDefault(KeyLanguage, "zh_CN")
	v.SetDefault("db_path", "./db/stream-preview.db")
	v.SetDefault(KeyPlayerHost, "localhost")
	v.SetDefault(KeyPlayerPort, "6007")
	v.SetDefault("player.timeout", 3)
	v.SetDefault("player.retry", 3)
}

// InitViper 负责 Viper 的初始化、加载和反序列化
// 优先级：命令行 > 环境变量 > 配置文件 > 数据库 > 默认值
func InitViper(configFilePath string, cmdFlags map[string]interface{}, configMap map[string]string) (*AppConfig, error) {
	v := viper.New()

	// 1. 默认值 (最低优先级)
	setDefaults(v)

	// 数据库中的配置同样作为默认值
	for key, value := range configMap {
		v.SetDefault(key, value)
	}

	// 2. 配置文件
	if configFilePath != "" {
		v.SetConfigFile(configFilePath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("json")
		v.AddConfigPath("./conf/")
		v.AddConfigPath("$HOME/.config/stream-preview/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		log.Info().Msg("未找到配置文件，使用[默认值|数据库配置|命令行参数]")
	} else {
		log.Info().Msgf("成功加载配置文件: %s", v.ConfigFileUsed())
	}

	// 3. 环境变量
	if err := v.BindEnv(KeyPlayerPort, "VIDEO_API_PORT"); err != nil {
		return nil, fmt.Errorf("绑定环境变量失败: %w", err)
	}

	// 4. 命令行 (最高优先级)
	for key, value := range cmdFlags {
		v.Set(key, value)
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("反序列化配置失败: %w", err)
	}
	cfg.Viper = v

	log.Info().Object("config", cfg).Msg("[config] 配置加载完成")
	return cfg, nil
}
