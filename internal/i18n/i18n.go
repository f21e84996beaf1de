package i18n

import (
	"bytes"
	"embed"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const DefaultLanguage = "zh_CN"

// 按顺序合并，后面的分组覆盖前面的同名 key
var sections = []string{"stream_player", "base", "video_quality"}

//go:embed locales/*.json
var locales embed.FS

// Translator 根据 key 查找文案，找不到时返回 defaultText
type Translator func(key, defaultText string) string

// Languages 返回内置的语言包
func Languages() []string {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil
	}
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".json"))
	}
	return langs
}

// Load 加载指定语言包
func Load(lang string) (Translator, error) {
	data, err := locales.ReadFile("locales/" + lang + ".json")
	if err != nil {
		return nil, fmt.Errorf("不支持的语言 %s: %w", lang, err)
	}

	v := viper.New()
	v.SetConfigType("json")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("解析语言包 %s 失败: %w", lang, err)
	}

	texts := make(map[string]string)
	for _, section := range sections {
		for k, val := range v.GetStringMapString(section) {
			texts[k] = val
		}
	}
	return FromMap(texts), nil
}

// MustLoad 加载失败时退回默认语言
func MustLoad(lang string) Translator {
	tr, err := Load(lang)
	if err == nil {
		return tr
	}
	log.Warn().Err(err).Str("lang", lang).Msgf("[i18n] 使用默认语言 %s", DefaultLanguage)
	tr, err = Load(DefaultLanguage)
	if err != nil {
		// 内置语言包损坏，只能原样返回默认文案
		log.Err(err).Msg("[i18n] 默认语言包加载失败")
		return Identity
	}
	return tr
}

// FromMap key 大小写不敏感
func FromMap(texts map[string]string) Translator {
	lower := make(map[string]string, len(texts))
	for k, v := range texts {
		lower[strings.ToLower(k)] = v
	}
	return func(key, defaultText string) string {
		if text, ok := lower[strings.ToLower(key)]; ok && text != "" {
			return text
		}
		return defaultText
	}
}

// Identity 总是返回默认文案
func Identity(_, defaultText string) string {
	return defaultText
}
