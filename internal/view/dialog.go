package view

import (
	"errors"
	"math"
	"strings"

	"stream-preview/internal/i18n"
	"stream-preview/internal/preview"

	"github.com/samber/lo"
)

const (
	defaultPageWidth  = 800
	defaultPageHeight = 600

	maxDesktopDialogWidth = 1200
	maxDesktopVideoHeight = 650
)

// ActionID 对话框按钮
type ActionID string

const (
	ActionOpenRoom     ActionID = "open_room"
	ActionCopyURL      ActionID = "copy_stream_url"
	ActionOpenInNewTab ActionID = "open_in_new_tab"
	ActionClose        ActionID = "close"
)

// Viewport 页面尺寸，未知时为 0
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Layout struct {
	DialogWidth   float64 `json:"dialog_width"`
	VideoHeight   float64 `json:"video_height"`
	InfoFontSize  int     `json:"info_font_size"`
	TitleFontSize int     `json:"title_font_size"`
	InsetPadding  int     `json:"inset_padding"`
}

// InfoField 桌面端两列布局中的一行
type InfoField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Action struct {
	ID      ActionID `json:"id"`
	Label   string   `json:"label"`
	Icon    string   `json:"icon,omitempty"`    // 仅移动端使用图标按钮
	Target  string   `json:"target,omitempty"`  // 打开或复制的地址
	Message string   `json:"message,omitempty"` // 执行成功后的提示
}

// Dialog 预览对话框的声明式描述，由前端负责渲染
type Dialog struct {
	Title      string `json:"title"`
	Mobile     bool   `json:"mobile"`
	Layout     Layout `json:"layout"`
	PlayerURL  string `json:"player_url"`
	StreamURL  string `json:"stream_url"`
	StreamType string `json:"stream_type"`
	Format     string `json:"format"`

	// 移动端：单行摘要 + 可选的直播标题
	Summary  string `json:"summary,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`

	// 桌面端：两列信息
	LeftColumn  []InfoField `json:"left_column,omitempty"`
	RightColumn []InfoField `json:"right_column,omitempty"`

	Actions []Action `json:"actions"`
}

// ComputeLayout 移动端 90vw/55vh，桌面端 80vw(max 1200)/65vh(max 650)
func ComputeLayout(vp Viewport, mobile bool) Layout {
	width, height := vp.Width, vp.Height
	if width <= 0 {
		width = defaultPageWidth
	}
	if height <= 0 {
		height = defaultPageHeight
	}

	if mobile {
		return Layout{
			DialogWidth:   width * 0.9,
			VideoHeight:   height * 0.55,
			InfoFontSize:  12,
			TitleFontSize: 16,
			InsetPadding:  10,
		}
	}
	return Layout{
		DialogWidth:   math.Min(width*0.8, maxDesktopDialogWidth),
		VideoHeight:   math.Min(height*0.65, maxDesktopVideoHeight),
		InfoFontSize:  13,
		TitleFontSize: 20,
		InsetPadding:  24,
	}
}

// FormatWithQuality 例如 "M3U8 - 原画"
func FormatWithQuality(streamType preview.StreamType, quality string, tr i18n.Translator) string {
	format := strings.ToUpper(streamType.String())
	if quality == "" {
		return format
	}
	qualityText := tr(quality, quality)
	if qualityText == "" {
		return format
	}
	return format + " - " + qualityText
}

// Build 根据预览结果组装对话框
func Build(p *preview.Preview, desc preview.StreamDescriptor, vp Viewport, mobile bool, tr i18n.Translator) Dialog {
	if tr == nil {
		tr = i18n.Identity
	}
	layout := ComputeLayout(vp, mobile)
	format := FormatWithQuality(p.Request.StreamType, desc.Quality, tr)

	d := Dialog{
		Title:      tr("preview_title", "直播预览"),
		Mobile:     mobile,
		Layout:     layout,
		PlayerURL:  p.PlayerURL,
		StreamURL:  p.Request.StreamURL,
		StreamType: p.Request.StreamType.String(),
		Format:     format,
	}

	if mobile {
		d.Summary = strings.Join(lo.Compact([]string{desc.StreamerName, desc.Platform, format}), " · ")
		d.Subtitle = desc.LiveTitle
	} else {
		if desc.StreamerName != "" {
			d.LeftColumn = append(d.LeftColumn, InfoField{Label: tr("streamer_label", "主播："), Value: desc.StreamerName})
		}
		if desc.Platform != "" {
			d.LeftColumn = append(d.LeftColumn, InfoField{Label: tr("platform_label", "平台："), Value: desc.Platform})
		}
		d.RightColumn = append(d.RightColumn, InfoField{Label: tr("format_label", "格式："), Value: format})
		if desc.LiveTitle != "" {
			d.RightColumn = append(d.RightColumn, InfoField{Label: tr("title_label", "标题："), Value: desc.LiveTitle})
		}
	}

	d.Actions = buildActions(p, desc, mobile, tr)
	return d
}

func buildActions(p *preview.Preview, desc preview.StreamDescriptor, mobile bool, tr i18n.Translator) []Action {
	actions := make([]Action, 0, 4)
	if desc.RoomURL != "" {
		actions = append(actions, Action{
			ID:     ActionOpenRoom,
			Label:  tr("open_live_room", "打开直播间"),
			Icon:   "open_in_browser",
			Target: desc.RoomURL,
		})
	}
	actions = append(actions,
		Action{
			ID:      ActionCopyURL,
			Label:   tr("copy_stream_url", "复制流地址"),
			Icon:    "content_copy",
			Target:  p.Request.StreamURL,
			Message: tr("stream_url_copied", "流地址已复制"),
		},
		Action{
			ID:     ActionOpenInNewTab,
			Label:  tr("open_in_new_tab", "新标签打开"),
			Icon:   "open_in_new",
			Target: p.PlayerURL,
		},
		Action{
			ID:    ActionClose,
			Label: tr("close", "关闭"),
			Icon:  "close",
		},
	)

	if !mobile {
		for i := range actions {
			actions[i].Icon = ""
		}
	}
	return actions
}

// ErrorMessage 将预览错误转换为面向用户的提示
func ErrorMessage(err error, tr i18n.Translator) string {
	if tr == nil {
		tr = i18n.Identity
	}
	switch {
	case errors.Is(err, preview.ErrMissingPreviewURL):
		return tr("cannot_get_preview_url", "无法获取预览地址")
	case errors.Is(err, preview.ErrUnsupportedFormat):
		return tr("unsupported_format", "无法识别流格式，仅支持 M3U8 和 FLV 格式")
	case err == nil:
		return ""
	default:
		return err.Error()
	}
}
