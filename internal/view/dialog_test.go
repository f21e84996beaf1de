package view

import (
	"errors"
	"fmt"
	"testing"

	"stream-preview/internal/i18n"
	"stream-preview/internal/preview"

	. "github.com/smartystreets/goconvey/convey"
)

func newPreview(t *testing.T, streamURL string) *preview.Preview {
	t.Helper()
	p, err := preview.NewPreviewer(nil, nil).Prepare(preview.StreamDescriptor{PreviewURL: streamURL}, "")
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestComputeLayout(t *testing.T) {
	Convey("移动端布局", t, func() {
		l := ComputeLayout(Viewport{Width: 400, Height: 800}, true)
		So(l.DialogWidth, ShouldAlmostEqual, 360)
		So(l.VideoHeight, ShouldAlmostEqual, 440)
		So(l.InfoFontSize, ShouldEqual, 12)
		So(l.TitleFontSize, ShouldEqual, 16)
		So(l.InsetPadding, ShouldEqual, 10)
	})

	Convey("桌面端布局有上限", t, func() {
		l := ComputeLayout(Viewport{Width: 2560, Height: 1440}, false)
		So(l.DialogWidth, ShouldEqual, 1200.0)
		So(l.VideoHeight, ShouldEqual, 650.0)
		So(l.InfoFontSize, ShouldEqual, 13)
		So(l.TitleFontSize, ShouldEqual, 20)
	})

	Convey("尺寸未知时按 800x600 计算", t, func() {
		l := ComputeLayout(Viewport{}, false)
		So(l.DialogWidth, ShouldAlmostEqual, 640)
		So(l.VideoHeight, ShouldAlmostEqual, 390)
	})
}

func TestBuild(t *testing.T) {
	tr := i18n.FromMap(map[string]string{
		"preview_title":   "Live Preview",
		"OD":              "Original",
		"streamer_label":  "Streamer:",
		"open_live_room":  "Open Live Room",
		"copy_stream_url": "Copy Stream URL",
	})
	desc := preview.StreamDescriptor{
		PreviewURL:   "https://x/live.m3u8?token=1",
		StreamerName: "alice",
		Platform:     "bilibili",
		LiveTitle:    "晚间直播",
		Quality:      "OD",
		RoomURL:      "https://live.bilibili.com/1",
	}
	p := newPreview(t, desc.PreviewURL)

	Convey("移动端使用单行摘要和图标按钮", t, func() {
		d := Build(p, desc, Viewport{Width: 400, Height: 800}, true, tr)
		So(d.Title, ShouldEqual, "Live Preview")
		So(d.Summary, ShouldEqual, "alice · bilibili · M3U8 - Original")
		So(d.Subtitle, ShouldEqual, "晚间直播")
		So(d.LeftColumn, ShouldBeEmpty)
		So(len(d.Actions), ShouldEqual, 4)
		So(d.Actions[0].ID, ShouldEqual, ActionOpenRoom)
		So(d.Actions[0].Icon, ShouldEqual, "open_in_browser")
		So(d.Actions[1].Target, ShouldEqual, desc.PreviewURL)
		So(d.Actions[2].Target, ShouldEqual, p.PlayerURL)
		So(d.Actions[3].ID, ShouldEqual, ActionClose)
	})

	Convey("桌面端使用两列信息和文字按钮", t, func() {
		d := Build(p, desc, Viewport{Width: 1280, Height: 720}, false, tr)
		So(d.Summary, ShouldBeEmpty)
		So(d.LeftColumn, ShouldResemble, []InfoField{
			{Label: "Streamer:", Value: "alice"},
			{Label: "平台：", Value: "bilibili"},
		})
		So(len(d.RightColumn), ShouldEqual, 2)
		So(d.RightColumn[0].Value, ShouldEqual, "M3U8 - Original")
		for _, a := range d.Actions {
			So(a.Icon, ShouldBeEmpty)
		}
		So(d.Actions[0].Label, ShouldEqual, "Open Live Room")
	})

	Convey("没有直播间地址时不显示打开直播间", t, func() {
		bare := preview.StreamDescriptor{PreviewURL: "https://x/a.flv"}
		d := Build(newPreview(t, bare.PreviewURL), bare, Viewport{}, true, nil)
		So(d.Summary, ShouldEqual, "FLV")
		So(d.Subtitle, ShouldBeEmpty)
		So(len(d.Actions), ShouldEqual, 3)
		So(d.Actions[0].ID, ShouldEqual, ActionCopyURL)
		So(d.Actions[0].Message, ShouldEqual, "流地址已复制")
	})
}

func TestErrorMessage(t *testing.T) {
	Convey("预览错误映射为本地化提示", t, func() {
		tr := i18n.FromMap(map[string]string{"unsupported_format": "Unsupported"})
		So(ErrorMessage(preview.ErrUnsupportedFormat, tr), ShouldEqual, "Unsupported")
		So(ErrorMessage(fmt.Errorf("wrap: %w", preview.ErrMissingPreviewURL), tr), ShouldEqual, "无法获取预览地址")
		So(ErrorMessage(errors.New("boom"), tr), ShouldEqual, "boom")
		So(ErrorMessage(nil, tr), ShouldBeEmpty)
	})
}
