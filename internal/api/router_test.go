package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"stream-preview/internal/api/response"
	"stream-preview/internal/db"
	"stream-preview/internal/repository"
	"stream-preview/internal/service"
	"stream-preview/pkg/config"
	"stream-preview/pkg/util"

	"github.com/gin-gonic/gin"
)

type dialogData struct {
	Title      string `json:"title"`
	Mobile     bool   `json:"mobile"`
	PlayerURL  string `json:"player_url"`
	StreamType string `json:"stream_type"`
}

func newTestEngine(t *testing.T) (*gin.Engine, *config.AppConfig) {
	t.Helper()
	t.Setenv("VIDEO_API_PORT", "")
	if err := util.Init(1); err != nil {
		t.Fatal(err)
	}
	gdb, err := db.InitDB(filepath.Join(t.TempDir(), "api.db"))
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := config.InitViper(filepath.Join(t.TempDir(), "missing.json"), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.OnUpdate("player.retry", "1"); err != nil {
		t.Fatal(err)
	}
	cfg.GinLogMode = gin.TestMode
	svc := service.NewService(cfg, repository.NewRepository(gdb))
	return NewEngine(cfg, svc), cfg
}

func do(t *testing.T, r http.Handler, req *http.Request, data any) response.Response {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("%s %s: http status %d", req.Method, req.URL, w.Code)
	}
	var raw struct {
		response.Response
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	if data != nil && len(raw.Data) > 0 && string(raw.Data) != "null" {
		if err := json.Unmarshal(raw.Data, data); err != nil {
			t.Fatal(err)
		}
	}
	return raw.Response
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func addRecording(t *testing.T, r http.Handler, body string) string {
	t.Helper()
	var created struct {
		ID string `json:"id"`
	}
	resp := do(t, r, jsonRequest(http.MethodPost, "/api/recording", body), &created)
	if resp.Code != response.CodeSuccess || created.ID == "" {
		t.Fatalf("add recording: %+v", resp)
	}
	return created.ID
}

func TestRecordingPreviewFlow(t *testing.T) {
	r, _ := newTestEngine(t)

	id := addRecording(t, r, `{"streamerName":"alice","platform":"bilibili","quality":"HD",
		"url":"https://live.bilibili.com/1","previewUrl":"https://cdn.example.com/live/index.M3U8?a=1&b=2"}`)

	var list response.PagingData
	if resp := do(t, r, httptest.NewRequest(http.MethodGet, "/api/recording/list", nil), &list); resp.Code != 0 || list.Total != 1 {
		t.Fatalf("list: %+v %+v", resp, list)
	}

	target := "/api/recording/" + id + "/preview?page_url=" + url.QueryEscape("http://192.168.1.5:8090/") + "&width=1920&height=1080&mobile=false"
	var dialog dialogData
	resp := do(t, r, httptest.NewRequest(http.MethodGet, target, nil), &dialog)
	if resp.Code != response.CodeSuccess {
		t.Fatalf("preview: %+v", resp)
	}
	want := "http://192.168.1.5:6007/api/player?stream_url=" +
		"https%3A%2F%2Fcdn.example.com%2Flive%2Findex.M3U8%3Fa%3D1%26b%3D2&stream_type=m3u8"
	if dialog.PlayerURL != want {
		t.Fatalf("player url = %q, want %q", dialog.PlayerURL, want)
	}
	if dialog.Mobile || dialog.StreamType != "m3u8" {
		t.Fatalf("dialog = %+v", dialog)
	}

	if resp := do(t, r, httptest.NewRequest(http.MethodDelete, "/api/recording/"+id, nil), nil); resp.Code != 0 {
		t.Fatalf("delete: %+v", resp)
	}
	if resp := do(t, r, httptest.NewRequest(http.MethodGet, "/api/recording/"+id, nil), nil); resp.Code != response.CodeNotFound {
		t.Fatalf("detail after delete: %+v", resp)
	}
	if resp := do(t, r, httptest.NewRequest(http.MethodGet, target, nil), nil); resp.Code != response.CodeNotFound {
		t.Fatalf("preview after delete: %+v", resp)
	}
}

func TestRecordingPreviewErrors(t *testing.T) {
	r, _ := newTestEngine(t)

	noURL := addRecording(t, r, `{"streamerName":"bob","platform":"douyin"}`)
	resp := do(t, r, httptest.NewRequest(http.MethodGet, "/api/recording/"+noURL+"/preview", nil), nil)
	if resp.Code != response.CodeMissingPreviewURL || resp.Message != "无法获取预览地址" {
		t.Fatalf("missing url: %+v", resp)
	}

	// 补充地址后可以预览
	resp = do(t, r, jsonRequest(http.MethodPut, "/api/recording/"+noURL, `{"previewUrl":"https://x.example.com/live.flv"}`), nil)
	if resp.Code != response.CodeSuccess {
		t.Fatalf("update: %+v", resp)
	}
	if resp = do(t, r, httptest.NewRequest(http.MethodGet, "/api/recording/"+noURL+"/preview", nil), nil); resp.Code != response.CodeSuccess {
		t.Fatalf("preview after update: %+v", resp)
	}
	if resp = do(t, r, jsonRequest(http.MethodPut, "/api/recording/42", `{"liveTitle":"x"}`), nil); resp.Code != response.CodeNotFound {
		t.Fatalf("update unknown: %+v", resp)
	}

	mp4 := addRecording(t, r, `{"streamerName":"carol","platform":"huya","previewUrl":"https://x.example.com/a.mp4"}`)
	resp = do(t, r, httptest.NewRequest(http.MethodGet, "/api/recording/"+mp4+"/preview", nil), nil)
	if resp.Code != response.CodeUnsupportedFormat {
		t.Fatalf("unsupported: %+v", resp)
	}

	resp = do(t, r, jsonRequest(http.MethodPost, "/api/recording", `{"platform":"huya"}`), nil)
	if resp.Code != response.CodeInternal || resp.Message != "主播名称不能为空" {
		t.Fatalf("validation: %+v", resp)
	}
	resp = do(t, r, jsonRequest(http.MethodPost, "/api/recording", `{"streamerName":"d","platform":"huya","quality":"8K"}`), nil)
	if resp.Message != "画质参数有误" {
		t.Fatalf("quality validation: %+v", resp)
	}
	if resp = do(t, r, httptest.NewRequest(http.MethodGet, "/api/recording/abc", nil), nil); resp.Code != response.CodeInternal {
		t.Fatalf("bad id: %+v", resp)
	}
}

func TestStreamPreviewFallsBackToRequestHeaders(t *testing.T) {
	r, _ := newTestEngine(t)

	req := jsonRequest(http.MethodPost, "/api/preview", `{"stream":{"preview_url":"rtmp://x/live.flv","streamer_name":"eve"}}`)
	req.Header.Set("Referer", "https://panel.example.com/recordings")
	req.Header.Set("User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)")

	var dialog dialogData
	resp := do(t, r, req, &dialog)
	if resp.Code != response.CodeSuccess {
		t.Fatalf("preview: %+v", resp)
	}
	if !strings.HasPrefix(dialog.PlayerURL, "http://panel.example.com:6007/api/player?") {
		t.Errorf("player url = %q", dialog.PlayerURL)
	}
	if !strings.HasSuffix(dialog.PlayerURL, "&stream_type=flv") {
		t.Errorf("player url = %q", dialog.PlayerURL)
	}
	if !dialog.Mobile {
		t.Error("iPhone user agent should be treated as mobile")
	}

	resp = do(t, r, jsonRequest(http.MethodPost, "/api/preview", `{"stream":{"preview_url":"   "}}`), nil)
	if resp.Code != response.CodeMissingPreviewURL {
		t.Fatalf("blank url: %+v", resp)
	}
}

func TestConfigRoutesAndPlayerStatus(t *testing.T) {
	r, cfg := newTestEngine(t)

	resp := do(t, r, jsonRequest(http.MethodPost, "/api/config/add", `{"key":"player.port","value":"1"}`), nil)
	if resp.Code != response.CodeSuccess {
		t.Fatalf("add config: %+v", resp)
	}
	if cfg.PlayerPort() != "1" {
		t.Fatalf("player port = %q", cfg.PlayerPort())
	}

	var list response.PagingData
	if resp := do(t, r, httptest.NewRequest(http.MethodGet, "/api/config/list", nil), &list); resp.Code != 0 || list.Total != 1 {
		t.Fatalf("config list: %+v %+v", resp, list)
	}

	var status struct {
		Endpoint  string `json:"endpoint"`
		Port      string `json:"port"`
		Available bool   `json:"available"`
	}
	if resp := do(t, r, httptest.NewRequest(http.MethodGet, "/api/player/status", nil), &status); resp.Code != 0 {
		t.Fatalf("status: %+v", resp)
	}
	if status.Available || status.Port != "1" || status.Endpoint != "http://localhost:1/api/player" {
		t.Fatalf("status = %+v", status)
	}
}

func TestListResponseHasNoPagingFields(t *testing.T) {
	r, _ := newTestEngine(t)
	addRecording(t, r, `{"streamerName":"alice","platform":"bilibili"}`)

	var data map[string]json.RawMessage
	if resp := do(t, r, httptest.NewRequest(http.MethodGet, "/api/recording/list", nil), &data); resp.Code != 0 {
		t.Fatalf("list: %+v", resp)
	}
	if len(data) != 2 || data["list"] == nil || string(data["total"]) != "1" {
		t.Fatalf("list data = %v", data)
	}
}
