package repository

import (
	"errors"
	"path/filepath"
	"testing"

	"stream-preview/internal/db"
	"stream-preview/internal/domain/model"

	"gorm.io/gorm"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	gdb, err := db.InitDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	return NewRepository(gdb)
}

func TestRecordingRepository(t *testing.T) {
	repo := newTestRepository(t).Recording

	rec := &model.Recording{
		ID:           1001,
		StreamerName: "alice",
		Platform:     "bilibili",
		PreviewURL:   "https://x/live.m3u8",
	}
	if err := repo.AddRecording(rec); err != nil {
		t.Fatal(err)
	}
	if rec.CreateTime == 0 {
		t.Error("create_time not filled")
	}

	got, err := repo.GetRecordingById(1001)
	if err != nil || got == nil {
		t.Fatalf("get: %v %v", got, err)
	}
	if got.PreviewURL != rec.PreviewURL {
		t.Errorf("preview url = %q", got.PreviewURL)
	}

	if err := repo.UpdateRecordingExceptZero(&model.Recording{ID: 1001, LiveTitle: "晚间直播"}); err != nil {
		t.Fatal(err)
	}
	got, _ = repo.GetRecordingById(1001)
	if got.LiveTitle != "晚间直播" || got.StreamerName != "alice" {
		t.Errorf("after update: %+v", got)
	}

	list, err := repo.ListRecordings()
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v %v", list, err)
	}

	if err := repo.RemoveRecording(1001); err != nil {
		t.Fatal(err)
	}
	if got, err := repo.GetRecordingById(1001); err != nil || got != nil {
		t.Fatalf("after remove: %v %v", got, err)
	}
	if err := repo.RemoveRecording(1001); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("remove missing: %v", err)
	}
}

func TestConfigRepository(t *testing.T) {
	repo := newTestRepository(t).Config

	for _, cfg := range []model.Config{
		{ID: 1, Key: "language", Value: "en"},
		{ID: 2, Key: "player.port", Value: "6100"},
	} {
		if err := repo.AddConfig(&cfg); err != nil {
			t.Fatal(err)
		}
	}

	m, err := repo.ListConfigsMap()
	if err != nil {
		t.Fatal(err)
	}
	if m["language"] != "en" || m["player.port"] != "6100" {
		t.Fatalf("config map = %v", m)
	}

	if err := repo.UpdateConfig(&model.Config{ID: 1, Value: "zh_CN"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := repo.GetConfigByKey("language")
	if err != nil || cfg.Value != "zh_CN" {
		t.Fatalf("by key: %v %v", cfg, err)
	}

	if _, err := repo.GetConfigByKey("missing"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing key err = %v", err)
	}
	if cfg, err := repo.GetConfigById(99); err != nil || cfg != nil {
		t.Fatalf("missing id: %v %v", cfg, err)
	}
	if err := repo.UpdateConfig(&model.Config{ID: 99, Value: "x"}); err == nil {
		t.Fatal("expected error updating missing config")
	}
}
