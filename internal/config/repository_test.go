package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"productivity-clock/internal/notify"
)

func TestCreateRepository(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "nested")
	t.Setenv("PC_DB_DIR", tmpDir)
	t.Setenv("PC_CONFIG", filepath.Join(tmpDir, "missing.yaml"))

	loader := NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	repo, err := CreateRepository(cfg)
	if err != nil {
		t.Fatalf("CreateRepository() error = %v", err)
	}
	defer repo.Close()

	if _, err := os.Stat(filepath.Join(tmpDir, "clock.db")); err != nil {
		t.Errorf("database file was not created: %v", err)
	}

	if err := repo.Put(context.Background(), "theme", `{"dark":true}`); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	snapshot, err := repo.Get(context.Background(), "theme")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if snapshot.Value != `{"dark":true}` {
		t.Errorf("Get() value = %s", snapshot.Value)
	}
}

func TestCreateTestRepository(t *testing.T) {
	repo, err := CreateTestRepository()
	if err != nil {
		t.Fatalf("CreateTestRepository() error = %v", err)
	}
	defer repo.Close()

	snapshots, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(snapshots) != 0 {
		t.Errorf("List() = %v, want empty", snapshots)
	}
}

func TestCreateSink(t *testing.T) {
	cfg := NewConfig()

	sink, err := CreateSink(cfg)
	if err != nil {
		t.Fatalf("CreateSink() error = %v", err)
	}
	if _, ok := sink.(notify.NopSink); !ok {
		t.Errorf("disabled notifications should use NopSink, got %T", sink)
	}

	cfg.Notification.Enabled = true
	cfg.Notification.Topic = "focus-room"
	sink, err = CreateSink(cfg)
	if err != nil {
		t.Fatalf("CreateSink() error = %v", err)
	}
	ntfy, ok := sink.(*notify.NtfySink)
	if !ok {
		t.Fatalf("enabled notifications should use NtfySink, got %T", sink)
	}
	if ntfy.URL() != "https://ntfy.sh/focus-room" {
		t.Errorf("URL() = %s", ntfy.URL())
	}

	cfg.Notification.Topic = "bad topic"
	if _, err := CreateSink(cfg); err == nil {
		t.Error("expected an error for an invalid topic")
	}
}
