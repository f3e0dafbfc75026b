package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xvierd/pomodomate/internal/domain"
)

func TestDefaultConfig_TimerMatchesDomainDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.DefaultSettings(); got != domain.DefaultSettings() {
		t.Errorf("DefaultSettings() = %+v, want %+v", got, domain.DefaultSettings())
	}
	if !cfg.Notifications.Enabled {
		t.Error("notifications should be enabled by default")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected default log level 'warn', got %q", cfg.Log.Level)
	}
}

func TestConfig_DefaultSettingsCoercesOutOfRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timer.WorkMinutes = 0
	cfg.Timer.ShortBreakMinutes = 45

	got := cfg.DefaultSettings()
	if got.Work != 1 || got.ShortBreak != 1 || got.LongBreak != 15 {
		t.Errorf("DefaultSettings() = %+v, want {1 1 15}", got)
	}
}

func TestLoadFrom_CreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file was not created: %v", err)
	}
	if cfg.Timer.WorkMinutes != 25 {
		t.Errorf("expected work_minutes 25, got %d", cfg.Timer.WorkMinutes)
	}
	if strings.HasPrefix(cfg.Storage.DataDir, "~") {
		t.Errorf("data dir %q should have ~ expanded", cfg.Storage.DataDir)
	}
}

func TestLoadFrom_ReadsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[timer]
work_minutes = 50
short_break_minutes = 10

[storage]
data_dir = "/tmp/pomodomate-test"

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Timer.WorkMinutes != 50 || cfg.Timer.ShortBreakMinutes != 10 {
		t.Errorf("timer = %+v, want work 50 and short 10", cfg.Timer)
	}
	if cfg.Timer.LongBreakMinutes != 15 {
		t.Errorf("long break should fall back to default 15, got %d", cfg.Timer.LongBreakMinutes)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Theme.IconApp != "🍅" {
		t.Errorf("theme icon should default, got %q", cfg.Theme.IconApp)
	}
	if got := GetDBPath(cfg); got != filepath.Join("/tmp/pomodomate-test", "pomodomate.db") {
		t.Errorf("GetDBPath() = %q", got)
	}
	if got := GetLogPath(cfg); got != filepath.Join("/tmp/pomodomate-test", "pomodomate.log") {
		t.Errorf("GetLogPath() = %q", got)
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Timer.LongBreakMinutes = 20
	cfg.Notifications.Enabled = false

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if loaded.Timer.LongBreakMinutes != 20 {
		t.Errorf("long break = %d, want 20", loaded.Timer.LongBreakMinutes)
	}
	if loaded.Notifications.Enabled {
		t.Error("notifications should stay disabled after round trip")
	}
}
