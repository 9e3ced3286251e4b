package config

import (
	"os"
	"path/filepath"
	"testing"
)

func withTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "pburn")
}

func TestLoad_Defaults(t *testing.T) {
	withTempConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with no file: %v", err)
	}
	if cfg.General.HourlyRate != DefaultHourlyRate {
		t.Errorf("HourlyRate = %v, want %v", cfg.General.HourlyRate, DefaultHourlyRate)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if Exists() {
		t.Error("Exists() = true with no config file")
	}
}

func TestSaveAndLoad(t *testing.T) {
	withTempConfigDir(t)

	cfg := DefaultConfig()
	cfg.General.DefaultSeats = 25
	cfg.General.HourlyRate = 87.5
	cfg.Appearance.Theme = "terminal"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Error("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.General.DefaultSeats != 25 {
		t.Errorf("DefaultSeats = %d, want 25", loaded.General.DefaultSeats)
	}
	if loaded.General.HourlyRate != 87.5 {
		t.Errorf("HourlyRate = %v, want 87.5", loaded.General.HourlyRate)
	}
	if loaded.Appearance.Theme != "terminal" {
		t.Errorf("Theme = %q, want terminal", loaded.Appearance.Theme)
	}
}

func TestLoad_NonPositiveRateFallsBack(t *testing.T) {
	dir := withTempConfigDir(t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	raw := "[general]\nhourly_rate = 0\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.HourlyRate != DefaultHourlyRate {
		t.Errorf("HourlyRate = %v, want default %v", cfg.General.HourlyRate, DefaultHourlyRate)
	}
}
