package config

import (
	"os"
	"path/filepath"
	"testing"
)

func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	SetConfigDir(dir)
	t.Cleanup(func() { SetConfigDir("") })
	return dir
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	useTempConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.URL != defaultServerURL {
		t.Errorf("server url = %q, want %q", cfg.Server.URL, defaultServerURL)
	}
	if cfg.Server.CompanyID != "" {
		t.Errorf("company id = %q, want empty", cfg.Server.CompanyID)
	}
	if !cfg.MarkdownEnabled() {
		t.Error("markdown should default to enabled")
	}
	lc := cfg.BuildLoggerConfig()
	if !lc.Enabled || lc.Level != "info" {
		t.Errorf("unexpected logger defaults: %+v", lc)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := useTempConfigDir(t)

	cfg := DefaultConfig()
	cfg.Server.URL = "http://kb.internal:9001"
	cfg.Server.CompanyID = "acme"
	if err := cfg.Save(); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, configFileName)); err != nil {
		t.Fatalf("config file missing: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Server.URL != "http://kb.internal:9001" {
		t.Errorf("server url = %q", loaded.Server.URL)
	}
	if loaded.Server.CompanyID != "acme" {
		t.Errorf("company id = %q, want acme", loaded.Server.CompanyID)
	}
}

func TestPartialFileGetsDefaults(t *testing.T) {
	dir := useTempConfigDir(t)

	data := []byte("server:\n  url: http://kb.internal:9001\n")
	if err := os.WriteFile(filepath.Join(dir, configFileName), data, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.URL != "http://kb.internal:9001" {
		t.Errorf("server url = %q", cfg.Server.URL)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging level = %q, want defaulted info", cfg.Logging.Level)
	}
}

func TestEnvOverrides(t *testing.T) {
	useTempConfigDir(t)
	t.Setenv(EnvServerURL, "http://override:8080")
	t.Setenv(EnvCompanyID, "globex")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.URL != "http://override:8080" {
		t.Errorf("server url = %q, want env override", cfg.Server.URL)
	}
	if cfg.Server.CompanyID != "globex" {
		t.Errorf("company id = %q, want globex", cfg.Server.CompanyID)
	}
}
