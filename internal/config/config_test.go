package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.HTTPAddr)
	}
	if cfg.Defaults.Width != 10 || cfg.Defaults.Rounds != 50 {
		t.Fatalf("unexpected game defaults: %+v", cfg.Defaults)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("BOARD_WIDTH", "5")
	t.Setenv("ROUNDS", "12")
	t.Setenv("BUY_IN", "3")

	cfg := Load()
	if cfg.HTTPAddr != ":9999" {
		t.Fatalf("HTTP_ADDR override ignored: %q", cfg.HTTPAddr)
	}
	if cfg.Defaults.Width != 5 || cfg.Defaults.Rounds != 12 || cfg.Defaults.BuyIn != 3 {
		t.Fatalf("env overrides ignored: %+v", cfg.Defaults)
	}
}

func TestLoadYAMLFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	raw := []byte("http_addr: \":7000\"\ndefaults:\n  width: 8\n  height: 6\n  rounds: 20\n")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("ROUNDS", "30")

	cfg := Load()
	if cfg.HTTPAddr != ":7000" {
		t.Fatalf("file addr ignored: %q", cfg.HTTPAddr)
	}
	if cfg.Defaults.Width != 8 || cfg.Defaults.Height != 6 {
		t.Fatalf("file defaults ignored: %+v", cfg.Defaults)
	}
	if cfg.Defaults.Rounds != 30 {
		t.Fatalf("env must override the file, got rounds %d", cfg.Defaults.Rounds)
	}
}

func TestLoadBadEnvValueFallsBack(t *testing.T) {
	t.Setenv("BOARD_WIDTH", "lots")
	cfg := Load()
	if cfg.Defaults.Width != 10 {
		t.Fatalf("bad int should fall back to default, got %d", cfg.Defaults.Width)
	}
}
