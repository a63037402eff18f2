package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultCoinsConfig().Validate(); err != nil {
		t.Fatalf("DefaultCoinsConfig().Validate() = %v", err)
	}
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := parseCoins(GetDefaultYAML())
	if err != nil {
		t.Fatalf("parseCoins(embedded) failed: %v", err)
	}
	if cfg != DefaultCoinsConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultCoinsConfig())
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CoinsConfig)
	}{
		{"zero width", func(c *CoinsConfig) { c.Board.Width = 0 }},
		{"height above max", func(c *CoinsConfig) { c.Board.Height = c.Board.MaxHeight + 1 }},
		{"negative coins", func(c *CoinsConfig) { c.Coins.Count = -1 }},
		{"unknown spawn", func(c *CoinsConfig) { c.Avatar.Spawn = "corner" }},
		{"unknown bounds", func(c *CoinsConfig) { c.Movement.Bounds = "wrap" }},
		{"sprite fills cell", func(c *CoinsConfig) { c.Movement.SpriteSize = c.Movement.CellSize }},
		{"negative delay", func(c *CoinsConfig) { c.Win.DelayMS = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCoinsConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadCoinsCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coins.yaml")
	data := []byte("board:\n  width: 7\n  height: 4\nwin:\n  delay_ms: 250\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadCoins(path)
	if err != nil {
		t.Fatalf("LoadCoins() failed: %v", err)
	}
	if cfg.Board.Width != 7 || cfg.Board.Height != 4 {
		t.Errorf("board = %dx%d, expected 7x4", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Win.Delay() != 250*time.Millisecond {
		t.Errorf("Delay() = %v, expected 250ms", cfg.Win.Delay())
	}
	// Unset keys keep defaults
	if cfg.Movement.CellSize != 100 {
		t.Errorf("CellSize = %d, expected default 100", cfg.Movement.CellSize)
	}
}

func TestLoadCoinsErrors(t *testing.T) {
	if _, err := LoadCoins(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadCoins() with missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("avatar:\n  spawn: nowhere\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadCoins(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadCoins() = %v, expected ErrInvalidConfig", err)
	}
}

func TestCoinCount(t *testing.T) {
	cfg := DefaultCoinsConfig()
	if got := cfg.CoinCount(6); got != 6 {
		t.Errorf("CoinCount(6) = %d, expected board width 6", got)
	}
	cfg.Coins.Count = 3
	if got := cfg.CoinCount(6); got != 3 {
		t.Errorf("CoinCount(6) = %d, expected configured 3", got)
	}
}

func TestPresetByName(t *testing.T) {
	p, ok := PresetByName("classic")
	if !ok || p.Width != 5 || p.Height != 5 {
		t.Errorf("PresetByName(classic) = %+v, %v", p, ok)
	}
	if _, ok := PresetByName("huge"); ok {
		t.Error("PresetByName(huge) should not exist")
	}
}
