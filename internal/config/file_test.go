package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should be valid, got %v", err)
	}
	if cfg.Economy.Basic.Speed != 20 {
		t.Errorf("Expected basic speed cost 20, got %d", cfg.Economy.Basic.Speed)
	}
	if cfg.Placement.MaxX != 10 || cfg.Placement.MinY != -5 {
		t.Errorf("Unexpected placement bounds %+v", cfg.Placement)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
economy:
  starting_gold: 25
  basic:
    speed: 40
tower:
  bullet_count: 6
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Economy.StartingGold != 25 {
		t.Errorf("Expected starting gold 25, got %d", cfg.Economy.StartingGold)
	}
	if cfg.Economy.Basic.Speed != 40 {
		t.Errorf("Expected basic speed cost 40, got %d", cfg.Economy.Basic.Speed)
	}
	// Keys not present in the file keep their defaults.
	if cfg.Economy.Basic.Range != BasicRangeCost {
		t.Errorf("Expected basic range cost %d, got %d", BasicRangeCost, cfg.Economy.Basic.Range)
	}
	if cfg.Tower.BulletCount != 6 {
		t.Errorf("Expected bullet count 6, got %d", cfg.Tower.BulletCount)
	}
	if cfg.Tower.FireInterval != FireInterval {
		t.Errorf("Expected fire interval %v, got %v", FireInterval, cfg.Tower.FireInterval)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if cfg.Economy.MaxLevel != MaxLevel {
		t.Errorf("Expected defaults on error, got max level %d", cfg.Economy.MaxLevel)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("economy:\n  max_level: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative increment", func(c *Config) { c.Economy.CostIncrement = -1 }},
		{"negative cost", func(c *Config) { c.Economy.Sniper.Range = -3 }},
		{"zero interval", func(c *Config) { c.Tower.FireInterval = 0 }},
		{"no bullets", func(c *Config) { c.Tower.BulletCount = 0 }},
		{"inverted bounds", func(c *Config) { c.Placement.MinX, c.Placement.MaxX = 5, -5 }},
		{"negative wave count", func(c *Config) { c.Wave.Count = -1 }},
		{"zero spawn interval", func(c *Config) { c.Wave.SpawnInterval = 0 }},
		{"negative spawn interval", func(c *Config) { c.Wave.SpawnInterval = -1.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
