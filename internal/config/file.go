// internal/config/file.go
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate when a tuning value cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// TrackCosts holds the base cost of the speed and range upgrade of one tower category.
type TrackCosts struct {
	Speed int `yaml:"speed"`
	Range int `yaml:"range"`
}

// EconomyConfig tunes the upgrade shop.
type EconomyConfig struct {
	StartingGold  int        `yaml:"starting_gold"`
	MaxLevel      int        `yaml:"max_level"`
	CostIncrement int        `yaml:"cost_increment"`
	KillReward    int        `yaml:"kill_reward"`
	Basic         TrackCosts `yaml:"basic"`
	Sniper        TrackCosts `yaml:"sniper"`
	Radius        TrackCosts `yaml:"radius"`
	// BroadcastToOwnCategory routes Basic and Sniper upgrades to their own towers
	// instead of Radius towers.
	BroadcastToOwnCategory bool `yaml:"broadcast_to_own_category"`
}

// TowerConfig holds the radial tower defaults.
type TowerConfig struct {
	FireInterval   float64 `yaml:"fire_interval"`
	BulletCount    int     `yaml:"bullet_count"`
	BulletSpeed    float64 `yaml:"bullet_speed"`
	BulletLifetime float64 `yaml:"bullet_lifetime"`
	KillDistance   float64 `yaml:"kill_distance"`
	Range          float64 `yaml:"range"`
}

// BoundsConfig is the axis-aligned placement area in world units.
type BoundsConfig struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// WaveConfig controls the hostile spawner.
type WaveConfig struct {
	EnemySpeed    float64 `yaml:"enemy_speed"`
	SpawnInterval float64 `yaml:"spawn_interval"`
	Count         int     `yaml:"count"`
}

// Config is the runtime tuning of a session.
type Config struct {
	Economy   EconomyConfig `yaml:"economy"`
	Tower     TowerConfig   `yaml:"tower"`
	Placement BoundsConfig  `yaml:"placement"`
	Wave      WaveConfig    `yaml:"wave"`
	StartMenu bool          `yaml:"start_menu"`
}

// Default returns the built-in tuning.
func Default() Config {
	return Config{
		Economy: EconomyConfig{
			StartingGold:  StartingGold,
			MaxLevel:      MaxLevel,
			CostIncrement: CostIncrement,
			KillReward:    KillReward,
			Basic:         TrackCosts{Speed: BasicSpeedCost, Range: BasicRangeCost},
			Sniper:        TrackCosts{Speed: SniperSpeedCost, Range: SniperRangeCost},
			Radius:        TrackCosts{Speed: RadiusSpeedCost, Range: RadiusBulletCountCost},
		},
		Tower: TowerConfig{
			FireInterval:   FireInterval,
			BulletCount:    BulletCount,
			BulletSpeed:    BulletSpeed,
			BulletLifetime: BulletLifetime,
			KillDistance:   BulletKillDistance,
			Range:          TowerRange,
		},
		Placement: BoundsConfig{
			MinX: PlacementMinX,
			MaxX: PlacementMaxX,
			MinY: PlacementMinY,
			MaxY: PlacementMaxY,
		},
		Wave: WaveConfig{
			EnemySpeed:    EnemySpeed,
			SpawnInterval: EnemySpawnInterval,
			Count:         EnemiesPerWave,
		},
		StartMenu: true,
	}
}

// Load reads a YAML file on top of Default. Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	file, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}

	fmt.Printf("Loaded config from %s\n", path)
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c Config) Validate() error {
	e := c.Economy
	switch {
	case e.MaxLevel < 1:
		return fmt.Errorf("%w: max_level must be at least 1, got %d", ErrInvalidConfig, e.MaxLevel)
	case e.CostIncrement < 0:
		return fmt.Errorf("%w: cost_increment must not be negative, got %d", ErrInvalidConfig, e.CostIncrement)
	case e.StartingGold < 0:
		return fmt.Errorf("%w: starting_gold must not be negative, got %d", ErrInvalidConfig, e.StartingGold)
	}

	for name, costs := range map[string]TrackCosts{"basic": e.Basic, "sniper": e.Sniper, "radius": e.Radius} {
		if costs.Speed < 0 || costs.Range < 0 {
			return fmt.Errorf("%w: %s costs must not be negative", ErrInvalidConfig, name)
		}
	}

	if c.Tower.FireInterval <= 0 {
		return fmt.Errorf("%w: fire_interval must be positive, got %v", ErrInvalidConfig, c.Tower.FireInterval)
	}
	if c.Tower.BulletCount < 1 {
		return fmt.Errorf("%w: bullet_count must be at least 1, got %d", ErrInvalidConfig, c.Tower.BulletCount)
	}

	if c.Wave.Count < 0 {
		return fmt.Errorf("%w: wave count must not be negative, got %d", ErrInvalidConfig, c.Wave.Count)
	}
	if c.Wave.SpawnInterval <= 0 {
		return fmt.Errorf("%w: spawn_interval must be positive, got %v", ErrInvalidConfig, c.Wave.SpawnInterval)
	}

	p := c.Placement
	if p.MinX > p.MaxX || p.MinY > p.MaxY {
		return fmt.Errorf("%w: placement bounds are inverted", ErrInvalidConfig)
	}
	return nil
}
