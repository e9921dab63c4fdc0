// internal/defs/towers.go
package defs

import (
	"image/color"

	"radius-defense/internal/config"
)

// TowerCategory selects a tower kind and the shop tab that upgrades it.
type TowerCategory int

const (
	CategoryBasic TowerCategory = iota
	CategorySniper
	CategoryRadius
)

// Categories lists every category in shop order.
var Categories = []TowerCategory{CategoryBasic, CategorySniper, CategoryRadius}

func (c TowerCategory) String() string {
	switch c {
	case CategoryBasic:
		return "Basic"
	case CategorySniper:
		return "Sniper"
	case CategoryRadius:
		return "Radius"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the known categories.
func (c TowerCategory) Valid() bool {
	return c >= CategoryBasic && c <= CategoryRadius
}

// CombatStats are the base values a freshly created tower starts with.
type CombatStats struct {
	FireInterval   float64
	BulletCount    int
	BulletSpeed    float64
	BulletLifetime float64
	KillDistance   float64
	Range          float64
	Homing         bool
}

// TowerDefinition holds all the static data for a tower category.
type TowerDefinition struct {
	Category TowerCategory
	Name     string
	Combat   CombatStats
	Color    color.RGBA
}

// NewTowerLibrary builds the definitions from the radial tower tuning.
// Basic and Sniper towers fire a single homing bullet; the Radius tower fires the fan.
func NewTowerLibrary(tc config.TowerConfig) map[TowerCategory]TowerDefinition {
	return map[TowerCategory]TowerDefinition{
		CategoryBasic: {
			Category: CategoryBasic,
			Name:     "Basic Tower",
			Combat: CombatStats{
				FireInterval:   1.0,
				BulletCount:    1,
				BulletSpeed:    4.0,
				BulletLifetime: tc.BulletLifetime,
				KillDistance:   tc.KillDistance,
				Range:          3.0,
				Homing:         true,
			},
			Color: config.TowerColors[CategoryBasic],
		},
		CategorySniper: {
			Category: CategorySniper,
			Name:     "Sniper Tower",
			Combat: CombatStats{
				FireInterval:   2.5,
				BulletCount:    1,
				BulletSpeed:    8.0,
				BulletLifetime: tc.BulletLifetime,
				KillDistance:   tc.KillDistance,
				Range:          8.0,
				Homing:         true,
			},
			Color: config.TowerColors[CategorySniper],
		},
		CategoryRadius: {
			Category: CategoryRadius,
			Name:     "Radius Tower",
			Combat: CombatStats{
				FireInterval:   tc.FireInterval,
				BulletCount:    tc.BulletCount,
				BulletSpeed:    tc.BulletSpeed,
				BulletLifetime: tc.BulletLifetime,
				KillDistance:   tc.KillDistance,
				Range:          tc.Range,
			},
			Color: config.TowerColors[CategoryRadius],
		},
	}
}
