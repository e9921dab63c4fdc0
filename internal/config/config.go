// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// PixelsPerUnit maps one world unit to screen pixels; the world origin is the screen centre.
	PixelsPerUnit = 50.0

	ClickCooldown = 300 // ms

	MaxLevel      = 5
	CostIncrement = 5
	StartingGold  = 100
	KillReward    = 5

	BasicSpeedCost        = 20
	BasicRangeCost        = 25
	SniperSpeedCost       = 10
	SniperRangeCost       = 15
	RadiusSpeedCost       = 30
	RadiusBulletCountCost = 35

	SpeedUpgradeDelta       = 1.0
	BasicRangeUpgradeDelta  = 0.3
	SniperRangeUpgradeDelta = 0.5
	BulletCountUpgradeDelta = 1

	FireInterval       = 2.0 // seconds
	BulletCount        = 4
	BulletSpeed        = 2.0 // world units per second
	BulletLifetime     = 3.0 // seconds
	BulletKillDistance = 0.8
	TowerRange         = 5.0

	PlacementMinX = -10.0
	PlacementMaxX = 10.0
	PlacementMinY = -5.0
	PlacementMaxY = 5.0

	EnemySpeed         = 1.0 // world units per second
	EnemySpawnInterval = 1.5 // seconds
	EnemiesPerWave     = 8

	TowerRadius      = 14.0 // pixels
	EnemyRadius      = 10.0
	ProjectileRadius = 4.0
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	FieldColor       = color.RGBA{40, 50, 60, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	EnemyColor       = color.RGBA{0, 0, 0, 255}
	ProjectileColor  = color.RGBA{255, 215, 0, 255}
	ButtonColor      = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor = color.RGBA{100, 160, 210, 230}
	ButtonDisabled   = color.RGBA{110, 110, 110, 200}
	PreviewAlpha     = uint8(120)
	TowerColors      = []color.RGBA{
		{255, 50, 50, 255},  // Basic
		{50, 100, 255, 255}, // Sniper
		{180, 50, 230, 255}, // Radius
	}
)
