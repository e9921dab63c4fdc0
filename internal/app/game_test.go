package app

import (
	"testing"

	"radius-defense/internal/config"
	"radius-defense/internal/defs"
	"radius-defense/internal/economy"
	"radius-defense/internal/utils"
)

func TestNewGameDefaults(t *testing.T) {
	g := NewGame(config.Default(), 1)
	if g.Shop == nil || g.Bounty == nil {
		t.Fatal("Shop and bounty should be available with the default config")
	}
	if g.Gold() != config.StartingGold {
		t.Errorf("Expected %d gold, got %d", config.StartingGold, g.Gold())
	}
	if g.Wave != 1 {
		t.Errorf("Expected wave 1, got %d", g.Wave)
	}
}

func TestNewGameWithoutShop(t *testing.T) {
	cfg := config.Default()
	cfg.Economy.MaxLevel = 0
	g := NewGame(cfg, 1)
	if g.Shop != nil {
		t.Fatal("Shop should be disabled with an invalid max level")
	}
	if _, ok := g.PlaceTower(defs.CategoryRadius, utils.Vec2{}); !ok {
		t.Error("Placement must keep working without a shop")
	}
	g.Update(0.05)
}

func TestPlaceAndRemoveTower(t *testing.T) {
	g := NewGame(config.Default(), 1)
	id, ok := g.PlaceTower(defs.CategoryRadius, utils.Vec2{X: 0, Y: 0})
	if !ok {
		t.Fatal("Tower at the origin should be placed")
	}
	if _, ok := g.PlaceTower(defs.CategoryRadius, utils.Vec2{X: 11, Y: 0}); ok {
		t.Error("Tower outside the field should be rejected")
	}
	if got := g.PlacedTowers()[defs.CategoryRadius]; got != 1 {
		t.Errorf("Expected 1 radius tower, got %d", got)
	}
	if found, ok := g.TowerAt(utils.Vec2{X: 0.1, Y: -0.1}); !ok || found != id {
		t.Errorf("TowerAt = (%d, %v), want (%d, true)", found, ok, id)
	}
	if _, ok := g.TowerAt(utils.Vec2{X: 3, Y: 3}); ok {
		t.Error("No tower expected at (3, 3)")
	}
	if !g.RemoveTower(id) || g.RemoveTower(id) {
		t.Error("RemoveTower should succeed exactly once")
	}
}

func TestUpgradeReachesPlacedTower(t *testing.T) {
	g := NewGame(config.Default(), 1)
	id, _ := g.PlaceTower(defs.CategoryRadius, utils.Vec2{})
	if !g.Shop.PurchaseFor(defs.CategoryRadius, economy.StatRange) {
		t.Fatal("Purchase should succeed with starting gold")
	}
	if got := g.ECS.Combats[id].BulletCount; got != config.BulletCount+1 {
		t.Errorf("Expected %d bullets, got %d", config.BulletCount+1, got)
	}
	if g.Gold() != config.StartingGold-config.RadiusBulletCountCost {
		t.Errorf("Unexpected balance %d", g.Gold())
	}
}

func TestWaveLoopPaysBounty(t *testing.T) {
	g := NewGame(config.Default(), 1)
	if _, ok := g.PlaceTower(defs.CategorySniper, utils.Vec2{X: -9, Y: 0}); !ok {
		t.Fatal("Sniper should be placed")
	}
	g.StartWave()
	for i := 0; i < 400; i++ {
		g.Update(0.05)
	}
	if g.Bounty.Earned() == 0 {
		t.Fatal("Sniper should have destroyed at least one hostile")
	}
	if g.Gold() != config.StartingGold+g.Bounty.Earned() {
		t.Errorf("Balance %d does not match bounty %d", g.Gold(), g.Bounty.Earned())
	}
	if g.GetGameTime() <= 0 {
		t.Error("Game time should advance")
	}
}

func TestWaveEndStartsNext(t *testing.T) {
	cfg := config.Default()
	cfg.Wave.Count = 1
	g := NewGame(cfg, 1)
	g.StartWave()
	g.Update(0.01)
	if len(g.ECS.Enemies) != 1 {
		t.Fatalf("Expected 1 hostile, got %d", len(g.ECS.Enemies))
	}
	g.ClearEnemies()
	g.Update(0.01)
	if g.ECS.Wave == nil || g.ECS.Wave.Number != 2 {
		t.Fatalf("Wave 2 should start once wave 1 is cleared, got %+v", g.ECS.Wave)
	}
	if g.Wave != 3 {
		t.Errorf("Next wave counter = %d, want 3", g.Wave)
	}
}

func TestEscapedHostilesAreCounted(t *testing.T) {
	cfg := config.Default()
	cfg.Wave.Count = 1
	cfg.Wave.EnemySpeed = 1000
	g := NewGame(cfg, 1)
	g.StartWave()
	g.Update(0.01)
	g.Update(0.05)
	if g.Escaped() != 1 {
		t.Errorf("Expected 1 escaped hostile, got %d", g.Escaped())
	}
}

func TestPauseAndSpeed(t *testing.T) {
	g := NewGame(config.Default(), 1)
	g.HandlePauseClick()
	g.Update(1)
	if g.GetGameTime() != 0 || !g.IsPaused() {
		t.Error("Paused game must not advance")
	}
	g.HandlePauseClick()
	g.HandleSpeedClick()
	if g.SpeedMultiplier != 2 {
		t.Errorf("Expected 2x speed, got %v", g.SpeedMultiplier)
	}
	g.Update(0.5)
	if g.GetGameTime() != 1 {
		t.Errorf("Expected game time 1, got %v", g.GetGameTime())
	}
	g.HandleSpeedClick()
	if g.SpeedMultiplier != 1 {
		t.Errorf("Expected 1x speed, got %v", g.SpeedMultiplier)
	}
}
