package system

import (
	"math"
	"testing"

	"radius-defense/internal/component"
	"radius-defense/internal/entity"
	"radius-defense/internal/types"
)

func addTower(ecs *entity.ECS, x, y float64, bullets int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Towers[id] = &component.Tower{Enabled: true}
	ecs.Combats[id] = &component.Combat{
		FireInterval:   2,
		BulletCount:    bullets,
		BulletSpeed:    2,
		BulletLifetime: 3,
		KillDistance:   0.8,
		Range:          5,
	}
	return id
}

func addEnemy(ecs *entity.ECS, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Enemies[id] = &component.Enemy{Tag: component.EnemyTag}
	return id
}

func TestFireVolleyIsFan(t *testing.T) {
	ecs := entity.NewECS()
	tower := addTower(ecs, 1, 1, 6)
	s := NewFireSystem(ecs)

	ids := s.Fire(tower)
	if len(ids) != 6 {
		t.Fatalf("Expected 6 projectiles, got %d", len(ids))
	}
	step := 2 * math.Pi / 6
	for i, id := range ids {
		p := ecs.Projectiles[id]
		if mag := math.Hypot(p.DirX, p.DirY); math.Abs(mag-1) > 1e-9 {
			t.Errorf("Projectile %d magnitude %v", i, mag)
		}
		want := float64(i) * step
		if math.Abs(p.DirX-math.Cos(want)) > 1e-9 || math.Abs(p.DirY-math.Sin(want)) > 1e-9 {
			t.Errorf("Projectile %d direction (%v, %v), want angle %v", i, p.DirX, p.DirY, want)
		}
		pos := ecs.Positions[id]
		if pos.X != 1 || pos.Y != 1 {
			t.Errorf("Projectile %d should spawn at the tower, got %+v", i, pos)
		}
		if p.Lifetime != 3 || p.Speed != 2 {
			t.Errorf("Projectile %d has wrong stats %+v", i, p)
		}
	}
}

func TestFindNearestEnemy(t *testing.T) {
	ecs := entity.NewECS()
	s := NewFireSystem(ecs)
	if got := s.FindNearestEnemy(0, 0); got != 0 {
		t.Errorf("Expected no target without enemies, got %d", got)
	}

	addEnemy(ecs, 3, 0) // 9
	near := addEnemy(ecs, 0, -2)
	addEnemy(ecs, 0, 4) // 16

	if got := s.FindNearestEnemy(0, 0); got != near {
		t.Errorf("FindNearestEnemy = %d, want %d", got, near)
	}
}

func TestFindNearestEnemyTieGoesToFirst(t *testing.T) {
	ecs := entity.NewECS()
	s := NewFireSystem(ecs)
	first := addEnemy(ecs, 2, 0)
	addEnemy(ecs, -2, 0)
	if got := s.FindNearestEnemy(0, 0); got != first {
		t.Errorf("Tie should go to %d, got %d", first, got)
	}
}

func TestTargetingIgnoresRange(t *testing.T) {
	ecs := entity.NewECS()
	tower := addTower(ecs, 0, 0, 1)
	far := addEnemy(ecs, 100, 100)
	ids := NewFireSystem(ecs).Fire(tower)
	if got := ecs.Projectiles[ids[0]].TargetID; got != far {
		t.Errorf("Expected out-of-range enemy %d as target, got %d", far, got)
	}
}

func TestEveryProjectileGetsTarget(t *testing.T) {
	ecs := entity.NewECS()
	tower := addTower(ecs, 0, 0, 4)
	enemy := addEnemy(ecs, 1, 1)
	for _, id := range NewFireSystem(ecs).Fire(tower) {
		if ecs.Projectiles[id].TargetID != enemy {
			t.Errorf("Projectile %d has target %d, want %d", id, ecs.Projectiles[id].TargetID, enemy)
		}
	}
}

func TestFireLoopTiming(t *testing.T) {
	ecs := entity.NewECS()
	addTower(ecs, 0, 0, 4)
	s := NewFireSystem(ecs)

	s.Update(0.25)
	if len(ecs.Projectiles) != 4 {
		t.Fatalf("Tower should fire on its first active tick, got %d projectiles", len(ecs.Projectiles))
	}
	s.Update(1.0)
	s.Update(0.75)
	if len(ecs.Projectiles) != 4 {
		t.Fatalf("Tower fired before its interval elapsed: %d projectiles", len(ecs.Projectiles))
	}
	// 2s have passed since the first volley.
	s.Update(0.25)
	if len(ecs.Projectiles) != 8 {
		t.Errorf("Expected second volley once the interval elapsed, got %d projectiles", len(ecs.Projectiles))
	}
}

func TestFireLoopPeriod(t *testing.T) {
	tests := []struct {
		dt    float64
		ticks int
		want  int
	}{
		{1.0, 12, 6},
		{0.5, 24, 6},
		{0.25, 48, 6},
		{0.75, 16, 6}, // overshoot carries into the next cycle
	}
	for _, tt := range tests {
		ecs := entity.NewECS()
		tower := addTower(ecs, 0, 0, 1)
		s := NewFireSystem(ecs)
		for i := 0; i < tt.ticks; i++ {
			s.Update(tt.dt)
		}
		if got := len(ecs.Projectiles); got != tt.want {
			t.Errorf("dt=%v over %d ticks: %d volleys, want %d (interval %v)",
				tt.dt, tt.ticks, got, tt.want, ecs.Combats[tower].FireInterval)
		}
	}
}

func TestLongTickFiresOneVolley(t *testing.T) {
	ecs := entity.NewECS()
	tower := addTower(ecs, 0, 0, 4)
	s := NewFireSystem(ecs)

	s.Update(0.1)
	s.Update(10)
	if len(ecs.Projectiles) != 8 {
		t.Fatalf("A long tick should fire a single volley, got %d projectiles", len(ecs.Projectiles))
	}
	if cd := ecs.Combats[tower].FireCooldown; cd != ecs.Combats[tower].FireInterval {
		t.Errorf("Cooldown after a long tick = %v, want a full interval", cd)
	}
}

func TestDisabledTowerHoldsFire(t *testing.T) {
	ecs := entity.NewECS()
	tower := addTower(ecs, 0, 0, 4)
	ecs.Combats[tower].BulletSpeed = 7
	ecs.Towers[tower].Enabled = false
	s := NewFireSystem(ecs)

	for i := 0; i < 10; i++ {
		s.Update(1)
	}
	if len(ecs.Projectiles) != 0 {
		t.Fatalf("Disabled tower fired %d projectiles", len(ecs.Projectiles))
	}
	if ecs.Combats[tower].BulletSpeed != 7 || ecs.Combats[tower].BulletCount != 4 {
		t.Error("Disabling must keep upgraded stats")
	}

	ecs.Towers[tower].Enabled = true
	s.Update(0.1)
	if len(ecs.Projectiles) != 4 {
		t.Errorf("Re-enabled tower should fire, got %d projectiles", len(ecs.Projectiles))
	}
}

func TestPreviewTowerHoldsFire(t *testing.T) {
	ecs := entity.NewECS()
	tower := addTower(ecs, 0, 0, 4)
	ecs.Towers[tower].Preview = true
	NewFireSystem(ecs).Update(1)
	if len(ecs.Projectiles) != 0 {
		t.Errorf("Preview tower fired %d projectiles", len(ecs.Projectiles))
	}
}

func TestFireWithoutPosition(t *testing.T) {
	ecs := entity.NewECS()
	tower := addTower(ecs, 0, 0, 4)
	delete(ecs.Positions, tower)
	if ids := NewFireSystem(ecs).Fire(tower); ids != nil {
		t.Errorf("Expected no projectiles, got %v", ids)
	}
}
