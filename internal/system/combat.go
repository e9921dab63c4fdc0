package system

import (
	"log"

	"radius-defense/internal/component"
	"radius-defense/internal/config"
	"radius-defense/internal/entity"
	"radius-defense/internal/types"
	"radius-defense/internal/utils"
)

// FireSystem runs the periodic fire loop of every enabled tower.
type FireSystem struct {
	ecs *entity.ECS
}

func NewFireSystem(ecs *entity.ECS) *FireSystem {
	return &FireSystem{ecs: ecs}
}

// Update advances each tower's cooldown and fires a volley on the tick it runs out.
// Overshoot carries into the next cycle; a single tick fires at most one volley.
// Disabled and preview towers keep their timer and stats untouched.
func (s *FireSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Combats) {
		tower, hasTower := s.ecs.Towers[id]
		if !hasTower || !tower.Enabled || tower.Preview {
			continue
		}
		combat := s.ecs.Combats[id]

		if combat.FireCooldown > 0 {
			combat.FireCooldown -= deltaTime
			if combat.FireCooldown > 0 {
				continue
			}
		}

		s.Fire(id)
		combat.FireCooldown += combat.FireInterval
		if combat.FireCooldown <= 0 {
			combat.FireCooldown = combat.FireInterval
		}
	}
}

// Fire spawns one volley from tower id: BulletCount projectiles in a fan, each paired
// with the nearest hostile. Returns the projectile IDs.
func (s *FireSystem) Fire(id types.EntityID) []types.EntityID {
	combat, hasCombat := s.ecs.Combats[id]
	pos, hasPos := s.ecs.Positions[id]
	if !hasCombat || !hasPos {
		log.Printf("FireSystem: tower %d has no combat or position, skipping", id)
		return nil
	}

	directions := utils.FanDirections(combat.BulletCount)
	spawned := make([]types.EntityID, 0, len(directions))
	for _, dir := range directions {
		target := s.FindNearestEnemy(pos.X, pos.Y)
		spawned = append(spawned, s.createProjectile(pos, dir, combat, target))
	}
	return spawned
}

// FindNearestEnemy returns the hostile closest to (x, y) by squared distance, or 0 if none exist.
// Range is not consulted: acquisition is global.
func (s *FireSystem) FindNearestEnemy(x, y float64) types.EntityID {
	ids := make([]types.EntityID, 0, len(s.ecs.Enemies))
	points := make([]utils.Vec2, 0, len(s.ecs.Enemies))
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		enemyPos, ok := s.ecs.Positions[id]
		if !ok || s.ecs.Enemies[id].Tag != component.EnemyTag {
			continue
		}
		ids = append(ids, id)
		points = append(points, utils.Vec2{X: enemyPos.X, Y: enemyPos.Y})
	}

	if i := utils.NearestIndex(utils.Vec2{X: x, Y: y}, points); i >= 0 {
		return ids[i]
	}
	return 0
}

func (s *FireSystem) createProjectile(from *component.Position, dir utils.Vec2, combat *component.Combat, target types.EntityID) types.EntityID {
	projID := s.ecs.NewEntity()
	s.ecs.Positions[projID] = &component.Position{X: from.X, Y: from.Y}
	s.ecs.Projectiles[projID] = &component.Projectile{
		DirX:         dir.X,
		DirY:         dir.Y,
		Speed:        combat.BulletSpeed,
		TargetID:     target,
		Homing:       combat.Homing,
		Lifetime:     combat.BulletLifetime,
		KillDistance: combat.KillDistance,
	}
	s.ecs.Renderables[projID] = &component.Renderable{
		Color:  config.ProjectileColor,
		Radius: config.ProjectileRadius,
	}
	return projID
}
