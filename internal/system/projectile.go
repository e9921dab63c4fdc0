// internal/system/projectile.go
package system

import (
	"radius-defense/internal/component"
	"radius-defense/internal/entity"
	"radius-defense/internal/event"
	"radius-defense/internal/types"
	"radius-defense/internal/utils"
)

// ProjectileSystem moves projectiles, expires them and resolves hits on their target.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		proj, ok := s.ecs.Projectiles[id]
		if !ok {
			continue
		}
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.ecs.RemoveEntity(id)
			continue
		}

		proj.Age += deltaTime
		if proj.Expired() {
			s.ecs.RemoveEntity(id)
			continue
		}

		targetPos := s.targetPosition(proj)
		if targetPos != nil && proj.Homing {
			dir := utils.Vec2{X: targetPos.X - pos.X, Y: targetPos.Y - pos.Y}.Normalize()
			if dir.Len() > 0 {
				proj.DirX, proj.DirY = dir.X, dir.Y
			}
		}

		pos.X += proj.DirX * proj.Speed * deltaTime
		pos.Y += proj.DirY * proj.Speed * deltaTime

		if targetPos == nil {
			continue
		}
		killDist := proj.KillDistance
		if utils.DistanceSquared(pos.X, pos.Y, targetPos.X, targetPos.Y) <= killDist*killDist {
			s.hitTarget(id, proj.TargetID)
		}
	}
}

// targetPosition returns nil when the projectile has no target or the target is gone.
func (s *ProjectileSystem) targetPosition(proj *component.Projectile) *component.Position {
	if proj.TargetID == 0 {
		return nil
	}
	if _, isEnemy := s.ecs.Enemies[proj.TargetID]; !isEnemy {
		return nil
	}
	return s.ecs.Positions[proj.TargetID]
}

func (s *ProjectileSystem) hitTarget(projectileID, targetID types.EntityID) {
	s.ecs.RemoveEntity(projectileID)
	s.ecs.RemoveEntity(targetID)
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: targetID})
	}
}

// ClearProjectiles removes every projectile in flight.
func (s *ProjectileSystem) ClearProjectiles() {
	for id := range s.ecs.Projectiles {
		s.ecs.RemoveEntity(id)
	}
}
