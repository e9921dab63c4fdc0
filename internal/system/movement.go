// internal/system/movement.go
package system

import (
	"radius-defense/internal/entity"
	"radius-defense/internal/event"
)

// MovementSystem moves hostiles by their velocity and removes those that leave the field.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	escapeX         float64
}

// NewMovementSystem creates the system; hostiles past escapeX count as escaped.
func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, escapeX float64) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher, escapeX: escapeX}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}
		pos.X += vel.X * deltaTime
		pos.Y += vel.Y * deltaTime

		if pos.X > s.escapeX {
			s.ecs.RemoveEntity(id)
			if s.eventDispatcher != nil {
				s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyEscaped, Data: id})
			}
		}
	}
}
