// internal/entity/ecs.go
package entity

import (
	"sort"

	"radius-defense/internal/component"
	"radius-defense/internal/defs"
	"radius-defense/internal/types"
)

type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Renderables map[types.EntityID]*component.Renderable
	Towers      map[types.EntityID]*component.Tower
	Combats     map[types.EntityID]*component.Combat
	Projectiles map[types.EntityID]*component.Projectile
	Enemies     map[types.EntityID]*component.Enemy
	Wave        *component.Wave
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Towers:      make(map[types.EntityID]*component.Tower),
		Combats:     make(map[types.EntityID]*component.Combat),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Enemies:     make(map[types.EntityID]*component.Enemy),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity drops every component of id.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Renderables, id)
	delete(ecs.Towers, id)
	delete(ecs.Combats, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Enemies, id)
}

// Exists reports whether id still has a position.
func (ecs *ECS) Exists(id types.EntityID) bool {
	_, ok := ecs.Positions[id]
	return ok
}

// LiveCombats returns the combat components of placed towers of the given category,
// in creation order. Previews are excluded: they get upgrades applied when placed.
func (ecs *ECS) LiveCombats(category defs.TowerCategory) []*component.Combat {
	var result []*component.Combat
	for _, id := range SortedIDs(ecs.Towers) {
		tower := ecs.Towers[id]
		if tower.Preview || tower.Category != category {
			continue
		}
		if combat, ok := ecs.Combats[id]; ok {
			result = append(result, combat)
		}
	}
	return result
}

// CountTowers returns the number of placed towers per category.
func (ecs *ECS) CountTowers() map[defs.TowerCategory]int {
	counts := make(map[defs.TowerCategory]int)
	for _, tower := range ecs.Towers {
		if !tower.Preview {
			counts[tower.Category]++
		}
	}
	return counts
}

// SortedIDs returns the keys of a component map in ascending order, so systems
// iterate in a stable, creation-ordered way.
func SortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
