package app

import (
	"math"

	"radius-defense/internal/config"
	"radius-defense/internal/defs"
	"radius-defense/internal/entity"
	"radius-defense/internal/types"
	"radius-defense/internal/utils"
)

// PlaceTower drops a tower of category at world position at, as if dragged there.
func (g *Game) PlaceTower(category defs.TowerCategory, at utils.Vec2) (types.EntityID, bool) {
	if _, ok := g.Placement.BeginDrag(category, at); !ok {
		return 0, false
	}
	return g.Placement.EndDrag()
}

// RemoveTower removes a placed tower. Upgrade levels are kept by the shop.
func (g *Game) RemoveTower(id types.EntityID) bool {
	tower, ok := g.ECS.Towers[id]
	if !ok || tower.Preview {
		return false
	}
	g.ECS.RemoveEntity(id)
	return true
}

// TowerAt returns the placed tower under a world position.
func (g *Game) TowerAt(world utils.Vec2) (types.EntityID, bool) {
	hitRadius := config.TowerRadius / config.PixelsPerUnit
	for _, id := range entity.SortedIDs(g.ECS.Towers) {
		tower := g.ECS.Towers[id]
		pos, ok := g.ECS.Positions[id]
		if !ok || tower.Preview {
			continue
		}
		if math.Hypot(pos.X-world.X, pos.Y-world.Y) <= hitRadius {
			return id, true
		}
	}
	return 0, false
}

// PlacedTowers counts placed towers per category.
func (g *Game) PlacedTowers() map[defs.TowerCategory]int {
	return g.ECS.CountTowers()
}
