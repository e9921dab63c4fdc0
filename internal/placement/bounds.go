// Package placement turns a drag gesture into a placed tower or discards it.
package placement

import (
	"radius-defense/internal/config"
	"radius-defense/internal/utils"
)

// Bounds is an axis-aligned world rectangle, edges included.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

func BoundsFromConfig(c config.BoundsConfig) Bounds {
	return Bounds{MinX: c.MinX, MaxX: c.MaxX, MinY: c.MinY, MaxY: c.MaxY}
}

// Contains is the placement validity test.
func (b Bounds) Contains(p utils.Vec2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX &&
		p.Y >= b.MinY && p.Y <= b.MaxY
}
