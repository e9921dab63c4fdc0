// internal/component/projectile.go
package component

import "radius-defense/internal/types"

// Projectile is a bullet in flight.
type Projectile struct {
	DirX, DirY   float64 // Unit direction
	Speed        float64
	TargetID     types.EntityID // 0 when no hostile existed at fire time
	Homing       bool
	Lifetime     float64 // Seconds until self-destruct
	Age          float64
	KillDistance float64
}

// Expired reports whether the projectile outlived its lifetime.
func (p *Projectile) Expired() bool {
	return p.Age >= p.Lifetime
}
