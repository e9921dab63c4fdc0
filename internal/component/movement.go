// component/movement.go
package component

// Position is a point in world units.
type Position struct {
	X, Y float64
}

// Velocity is a world-space displacement per second.
type Velocity struct {
	X, Y float64
}
