// internal/utils/math.go
package utils

import (
	"math"

	"radius-defense/internal/config"
)

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// Len returns the vector magnitude.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length; the zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{v.X / l, v.Y / l}
}

// FanDirections returns count unit vectors evenly spaced over a full revolution,
// the i-th at angle 2π·i/count.
func FanDirections(count int) []Vec2 {
	if count <= 0 {
		return nil
	}
	step := 2 * math.Pi / float64(count)
	dirs := make([]Vec2, count)
	for i := range dirs {
		angle := float64(i) * step
		dirs[i] = Vec2{math.Cos(angle), math.Sin(angle)}
	}
	return dirs
}

// DistanceSquared between (x1, y1) and (x2, y2).
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// NearestIndex returns the index of the point closest to origin by squared distance,
// or -1 for an empty slice. On ties the earliest point wins.
func NearestIndex(origin Vec2, points []Vec2) int {
	nearest := -1
	minDistance := math.Inf(1)
	for i, p := range points {
		d := DistanceSquared(origin.X, origin.Y, p.X, p.Y)
		if d < minDistance {
			minDistance = d
			nearest = i
		}
	}
	return nearest
}

// SnapToGrid rounds a world position to the nearest integer cell.
func SnapToGrid(v Vec2) Vec2 {
	return Vec2{math.Round(v.X), math.Round(v.Y)}
}

// ScreenToWorld converts pixel coordinates to world units. Screen Y grows downwards, world Y upwards.
func ScreenToWorld(sx, sy float64) Vec2 {
	return Vec2{
		X: (sx - float64(config.ScreenWidth)/2) / config.PixelsPerUnit,
		Y: (float64(config.ScreenHeight)/2 - sy) / config.PixelsPerUnit,
	}
}

// WorldToScreen is the inverse of ScreenToWorld.
func WorldToScreen(x, y float64) (float64, float64) {
	return x*config.PixelsPerUnit + float64(config.ScreenWidth)/2,
		float64(config.ScreenHeight)/2 - y*config.PixelsPerUnit
}
