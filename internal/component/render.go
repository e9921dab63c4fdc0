// component/render.go
package component

import "image/color"

// Renderable holds what the render system needs to draw an entity
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
}
