package render

import (
	"math"

	"radius-defense/internal/entity"
	"radius-defense/internal/placement"
	"radius-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer draws the placement field and every entity with a Renderable.
type Renderer struct {
	ecs      *entity.ECS
	bounds   placement.Bounds
	colors   FieldColors
	fieldImg *ebiten.Image // Pre-rendered field, drawn once per frame
}

func NewRenderer(ecs *entity.ECS, bounds placement.Bounds, colors FieldColors) *Renderer {
	return &Renderer{ecs: ecs, bounds: bounds, colors: colors}
}

// RenderFieldImage rasterises the static field. Draw calls it lazily.
func (r *Renderer) RenderFieldImage(width, height int) {
	img := ebiten.NewImage(width, height)
	img.Fill(r.colors.BackgroundColor)

	x0, y0 := utils.WorldToScreen(r.bounds.MinX, r.bounds.MaxY)
	x1, y1 := utils.WorldToScreen(r.bounds.MaxX, r.bounds.MinY)
	vector.DrawFilledRect(img, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), r.colors.FieldColor, true)

	for gx := math.Ceil(r.bounds.MinX); gx <= r.bounds.MaxX; gx++ {
		sx, _ := utils.WorldToScreen(gx, 0)
		vector.StrokeLine(img, float32(sx), float32(y0), float32(sx), float32(y1), 1, r.colors.GridColor, false)
	}
	for gy := math.Ceil(r.bounds.MinY); gy <= r.bounds.MaxY; gy++ {
		_, sy := utils.WorldToScreen(0, gy)
		vector.StrokeLine(img, float32(x0), float32(sy), float32(x1), float32(sy), 1, r.colors.GridColor, false)
	}
	vector.StrokeRect(img, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), r.colors.StrokeWidth, r.colors.StrokeColor, true)
	r.fieldImg = img
}

func (r *Renderer) Draw(screen *ebiten.Image) {
	if r.fieldImg == nil {
		b := screen.Bounds()
		r.RenderFieldImage(b.Dx(), b.Dy())
	}
	screen.DrawImage(r.fieldImg, nil)

	// Ascending IDs keep the draw order stable between frames.
	for _, id := range entity.SortedIDs(r.ecs.Renderables) {
		rend := r.ecs.Renderables[id]
		pos, hasPos := r.ecs.Positions[id]
		if !hasPos {
			continue
		}
		sx, sy := utils.WorldToScreen(pos.X, pos.Y)
		x, y := float32(sx), float32(sy)

		fill := rend.Color
		if tower, isTower := r.ecs.Towers[id]; isTower && tower.Preview &&
			!r.bounds.Contains(utils.Vec2{X: pos.X, Y: pos.Y}) {
			fill = DarkenColor(fill)
		}
		if rend.HasStroke {
			strokeColor := r.colors.StrokeColor
			strokeColor.A = fill.A
			vector.DrawFilledCircle(screen, x, y, rend.Radius+2, strokeColor, true)
		}
		vector.DrawFilledCircle(screen, x, y, rend.Radius, fill, true)
	}
}
