package ui

import (
	"radius-defense/internal/config"
	"radius-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	traySlotSpacing = 90
	traySlotRadius  = 22
)

type traySlot struct {
	category defs.TowerCategory
	name     string
	x, y     float32
	def      defs.TowerDefinition
}

// TowerTray holds one drag source per tower category.
type TowerTray struct {
	slots []traySlot
	face  text.Face
}

func NewTowerTray(x, y float32, library map[defs.TowerCategory]defs.TowerDefinition, face text.Face) *TowerTray {
	t := &TowerTray{face: face}
	for i, c := range defs.Categories {
		def, ok := library[c]
		if !ok {
			continue
		}
		t.slots = append(t.slots, traySlot{
			category: c,
			name:     c.String(),
			x:        x + float32(i)*traySlotSpacing,
			y:        y,
			def:      def,
		})
	}
	return t
}

// CategoryAt returns the category whose slot is under the screen point.
func (t *TowerTray) CategoryAt(x, y int) (defs.TowerCategory, bool) {
	for _, s := range t.slots {
		dx := float32(x) - s.x
		dy := float32(y) - s.y
		if dx*dx+dy*dy <= traySlotRadius*traySlotRadius {
			return s.category, true
		}
	}
	return 0, false
}

func (t *TowerTray) Draw(screen *ebiten.Image) {
	for _, s := range t.slots {
		vector.DrawFilledCircle(screen, s.x, s.y, traySlotRadius+2, config.TowerStrokeColor, true)
		vector.DrawFilledCircle(screen, s.x, s.y, traySlotRadius, s.def.Color, true)
		drawCenteredText(screen, s.name, t.face, float64(s.x), float64(s.y+traySlotRadius+12), config.TextLightColor)
	}
}
