// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"radius-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a clickable rectangle with a centred label.
type Button struct {
	Rect       image.Rectangle
	Text       string
	Enabled    bool
	BgColor    color.RGBA
	HoverColor color.RGBA
	TextColor  color.RGBA
	face       text.Face
}

// NewButton creates an enabled button.
func NewButton(rect image.Rectangle, label string, face text.Face) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		Enabled:    true,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHoverColor,
		TextColor:  config.TextLightColor,
		face:       face,
	}
}

// Contains reports whether the screen point lies on the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked reports a click on an enabled button.
func (b *Button) IsClicked(x, y int) bool {
	return b.Enabled && b.Contains(x, y)
}

func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	switch {
	case !b.Enabled:
		bg = config.ButtonDisabled
	case b.Contains(ebiten.CursorPosition()):
		bg = b.HoverColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{60, 60, 60, 255}, true)

	cx := float64(b.Rect.Min.X) + float64(b.Rect.Dx())/2
	cy := float64(b.Rect.Min.Y) + float64(b.Rect.Dy())/2
	drawCenteredText(screen, b.Text, b.face, cx, cy, b.TextColor)
}
