package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	levelRectWidth  = 16
	levelRectHeight = 12
	levelRectGap    = 9
	borderWidth     = 1
)

var (
	levelFillColor = color.RGBA{70, 100, 120, 220}
	borderColor    = color.White
)

// LevelIndicator draws one pip per upgrade level, filled up to the current level.
type LevelIndicator struct {
	X, Y     float32
	MaxLevel int
}

func NewLevelIndicator(x, y float32, maxLevel int) *LevelIndicator {
	return &LevelIndicator{X: x, Y: y, MaxLevel: maxLevel}
}

// Width is the horizontal extent of all pips.
func (i *LevelIndicator) Width() float32 {
	if i.MaxLevel <= 0 {
		return 0
	}
	return float32(i.MaxLevel)*(levelRectWidth+levelRectGap) - levelRectGap
}

func (i *LevelIndicator) Draw(screen *ebiten.Image, level int) {
	for j := 0; j < i.MaxLevel; j++ {
		rectX := i.X + float32(j)*(levelRectWidth+levelRectGap)
		vector.StrokeRect(screen, rectX, i.Y, levelRectWidth, levelRectHeight, borderWidth, borderColor, true)
		if j < level {
			vector.DrawFilledRect(screen, rectX+borderWidth, i.Y+borderWidth,
				levelRectWidth-borderWidth*2, levelRectHeight-borderWidth*2, levelFillColor, true)
		}
	}
}
