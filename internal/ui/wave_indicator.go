package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WaveIndicator shows the current wave number in Roman numerals.
type WaveIndicator struct {
	X, Y      float64
	Color     color.RGBA
	BossColor color.RGBA
	face      text.Face
}

func NewWaveIndicator(x, y float64, clr color.RGBA, face text.Face) *WaveIndicator {
	return &WaveIndicator{
		X:         x,
		Y:         y,
		Color:     clr,
		BossColor: color.RGBA{220, 40, 40, 255},
		face:      face,
	}
}

// toRoman converts a positive integer to Roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	if waveNumber <= 0 {
		return
	}
	clr := i.Color
	if waveNumber%10 == 0 {
		clr = i.BossColor
	}
	drawCenteredText(screen, "Wave "+toRoman(waveNumber), i.face, i.X, i.Y, clr)
}
