package ui

import (
	"fmt"
	"image"
	"image/color"

	"radius-defense/internal/config"
	"radius-defense/internal/defs"
	"radius-defense/internal/economy"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelHeight   = 150
	panelMargin   = 20
	lineHeight    = 40
	tabWidth      = 110
	tabHeight     = 28
	buyWidth      = 150
	buyHeight     = 30
	labelColumn   = 260
	buyColumnLeft = 480
)

var panelColor = color.RGBA{30, 35, 45, 230}

// ShopPanel is the upgrade shop: a tab per tower category and a speed and a
// range control for the selected tab.
type ShopPanel struct {
	shop  *economy.Shop
	face  text.Face
	top   int
	tabs  []*Button
	buy   [2]*Button
	pips  [2]*LevelIndicator
	stats [2]economy.Stat
}

func NewShopPanel(shop *economy.Shop, face text.Face) *ShopPanel {
	top := config.ScreenHeight - panelHeight
	p := &ShopPanel{
		shop:  shop,
		face:  face,
		top:   top,
		stats: [2]economy.Stat{economy.StatSpeed, economy.StatRange},
	}

	for i, c := range defs.Categories {
		x := config.ScreenWidth - panelMargin - (len(defs.Categories)-i)*(tabWidth+6)
		rect := image.Rect(x, top+10, x+tabWidth, top+10+tabHeight)
		p.tabs = append(p.tabs, NewButton(rect, c.String(), face))
	}
	for i := range p.stats {
		y := top + 50 + i*lineHeight
		p.buy[i] = NewButton(image.Rect(buyColumnLeft, y, buyColumnLeft+buyWidth, y+buyHeight), "", face)
		p.pips[i] = NewLevelIndicator(labelColumn, float32(y+9), shop.MaxLevel())
	}
	// Nothing is placed yet, so the buy controls start disabled.
	p.Refresh(nil)
	return p
}

// Contains reports whether a screen point falls on the panel.
func (p *ShopPanel) Contains(x, y int) bool {
	return y >= p.top && x >= 0 && x < config.ScreenWidth
}

// Refresh pulls button texts and enabled flags from the shop.
func (p *ShopPanel) Refresh(placed map[defs.TowerCategory]int) {
	for i, stat := range p.stats {
		state := p.shop.ButtonState(stat, placed)
		p.buy[i].Text = state.Text
		p.buy[i].Enabled = state.Purchasable
	}
	for i, c := range defs.Categories {
		if c == p.shop.Current() {
			p.tabs[i].BgColor = config.ButtonHoverColor
		} else {
			p.tabs[i].BgColor = config.ButtonColor
		}
	}
}

// HandleClick routes a click to a tab or a purchase control. It returns true
// when the click landed on the panel.
func (p *ShopPanel) HandleClick(x, y int) bool {
	if !p.Contains(x, y) {
		return false
	}
	for i, tab := range p.tabs {
		if tab.IsClicked(x, y) {
			p.shop.Select(defs.Categories[i])
			return true
		}
	}
	for i, b := range p.buy {
		if b.IsClicked(x, y) {
			p.shop.Purchase(p.stats[i])
			return true
		}
	}
	return true
}

func (p *ShopPanel) Draw(screen *ebiten.Image, gold int) {
	vector.DrawFilledRect(screen, 0, float32(p.top), config.ScreenWidth, panelHeight, panelColor, true)
	vector.StrokeLine(screen, 0, float32(p.top), config.ScreenWidth, float32(p.top), 2, config.TowerStrokeColor, true)

	drawText(screen, p.shop.Title(), p.face, panelMargin, float64(p.top+14), config.TextLightColor)
	drawText(screen, fmt.Sprintf("Gold: %d", gold), p.face, panelMargin, float64(p.top+panelHeight-30), config.ProjectileColor)

	for _, tab := range p.tabs {
		tab.Draw(screen)
	}
	for i, stat := range p.stats {
		y := float64(p.top + 50 + i*lineHeight + 8)
		drawText(screen, p.shop.LevelText(stat), p.face, panelMargin, y, config.TextLightColor)
		p.pips[i].Draw(screen, p.shop.Level(p.shop.Current(), stat))
		p.buy[i].Draw(screen)
	}
}
