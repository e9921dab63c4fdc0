package ui

import (
	"testing"

	"radius-defense/internal/config"
	"radius-defense/internal/defs"
	"radius-defense/internal/economy"
	"radius-defense/internal/entity"
)

func newTestPanel(t *testing.T) (*ShopPanel, *economy.Pool) {
	t.Helper()
	pool := economy.NewPool(100)
	shop, err := economy.NewShop(pool, entity.NewECS(), nil, config.Default().Economy)
	if err != nil {
		t.Fatal(err)
	}
	return NewShopPanel(shop, DefaultFace()), pool
}

func TestShopPanelStartsDisabled(t *testing.T) {
	p, pool := newTestPanel(t)
	for i, b := range p.buy {
		if b.Enabled {
			t.Errorf("Buy control %d should start disabled", i)
		}
		if b.Text == "" {
			t.Errorf("Buy control %d should show its cost before the first frame", i)
		}
	}

	// A click before the first Refresh must not purchase anything.
	b := p.buy[0].Rect
	p.HandleClick(b.Min.X+1, b.Min.Y+1)
	if pool.Balance() != 100 {
		t.Errorf("Balance = %d, want 100", pool.Balance())
	}
}

func TestShopPanelEnablesWithPlacedTower(t *testing.T) {
	p, pool := newTestPanel(t)
	p.Refresh(map[defs.TowerCategory]int{defs.CategoryBasic: 1})
	if !p.buy[0].Enabled {
		t.Fatal("Speed control should be enabled once a basic tower is placed")
	}
	b := p.buy[0].Rect
	p.HandleClick(b.Min.X+1, b.Min.Y+1)
	if want := 100 - config.BasicSpeedCost; pool.Balance() != want {
		t.Errorf("Balance = %d, want %d", pool.Balance(), want)
	}
}
