package tui

import (
	"strings"
	"testing"

	"radius-defense/internal/config"
	"radius-defense/internal/defs"

	tea "github.com/charmbracelet/bubbletea"
)

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCursorMovesAndClamps(t *testing.T) {
	m := New(config.Default(), 1)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyUp}, runes("l"))
	if c := m.Cursor(); c.X != 2 || c.Y != 1 {
		t.Errorf("Cursor = %+v, want (2, 1)", c)
	}
	for i := 0; i < 30; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if c := m.Cursor(); c.Y != config.PlacementMinY {
		t.Errorf("Cursor should clamp at the bottom edge, got %+v", c)
	}
}

func TestPlaceAndBuy(t *testing.T) {
	m := New(config.Default(), 1)
	g := m.Game()

	m = press(t, m, runes("r"))
	if g.Gold() != config.StartingGold {
		t.Fatal("Nothing should be for sale without a placed tower")
	}

	m = press(t, m, runes("1"))
	if g.PlacedTowers()[defs.CategoryBasic] != 1 {
		t.Fatal("Key 1 should place a basic tower at the cursor")
	}
	m = press(t, m, runes("s"))
	if g.Gold() != config.StartingGold-config.BasicSpeedCost {
		t.Errorf("Expected %d gold after buying basic speed, got %d",
			config.StartingGold-config.BasicSpeedCost, g.Gold())
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if g.Shop.Current() != defs.CategorySniper {
		t.Errorf("Tab should select the sniper shop, got %s", g.Shop.Current())
	}

	if !strings.Contains(strings.Join(m.Logs(), "\n"), "placed") {
		t.Errorf("Placement should be logged, got %v", m.Logs())
	}
}

func TestPlacementOutsideIsRejected(t *testing.T) {
	m := New(config.Default(), 1)
	for i := 0; i < 12; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	m = press(t, m, runes("3"))
	if n := len(m.Game().ECS.Towers); n != 0 {
		t.Errorf("Tower outside the field should be discarded, %d remain", n)
	}
}

func TestRemoveTower(t *testing.T) {
	m := New(config.Default(), 1)
	m = press(t, m, runes("3"), runes("x"))
	if n := len(m.Game().ECS.Towers); n != 0 {
		t.Errorf("Expected the tower to be removed, %d remain", n)
	}
}

func TestTickAdvancesUnlessPaused(t *testing.T) {
	m := New(config.Default(), 1)
	next, cmd := m.Update(tickMsg{})
	m = next.(Model)
	if cmd == nil {
		t.Error("Tick should schedule the next tick")
	}
	before := m.Game().GetGameTime()
	if before <= 0 {
		t.Fatal("Tick should advance the simulation")
	}

	m = press(t, m, runes("p"))
	next, _ = m.Update(tickMsg{})
	m = next.(Model)
	if m.Game().GetGameTime() != before {
		t.Error("Paused model must not advance")
	}
}

func TestQuit(t *testing.T) {
	m := New(config.Default(), 1)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestViewRendersField(t *testing.T) {
	m := New(config.Default(), 1)
	m = press(t, m, runes("2"))
	view := m.View()
	for _, want := range []string{"S", "Gold:", "Basic Tower Upgrades", "Log:"} {
		if !strings.Contains(view, want) {
			t.Errorf("View is missing %q", want)
		}
	}
}
