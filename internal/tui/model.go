// Package tui is a terminal front-end for the same simulation the ebiten
// window runs: the field as a rune grid, the shop in a sidebar.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"radius-defense/internal/app"
	"radius-defense/internal/config"
	"radius-defense/internal/defs"
	"radius-defense/internal/economy"
	"radius-defense/internal/event"
	"radius-defense/internal/types"
	"radius-defense/internal/utils"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	maxLogs         = 10
	defaultTickDur  = 100 * time.Millisecond
	minTickDur      = 20 * time.Millisecond
	maxTickDur      = 500 * time.Millisecond
	fieldMarginCols = 2
)

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the bubbletea model. Pointer fields are shared between the copies
// bubbletea passes around.
type Model struct {
	game    *app.Game
	logs    *[]string
	cursor  utils.Vec2
	paused  bool
	tickDur time.Duration
	minX    int
	maxX    int
	minY    int
	maxY    int
}

// New starts a game and arms its first wave.
func New(cfg config.Config, seed int64) Model {
	g := app.NewGame(cfg, seed)
	logs := &[]string{}
	m := Model{
		game:    g,
		logs:    logs,
		tickDur: defaultTickDur,
		minX:    int(math.Floor(cfg.Placement.MinX)) - fieldMarginCols,
		maxX:    int(math.Ceil(cfg.Placement.MaxX)) + fieldMarginCols,
		minY:    int(math.Floor(cfg.Placement.MinY)),
		maxY:    int(math.Ceil(cfg.Placement.MaxY)),
	}
	g.EventDispatcher.Subscribe(event.TowerPlaced, event.ListenerFunc(func(e event.Event) {
		m.logf("Tower %v placed", e.Data)
	}))
	g.EventDispatcher.Subscribe(event.TowerDiscarded, event.ListenerFunc(func(e event.Event) {
		m.logf("Placement rejected")
	}))
	g.EventDispatcher.Subscribe(event.UpgradePurchased, event.ListenerFunc(func(e event.Event) {
		if p, ok := e.Data.(economy.Purchase); ok {
			m.logf("%s %s -> Lvl %d (-%d)", p.Category, p.Stat, p.Level, p.Paid)
		}
	}))
	g.EventDispatcher.Subscribe(event.WaveEnded, event.ListenerFunc(func(e event.Event) {
		m.logf("Wave %v cleared", e.Data)
	}))
	g.StartWave()
	return m
}

func (m Model) logf(format string, args ...interface{}) {
	*m.logs = append(*m.logs, fmt.Sprintf(format, args...))
}

// Game exposes the simulation behind the model.
func (m Model) Game() *app.Game { return m.game }

// Cursor is the selected world cell.
func (m Model) Cursor() utils.Vec2 { return m.cursor }

// Logs returns the message log, oldest first.
func (m Model) Logs() []string { return *m.logs }

func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickDur)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.paused {
			m.game.Update(m.tickDur.Seconds())
		}
		return m, tickCmd(m.tickDur)
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "space", "p":
		m.paused = !m.paused
	case "+":
		if m.tickDur > minTickDur {
			m.tickDur = time.Duration(float64(m.tickDur) * 0.8)
		}
	case "-":
		if m.tickDur < maxTickDur {
			m.tickDur = time.Duration(float64(m.tickDur) * 1.25)
		}
	case "left", "h":
		m.moveCursor(-1, 0)
	case "right", "l":
		m.moveCursor(1, 0)
	case "up", "k":
		m.moveCursor(0, 1)
	case "down", "j":
		m.moveCursor(0, -1)
	case "1", "2", "3":
		category := defs.Categories[int(key[0]-'1')]
		m.game.PlaceTower(category, m.cursor)
	case "x":
		if id, ok := m.game.TowerAt(m.cursor); ok {
			m.game.RemoveTower(id)
			m.logf("Tower %d removed", id)
		}
	case "tab":
		if m.game.Shop != nil {
			m.game.Shop.Next()
		}
	case "s":
		m.purchase(economy.StatSpeed)
	case "r":
		m.purchase(economy.StatRange)
	}
	return m, nil
}

func (m *Model) moveCursor(dx, dy float64) {
	x := math.Max(float64(m.minX), math.Min(float64(m.maxX), m.cursor.X+dx))
	y := math.Max(float64(m.minY), math.Min(float64(m.maxY), m.cursor.Y+dy))
	m.cursor = utils.Vec2{X: x, Y: y}
}

// purchase follows the window's button rule: a tab is only for sale while one
// of its towers is placed.
func (m Model) purchase(stat economy.Stat) {
	shop := m.game.Shop
	if shop == nil {
		m.logf("Shop unavailable")
		return
	}
	state := shop.ButtonState(stat, m.game.PlacedTowers())
	if !state.Purchasable {
		m.logf("Cannot buy %s: %s", stat, state.Text)
		return
	}
	shop.Purchase(stat)
}

// ---- lipgloss styles ----
var (
	fieldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	outsideStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	uiBorder     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	sidebarStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Width(34).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true)
	goldStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	enemyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	bulletStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))

	towerGlyph = map[defs.TowerCategory]string{
		defs.CategoryBasic:  "B",
		defs.CategorySniper: "S",
		defs.CategoryRadius: "R",
	}
	towerStyle = map[defs.TowerCategory]lipgloss.Style{
		defs.CategoryBasic:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		defs.CategorySniper: lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
		defs.CategoryRadius: lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	}
)

// cell returns the styled glyph of the grid cell at world (x, y).
func (m Model) cell(x, y int, occupants map[[2]int]string) string {
	glyph, ok := occupants[[2]int{x, y}]
	if !ok {
		p := utils.Vec2{X: float64(x), Y: float64(y)}
		if m.game.Placement.IsValidPlacement(p) {
			glyph = fieldStyle.Render("·")
		} else {
			glyph = outsideStyle.Render(" ")
		}
	}
	if float64(x) == m.cursor.X && float64(y) == m.cursor.Y {
		return cursorStyle.Render(glyph)
	}
	return glyph
}

func (m Model) occupants() map[[2]int]string {
	ecs := m.game.ECS
	occ := make(map[[2]int]string)
	put := func(id types.EntityID, glyph string) {
		if pos, ok := ecs.Positions[id]; ok {
			occ[[2]int{int(math.Round(pos.X)), int(math.Round(pos.Y))}] = glyph
		}
	}
	for id := range ecs.Projectiles {
		put(id, bulletStyle.Render("*"))
	}
	for id := range ecs.Enemies {
		put(id, enemyStyle.Render("e"))
	}
	for id, tower := range ecs.Towers {
		put(id, towerStyle[tower.Category].Render(towerGlyph[tower.Category]))
	}
	return occ
}

func (m Model) View() string {
	occ := m.occupants()
	rows := make([]string, 0, m.maxY-m.minY+1)
	for y := m.maxY; y >= m.minY; y-- {
		var b strings.Builder
		for x := m.minX; x <= m.maxX; x++ {
			b.WriteString(m.cell(x, y, occ))
		}
		rows = append(rows, b.String())
	}
	mapView := uiBorder.Render(strings.Join(rows, "\n"))

	info := []string{
		titleStyle.Render(fmt.Sprintf("Wave %d", m.game.Wave-1)),
		goldStyle.Render(fmt.Sprintf("Gold: %d", m.game.Gold())),
		fmt.Sprintf("Escaped: %d", m.game.Escaped()),
		fmt.Sprintf("Cursor: (%.0f, %.0f)", m.cursor.X, m.cursor.Y),
		"",
	}
	if shop := m.game.Shop; shop != nil {
		info = append(info,
			titleStyle.Render(shop.Title()),
			fmt.Sprintf("[s] %s  %s", shop.LevelText(economy.StatSpeed), shop.CostText(economy.StatSpeed)),
			fmt.Sprintf("[r] %s  %s", shop.LevelText(economy.StatRange), shop.CostText(economy.StatRange)),
			"",
		)
	}
	info = append(info, "Log:")
	logs := *m.logs
	if len(logs) > maxLogs {
		logs = logs[len(logs)-maxLogs:]
	}
	info = append(info, logs...)
	sidebar := sidebarStyle.Render(strings.Join(info, "\n"))

	ui := lipgloss.JoinHorizontal(lipgloss.Top, mapView, sidebar)

	speed := math.Round(float64(defaultTickDur)/float64(m.tickDur)*10) / 10
	footer := fmt.Sprintf("speed %.1fx | arrows move, 1/2/3 place, x remove, tab shop, s/r buy, space pause, q quit", speed)
	if m.paused {
		footer = "PAUSED | " + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, ui, footer)
}
