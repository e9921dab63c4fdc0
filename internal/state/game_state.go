// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"time"

	"radius-defense/internal/app"
	"radius-defense/internal/audio"
	"radius-defense/internal/config"
	"radius-defense/internal/placement"
	"radius-defense/internal/scene"
	"radius-defense/internal/ui"
	"radius-defense/internal/utils"
	"radius-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	trayX, trayY         = 60, 50
	indicatorOffsetX     = 60
	controlButtonY       = 50
	controlButtonSize    = 12
	controlButtonSpacing = 60
)

// GameState is the gameplay scene.
type GameState struct {
	sm            *StateMachine
	switcher      *scene.Switcher
	game          *app.Game
	renderer      *render.Renderer
	shopPanel     *ui.ShopPanel // nil when the game runs without a shop
	tray          *ui.TowerTray
	waveIndicator *ui.WaveIndicator
	speedButton   *ui.SpeedButton
	pauseButton   *ui.PauseButton
	started       bool
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, switcher *scene.Switcher, cfg config.Config, sounds *audio.SoundManager) *GameState {
	gameLogic := app.NewGame(cfg, 0)
	if sounds != nil {
		sounds.Subscribe(gameLogic.EventDispatcher)
	}
	face := ui.DefaultFace()

	fieldColors := render.FieldColors{
		BackgroundColor: config.BackgroundColor,
		FieldColor:      config.FieldColor,
		GridColor:       color.RGBA{55, 65, 78, 255},
		StrokeColor:     config.TowerStrokeColor,
		StrokeWidth:     2,
	}

	gs := &GameState{
		sm:            sm,
		switcher:      switcher,
		game:          gameLogic,
		renderer:      render.NewRenderer(gameLogic.ECS, placement.BoundsFromConfig(cfg.Placement), fieldColors),
		tray:          ui.NewTowerTray(trayX, trayY, gameLogic.Library, face),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2, controlButtonY, config.TextLightColor, face),
		speedButton: ui.NewSpeedButton(
			float32(config.ScreenWidth-indicatorOffsetX-controlButtonSpacing), controlButtonY, controlButtonSize,
			[]color.RGBA{config.ButtonColor, config.ProjectileColor},
		),
		pauseButton: ui.NewPauseButton(
			float32(config.ScreenWidth-indicatorOffsetX), controlButtonY, controlButtonSize,
			config.TextLightColor, config.ProjectileColor,
		),
		lastClickTime: time.Now(),
	}
	if gameLogic.Shop != nil {
		gs.shopPanel = ui.NewShopPanel(gameLogic.Shop, face)
	}
	return gs
}

// Enter starts the first wave. Returning from the pause screen does not restart it.
func (g *GameState) Enter() {
	if g.started {
		return
	}
	g.started = true
	g.game.StartWave()
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.game.Placement.Cancel()
		g.switcher.MainMenu()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.enterPause()
		return
	}
	if g.shopPanel != nil && inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.game.Shop.Next()
	}

	g.handleMouse()
	if g.sm.Current() != g {
		return
	}

	g.game.Update(deltaTime)
	if g.shopPanel != nil {
		g.shopPanel.Refresh(g.game.PlacedTowers())
	}
}

func (g *GameState) handleMouse() {
	x, y := ebiten.CursorPosition()
	world := utils.ScreenToWorld(float64(x), float64(y))
	drag := g.game.Placement

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if time.Since(g.lastClickTime) < config.ClickCooldown*time.Millisecond && !drag.Dragging() {
			return
		}
		g.lastClickTime = time.Now()
		switch {
		case g.pauseButton.IsClicked(x, y):
			g.enterPause()
			return
		case g.speedButton.IsClicked(x, y):
			g.speedButton.ToggleState()
			g.game.HandleSpeedClick()
			return
		case g.shopPanel != nil && g.shopPanel.HandleClick(x, y):
			return
		}
		if category, ok := g.tray.CategoryAt(x, y); ok {
			drag.BeginDrag(category, world)
			return
		}
	}

	if drag.Dragging() {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			drag.Drag(world)
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			drag.Drag(world)
			drag.EndDrag()
		}
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if id, ok := g.game.TowerAt(world); ok {
			g.game.RemoveTower(id)
		}
	}
}

func (g *GameState) togglePause() {
	g.game.HandlePauseClick()
	g.pauseButton.TogglePause()
}

func (g *GameState) enterPause() {
	g.togglePause()
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	g.tray.Draw(screen)
	g.waveIndicator.Draw(screen, g.game.Wave-1)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
	if g.shopPanel != nil {
		g.shopPanel.Draw(screen, g.game.Gold())
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f  Escaped: %d", ebiten.ActualTPS(), g.game.Escaped()), 10, 10)
}

func (g *GameState) Exit() {}
