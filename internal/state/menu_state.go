// internal/state/menu_state.go
package state

import (
	"image"

	"radius-defense/internal/config"
	"radius-defense/internal/scene"
	"radius-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	menuButtonWidth  = 220
	menuButtonHeight = 50
)

// MenuState is the start scene: a start button and a quit button.
type MenuState struct {
	sm       *StateMachine
	switcher *scene.Switcher
	face     text.Face
	start    *ui.Button
	quit     *ui.Button
}

func NewMenuState(sm *StateMachine, switcher *scene.Switcher) *MenuState {
	face := ui.DefaultFace()
	cx := config.ScreenWidth/2 - menuButtonWidth/2
	cy := config.ScreenHeight / 2
	return &MenuState{
		sm:       sm,
		switcher: switcher,
		face:     face,
		start:    ui.NewButton(image.Rect(cx, cy-menuButtonHeight-10, cx+menuButtonWidth, cy-10), "Start Game", face),
		quit:     ui.NewButton(image.Rect(cx, cy+10, cx+menuButtonWidth, cy+10+menuButtonHeight), "Quit", face),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.switcher.StartGame()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.switcher.Quit()
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		switch {
		case m.start.IsClicked(x, y):
			m.switcher.StartGame()
		case m.quit.IsClicked(x, y):
			m.switcher.Quit()
		}
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	op := &text.DrawOptions{}
	op.GeoM.Translate(config.ScreenWidth/2, config.ScreenHeight/3)
	op.ColorScale.ScaleWithColor(config.TextLightColor)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, "Radius Defense", m.face, op)

	m.start.Draw(screen)
	m.quit.Draw(screen)
}

func (m *MenuState) Exit() {}
