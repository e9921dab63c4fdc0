// internal/state/pause_state.go
package state

import (
	"image/color"

	"radius-defense/internal/config"
	"radius-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*PauseState)(nil)

var pauseOverlayColor = color.RGBA{0, 0, 0, 140}

// PauseState freezes a GameState and draws it dimmed.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	face          text.Face
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		face:          ui.DefaultFace(),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)
	if !unpause && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		unpause = s.previousState.pauseButton.IsClicked(ebiten.CursorPosition())
	}
	if unpause {
		s.previousState.togglePause()
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, pauseOverlayColor, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(config.ScreenWidth/2, config.ScreenHeight/2)
	op.ColorScale.ScaleWithColor(config.TextLightColor)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, "Paused", s.face, op)
}

func (s *PauseState) Exit() {}
