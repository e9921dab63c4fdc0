// Package scene holds the named scene triggers used by menus and the in-game UI.
package scene

import (
	"log"

	"radius-defense/internal/event"
)

// Scene names.
const (
	Start = "Start"
	Game  = "Game"
)

// Switcher tracks the active scene and the quit request. The host loop reads
// Current and Quitting every frame; OnChange lets it swap states eagerly.
type Switcher struct {
	current    string
	quitting   bool
	dispatcher *event.Dispatcher

	// OnChange is called after the active scene changes.
	OnChange func(name string)
}

// NewSwitcher starts on the given scene. dispatcher may be nil.
func NewSwitcher(initial string, dispatcher *event.Dispatcher) *Switcher {
	if initial == "" {
		initial = Start
	}
	return &Switcher{current: initial, dispatcher: dispatcher}
}

// Current returns the active scene name.
func (s *Switcher) Current() string { return s.current }

// StartGame loads the gameplay scene.
func (s *Switcher) StartGame() { s.load(Game) }

// MainMenu loads the start scene.
func (s *Switcher) MainMenu() { s.load(Start) }

// Quit requests application termination. It is idempotent.
func (s *Switcher) Quit() {
	if s.quitting {
		return
	}
	log.Printf("Switcher: quit requested from %q", s.current)
	s.quitting = true
}

// Quitting reports whether Quit has been called.
func (s *Switcher) Quitting() bool { return s.quitting }

// load always reloads, even when name is already active, so "start game" from
// the game scene restarts it.
func (s *Switcher) load(name string) {
	log.Printf("Switcher: loading scene %q", name)
	s.current = name
	if s.dispatcher != nil {
		s.dispatcher.Dispatch(event.Event{Type: event.SceneChanged, Data: name})
	}
	if s.OnChange != nil {
		s.OnChange(name)
	}
}
