// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"radius-defense/internal/audio"
	"radius-defense/internal/config"
	"radius-defense/internal/event"
	"radius-defense/internal/scene"
	"radius-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	switcher       *scene.Switcher
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.switcher.Quitting() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	_ = godotenv.Load()
	configPath := flag.String("config", envOr("RADIUS_CONFIG", "config.yaml"), "path to the YAML tuning file")
	mute := flag.Bool("mute", os.Getenv("RADIUS_MUTE") != "", "disable sound")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Using default config: %v", err)
	}

	initial := scene.Game
	if cfg.StartMenu {
		initial = scene.Start
	}
	sceneEvents := event.NewDispatcher()
	sceneEvents.Subscribe(event.SceneChanged, event.ListenerFunc(func(e event.Event) {
		log.Printf("Scene changed to %v", e.Data)
	}))
	switcher := scene.NewSwitcher(initial, sceneEvents)

	var sounds *audio.SoundManager
	if !*mute {
		sounds = audio.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			log.Printf("Audio disabled: %v", err)
			sounds = nil
		} else {
			defer sounds.Cleanup()
		}
	}

	sm := state.NewStateMachine()
	state.BindScenes(sm, switcher, cfg, sounds)

	app := &AppGame{
		stateMachine:   sm,
		switcher:       switcher,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Radius Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
