package state

import (
	"log"

	"radius-defense/internal/audio"
	"radius-defense/internal/config"
	"radius-defense/internal/scene"
)

// BindScenes makes every scene change on sw swap the matching state into sm,
// and enters the state of the switcher's current scene. sounds may be nil.
func BindScenes(sm *StateMachine, sw *scene.Switcher, cfg config.Config, sounds *audio.SoundManager) {
	load := func(name string) {
		switch name {
		case scene.Game:
			sm.SetState(NewGameState(sm, sw, cfg, sounds))
		case scene.Start:
			sm.SetState(NewMenuState(sm, sw))
		default:
			log.Printf("BindScenes: unknown scene %q", name)
		}
	}
	sw.OnChange = load
	load(sw.Current())
}
