package audio

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"radius-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager plays a cue for every gameplay event it is subscribed to.
// Until Initialize succeeds it stays silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rng         *rand.Rand
	cache       map[Cue]floatBuffer
	initialized bool
	played      int
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		rng:   rand.New(rand.NewSource(1)),
		cache: make(map[Cue]floatBuffer),
	}
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Subscribe registers the manager for every event that has a cue.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	for _, t := range []event.EventType{event.TowerPlaced, event.TowerDiscarded, event.EnemyDestroyed, event.UpgradePurchased} {
		d.Subscribe(t, sm)
	}
}

func (sm *SoundManager) OnEvent(e event.Event) {
	sm.Play(CueFor(e.Type))
}

// Play queues a cue on the mixer.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || c == CueNone {
		return
	}
	buf, ok := sm.cache[c]
	if !ok {
		rendered, ok := c.render(sm.rng)
		if !ok {
			log.Printf("SoundManager: no sound for cue %d", c)
			return
		}
		buf = rendered
		sm.cache[c] = buf
	}
	gain := cueShapes[c].gain

	speaker.Lock()
	sm.mixer.Add(&bufferStreamer{buf: buf, gain: gain})
	speaker.Unlock()
	sm.played++
}

// Played is the number of cues queued so far.
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// Cleanup silences everything still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}
