package audio

import (
	"math/rand"
	"time"

	"radius-defense/internal/event"
)

// Cue is a short synthesized sound effect.
type Cue int

const (
	CueNone Cue = iota
	CuePlace
	CueDiscard
	CueKill
	CueUpgrade
)

type cueShape struct {
	wave            int
	freq, endFreq   float64
	duration        time.Duration
	attack, release float64
	gain            float64
}

var cueShapes = map[Cue]cueShape{
	CuePlace:   {wave: waveSine, freq: 440, endFreq: 660, duration: 120 * time.Millisecond, attack: 0.005, release: 0.06, gain: 0.25},
	CueDiscard: {wave: waveSquare, freq: 140, endFreq: 110, duration: 150 * time.Millisecond, attack: 0.005, release: 0.05, gain: 0.12},
	CueKill:    {wave: waveNoise, duration: 80 * time.Millisecond, attack: 0.001, release: 0.06, gain: 0.15},
	CueUpgrade: {wave: waveSine, freq: 520, endFreq: 1040, duration: 220 * time.Millisecond, attack: 0.01, release: 0.1, gain: 0.22},
}

// CueFor maps a gameplay event to its sound, CueNone for silent events.
func CueFor(t event.EventType) Cue {
	switch t {
	case event.TowerPlaced:
		return CuePlace
	case event.TowerDiscarded:
		return CueDiscard
	case event.EnemyDestroyed:
		return CueKill
	case event.UpgradePurchased:
		return CueUpgrade
	default:
		return CueNone
	}
}

// render synthesizes the cue into a mono buffer.
func (c Cue) render(rng *rand.Rand) (floatBuffer, bool) {
	shape, ok := cueShapes[c]
	if !ok {
		return nil, false
	}
	buf := oscillator(shape.wave, shape.freq, shape.endFreq, sampleRate.N(shape.duration), rng)
	applyEnvelope(buf, shape.attack, shape.release)
	return buf, true
}
