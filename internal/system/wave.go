// internal/system/wave.go
package system

import (
	"log"

	"radius-defense/internal/component"
	"radius-defense/internal/config"
	"radius-defense/internal/entity"
	"radius-defense/internal/event"
	"radius-defense/internal/utils"
)

// EnemiesIncrementPerWave is how many more hostiles each following wave spawns.
const EnemiesIncrementPerWave = 2

// WaveSystem spawns hostiles on the left edge of the field and ends a wave once
// all of them have been destroyed or escaped.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	cfg             config.WaveConfig
	spawnX          float64
	minY, maxY      float64
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService,
	cfg config.WaveConfig, spawnX, minY, maxY float64) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		cfg:             cfg,
		spawnX:          spawnX,
		minY:            minY,
		maxY:            maxY,
	}
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil {
		return
	}
	if wave.EnemiesToSpawn > 0 {
		wave.SpawnTimer += deltaTime
		if wave.SpawnTimer >= wave.SpawnInterval {
			s.spawnEnemy()
			wave.EnemiesToSpawn--
			wave.SpawnTimer = 0
		}
		return
	}
	if len(s.ecs.Enemies) == 0 {
		finished := wave.Number
		s.ecs.Wave = nil
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: finished})
	}
}

// StartWave arms the spawner for wave number n (1-based).
func (s *WaveSystem) StartWave(n int) *component.Wave {
	if n < 1 {
		log.Printf("WaveSystem: invalid wave number %d, starting wave 1", n)
		n = 1
	}
	wave := &component.Wave{
		Number:         n,
		EnemiesToSpawn: s.cfg.Count + (n-1)*EnemiesIncrementPerWave,
		SpawnTimer:     s.cfg.SpawnInterval, // First hostile appears on the next tick
		SpawnInterval:  s.cfg.SpawnInterval,
	}
	s.ecs.Wave = wave
	return wave
}

func (s *WaveSystem) spawnEnemy() {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: s.spawnX, Y: s.rng.Between(s.minY, s.maxY)}
	s.ecs.Velocities[id] = &component.Velocity{X: s.cfg.EnemySpeed}
	s.ecs.Enemies[id] = &component.Enemy{Tag: component.EnemyTag}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     config.EnemyColor,
		Radius:    config.EnemyRadius,
		HasStroke: true,
	}
}

// ClearEnemies removes every hostile without dispatching events.
func (s *WaveSystem) ClearEnemies() {
	for id := range s.ecs.Enemies {
		s.ecs.RemoveEntity(id)
	}
}
