package app

import (
	"log"
	"math"

	"radius-defense/internal/config"
	"radius-defense/internal/defs"
	"radius-defense/internal/economy"
	"radius-defense/internal/entity"
	"radius-defense/internal/event"
	"radius-defense/internal/placement"
	"radius-defense/internal/system"
	"radius-defense/internal/utils"
)

// Hostiles enter this far left of the placement area and escape this far right of it.
const fieldMargin = 2.0

// Game holds the main game state and logic.
type Game struct {
	Config           config.Config
	Wave             int
	ECS              *entity.ECS
	EventDispatcher  *event.Dispatcher
	Pool             *economy.Pool
	Shop             *economy.Shop // nil when the shop could not be created
	Bounty           *economy.Bounty
	Library          map[defs.TowerCategory]defs.TowerDefinition
	Placement        *placement.DragHandler
	FireSystem       *system.FireSystem
	ProjectileSystem *system.ProjectileSystem
	MovementSystem   *system.MovementSystem
	WaveSystem       *system.WaveSystem
	Rng              *utils.PRNGService
	SpeedMultiplier  float64

	gameTime float64
	isPaused bool
	escaped  int
}

// NewGame initializes a new game instance. seed 0 picks a time-based seed.
func NewGame(cfg config.Config, seed int64) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	pool := economy.NewPool(cfg.Economy.StartingGold)
	bounds := placement.BoundsFromConfig(cfg.Placement)

	g := &Game{
		Config:          cfg,
		Wave:            1,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Pool:            pool,
		Library:         defs.NewTowerLibrary(cfg.Tower),
		Rng:             utils.NewPRNGService(seed),
		SpeedMultiplier: 1.0,
	}

	shop, err := economy.NewShop(pool, ecs, eventDispatcher, cfg.Economy)
	if err != nil {
		log.Printf("Game: shop disabled: %v", err)
	} else {
		g.Shop = shop
	}
	bounty, err := economy.NewBounty(pool, cfg.Economy.KillReward, eventDispatcher)
	if err != nil {
		log.Printf("Game: bounty disabled: %v", err)
	}
	g.Bounty = bounty

	// A nil *Shop must not end up inside a non-nil interface.
	var upgrades placement.LevelApplier
	if g.Shop != nil {
		upgrades = g.Shop
	}
	g.Placement = placement.NewDragHandler(ecs, g.Library, upgrades, eventDispatcher, bounds)

	g.FireSystem = system.NewFireSystem(ecs)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs, eventDispatcher, bounds.MaxX+fieldMargin)
	g.WaveSystem = system.NewWaveSystem(ecs, eventDispatcher, g.Rng, cfg.Wave,
		bounds.MinX-fieldMargin, bounds.MinY, bounds.MaxY)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.WaveEnded, listener)
	eventDispatcher.Subscribe(event.EnemyEscaped, listener)

	return g
}

// GameEventListener reacts to events that drive the main loop.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveEnded:
		if n, ok := e.Data.(int); ok {
			log.Printf("Game: wave %d cleared", n)
		}
		l.game.StartWave()
	case event.EnemyEscaped:
		l.game.escaped++
	}
}

// Update progresses the game state by one frame.
func (g *Game) Update(deltaTime float64) {
	if g.isPaused {
		return
	}
	dt := deltaTime * g.SpeedMultiplier
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	g.WaveSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.FireSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
}

// StartWave arms the next enemy wave.
func (g *Game) StartWave() {
	g.WaveSystem.StartWave(g.Wave)
	g.Wave++
}

func (g *Game) ClearEnemies() {
	g.WaveSystem.ClearEnemies()
}

func (g *Game) ClearProjectiles() {
	g.ProjectileSystem.ClearProjectiles()
}

// HandleSpeedClick toggles between normal and double speed.
func (g *Game) HandleSpeedClick() {
	g.SpeedMultiplier = math.Mod(g.SpeedMultiplier, 2) + 1
}

func (g *Game) HandlePauseClick() {
	g.isPaused = !g.isPaused
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

// Escaped is the number of hostiles that left the field alive.
func (g *Game) Escaped() int {
	return g.escaped
}

// Gold is the current balance.
func (g *Game) Gold() int {
	return g.Pool.Balance()
}
