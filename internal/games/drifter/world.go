// Package drifter implements Portal Drifter, a side-scrolling runner where
// the player jumps over obstacle fields and fires linked teleportation
// gateways to skip hazards for bonus score. A run progresses through a fixed
// sequence of dimensions, each with its own speed, spawn cadence, and
// obstacle mix.
package drifter

import (
	"math/rand"

	"github.com/chewishmasuf/PortalDrifterDashCross/internal/config"
)

// Player is the runner. Its x position is anchored while the world scrolls
// left; only a gateway teleport displaces it, and the scroll then carries the
// displacement back toward the anchor.
type Player struct {
	X, Y       float64 // Top-left of the collision box
	VelY       float64 // Vertical velocity, cells/s (positive = down)
	Jumping    bool    // Airborne (jump or fall)
	Lives      int
	Charges    int // Remaining gateway charges
	Invincible bool
}

// World is the complete mutable simulation state for one run. It is owned by
// the single tick driver; presentation collaborators only ever see Snapshots.
type World struct {
	Player    Player
	Obstacles []Obstacle
	Gateways  *GatewayPair // nil when no pair is active

	ScoreF   float64 // Score, fractional accumulator
	Distance float64 // Cumulative scrolled distance, cells
	Speed    float64 // Current scroll speed, cells/s

	LevelIndex         int // 0-based dimension index
	Playing            bool
	LevelComplete      bool
	MissionComplete    bool
	GameOver           bool
	CompletedLevelName string

	CooldownActive bool // Gateway fire cooldown

	// Elapsed is simulated play time in seconds. It only advances while
	// playing, so scheduled events survive pauses untouched.
	Elapsed float64

	groundY    float64 // Y of the ground line (row the player runs on)
	screenW    float64
	homeX      float64 // Player's fixed x anchor
	spawnTimer float64 // Accumulator for the obstacle spawn cadence
	cursorX    float64 // Generator's running placement cursor
	nextPairID uint64
	events     []scheduledEvent

	rng *rand.Rand
	cfg *config.DrifterConfig
}

// newWorld creates a fresh World at dimension 1 with the field pre-seeded.
// Any timers belonging to a previous run die with the old World value.
func newWorld(cfg *config.DrifterConfig, rng *rand.Rand, screenW, screenH int) *World {
	groundY := float64(screenH - cfg.Player.GroundOffset)
	homeX := float64(cfg.Player.X)

	w := &World{
		Player: Player{
			X:       homeX,
			Y:       groundY - float64(cfg.Player.Height),
			Lives:   cfg.Player.Lives,
			Charges: cfg.Gateway.Charges,
		},
		Obstacles:  make([]Obstacle, 0, 16),
		Speed:      dimensions[0].Speed,
		Playing:    true,
		groundY:    groundY,
		screenW:    float64(screenW),
		homeX:      homeX,
		cursorX:    float64(screenW) + cfg.Generator.LeadIn,
		events:     make([]scheduledEvent, 0, 8),
		rng:        rng,
		cfg:        cfg,
	}

	// Pre-place two obstacles ahead of the player so the field is never empty.
	w.spawnObstacle()
	w.spawnObstacle()

	return w
}

// level returns the current dimension definition.
func (w *World) level() LevelDefinition {
	return dimensions[w.LevelIndex]
}

// Score returns the integer score.
func (w *World) Score() int {
	return int(w.ScoreF)
}

// terminal reports whether the run has ended.
func (w *World) terminal() bool {
	return w.GameOver || w.MissionComplete
}

// step advances the whole simulation by dt seconds. All mutation funnels
// through here under the driver's single-writer discipline.
func (w *World) step(dt float64) {
	if !w.Playing {
		return
	}

	w.Elapsed += dt
	w.drainEvents()

	w.stepScroll(dt)
	w.stepSpawner(dt)
	w.stepPhysics(dt)
	w.stepGateways(dt)
	w.stepHazards()
	w.evaluateProgression()
}

// stepScroll advances the world past the player: obstacles and the spawn
// cursor move left, distance and score accrue.
func (w *World) stepScroll(dt float64) {
	shift := w.Speed * dt

	for i := range w.Obstacles {
		w.Obstacles[i].X -= shift
	}
	w.cursorX -= shift

	w.purgeObstacles()

	w.Distance += shift
	w.ScoreF += shift * w.cfg.Scoring.DistanceRate
}

// jump starts a jump if the player is grounded. Invalid while airborne or
// outside the playing phase; silently ignored then.
func (w *World) jump() {
	if !w.Playing || w.Player.Jumping {
		return
	}
	w.Player.VelY = w.cfg.Physics.JumpImpulse
	w.Player.Jumping = true
}
