package drifter

import (
	"math/rand"

	"github.com/chewishmasuf/PortalDrifterDashCross/internal/config"
	"github.com/chewishmasuf/PortalDrifterDashCross/internal/core"
	"github.com/chewishmasuf/PortalDrifterDashCross/internal/registry"
)

// maxStepSeconds caps one integration step so a stalled terminal cannot
// produce a single huge physics jump; simulation speed otherwise tracks real
// elapsed time between ticks.
const maxStepSeconds = 0.05

// levelCompleteCountdown is how long the LevelComplete screen holds before
// the next dimension starts. Confirm skips it.
const levelCompleteCountdown = 3.0

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game wraps the World with the command surface consumed by input and
// presentation collaborators. The tick driver owns the only mutable handle;
// everyone else reads Snapshots.
type Game struct {
	world   *World
	cfg     config.DrifterConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	paused    bool
	countdown float64 // LevelComplete countdown, seconds
	bestScore int     // Best across restarts within this process
}

// New creates a new Portal Drifter game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "drifter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Portal Drifter"
}

// Reset initializes or restarts the game. Building a fresh World discards
// every pending scheduled event from the previous run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadDrifter(configPath)
	if err != nil {
		cfg = config.DefaultDrifterConfig()
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.world = newWorld(&g.cfg, g.rng, runtime.ScreenW, runtime.ScreenH)
	g.paused = false
	g.countdown = 0
}

// Step advances the game by one tick. dt is real elapsed seconds since the
// previous tick.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	w := g.world
	if dt > maxStepSeconds {
		dt = maxStepSeconds
	}
	if dt < 0 {
		dt = 0
	}

	if in.Has(core.ActionRestart) && w.terminal() {
		g.Restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		if g.paused {
			g.Resume()
		} else {
			g.Pause()
		}
	}

	if w.LevelComplete {
		// The countdown lives outside the state machine: the machine only
		// leaves LevelComplete when advance is invoked.
		g.countdown -= dt
		if g.countdown <= 0 || in.Has(core.ActionConfirm) {
			g.AdvanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if !w.Playing {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		w.jump()
	}
	if in.Has(core.ActionFire) {
		w.fireGateway()
	}

	w.step(dt)

	if w.LevelComplete {
		g.countdown = levelCompleteCountdown
	}
	if w.terminal() && w.Score() > g.bestScore {
		g.bestScore = w.Score()
	}

	return core.StepResult{State: g.State()}
}

// Pause suspends the clock mid-run. The World keeps its exact position;
// resuming continues from it with no state reset.
func (g *Game) Pause() {
	if g.world.Playing {
		g.world.Playing = false
		g.paused = true
	}
}

// Resume continues a paused run.
func (g *Game) Resume() {
	if g.paused {
		g.world.Playing = true
		g.paused = false
	}
}

// Restart begins a fresh run, keeping only the best score.
func (g *Game) Restart() {
	g.world = newWorld(&g.cfg, g.rng, g.runtime.ScreenW, g.runtime.ScreenH)
	g.paused = false
	g.countdown = 0
}

// Jump requests a jump.
func (g *Game) Jump() {
	g.world.jump()
}

// FireGateway requests a gateway pair.
func (g *Game) FireGateway() {
	g.world.fireGateway()
}

// AdvanceLevel leaves the LevelComplete phase into the next dimension.
func (g *Game) AdvanceLevel() {
	g.world.advanceLevel()
	g.countdown = 0
}

// BestScore returns the best score seen across restarts in this process.
func (g *Game) BestScore() int {
	return g.bestScore
}

// LevelReached returns the 1-based number of the current dimension.
func (g *Game) LevelReached() int {
	return g.world.LevelIndex + 1
}

// PlayTime returns seconds of play in the current run, excluding pauses.
func (g *Game) PlayTime() float64 {
	return g.world.Elapsed
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: g.world.terminal(),
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("drifter", func() registry.Game {
		return New()
	})
}
