package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chewishmasuf/PortalDrifterDashCross/internal/core"
	"github.com/chewishmasuf/PortalDrifterDashCross/internal/storage"
)

// stubGame is a minimal game whose run ends on the first step.
type stubGame struct {
	score int
	level int
	time  float64
	over  bool
}

func (g *stubGame) ID() string                   { return "stub" }
func (g *stubGame) Title() string                { return "Stub" }
func (g *stubGame) Reset(cfg core.RuntimeConfig) { g.over = false }
func (g *stubGame) Render(dst *core.Screen)      {}

func (g *stubGame) Step(in core.InputFrame, dt float64) core.StepResult {
	g.over = true
	return core.StepResult{State: g.State()}
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over}
}

func (g *stubGame) LevelReached() int { return g.level }
func (g *stubGame) PlayTime() float64 { return g.time }

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordSessionZeroScoreRun(t *testing.T) {
	store := openTestStore(t)
	game := &stubGame{score: 0, level: 1, time: 4.5}

	m := NewModel(game, store, core.DefaultConfig())
	m.gameState = game.State()
	m.recordSession()

	stats, err := store.Stats("stub")
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.GamesPlayed != 1 {
		t.Errorf("GamesPlayed = %d, expected 1; a zero-score run must still count", stats.GamesPlayed)
	}
	if stats.TotalPlay != 4500*time.Millisecond {
		t.Errorf("TotalPlay = %v, expected 4.5s", stats.TotalPlay)
	}
}

func TestRecordSessionOncePerRunOnGameOver(t *testing.T) {
	store := openTestStore(t)
	game := &stubGame{score: 300, level: 2, time: 12}

	var model tea.Model = NewModel(game, store, core.DefaultConfig())

	// The stub ends its run on the first tick; further ticks must not
	// record the same run again.
	for i := 0; i < 3; i++ {
		model, _ = model.(Model).handleTick(time.Now())
	}

	stats, err := store.Stats("stub")
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.GamesPlayed != 1 {
		t.Errorf("GamesPlayed = %d, expected exactly 1 record per run", stats.GamesPlayed)
	}
	if stats.BestScore != 300 {
		t.Errorf("BestScore = %d, expected 300", stats.BestScore)
	}
	if stats.HighestLevel != 2 {
		t.Errorf("HighestLevel = %d, expected 2", stats.HighestLevel)
	}
}

func TestRecordSessionNilStore(t *testing.T) {
	game := &stubGame{score: 100}

	m := NewModel(game, nil, core.DefaultConfig())
	m.gameState = game.State()
	m.recordSession() // Must not panic
}
