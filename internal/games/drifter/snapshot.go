package drifter

// ObstacleView is one obstacle as seen by presentation collaborators.
type ObstacleView struct {
	Type ObstacleType
	X, Y float64 // Current box top-left (oscillation applied)
	W, H float64
}

// GatewayView is the active pair as seen by presentation collaborators.
type GatewayView struct {
	EntranceX float64
	ExitX     float64
	AgeSecs   float64
}

// Snapshot is the read-only state handed to presentation collaborators once
// per tick. It carries everything the HUD and renderer need; mutating it has
// no effect on the simulation.
type Snapshot struct {
	Score     int
	BestScore int
	Distance  float64
	Speed     float64

	Level         int // 1-based dimension number
	LevelName     string
	LevelTheme    string
	LevelProgress float64

	Lives          int
	Charges        int
	CooldownActive bool
	Invincible     bool

	PlayerX, PlayerY float64
	PlayerW, PlayerH int
	Jumping          bool
	GroundY          int

	Obstacles []ObstacleView
	Gateways  *GatewayView // nil when no pair is active

	Playing            bool
	Paused             bool
	LevelComplete      bool
	MissionComplete    bool
	GameOver           bool
	CompletedLevelName string
	CountdownSecs      float64 // Remaining LevelComplete countdown

	Elapsed float64 // Play time, seconds
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	lvl := w.level()

	obstacles := make([]ObstacleView, len(w.Obstacles))
	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		box := o.Box(w.Distance)
		obstacles[i] = ObstacleView{
			Type: o.Type,
			X:    box.X,
			Y:    box.Y,
			W:    box.W,
			H:    box.H,
		}
	}

	var gateways *GatewayView
	if w.Gateways != nil {
		gateways = &GatewayView{
			EntranceX: w.Gateways.Entrance.X,
			ExitX:     w.Gateways.Exit.X,
			AgeSecs:   w.Elapsed - w.Gateways.CreatedAt,
		}
	}

	return Snapshot{
		Score:     w.Score(),
		BestScore: g.bestScore,
		Distance:  w.Distance,
		Speed:     w.Speed,

		Level:         lvl.Number,
		LevelName:     lvl.Name,
		LevelTheme:    lvl.Theme,
		LevelProgress: w.LevelProgress(),

		Lives:          w.Player.Lives,
		Charges:        w.Player.Charges,
		CooldownActive: w.CooldownActive,
		Invincible:     w.Player.Invincible,

		PlayerX: w.Player.X,
		PlayerY: w.Player.Y,
		PlayerW: g.cfg.Player.Width,
		PlayerH: g.cfg.Player.Height,
		Jumping: w.Player.Jumping,
		GroundY: int(w.groundY),

		Obstacles: obstacles,
		Gateways:  gateways,

		Playing:            w.Playing,
		Paused:             g.paused,
		LevelComplete:      w.LevelComplete,
		MissionComplete:    w.MissionComplete,
		GameOver:           w.GameOver,
		CompletedLevelName: w.CompletedLevelName,
		CountdownSecs:      g.countdown,

		Elapsed: w.Elapsed,
	}
}
