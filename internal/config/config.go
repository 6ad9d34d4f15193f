// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

// DrifterConfig contains all tunables for the Portal Drifter game.
// Level definitions (speeds, spawn cadence, permitted obstacles) are static
// data in the game package; this covers physics and mechanic tuning.
type DrifterConfig struct {
	Physics   DrifterPhysics   `yaml:"physics"`
	Player    DrifterPlayer    `yaml:"player"`
	Gateway   DrifterGateway   `yaml:"gateway"`
	Generator DrifterGenerator `yaml:"generator"`
	Scoring   DrifterScoring   `yaml:"scoring"`
}

// DrifterPhysics defines vertical motion parameters.
// Units are screen cells and seconds; all integration is scaled by delta time.
type DrifterPhysics struct {
	Gravity      float64 `yaml:"gravity"`        // Downward acceleration, cells/s^2
	JumpImpulse  float64 `yaml:"jump_impulse"`   // Initial jump velocity, cells/s (negative = up)
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal fall velocity, cells/s
}

// DrifterPlayer defines the player box and survival parameters.
type DrifterPlayer struct {
	X                 int     `yaml:"x"`             // Fixed horizontal anchor
	Width             int     `yaml:"width"`
	Height            int     `yaml:"height"`
	GroundOffset      int     `yaml:"ground_offset"` // Rows between ground line and screen bottom
	Lives             int     `yaml:"lives"`
	InvincibilitySecs float64 `yaml:"invincibility_secs"` // Grace period after damage
	PitClearance      float64 `yaml:"pit_clearance"`      // Height above ground needed to clear a pit
}

// DrifterGateway defines the teleportation gateway mechanic.
type DrifterGateway struct {
	Charges         int     `yaml:"charges"`          // Starting charges
	ChargeCap       int     `yaml:"charge_cap"`       // Refund cap
	CooldownSecs    float64 `yaml:"cooldown_secs"`    // Delay between fires
	LifetimeSecs    float64 `yaml:"lifetime_secs"`    // Unused pair expiry (refunds a charge)
	Bonus           int     `yaml:"bonus"`            // Score awarded on traversal
	AheadDistance   float64 `yaml:"ahead_distance"`   // Target point distance ahead of player
	HalfGap         float64 `yaml:"half_gap"`         // Entrance/exit offset around the target
	DriftFactor     float64 `yaml:"drift_factor"`     // Gateway scroll speed as fraction of world speed
	TriggerDistance float64 `yaml:"trigger_distance"` // Horizontal proximity that triggers traversal
	ExitBackoff     float64 `yaml:"exit_backoff"`     // Landing offset behind the exit
}

// DrifterGenerator defines obstacle spawn spacing.
type DrifterGenerator struct {
	MinGap            float64 `yaml:"min_gap"` // Guaranteed reaction window, cells
	MaxGap            float64 `yaml:"max_gap"`
	Jitter            float64 `yaml:"jitter"`              // Random extra spacing, cells
	ReferenceMaxSpeed float64 `yaml:"reference_max_speed"` // Speed at which spacing bottoms out
	LeadIn            float64 `yaml:"lead_in"`             // Cursor start distance past the right edge
}

// DrifterScoring defines score accrual.
type DrifterScoring struct {
	DistanceRate float64 `yaml:"distance_rate"` // Score points per cell scrolled
}
