package config

import (
	_ "embed"
)

//go:embed defaults/drifter.yaml
var defaultDrifterYAML []byte

// DefaultDrifterConfig returns the default Portal Drifter configuration.
func DefaultDrifterConfig() DrifterConfig {
	return DrifterConfig{
		Physics: DrifterPhysics{
			Gravity:      60.0,
			JumpImpulse:  -26.0,
			MaxFallSpeed: 40.0,
		},
		Player: DrifterPlayer{
			X:                 8,
			Width:             3,
			Height:            3,
			GroundOffset:      2,
			Lives:             3,
			InvincibilitySecs: 1.5,
			PitClearance:      3.0,
		},
		Gateway: DrifterGateway{
			Charges:         3,
			ChargeCap:       3,
			CooldownSecs:    1.0,
			LifetimeSecs:    8.0,
			Bonus:           250,
			AheadDistance:   24.0,
			HalfGap:         8.0,
			DriftFactor:     0.45,
			TriggerDistance: 1.5,
			ExitBackoff:     2.0,
		},
		Generator: DrifterGenerator{
			MinGap:            18.0,
			MaxGap:            42.0,
			Jitter:            6.0,
			ReferenceMaxSpeed: 26.0,
			LeadIn:            10.0,
		},
		Scoring: DrifterScoring{
			DistanceRate: 5.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "drifter":
		return defaultDrifterYAML
	default:
		return nil
	}
}
