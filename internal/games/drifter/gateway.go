package drifter

import "math"

// Gateway is one half of a linked teleportation pair.
type Gateway struct {
	X float64 // Horizontal center
}

// GatewayPair is an atomic entrance/exit pair. A World holds at most one;
// the halves are created together and destroyed together, whether by
// traversal, expiry, or replacement by a newer fire. There is no partially
// populated state.
type GatewayPair struct {
	ID        uint64
	Entrance  Gateway
	Exit      Gateway
	CreatedAt float64 // Elapsed seconds at creation
}

// fireGateway spends a charge to open a pair at a fixed offset ahead of the
// player: entrance HalfGap behind the target point, exit HalfGap ahead of
// it. Placement does not consult obstacle positions. Invalid if not playing,
// out of charges, or cooling down; silently ignored then.
func (w *World) fireGateway() {
	cfg := w.cfg.Gateway
	if !w.Playing || w.Player.Charges <= 0 || w.CooldownActive {
		return
	}

	w.Player.Charges--
	w.CooldownActive = true
	w.schedule(cfg.CooldownSecs, effectClearGatewayCooldown, 0)

	// A still-open previous pair is replaced outright; its pending expiry
	// event goes stale via the ID guard. Replacement does not refund.
	w.nextPairID++
	target := w.Player.X + cfg.AheadDistance
	w.Gateways = &GatewayPair{
		ID:        w.nextPairID,
		Entrance:  Gateway{X: target - cfg.HalfGap},
		Exit:      Gateway{X: target + cfg.HalfGap},
		CreatedAt: w.Elapsed,
	}
	w.schedule(cfg.LifetimeSecs, effectExpireGatewayPair, w.nextPairID)
}

// stepGateways drifts the active pair and detects traversal. Gateways scroll
// at a reduced fraction of world speed so they stay usable longer than
// ordinary obstacles.
func (w *World) stepGateways(dt float64) {
	if w.Gateways == nil {
		return
	}
	cfg := w.cfg.Gateway

	drift := w.Speed * cfg.DriftFactor * dt
	w.Gateways.Entrance.X -= drift
	w.Gateways.Exit.X -= drift

	// Traversal: horizontal proximity to the entrance teleports the player
	// to just behind the exit, awards the bonus, and consumes the pair.
	// Consumption overrides the lifetime timer; using a gateway is never
	// refunded.
	if math.Abs(w.Player.X-w.Gateways.Entrance.X) <= cfg.TriggerDistance {
		w.Player.X = w.Gateways.Exit.X - cfg.ExitBackoff
		w.ScoreF += float64(cfg.Bonus)
		w.Gateways = nil
	}
}
