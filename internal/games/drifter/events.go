package drifter

// Delayed state changes (invincibility clear, gateway cooldown clear, gateway
// expiry) are scheduled events on the World rather than wall-clock timer
// callbacks: the clock drains them each tick against simulated elapsed time,
// so they pause with the game, run deterministically in tests, and die with
// the World on reset. A stale callback can never touch a fresh run.

type effectTag int

const (
	effectClearInvincibility effectTag = iota
	effectClearGatewayCooldown
	effectExpireGatewayPair
)

// scheduledEvent is one pending delayed mutation.
type scheduledEvent struct {
	at     float64 // Elapsed seconds at which the event fires
	effect effectTag
	pairID uint64 // Target gateway pair (expiry only)
}

// schedule queues an effect to fire delay seconds of play time from now.
func (w *World) schedule(delay float64, effect effectTag, pairID uint64) {
	w.events = append(w.events, scheduledEvent{
		at:     w.Elapsed + delay,
		effect: effect,
		pairID: pairID,
	})
}

// drainEvents fires every due event and keeps the rest, preserving order.
func (w *World) drainEvents() {
	kept := w.events[:0]
	for _, ev := range w.events {
		if ev.at <= w.Elapsed {
			w.applyEffect(ev)
		} else {
			kept = append(kept, ev)
		}
	}
	w.events = kept
}

func (w *World) applyEffect(ev scheduledEvent) {
	switch ev.effect {
	case effectClearInvincibility:
		w.Player.Invincible = false

	case effectClearGatewayCooldown:
		w.CooldownActive = false

	case effectExpireGatewayPair:
		// Guarded by pair ID: a pair consumed by traversal (or replaced by a
		// newer fire) leaves its expiry event behind as a stale no-op.
		if w.Gateways != nil && w.Gateways.ID == ev.pairID {
			w.Gateways = nil
			if w.Player.Charges < w.cfg.Gateway.ChargeCap {
				w.Player.Charges++
			}
		}
	}
}
