package drifter

import (
	"github.com/chewishmasuf/PortalDrifterDashCross/internal/core"
)

// playerBox returns the player's collision box.
func (w *World) playerBox() core.RectF {
	return core.NewRectF(w.Player.X, w.Player.Y, float64(w.cfg.Player.Width), float64(w.cfg.Player.Height))
}

// floorY is the player's top-edge y when standing on the ground line.
func (w *World) floorY() float64 {
	return w.groundY - float64(w.cfg.Player.Height)
}

// stepPhysics integrates the player's vertical motion and resolves landings.
// Horizontal motion is not player-controlled: the x anchor is fixed and only
// a teleport displaces it, after which the scroll carries the displacement
// back toward the anchor like everything else in world space.
func (w *World) stepPhysics(dt float64) {
	p := &w.Player
	phys := w.cfg.Physics

	if p.Jumping {
		p.VelY += phys.Gravity * dt
		if p.VelY > phys.MaxFallSpeed {
			p.VelY = phys.MaxFallSpeed
		}
		p.Y += p.VelY * dt

		// Landing, floor first: reaching or passing the ground line snaps to
		// it. Otherwise a descending player may come to rest on a platform;
		// the first intersecting platform wins.
		if p.Y >= w.floorY() {
			p.Y = w.floorY()
			p.VelY = 0
			p.Jumping = false
		} else if p.VelY > 0 {
			box := w.playerBox()
			for i := range w.Obstacles {
				o := &w.Obstacles[i]
				if o.Type != ObstaclePlatform {
					continue
				}
				ob := o.Box(w.Distance)
				if box.Intersects(ob) {
					p.Y = ob.Y - float64(w.cfg.Player.Height)
					p.VelY = 0
					p.Jumping = false
					break
				}
			}
		}
	} else if p.Y < w.floorY()-supportEpsilon {
		// Standing above the floor means standing on a platform; once it
		// scrolls out from under the player, fall.
		if !w.supported() {
			p.Jumping = true
			p.VelY = 0
		}
	}

	if p.X > w.homeX {
		p.X -= w.Speed * dt
		if p.X < w.homeX {
			p.X = w.homeX
		}
	}
}

const supportEpsilon = 0.25

// supported reports whether some platform still carries the player's feet.
func (w *World) supported() bool {
	box := w.playerBox()
	feetY := box.Bottom()
	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		if o.Type != ObstaclePlatform {
			continue
		}
		ob := o.Box(w.Distance)
		if feetY < ob.Y-supportEpsilon || feetY > ob.Y+supportEpsilon {
			continue
		}
		if box.X < ob.Right() && ob.X < box.Right() {
			return true
		}
	}
	return false
}

// stepHazards tests the player against every active obstacle and dispatches
// by type on the first intersection found. At most one damage event is
// processed per tick, and none at all while invincible.
func (w *World) stepHazards() {
	if w.Player.Invincible {
		return
	}

	box := w.playerBox()
	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		ob := o.Box(w.Distance)
		if !box.Intersects(ob) {
			continue
		}

		switch o.Type {
		case ObstaclePlatform:
			continue
		case ObstaclePit:
			if w.clearsPit() {
				continue
			}
			w.applyDamage()
			return
		default: // wall, moving-wall, laser-gate
			w.applyDamage()
			return
		}
	}
}

// clearsPit reports whether the player is airborne high enough over a pit:
// the feet must be above the ground line by at least the clearance height,
// so a low jump does not clear a pit.
func (w *World) clearsPit() bool {
	return w.playerBox().Bottom() < w.groundY-w.cfg.Player.PitClearance
}

// applyDamage is the single damage transition: decrement lives, open the
// invincibility grace window, and at zero lives end the run.
func (w *World) applyDamage() {
	p := &w.Player
	p.Lives--
	p.Invincible = true
	w.schedule(w.cfg.Player.InvincibilitySecs, effectClearInvincibility, 0)

	if p.Lives <= 0 {
		p.Lives = 0
		w.enterGameOver()
	}
}
