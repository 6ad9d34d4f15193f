package drifter

import (
	"math"

	"github.com/chewishmasuf/PortalDrifterDashCross/internal/core"
)

// ObstacleType identifies the hazard class of an obstacle. The type decides
// both the spawn footprint and the collision dispatch.
type ObstacleType int

const (
	ObstacleWall       ObstacleType = iota // Elevated box near the floor; always damages
	ObstaclePit                            // Flush with the floor; cleared by a high enough jump
	ObstacleMovingWall                     // Wall oscillating vertically with scrolled distance
	ObstacleLaserGate                      // Tall beam from the floor; always damages
	ObstaclePlatform                       // Traversable; the player can land on it
)

// String returns the obstacle type name.
func (t ObstacleType) String() string {
	switch t {
	case ObstacleWall:
		return "wall"
	case ObstaclePit:
		return "pit"
	case ObstacleMovingWall:
		return "moving-wall"
	case ObstacleLaserGate:
		return "laser-gate"
	case ObstaclePlatform:
		return "platform"
	default:
		return "unknown"
	}
}

// footprint is the per-type spawn geometry: box size plus the elevation of
// its bottom edge above the ground line.
type footprint struct {
	w, h      float64
	elevation float64
}

// The pit box reaches up from the ground so a running player intersects it;
// the clearance rule in stepHazards decides whether the hit counts.
var footprints = map[ObstacleType]footprint{
	ObstacleWall:       {w: 2, h: 4, elevation: 0},
	ObstaclePit:        {w: 6, h: 4, elevation: 0},
	ObstacleMovingWall: {w: 2, h: 3, elevation: 2},
	ObstacleLaserGate:  {w: 1, h: 6, elevation: 0},
	ObstaclePlatform:   {w: 8, h: 1, elevation: 3},
}

// Moving-wall oscillation: bounded sinusoid driven by cumulative scrolled
// distance, so it pauses with the clock and replays deterministically.
const (
	oscillationAmplitude = 2.0
	oscillationFrequency = 0.15 // radians per cell of distance
)

// Obstacle is a single hazard. The type is immutable; X is advanced by the
// scroll every tick.
type Obstacle struct {
	Type  ObstacleType
	X     float64 // Left edge
	BaseY float64 // Top edge before oscillation
	W, H  float64
	phase float64 // Oscillation phase offset (moving walls only)
}

// Box returns the obstacle's current collision box. Moving walls apply their
// distance-driven vertical offset; the collision test always sees the
// already-oscillated box.
func (o *Obstacle) Box(distance float64) core.RectF {
	y := o.BaseY
	if o.Type == ObstacleMovingWall {
		y += oscillationAmplitude * math.Sin(distance*oscillationFrequency+o.phase)
	}
	return core.NewRectF(o.X, y, o.W, o.H)
}

// stepSpawner runs the obstacle generator on its own cadence, independent of
// the frame tick. The accumulator is zeroed on level advance so the new
// dimension's cadence takes effect immediately.
func (w *World) stepSpawner(dt float64) {
	w.spawnTimer += dt
	interval := w.level().SpawnInterval
	for w.spawnTimer >= interval {
		w.spawnTimer -= interval
		w.spawnObstacle()
	}
}

// spawnObstacle places one obstacle at the spawn cursor and advances the
// cursor by the dynamic spacing formula. Faster dimensions get tighter
// average spacing, bounded below by MinGap to guarantee a reaction window.
func (w *World) spawnObstacle() {
	gen := w.cfg.Generator
	permitted := w.level().Obstacles
	t := permitted[w.rng.Intn(len(permitted))]
	fp := footprints[t]

	// Keep the cursor ahead of the visible field; clamping forward can only
	// widen a gap, never narrow it below MinGap.
	if w.cursorX < w.screenW+gen.LeadIn {
		w.cursorX = w.screenW + gen.LeadIn
	}

	o := Obstacle{
		Type:  t,
		X:     w.cursorX,
		BaseY: w.groundY - fp.elevation - fp.h,
		W:     fp.w,
		H:     fp.h,
	}
	if t == ObstacleMovingWall {
		o.phase = w.rng.Float64() * 2 * math.Pi
	}
	w.Obstacles = append(w.Obstacles, o)

	speedFactor := core.ClampF(w.Speed/gen.ReferenceMaxSpeed, 0, 1)
	spacing := gen.MinGap + (gen.MaxGap-gen.MinGap)*(1-speedFactor)
	spacing += w.rng.Float64() * gen.Jitter

	w.cursorX += o.W + spacing
}

// purgeMargin is how far past the left edge an obstacle's trailing edge must
// be before it is destroyed.
const purgeMargin = 4.0

// purgeObstacles removes obstacles fully scrolled past the visible field.
func (w *World) purgeObstacles() {
	kept := w.Obstacles[:0]
	for _, o := range w.Obstacles {
		if o.X+o.W > -purgeMargin {
			kept = append(kept, o)
		}
	}
	w.Obstacles = kept
}
