package drifter

// evaluateProgression checks the current score against the dimension
// threshold each tick while playing. Completing a non-final dimension halts
// the clock on the LevelComplete screen; completing the final one ends the
// mission. The comparison uses >= so a gateway bonus can jump straight
// across a threshold.
func (w *World) evaluateProgression() {
	if !w.Playing {
		return
	}

	n := w.LevelIndex + 1
	if w.ScoreF < float64(n*ScorePerLevel) {
		return
	}

	w.CompletedLevelName = w.level().Name
	w.Playing = false
	if n < len(dimensions) {
		w.LevelComplete = true
	} else {
		w.MissionComplete = true
	}
}

// advanceLevel leaves LevelComplete: bump the dimension, adopt its speed,
// restart the spawn cadence, resume playing. Driven externally after the
// countdown; a no-op in any other phase.
func (w *World) advanceLevel() {
	if !w.LevelComplete {
		return
	}
	w.LevelComplete = false
	w.CompletedLevelName = ""
	w.LevelIndex++
	w.Speed = w.level().Speed
	w.spawnTimer = 0
	w.Playing = true
}

// enterGameOver is the terminal transition out of the damage path. The World
// is left intact for display; only the clock stops.
func (w *World) enterGameOver() {
	w.GameOver = true
	w.Playing = false
}

// LevelProgress returns the fraction of the current dimension completed,
// always in [0, 1].
func (w *World) LevelProgress() float64 {
	base := float64(w.LevelIndex * ScorePerLevel)
	frac := (w.ScoreF - base) / float64(ScorePerLevel)
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}
