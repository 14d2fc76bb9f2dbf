package world

import (
	"math"
	"time"

	"github.com/tomz197/starcatch/internal/config"
	"github.com/tomz197/starcatch/internal/object"
	"github.com/tomz197/starcatch/internal/physics"
)

// Tick advances the session by one frame. dt is the measured frame time; it
// only feeds cosmetic timers in TimerDelta mode. Motion is per tick.
//
// Collisions are tested against positions as they were at the start of the
// tick, so anything touching the player when the frame began is collected.
func (w *World) Tick(dt time.Duration) TickResult {
	before := w.player.Score

	var res TickResult
	res.Collected = w.collect()

	w.updatePlayer()
	w.updateStars()

	res.Spawned = w.spawnDue()
	w.FlushSpawned()

	w.updateFlash(dt)
	w.ticks++

	if w.player.Score != before {
		res.ScoreChanged = true
		w.pushScore()
	}
	return res
}

// collect removes every star whose circle overlaps the player's.
func (w *World) collect() int {
	playerR, starR := w.cfg.HitRadii()
	collected := 0

	kept := w.stars[:0] // reuse backing array
	for _, s := range w.stars {
		if physics.CirclesOverlap(w.player.Position, playerR, s.Position, starR) {
			collected++
			w.collected(s)
			continue
		}
		kept = append(kept, s)
	}
	clear(w.stars[len(kept):])
	w.stars = kept

	return collected
}

// collected applies the effects of one collection to the player.
func (w *World) collected(s *object.Star) {
	if w.cfg.Features.Grow {
		w.player.Grow(w.cfg.GrowthFactor)
	}
	if w.cfg.ScoreMode == config.ScoreCount {
		w.player.Score++
	} else {
		w.rescore()
	}
	if w.cfg.Features.Flash {
		w.player.StartFlash(w.cfg.FlashDuration)
	}
	if w.onCollect != nil {
		w.onCollect(s)
	}
}

func (w *World) updatePlayer() {
	w.player.Approach(w.cfg.LerpFactor)
	w.player.Spin(w.cfg.SpinRate)

	if w.cfg.Features.Shrink && w.player.Shrink(w.cfg.ShrinkRate, w.cfg.MinScale) {
		w.rescore()
	}
}

func (w *World) updateStars() {
	for _, s := range w.stars {
		if w.cfg.Features.Flee {
			s.Flee(w.cfg.FleeStep, w.bounds)
		}
		s.Spin(w.cfg.StarSpinRate)
	}
}

// spawnDue queues every star the timer says is due, up to MaxStars.
func (w *World) spawnDue() int {
	due := w.spawn.Due(w.clock.Now())
	spawned := 0
	for i := 0; i < due; i++ {
		if w.cfg.MaxStars > 0 && len(w.stars)+len(w.toSpawn) >= w.cfg.MaxStars {
			break
		}
		w.Spawn(w.newStar())
		spawned++
	}
	return spawned
}

func (w *World) updateFlash(dt time.Duration) {
	step := w.cfg.FixedStep
	if w.cfg.TimerMode == config.TimerDelta {
		step = dt.Seconds()
	}
	w.player.TickFlash(step)
}

// rescore derives the score from scale in ScoreScale mode.
func (w *World) rescore() {
	if w.cfg.ScoreMode == config.ScoreScale {
		w.player.Score = int(math.Round(w.player.Scale * config.ScalePoints))
	}
}

func (w *World) pushScore() {
	if w.display != nil {
		w.display.ShowScore(w.ScoreText())
	}
}
