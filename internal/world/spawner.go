package world

import (
	"time"

	"github.com/tomz197/starcatch/internal/config"
)

// SpawnTimer decides when a new star is due.
type SpawnTimer struct {
	interval time.Duration
	policy   config.SpawnPolicy
	last     time.Time
}

// NewSpawnTimer creates a timer armed at start. A zero interval never fires.
func NewSpawnTimer(interval time.Duration, policy config.SpawnPolicy, start time.Time) *SpawnTimer {
	return &SpawnTimer{
		interval: interval,
		policy:   policy,
		last:     start,
	}
}

// Due returns how many stars should spawn at now and re-arms the timer.
//
// With SpawnCatchUp every whole elapsed interval yields one spawn and the
// anchor advances by exactly one interval each, so a window of length W
// produces floor(W/interval) spawns regardless of tick granularity.
// With SpawnReset at most one spawn is due and the anchor jumps to now.
func (t *SpawnTimer) Due(now time.Time) int {
	if t.interval <= 0 {
		return 0
	}
	elapsed := now.Sub(t.last)
	if elapsed < t.interval {
		return 0
	}
	if t.policy == config.SpawnReset {
		t.last = now
		return 1
	}
	n := int(elapsed / t.interval)
	t.last = t.last.Add(time.Duration(n) * t.interval)
	return n
}

// Reset re-arms the timer at now.
func (t *SpawnTimer) Reset(now time.Time) {
	t.last = now
}
