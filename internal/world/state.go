// Package world owns one game session and advances it one tick at a time.
package world

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/starcatch/internal/config"
	"github.com/tomz197/starcatch/internal/object"
	"github.com/tomz197/starcatch/internal/physics"
)

// backdropDepth is how far behind the play plane the background field sits
// in projected mode.
const backdropDepth = 10.0

// ScoreDisplay receives the formatted score whenever it changes.
type ScoreDisplay interface {
	ShowScore(text string)
}

// CollectHook is called once for every star collected, during the tick.
type CollectHook func(star *object.Star)

// Option configures a World.
type Option func(*World)

// WithClock sets the clock used by the spawn timer. Defaults to SystemClock.
func WithClock(c Clock) Option {
	return func(w *World) { w.clock = c }
}

// WithRand sets the random source for star placement.
func WithRand(r *rand.Rand) Option {
	return func(w *World) { w.rng = r }
}

// WithScoreDisplay sets the sink that is pushed "Score: N" on every change.
func WithScoreDisplay(d ScoreDisplay) Option {
	return func(w *World) { w.display = d }
}

// WithCollectHook registers a callback for collections.
func WithCollectHook(h CollectHook) Option {
	return func(w *World) { w.onCollect = h }
}

// TickResult summarises what happened during one tick.
type TickResult struct {
	Collected    int
	Spawned      int
	ScoreChanged bool
}

// World holds the player, the active set of stars and the spawn timer.
// It is owned by a single goroutine; renderers only read it between ticks.
type World struct {
	cfg      config.Config
	player   *object.Player
	stars    []*object.Star
	toSpawn  []*object.Star // Stars to add after the current tick
	backdrop []object.BackdropStar
	bounds   physics.Rect
	region   physics.Rect
	spawn    *SpawnTimer
	ticks    uint64

	clock     Clock
	rng       *rand.Rand
	display   ScoreDisplay
	onCollect CollectHook
}

// New creates a session from cfg. The config is assumed valid.
func New(cfg config.Config, opts ...Option) *World {
	w := &World{
		cfg:    cfg,
		bounds: cfg.Bounds,
		region: cfg.SpawnRegion,
		clock:  SystemClock{},
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	w.Reset()
	return w
}

// Reset starts the session over: fresh player, initial stars, backdrop and timer.
func (w *World) Reset() {
	w.player = object.NewPlayer(w.cfg.PlayerStart)
	w.rescore()
	w.stars = w.stars[:0]
	w.toSpawn = w.toSpawn[:0]
	for i := 0; i < w.cfg.NumStars; i++ {
		w.stars = append(w.stars, w.newStar())
	}
	w.backdrop = nil
	if w.cfg.Features.Backdrop {
		w.backdrop = object.NewBackdrop(w.cfg.NumBackgroundStars, w.rng, w.backdropRegion(), w.backdropZ())
	}
	if w.spawn == nil {
		w.spawn = NewSpawnTimer(w.cfg.SpawnInterval, w.cfg.SpawnPolicy, w.clock.Now())
	} else {
		w.spawn.Reset(w.clock.Now())
	}
	w.ticks = 0
	w.pushScore()
}

// Spawn queues a star to be added after the current tick.
func (w *World) Spawn(s *object.Star) {
	w.toSpawn = append(w.toSpawn, s)
}

// FlushSpawned adds all queued stars to the active set and clears the queue.
func (w *World) FlushSpawned() {
	w.stars = append(w.stars, w.toSpawn...)
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]
}

// SetTarget records the latest pointer position in world space. Last write wins.
func (w *World) SetTarget(v mgl64.Vec3) {
	w.player.Target = v
}

// Nudge shifts the target by dx, dy key steps.
func (w *World) Nudge(dx, dy float64) {
	w.player.Target = w.player.Target.Add(mgl64.Vec3{dx * w.cfg.KeyStep, dy * w.cfg.KeyStep, 0})
}

// SetBounds replaces the rectangle fleeing stars are clamped to.
// Front ends call this when the viewport changes size.
func (w *World) SetBounds(r physics.Rect) {
	w.bounds = r
}

// Bounds returns the current flee clamp rectangle.
func (w *World) Bounds() physics.Rect {
	return w.bounds
}

// Config returns the session configuration.
func (w *World) Config() config.Config {
	return w.cfg
}

// Player returns a copy of the player state.
func (w *World) Player() object.Player {
	return *w.player
}

// Stars returns a copy of the active set.
func (w *World) Stars() []object.Star {
	out := make([]object.Star, len(w.stars))
	for i, s := range w.stars {
		out[i] = *s
	}
	return out
}

// StarCount returns the size of the active set.
func (w *World) StarCount() int {
	return len(w.stars)
}

// Score returns the current score.
func (w *World) Score() int {
	return w.player.Score
}

// ScoreText returns the score as shown to the player.
func (w *World) ScoreText() string {
	return FormatScore(w.player.Score)
}

// Ticks returns the number of ticks since the last reset.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// FormatScore renders a score the way every front end displays it.
func FormatScore(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// Renderables appends the current frame's shapes to dst: backdrop first,
// then stars, then the player on top.
func (w *World) Renderables(dst []object.Renderable) []object.Renderable {
	for _, b := range w.backdrop {
		dst = append(dst, object.Renderable{
			Kind:       object.KindBackdrop,
			Position:   b.Position,
			Scale:      b.Brightness,
			Size:       w.cfg.StarSize * 0.2,
			Appearance: object.AppearanceDim,
		})
	}
	for _, s := range w.stars {
		dst = append(dst, object.Renderable{
			Kind:     object.KindStar,
			Position: s.Position,
			Rotation: s.Rotation,
			Scale:    1,
			Size:     w.cfg.StarSize,
		})
	}
	return append(dst, object.Renderable{
		Kind:       object.KindPlayer,
		Position:   w.player.Position,
		Rotation:   w.player.Rotation,
		Scale:      w.player.Scale,
		Size:       w.cfg.PlayerSize,
		Appearance: w.player.Appearance(),
	})
}

// newStar places a star uniformly in the visible part of the spawn region.
// With flee enabled it heads away from where the player is now.
func (w *World) newStar() *object.Star {
	pos := w.spawnArea().RandomPoint(w.rng, w.cfg.PlaneZ)
	if w.cfg.Features.Flee {
		return object.NewFleeingStar(w.bounds.Clamp(pos), w.player.Position)
	}
	return object.NewStar(pos)
}

// spawnArea is the spawn region cut down to the current bounds. If the view
// has shrunk past the region entirely, the whole view is used.
func (w *World) spawnArea() physics.Rect {
	if area := w.region.Intersect(w.bounds); !area.Empty() {
		return area
	}
	return w.bounds
}

func (w *World) backdropZ() float64 {
	if w.cfg.Mode == config.ModeProjected {
		return w.cfg.PlaneZ - backdropDepth
	}
	return w.cfg.PlaneZ
}

// backdropRegion widens the bounds so the field still fills the view at its depth.
func (w *World) backdropRegion() physics.Rect {
	if w.cfg.Mode != config.ModeProjected {
		return w.bounds
	}
	k := (w.cfg.Camera.Distance + backdropDepth) / w.cfg.Camera.Distance
	return physics.Rect{
		MinX: w.bounds.MinX * k,
		MinY: w.bounds.MinY * k,
		MaxX: w.bounds.MaxX * k,
		MaxY: w.bounds.MaxY * k,
	}
}
