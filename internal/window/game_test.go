package window

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/starcatch/internal/config"
	"github.com/tomz197/starcatch/internal/world"
)

func newTestGame(t *testing.T, variant string) *Game {
	t.Helper()
	cfg, err := config.Preset(variant)
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	g, err := New(Options{
		Config: cfg,
		Width:  800,
		Height: 600,
		Logger: log.New(io.Discard),
		Clock:  world.NewManualClock(time.Unix(0, 0)),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestNewRejectsEmptyWindow(t *testing.T) {
	cfg, _ := config.Preset("classic")
	if _, err := New(Options{Config: cfg}); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestClassicPointerIsPixels(t *testing.T) {
	g := newTestGame(t, "classic")

	g.pointerAt(123, 456)

	if got := g.world.Player().Target; got != (mgl64.Vec3{123, 456, 0}) {
		t.Fatalf("target = %v, want [123 456 0]", got)
	}
}

func TestScorePushedOnCreate(t *testing.T) {
	g := newTestGame(t, "grow")
	if g.score != "Score: 100" {
		t.Fatalf("score = %q, want %q", g.score, "Score: 100")
	}
}

func TestLayoutRefitsBounds(t *testing.T) {
	g := newTestGame(t, "flee")
	before := g.world.Bounds()

	w, h := g.Layout(1600, 600)

	if w != 1600 || h != 600 {
		t.Fatalf("Layout = %dx%d, want 1600x600", w, h)
	}
	if after := g.world.Bounds(); after.MaxX <= before.MaxX {
		t.Fatalf("bounds after widening = %+v, before %+v", after, before)
	}
}

func TestStartResetsWorld(t *testing.T) {
	g := newTestGame(t, "classic")
	g.world.Tick(time.Millisecond)

	g.start()

	if !g.started || g.world.Ticks() != 0 {
		t.Fatalf("started=%v ticks=%d, want true/0", g.started, g.world.Ticks())
	}
}
