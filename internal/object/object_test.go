package object

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/starcatch/internal/physics"
)

func TestPlayerShrinkFloors(t *testing.T) {
	p := NewPlayer(mgl64.Vec3{})
	p.Scale = 0.1005

	if !p.Shrink(0.001, 0.1) {
		t.Fatal("Shrink reported no change")
	}
	if p.Scale != 0.1 {
		t.Fatalf("scale = %v, want 0.1", p.Scale)
	}
	if p.Shrink(0.001, 0.1) {
		t.Fatal("Shrink at floor reported a change")
	}
}

func TestPlayerGrowAfterFloor(t *testing.T) {
	p := NewPlayer(mgl64.Vec3{})
	p.Scale = 0.1

	p.Grow(1.1)

	if math.Abs(p.Scale-0.11) > 1e-12 {
		t.Fatalf("scale = %v, want 0.11", p.Scale)
	}
}

func TestPlayerFlash(t *testing.T) {
	p := NewPlayer(mgl64.Vec3{})
	if p.Appearance() != AppearanceNormal {
		t.Fatalf("initial appearance = %v, want normal", p.Appearance())
	}

	p.StartFlash(0.05)
	p.TickFlash(0.016)
	if p.Appearance() != AppearanceFlash {
		t.Fatalf("appearance = %v, want flash", p.Appearance())
	}
	for i := 0; i < 5; i++ {
		p.TickFlash(0.016)
	}
	if p.FlashTime != 0 {
		t.Fatalf("flash time = %v, want 0", p.FlashTime)
	}
	if p.Appearance() != AppearanceNormal {
		t.Fatalf("appearance = %v, want normal", p.Appearance())
	}
}

func TestAppearanceOfPlayerCopy(t *testing.T) {
	p := NewPlayer(mgl64.Vec3{})
	p.StartFlash(0.2)
	snapshot := func() Player { return *p }

	if got := snapshot().Appearance(); got != AppearanceFlash {
		t.Fatalf("copy appearance = %v, want flash", got)
	}
}

func TestPlayerSpinWraps(t *testing.T) {
	p := NewPlayer(mgl64.Vec3{})
	for i := 0; i < 1000; i++ {
		p.Spin(0.01)
	}
	if p.Rotation < 0 || p.Rotation >= 2*math.Pi {
		t.Fatalf("rotation = %v, want within [0, 2pi)", p.Rotation)
	}
}

func TestStarFleeClamps(t *testing.T) {
	bounds := physics.RectAround(1, 1)
	s := NewFleeingStar(mgl64.Vec3{0.5, 0, 0}, mgl64.Vec3{})

	for i := 0; i < 10; i++ {
		s.Flee(0.2, bounds)
	}

	if s.Position != (mgl64.Vec3{1, 0, 0}) {
		t.Fatalf("position = %v, want [1 0 0]", s.Position)
	}
}

func TestStationaryStarDoesNotMove(t *testing.T) {
	s := NewStar(mgl64.Vec3{2, 3, 0})
	s.Flee(1, physics.RectAround(10, 10))
	if s.Position != (mgl64.Vec3{2, 3, 0}) {
		t.Fatalf("position = %v, want [2 3 0]", s.Position)
	}
}

func TestNewBackdrop(t *testing.T) {
	region := physics.RectAround(4, 2)
	stars := NewBackdrop(50, rand.New(rand.NewSource(1)), region, -10)

	if len(stars) != 50 {
		t.Fatalf("len = %d, want 50", len(stars))
	}
	for _, s := range stars {
		if !region.Contains(s.Position) || s.Position[2] != -10 {
			t.Fatalf("star at %v outside region", s.Position)
		}
		if s.Brightness < 0.3 || s.Brightness > 1 {
			t.Fatalf("brightness = %v, want in [0.3, 1]", s.Brightness)
		}
	}
}
