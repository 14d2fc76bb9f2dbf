package projection

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/starcatch/internal/config"
	"github.com/tomz197/starcatch/internal/physics"
)

const eps = 1e-6

func sphereTranslator(t *testing.T, w, h int) *Projected {
	t.Helper()
	cfg, err := config.Preset("sphere")
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	tr, err := New(cfg, w, h)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tr.(*Projected)
}

func TestDirectIdentityAtNativeSize(t *testing.T) {
	d := NewDirect(physics.RectFromSize(800, 600))

	got, err := d.Translate(123, 456)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != (mgl64.Vec3{123, 456, 0}) {
		t.Fatalf("Translate = %v, want [123 456 0]", got)
	}
	if x, y := d.ToScreen(got); x != 123 || y != 456 {
		t.Fatalf("ToScreen = (%v, %v), want (123, 456)", x, y)
	}
}

func TestDirectLetterboxes(t *testing.T) {
	d := NewDirect(physics.RectFromSize(800, 600))
	d.Resize(400, 400)

	// Scale 0.5, playfield 400x300 centred vertically.
	if got := d.PixelsPerUnit(0); got != 0.5 {
		t.Fatalf("PixelsPerUnit = %v, want 0.5", got)
	}
	got, _ := d.Translate(200, 200)
	if !got.ApproxEqual(mgl64.Vec3{400, 300, 0}) {
		t.Fatalf("centre maps to %v, want [400 300 0]", got)
	}
	if x, y := d.ToScreen(mgl64.Vec3{0, 0, 0}); x != 0 || y != 50 {
		t.Fatalf("origin on screen = (%v, %v), want (0, 50)", x, y)
	}
	if d.Bounds() != physics.RectFromSize(800, 600) {
		t.Fatalf("Bounds changed with viewport: %+v", d.Bounds())
	}
}

func TestProjectedCentreHitsOrigin(t *testing.T) {
	p := sphereTranslator(t, 800, 600)

	got, err := p.Translate(400, 300)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if math.Abs(got[0]) > eps || math.Abs(got[1]) > eps || got[2] != 0 {
		t.Fatalf("centre maps to %v, want origin", got)
	}
}

func TestProjectedEdgesMatchVisibleBounds(t *testing.T) {
	p := sphereTranslator(t, 800, 600)
	b := p.Bounds()

	right, err := p.Translate(800, 300)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if math.Abs(right[0]-b.MaxX) > eps {
		t.Fatalf("right edge x = %v, want %v", right[0], b.MaxX)
	}

	top, err := p.Translate(400, 0)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	// Screen y grows downward, world y grows upward.
	if math.Abs(top[1]-b.MaxY) > eps {
		t.Fatalf("top edge y = %v, want %v", top[1], b.MaxY)
	}

	wantHalfH := 5 * math.Tan(mgl64.DegToRad(75)/2)
	if math.Abs(b.MaxY-wantHalfH) > eps || math.Abs(b.MaxX-wantHalfH*800/600) > eps {
		t.Fatalf("bounds = %+v, want half extents %v x %v", b, wantHalfH*800/600, wantHalfH)
	}
}

func TestProjectedRoundTrip(t *testing.T) {
	p := sphereTranslator(t, 640, 480)

	for _, px := range [][2]float64{{10, 20}, {320, 240}, {600, 400}, {0, 479}} {
		world, err := p.Translate(px[0], px[1])
		if err != nil {
			t.Fatalf("Translate(%v): %v", px, err)
		}
		x, y := p.ToScreen(world)
		if math.Abs(x-px[0]) > 1e-4 || math.Abs(y-px[1]) > 1e-4 {
			t.Fatalf("round trip of %v = (%v, %v)", px, x, y)
		}
	}
}

func TestProjectedPinsPlaneZ(t *testing.T) {
	p := sphereTranslator(t, 800, 600)
	p.PlaneZ = -2

	got, err := p.Translate(100, 100)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got[2] != -2 {
		t.Fatalf("z = %v, want -2", got[2])
	}
}

func TestProjectedResizeUpdatesAspect(t *testing.T) {
	p := sphereTranslator(t, 800, 600)
	before := p.Bounds()

	p.Resize(1200, 600)

	if p.Camera.Aspect != 2 {
		t.Fatalf("aspect = %v, want 2", p.Camera.Aspect)
	}
	after := p.Bounds()
	if after.MaxX <= before.MaxX || math.Abs(after.MaxY-before.MaxY) > eps {
		t.Fatalf("bounds after widening = %+v, before %+v", after, before)
	}
}

func TestProjectedPixelsPerUnit(t *testing.T) {
	p := sphereTranslator(t, 800, 600)

	want := 600 / (2 * 5 * math.Tan(mgl64.DegToRad(75)/2))
	if got := p.PixelsPerUnit(0); math.Abs(got-want) > eps {
		t.Fatalf("PixelsPerUnit = %v, want %v", got, want)
	}
	if p.PixelsPerUnit(-10) >= p.PixelsPerUnit(0) {
		t.Fatal("farther plane should cover fewer pixels per unit")
	}
}

func TestNewCameraRejectsBadParameters(t *testing.T) {
	tests := []config.Camera{
		{FOV: 0, Near: 0.1, Far: 100, Distance: 5},
		{FOV: 180, Near: 0.1, Far: 100, Distance: 5},
		{FOV: 75, Near: 0, Far: 100, Distance: 5},
		{FOV: 75, Near: 10, Far: 1, Distance: 5},
		{FOV: 75, Near: 0.1, Far: 100, Distance: 0},
	}
	for _, cam := range tests {
		if _, err := NewCamera(cam, 1); !errors.Is(err, ErrInvalidCamera) {
			t.Errorf("NewCamera(%+v) err = %v, want ErrInvalidCamera", cam, err)
		}
	}
	if _, err := NewCamera(config.Camera{FOV: 75, Near: 0.1, Far: 100, Distance: 5}, 0); !errors.Is(err, ErrInvalidCamera) {
		t.Errorf("zero aspect err = %v, want ErrInvalidCamera", err)
	}
}

func TestProjectedPlaneBehindCamera(t *testing.T) {
	p := sphereTranslator(t, 800, 600)
	p.PlaneZ = 10

	if _, err := p.Translate(400, 300); !errors.Is(err, ErrParallelRay) {
		t.Fatalf("err = %v, want ErrParallelRay", err)
	}
}
