// Package projection maps pointer pixels to world positions and back.
package projection

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/starcatch/internal/config"
	"github.com/tomz197/starcatch/internal/physics"
)

// Translator converts between viewport pixels and world space for one game mode.
// Pixel coordinates have their origin at the top left with y pointing down.
type Translator interface {
	// Translate returns the world position under the pointer.
	Translate(px, py float64) (mgl64.Vec3, error)
	// ToScreen returns the pixel position of a world point.
	ToScreen(v mgl64.Vec3) (x, y float64)
	// PixelsPerUnit returns how many pixels one world unit covers at depth z.
	PixelsPerUnit(z float64) float64
	// Resize tells the translator the viewport changed.
	Resize(width, height int)
	// Bounds returns the world rectangle fleeing stars are clamped to.
	Bounds() physics.Rect
}

// New returns the translator for cfg.Mode sized to a width x height viewport.
func New(cfg config.Config, width, height int) (Translator, error) {
	if cfg.Mode != config.ModeProjected {
		d := NewDirect(cfg.Bounds)
		d.Resize(width, height)
		return d, nil
	}
	aspect := 1.0
	if width > 0 && height > 0 {
		aspect = float64(width) / float64(height)
	}
	cam, err := NewCamera(cfg.Camera, aspect)
	if err != nil {
		return nil, err
	}
	return NewProjected(cam, cfg.PlaneZ, width, height), nil
}

// Direct is the flat mapping: world coordinates are pixels of a fixed-size
// playfield. When the viewport has a different size the playfield is scaled
// uniformly to fit and centred.
type Direct struct {
	world physics.Rect
	scale float64
	offX  float64
	offY  float64
}

// NewDirect returns a mapping for the given playfield. Until Resize is called
// the viewport is assumed to match the playfield exactly.
func NewDirect(world physics.Rect) *Direct {
	d := &Direct{world: world}
	d.Resize(int(world.Width()), int(world.Height()))
	return d
}

// Translate implements Translator. The result has z = 0.
func (d *Direct) Translate(px, py float64) (mgl64.Vec3, error) {
	return mgl64.Vec3{
		(px-d.offX)/d.scale + d.world.MinX,
		(py-d.offY)/d.scale + d.world.MinY,
		0,
	}, nil
}

// ToScreen implements Translator.
func (d *Direct) ToScreen(v mgl64.Vec3) (float64, float64) {
	return (v[0]-d.world.MinX)*d.scale + d.offX, (v[1]-d.world.MinY)*d.scale + d.offY
}

// PixelsPerUnit implements Translator.
func (d *Direct) PixelsPerUnit(float64) float64 {
	return d.scale
}

// Resize implements Translator.
func (d *Direct) Resize(width, height int) {
	if width <= 0 || height <= 0 || d.world.Width() <= 0 || d.world.Height() <= 0 {
		d.scale = 1
		d.offX, d.offY = 0, 0
		return
	}
	d.scale = math.Min(float64(width)/d.world.Width(), float64(height)/d.world.Height())
	d.offX = (float64(width) - d.world.Width()*d.scale) / 2
	d.offY = (float64(height) - d.world.Height()*d.scale) / 2
}

// Bounds implements Translator. The playfield does not change with the viewport.
func (d *Direct) Bounds() physics.Rect {
	return d.world
}
