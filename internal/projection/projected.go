package projection

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/starcatch/internal/physics"
)

// Projected un-projects pointer pixels through a perspective camera onto the
// plane z = PlaneZ.
type Projected struct {
	Camera *Camera
	PlaneZ float64
	width  int
	height int
}

// NewProjected returns a translator for cam onto the plane z = planeZ.
func NewProjected(cam *Camera, planeZ float64, width, height int) *Projected {
	p := &Projected{Camera: cam, PlaneZ: planeZ}
	p.Resize(width, height)
	return p
}

// Translate implements Translator. The pointer is converted to normalised
// device coordinates, un-projected at mid depth and the ray from the camera
// through that point is intersected with the plane.
func (p *Projected) Translate(px, py float64) (mgl64.Vec3, error) {
	win := mgl64.Vec3{px, float64(p.height) - py, 0.5}
	point, err := mgl64.UnProject(win, p.Camera.View(), p.Camera.Projection(), 0, 0, p.width, p.height)
	if err != nil {
		return mgl64.Vec3{}, fmt.Errorf("unproject (%v, %v): %w", px, py, err)
	}

	origin := p.Camera.Position
	dir := point.Sub(origin)
	if math.Abs(dir[2]) < 1e-12 {
		return mgl64.Vec3{}, ErrParallelRay
	}
	t := (p.PlaneZ - origin[2]) / dir[2]
	if t < 0 {
		return mgl64.Vec3{}, fmt.Errorf("%w: plane is behind the camera", ErrParallelRay)
	}

	hit := origin.Add(dir.Mul(t))
	hit[2] = p.PlaneZ
	return hit, nil
}

// ToScreen implements Translator.
func (p *Projected) ToScreen(v mgl64.Vec3) (float64, float64) {
	return p.Camera.Project(v, p.width, p.height)
}

// PixelsPerUnit implements Translator.
func (p *Projected) PixelsPerUnit(z float64) float64 {
	u := p.Camera.UnitsPerPixel(z, p.height)
	if u == 0 {
		return 0
	}
	return 1 / u
}

// Resize implements Translator and keeps the camera aspect in step.
func (p *Projected) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.width, p.height = width, height
	p.Camera.SetAspect(float64(width) / float64(height))
}

// Bounds implements Translator: the visible part of the play plane.
func (p *Projected) Bounds() physics.Rect {
	return p.Camera.VisibleBounds(p.PlaneZ)
}
