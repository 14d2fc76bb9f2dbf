package projection

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/starcatch/internal/config"
	"github.com/tomz197/starcatch/internal/physics"
)

var (
	// ErrInvalidCamera is returned for unusable camera parameters.
	ErrInvalidCamera = errors.New("invalid camera")
	// ErrParallelRay is returned when the pointer ray does not meet the play
	// plane in front of the camera.
	ErrParallelRay = errors.New("pointer ray does not meet the plane")
)

// Camera is a perspective camera looking from Position at Target with +Y up.
type Camera struct {
	FOV      float64 // Vertical field of view in degrees
	Aspect   float64
	Near     float64
	Far      float64
	Position mgl64.Vec3
	Target   mgl64.Vec3
}

// NewCamera places a camera on the +Z axis at cfg.Distance looking at the origin.
func NewCamera(cfg config.Camera, aspect float64) (*Camera, error) {
	if cfg.FOV <= 0 || cfg.FOV >= 180 || cfg.Near <= 0 || cfg.Far <= cfg.Near || cfg.Distance <= 0 {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidCamera, cfg)
	}
	if aspect <= 0 {
		return nil, fmt.Errorf("%w: aspect %v", ErrInvalidCamera, aspect)
	}
	return &Camera{
		FOV:      cfg.FOV,
		Aspect:   aspect,
		Near:     cfg.Near,
		Far:      cfg.Far,
		Position: mgl64.Vec3{0, 0, cfg.Distance},
	}, nil
}

// SetAspect updates the aspect ratio after a viewport resize. Non-positive
// values are ignored.
func (c *Camera) SetAspect(aspect float64) {
	if aspect > 0 {
		c.Aspect = aspect
	}
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, mgl64.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix.
func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// Project returns the pixel position of a world point in a width x height
// viewport, origin top left.
func (c *Camera) Project(v mgl64.Vec3, width, height int) (float64, float64) {
	win := mgl64.Project(v, c.View(), c.Projection(), 0, 0, width, height)
	return win[0], float64(height) - win[1]
}

// UnitsPerPixel returns how many world units one pixel spans at depth z in
// a viewport height pixels tall.
func (c *Camera) UnitsPerPixel(z float64, height int) float64 {
	if height <= 0 {
		return 0
	}
	return 2 * c.halfHeight(z) / float64(height)
}

// VisibleBounds returns the part of the plane z = planeZ inside the frustum.
func (c *Camera) VisibleBounds(planeZ float64) physics.Rect {
	halfH := c.halfHeight(planeZ)
	return physics.Rect{
		MinX: c.Position[0] - halfH*c.Aspect,
		MinY: c.Position[1] - halfH,
		MaxX: c.Position[0] + halfH*c.Aspect,
		MaxY: c.Position[1] + halfH,
	}
}

func (c *Camera) halfHeight(z float64) float64 {
	return math.Abs(c.Position[2]-z) * math.Tan(mgl64.DegToRad(c.FOV)/2)
}
