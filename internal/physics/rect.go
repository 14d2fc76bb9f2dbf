package physics

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Rect is an axis-aligned rectangle in the XY plane.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// RectFromSize returns the rectangle spanning [0,w] x [0,h].
func RectFromSize(w, h float64) Rect {
	return Rect{MaxX: w, MaxY: h}
}

// RectAround returns the rectangle spanning [-halfW,halfW] x [-halfH,halfH].
func RectAround(halfW, halfH float64) Rect {
	return Rect{MinX: -halfW, MinY: -halfH, MaxX: halfW, MaxY: halfH}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Empty reports whether the rectangle has a negative extent on either axis.
func (r Rect) Empty() bool {
	return r.MaxX < r.MinX || r.MaxY < r.MinY
}

// Intersect returns the overlap of r and o. The result is Empty when they
// do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		MinX: max(r.MinX, o.MinX),
		MinY: max(r.MinY, o.MinY),
		MaxX: min(r.MaxX, o.MaxX),
		MaxY: min(r.MaxY, o.MaxY),
	}
}

// Contains reports whether the XY part of v lies inside the rectangle (edges included).
func (r Rect) Contains(v mgl64.Vec3) bool {
	return v[0] >= r.MinX && v[0] <= r.MaxX && v[1] >= r.MinY && v[1] <= r.MaxY
}

// Clamp stops v at the rectangle edges component-wise. Z is left untouched.
func (r Rect) Clamp(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		mgl64.Clamp(v[0], r.MinX, r.MaxX),
		mgl64.Clamp(v[1], r.MinY, r.MaxY),
		v[2],
	}
}

// RandomPoint returns a uniformly distributed point inside the rectangle at depth z.
func (r Rect) RandomPoint(rng *rand.Rand, z float64) mgl64.Vec3 {
	return mgl64.Vec3{
		r.MinX + rng.Float64()*r.Width(),
		r.MinY + rng.Float64()*r.Height(),
		z,
	}
}
