// Package physics provides distance, interpolation and bounds utilities.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Distance calculates the Euclidean distance between two points.
func Distance(a, b mgl64.Vec3) float64 {
	return math.Sqrt(DistanceSquared(a, b))
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b mgl64.Vec3) float64 {
	d := b.Sub(a)
	return d.Dot(d)
}

// CirclesOverlap checks if two circles overlap. Touching circles do not overlap.
func CirclesOverlap(a mgl64.Vec3, r1 float64, b mgl64.Vec3, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(a, b) < minDist*minDist
}

// Lerp moves from toward to by the fraction t of the remaining distance.
// For t in [0, 1] the result lies on the segment between the two points.
func Lerp(from, to mgl64.Vec3, t float64) mgl64.Vec3 {
	return from.Add(to.Sub(from).Mul(t))
}

// Direction returns the unit vector pointing from one point to another,
// or the zero vector when the points coincide.
func Direction(from, to mgl64.Vec3) mgl64.Vec3 {
	d := to.Sub(from)
	l := d.Len()
	if l == 0 {
		return mgl64.Vec3{}
	}
	return d.Mul(1 / l)
}
