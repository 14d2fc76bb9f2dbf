package object

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/starcatch/internal/physics"
)

// BackdropStar is a decorative point behind the play plane. It never collides.
type BackdropStar struct {
	Position   mgl64.Vec3
	Brightness float64 // 0.3 to 1.0
}

// NewBackdrop scatters n stars uniformly over the region at depth z.
func NewBackdrop(n int, rng *rand.Rand, region physics.Rect, z float64) []BackdropStar {
	stars := make([]BackdropStar, n)
	for i := range stars {
		stars[i] = BackdropStar{
			Position:   region.RandomPoint(rng, z),
			Brightness: 0.3 + rng.Float64()*0.7,
		}
	}
	return stars
}
