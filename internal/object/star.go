package object

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/starcatch/internal/physics"
)

// Star is a collectible. Direction is a unit vector, or zero for a star that never moves.
type Star struct {
	Position  mgl64.Vec3
	Direction mgl64.Vec3
	Rotation  float64
}

// NewStar creates a stationary star at pos.
func NewStar(pos mgl64.Vec3) *Star {
	return &Star{Position: pos}
}

// NewFleeingStar creates a star at pos that retreats along the line from the
// given player position through pos.
func NewFleeingStar(pos, player mgl64.Vec3) *Star {
	return &Star{
		Position:  pos,
		Direction: physics.Direction(player, pos),
	}
}

// Flee moves the star step units along its direction, then stops it at the bounds.
func (s *Star) Flee(step float64, bounds physics.Rect) {
	s.Position = bounds.Clamp(s.Position.Add(s.Direction.Mul(step)))
}

// Spin advances the cosmetic rotation.
func (s *Star) Spin(rate float64) {
	if rate == 0 {
		return
	}
	s.Rotation = math.Mod(s.Rotation+rate, 2*math.Pi)
}
