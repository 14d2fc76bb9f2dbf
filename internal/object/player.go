package object

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/starcatch/internal/physics"
)

// Player is the shape steered toward the pointer.
type Player struct {
	Position  mgl64.Vec3
	Target    mgl64.Vec3 // Last pointer position in world space
	Scale     float64
	Rotation  float64 // Cosmetic spin in radians
	Score     int
	FlashTime float64 // Seconds of highlight remaining
}

// NewPlayer creates a player at rest at pos with unit scale.
func NewPlayer(pos mgl64.Vec3) *Player {
	return &Player{
		Position: pos,
		Target:   pos,
		Scale:    1,
	}
}

// Approach moves the player the given fraction of the way to its target.
// Repeated calls converge on the target without reaching or passing it.
func (p *Player) Approach(factor float64) {
	p.Position = physics.Lerp(p.Position, p.Target, factor)
}

// Spin advances the cosmetic rotation, keeping it within one turn.
func (p *Player) Spin(rate float64) {
	if rate == 0 {
		return
	}
	p.Rotation = math.Mod(p.Rotation+rate, 2*math.Pi)
}

// Shrink reduces the scale by rate, stopping at minScale.
// Returns true if the scale changed.
func (p *Player) Shrink(rate, minScale float64) bool {
	if rate <= 0 || p.Scale <= minScale {
		return false
	}
	p.Scale = math.Max(p.Scale-rate, minScale)
	return true
}

// Grow multiplies the scale by factor.
func (p *Player) Grow(factor float64) {
	p.Scale *= factor
}

// StartFlash (re)starts the highlight timer.
func (p *Player) StartFlash(duration float64) {
	p.FlashTime = duration
}

// TickFlash counts the highlight timer down by step seconds, stopping at zero.
func (p *Player) TickFlash(step float64) {
	if p.FlashTime <= 0 {
		return
	}
	p.FlashTime -= step
	if p.FlashTime < 0 {
		p.FlashTime = 0
	}
}

// Appearance returns the material the renderer should use this frame.
func (p Player) Appearance() Appearance {
	if p.FlashTime > 0 {
		return AppearanceFlash
	}
	return AppearanceNormal
}
