// Package object defines the game entities and their per-tick updates.
package object

import "github.com/go-gl/mathgl/mgl64"

// Kind identifies what a Renderable depicts.
type Kind int

const (
	KindPlayer   Kind = iota // Player shape (square / cube)
	KindStar                 // Collectible star
	KindBackdrop             // Decorative background star
)

// Appearance selects the material a renderer uses for a shape.
type Appearance int

const (
	AppearanceNormal Appearance = iota
	AppearanceFlash             // Highlight shown while the flash timer runs
	AppearanceDim               // Background detail
)

// Renderable is the read-only view of one shape handed to a renderer each frame.
type Renderable struct {
	Kind       Kind
	Position   mgl64.Vec3
	Rotation   float64 // Radians
	Scale      float64
	Size       float64 // Unscaled edge length or diameter in world units
	Appearance Appearance
}
