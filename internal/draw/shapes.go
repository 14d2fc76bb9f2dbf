package draw

import (
	"math"
)

// Point represents a 2D pixel coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Palette entries used by the game.
const (
	ColorPlayer Color = 45  // Cyan
	ColorFlash  Color = 231 // White
	ColorStar   Color = 220 // Gold
)

// grayRamp is the first of the 24 greyscale entries of the 256-colour palette.
const grayRamp = 232

// Gray returns a greyscale palette entry for an intensity between 0.0 (black) and 1.0 (white).
func Gray(intensity float64) Color {
	intensity = math.Max(0, math.Min(1, intensity))
	return Color(grayRamp + int(math.Round(intensity*23)))
}

// RotatedSquare fills dst with the four corners of a square of the given side
// centred on c and rotated by angle radians. dst must have length 4.
func RotatedSquare(dst []Point, c Point, side, angle float64) []Point {
	h := side / 2
	sin, cos := math.Sincos(angle)
	corners := [4][2]float64{{-h, -h}, {h, -h}, {h, h}, {-h, h}}
	for i, k := range corners {
		dst[i] = Point{
			X: c.X + k[0]*cos - k[1]*sin,
			Y: c.Y + k[0]*sin + k[1]*cos,
		}
	}
	return dst
}
