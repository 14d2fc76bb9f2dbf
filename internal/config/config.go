package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/starcatch/internal/physics"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid config")

// Mode selects how pointer coordinates map into world space.
type Mode int

const (
	ModeDirect    Mode = iota // World position equals pointer pixels (2D)
	ModeProjected             // Pointer is un-projected onto the play plane (3D)
)

// ScoreMode selects how the score is derived.
type ScoreMode int

const (
	ScoreCount ScoreMode = iota // One point per collected star
	ScoreScale                  // Score follows the player's scale
)

// TimerMode selects how cosmetic timers count down.
type TimerMode int

const (
	TimerFixed TimerMode = iota // Fixed step per tick, independent of frame time
	TimerDelta                  // Measured frame delta
)

// SpawnPolicy selects how the spawn timer is re-armed after a spawn.
type SpawnPolicy int

const (
	SpawnCatchUp SpawnPolicy = iota // Advance by one interval per spawn; remainder is kept
	SpawnReset                      // At most one spawn per tick; timer restarts at now
)

// ScalePoints is the score awarded per unit of player scale in ScoreScale mode.
const ScalePoints = 100

// Features toggles the optional behaviours of the update loop.
type Features struct {
	Flee     bool // Stars move away from where the player was when they spawned
	Flash    bool // Player flashes after each collection
	Shrink   bool // Player shrinks every tick
	Grow     bool // Player grows on each collection
	Backdrop bool // Decorative background star field
}

// Camera describes the perspective camera used in ModeProjected.
// The camera sits on the +Z axis at Distance and looks at the origin.
type Camera struct {
	FOV      float64 // Vertical field of view in degrees
	Near     float64
	Far      float64
	Distance float64
}

// Config is the tuning table for one game session.
type Config struct {
	Variant string
	Mode    Mode

	PlayerSize         float64
	StarSize           float64
	NumStars           int
	NumBackgroundStars int
	MaxStars           int // 0 = unlimited

	LerpFactor    float64 // Fraction of the remaining distance covered per tick
	ShrinkRate    float64 // Scale lost per tick
	MinScale      float64
	GrowthFactor  float64 // Scale multiplier per collection
	SpawnInterval time.Duration
	FlashDuration float64 // Seconds
	FixedStep     float64 // Seconds per tick in TimerFixed mode
	FleeStep      float64 // World units per tick
	SpinRate      float64 // Player radians per tick
	StarSpinRate  float64 // Star radians per tick
	KeyStep       float64 // Target shift per keyboard nudge

	Bounds      physics.Rect // Flee clamp rectangle
	SpawnRegion physics.Rect
	PlayerStart mgl64.Vec3
	PlaneZ      float64

	Features    Features
	ScoreMode   ScoreMode
	TimerMode   TimerMode
	SpawnPolicy SpawnPolicy
	Camera      Camera
}

// HitRadii returns the collision circle radii of the player and of a star.
// A star is caught when the circles overlap.
func (c Config) HitRadii() (player, star float64) {
	return c.PlayerSize / 2, c.StarSize / 2
}

// Validate checks that every setting is inside its usable range.
func (c Config) Validate() error {
	switch {
	case c.PlayerSize <= 0 || c.StarSize <= 0:
		return fmt.Errorf("%w: sizes must be positive", ErrInvalid)
	case c.NumStars < 0 || c.NumBackgroundStars < 0 || c.MaxStars < 0:
		return fmt.Errorf("%w: counts must not be negative", ErrInvalid)
	case c.LerpFactor <= 0 || c.LerpFactor > 1:
		return fmt.Errorf("%w: lerp factor %v not in (0,1]", ErrInvalid, c.LerpFactor)
	case c.ShrinkRate < 0:
		return fmt.Errorf("%w: shrink rate must not be negative", ErrInvalid)
	case c.MinScale <= 0:
		return fmt.Errorf("%w: min scale must be positive", ErrInvalid)
	case c.GrowthFactor < 1:
		return fmt.Errorf("%w: growth factor %v below 1", ErrInvalid, c.GrowthFactor)
	case c.SpawnInterval < 0:
		return fmt.Errorf("%w: spawn interval must not be negative", ErrInvalid)
	case c.FlashDuration < 0 || c.FixedStep <= 0:
		return fmt.Errorf("%w: flash timing out of range", ErrInvalid)
	case c.FleeStep < 0:
		return fmt.Errorf("%w: flee step must not be negative", ErrInvalid)
	case c.Bounds.Empty() || c.SpawnRegion.Empty():
		return fmt.Errorf("%w: empty bounds or spawn region", ErrInvalid)
	}
	if c.Mode == ModeProjected {
		cam := c.Camera
		if cam.FOV <= 0 || cam.FOV >= 180 || cam.Near <= 0 || cam.Far <= cam.Near || cam.Distance <= 0 {
			return fmt.Errorf("%w: camera %+v", ErrInvalid, cam)
		}
	}
	return nil
}

// Variants lists the preset names in display order.
func Variants() []string {
	return []string{"classic", "sphere", "flash", "grow", "flee"}
}

// Preset returns the configuration of a named game variant.
func Preset(name string) (Config, error) {
	switch name {
	case "classic":
		return classic(), nil
	case "sphere":
		return sphere(), nil
	case "flash":
		c := sphere()
		c.Variant = "flash"
		c.Features.Flash = true
		return c, nil
	case "grow":
		c := sphere()
		c.Variant = "grow"
		c.Features.Shrink = true
		c.Features.Grow = true
		c.ScoreMode = ScoreScale
		return c, nil
	case "flee":
		c := sphere()
		c.Variant = "flee"
		c.Features = Features{Flee: true, Flash: true, Backdrop: true}
		c.NumBackgroundStars = 200
		c.SpawnInterval = 1000 * time.Millisecond
		return c, nil
	default:
		return Config{}, fmt.Errorf("%w: unknown variant %q", ErrInvalid, name)
	}
}

// classic is the flat pixel-space game: square player, round stars.
func classic() Config {
	const w, h = 800.0, 600.0
	return Config{
		Variant:       "classic",
		Mode:          ModeDirect,
		PlayerSize:    40,
		StarSize:      20,
		NumStars:      10,
		LerpFactor:    0.1,
		ShrinkRate:    0.001,
		MinScale:      0.1,
		GrowthFactor:  1.1,
		SpawnInterval: 2000 * time.Millisecond,
		FlashDuration: 0.2,
		FixedStep:     0.016,
		FleeStep:      1,
		KeyStep:       5,
		Bounds:        physics.RectFromSize(w, h),
		SpawnRegion:   physics.RectFromSize(w, h-100),
		PlayerStart:   mgl64.Vec3{w / 2, h - 40, 0},
	}
}

// sphere is the perspective game on the z = 0 plane.
func sphere() Config {
	return Config{
		Variant:       "sphere",
		Mode:          ModeProjected,
		PlayerSize:    1,
		StarSize:      0.5,
		NumStars:      10,
		LerpFactor:    0.1,
		ShrinkRate:    0.001,
		MinScale:      0.1,
		GrowthFactor:  1.1,
		SpawnInterval: 2000 * time.Millisecond,
		FlashDuration: 0.2,
		FixedStep:     0.016,
		FleeStep:      0.01,
		SpinRate:      0.01,
		StarSpinRate:  0.02,
		KeyStep:       0.1,
		Bounds:        physics.RectAround(6, 3.5),
		SpawnRegion:   physics.RectAround(5, 3),
		Camera: Camera{
			FOV:      75,
			Near:     0.1,
			Far:      1000,
			Distance: 5,
		},
	}
}
