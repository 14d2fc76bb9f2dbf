// Package config centralizes the tunable parameters of the terminal front end.
package config

import "time"

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Max render resolution in terminal cells. Larger terminals get a centred,
// bordered play area.
const (
	MaxTermWidth  = 200
	MaxTermHeight = 60
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Backdrop stars are drawn at this fraction of their brightness so they stay behind the play.
const BackdropDim = 0.6
