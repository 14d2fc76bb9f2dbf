package loop

import (
	"time"

	"github.com/tomz197/starcatch/internal/input"
)

// GameState represents the current screen of a session.
type GameState int

const (
	GameStateStart   GameState = iota // Title screen
	GameStatePlaying                  // Active gameplay
)

// sessionState holds per-connection state that is not part of the world.
type sessionState struct {
	Input         input.Input
	GameState     GameState
	Running       bool
	delta         time.Duration // Frame delta time
	prevGameState GameState     // For detecting transitions that need a full clear
	isInactive    bool          // Whether the inactivity warning is showing
	wasInactive   bool
}

func newSessionState() *sessionState {
	return &sessionState{
		GameState:     GameStateStart,
		prevGameState: -1,
		Running:       true,
	}
}

// scoreBoard receives score pushes from the world for the HUD.
type scoreBoard struct {
	text string
}

func (b *scoreBoard) ShowScore(text string) {
	b.text = text
}
