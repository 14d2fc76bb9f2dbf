package loop

import (
	"fmt"
	"strings"

	"github.com/tomz197/starcatch/internal/loop/config"
)

// drawFrame draws the current frame.
func (s *Session) drawFrame() error {
	// On game state or inactivity transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	stateChanged := s.state.GameState != s.state.prevGameState
	inactiveChanged := s.state.isInactive != s.state.wasInactive
	if stateChanged || inactiveChanged {
		s.chunkWriter.ClearScreen()
		s.canvas.ForceRedraw()
		s.state.prevGameState = s.state.GameState
		s.state.wasInactive = s.state.isInactive
	}

	s.canvas.Clear()

	if s.state.GameState == GameStatePlaying && !s.state.isInactive {
		s.renderables = s.world.Renderables(s.renderables[:0])
		drawScene(s.canvas, s.translator, s.renderables)
	}

	s.canvas.Render(s.chunkWriter)
	s.canvas.RenderBorder(s.chunkWriter)

	s.drawUI()

	return s.chunkWriter.Flush()
}

// drawUI draws the text overlay for the current screen.
func (s *Session) drawUI() {
	termWidth := s.canvas.TerminalWidth()
	termHeight := s.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if s.state.isInactive {
		s.drawInactivityScreen(centerX, centerY)
		return
	}

	switch s.state.GameState {
	case GameStateStart:
		s.drawStartScreen(centerX, centerY)
	case GameStatePlaying:
		s.drawPlayingHUD(termWidth, termHeight)
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (s *Session) drawInactivityScreen(centerX, centerY int) {
	cw := s.chunkWriter
	title := "INACTIVITY WARNING"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	left := config.InactivityDisconnectUser - s.now().Sub(s.lastInput).Seconds()
	msg := fmt.Sprintf("You have been inactive for too long. You will be disconnected in %d seconds.", int(left))
	cw.WriteAt(centerX-len(msg)/2, centerY, msg)

	hint := "Move the mouse or press any key to continue"
	cw.WriteAt(centerX-len(hint)/2, centerY+2, hint)
}

// drawStartScreen draws the title screen.
func (s *Session) drawStartScreen(centerX, centerY int) {
	title := "S T A R C A T C H"
	titleStartY := centerY - 4
	cw := s.chunkWriter
	cw.WriteAt(centerX-len(title)/2, titleStartY, title)

	subtitle := fmt.Sprintf("~ %s ~", strings.ToUpper(s.cfg.Variant))
	cw.WriteAt(centerX-len(subtitle)/2, titleStartY+2, subtitle)

	lines := []string{
		"Steer with the mouse or the arrow keys. Catch the stars.",
		"",
		"Press SPACE to start",
		"R restart   Q quit",
	}
	for i, line := range lines {
		cw.WriteAt(centerX-len(line)/2, titleStartY+4+i, line)
	}
}

// drawPlayingHUD draws the score and the variant name.
func (s *Session) drawPlayingHUD(termWidth, termHeight int) {
	cw := s.chunkWriter
	// Padded so a shorter score overwrites a longer one.
	cw.WriteAt(2, 1, fmt.Sprintf("%-16s", s.score.text))

	variant := s.cfg.Variant
	cw.WriteAt(termWidth-len(variant), 1, variant)

	hint := "R restart  Q quit"
	cw.WriteAt(termWidth/2-len(hint)/2, termHeight, hint)
}
