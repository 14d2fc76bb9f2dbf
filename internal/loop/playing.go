package loop

import (
	gamecfg "github.com/tomz197/starcatch/internal/config"
	"github.com/tomz197/starcatch/internal/input"
)

// updateStartState handles the title screen.
func (s *Session) updateStartState() {
	if s.state.Input.Space || s.state.Input.Enter {
		s.startGame()
	}
}

// startGame begins a fresh round.
func (s *Session) startGame() {
	input.ResetKeyInput(s.inputStream)
	s.world.Reset()
	s.state.GameState = GameStatePlaying
	s.logger.Info("game started", "variant", s.cfg.Variant)
}

// updatePlayingState feeds this frame's pointer and keys to the world and
// advances it one tick.
func (s *Session) updatePlayingState() {
	in := s.state.Input

	if in.Restart {
		input.ResetKeyInput(s.inputStream)
		s.logger.Info("game restarted", "variant", s.cfg.Variant, "score", s.world.Score())
		s.world.Reset()
		return
	}

	if in.Pointer != nil {
		s.pointerMoved(*in.Pointer)
	}
	s.nudge(in)

	res := s.world.Tick(s.state.delta)
	if res.Collected > 0 {
		s.logger.Debug("collected", "stars", res.Collected, "score", s.world.Score(), "remaining", s.world.StarCount())
	}
}

// pointerMoved translates a mouse cell into the world and retargets the player.
func (s *Session) pointerMoved(p input.Pointer) {
	px, py := s.canvas.TerminalToPixel(p.Col, p.Row)
	target, err := s.translator.Translate(px, py)
	if err != nil {
		s.logger.Debug("pointer ignored", "col", p.Col, "row", p.Row, "err", err)
		return
	}
	s.world.SetTarget(target)
}

// nudge steers the target with the arrow keys.
func (s *Session) nudge(in input.Input) {
	var dx, dy float64
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	if dx == 0 && dy == 0 {
		return
	}
	// World y points up in the projected game.
	if s.cfg.Mode == gamecfg.ModeProjected {
		dy = -dy
	}
	s.world.Nudge(dx, dy)
}
