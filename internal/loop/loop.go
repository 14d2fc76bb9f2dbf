// Package loop runs one game session on a terminal: input, tick, draw, sleep.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	gamecfg "github.com/tomz197/starcatch/internal/config"
	"github.com/tomz197/starcatch/internal/draw"
	"github.com/tomz197/starcatch/internal/input"
	"github.com/tomz197/starcatch/internal/loop/config"
	"github.com/tomz197/starcatch/internal/object"
	"github.com/tomz197/starcatch/internal/projection"
	"github.com/tomz197/starcatch/internal/world"
)

// Options configures a session.
type Options struct {
	Config       gamecfg.Config
	TermSizeFunc draw.TermSizeFunc
	Logger       *log.Logger
	Clock        world.Clock
	OnCollect    func() // Called for each collected star, e.g. to play a sound
	Inactivity   bool   // Warn and then disconnect idle players
	Seed         int64  // Non-zero makes star placement reproducible
	Now          func() time.Time
}

// Session handles rendering and input for a single terminal.
type Session struct {
	cfg          gamecfg.Config
	world        *world.World
	translator   projection.Translator
	state        *sessionState
	score        *scoreBoard
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
	now          func() time.Time
	inactivity   bool
	renderables  []object.Renderable
}

// Run creates a session on r and w and blocks until the player quits or the
// input reaches EOF.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	s, err := NewSession(r, w, opts)
	if err != nil {
		return err
	}
	return s.Run()
}

// NewSession creates a session with its own world.
func NewSession(r *bufio.Reader, w io.Writer, opts Options) (*Session, error) {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	termWidth, termHeight, err := draw.TerminalSizeRawWith(termSizeFunc)
	if err != nil {
		return nil, fmt.Errorf("terminal size: %w", err)
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewCanvas(renderWidth, renderHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	translator, err := projection.New(opts.Config, canvas.Width(), canvas.Height())
	if err != nil {
		return nil, fmt.Errorf("viewport: %w", err)
	}

	s := &Session{
		cfg:          opts.Config,
		translator:   translator,
		state:        newSessionState(),
		score:        &scoreBoard{},
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		lastInput:    now(),
		termSizeFunc: termSizeFunc,
		logger:       logger,
		now:          now,
		inactivity:   opts.Inactivity,
	}

	worldOpts := []world.Option{
		world.WithScoreDisplay(s.score),
		world.WithCollectHook(func(*object.Star) {
			if opts.OnCollect != nil {
				opts.OnCollect()
			}
		}),
	}
	if opts.Clock != nil {
		worldOpts = append(worldOpts, world.WithClock(opts.Clock))
	}
	if opts.Seed != 0 {
		worldOpts = append(worldOpts, world.WithRand(rand.New(rand.NewSource(opts.Seed))))
	}
	s.world = world.New(opts.Config, worldOpts...)
	s.world.SetBounds(translator.Bounds())

	return s, nil
}

// Run starts the session loop. Blocks until the session ends.
func (s *Session) Run() error {
	draw.EnterGame(s.writer)
	defer draw.LeaveGame(s.writer)

	lastTime := s.now()

	for s.state.Running {
		frameStart := s.now()
		s.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		s.processInput()

		s.updateScreen()

		switch s.state.GameState {
		case GameStateStart:
			s.updateStartState()
		case GameStatePlaying:
			s.updatePlayingState()
		}

		if err := s.drawFrame(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		elapsed := s.now().Sub(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	s.logger.Info("session ended", "variant", s.cfg.Variant, "score", s.world.Score(), "ticks", s.world.Ticks())
	return nil
}

// World returns the session's world.
func (s *Session) World() *world.World {
	return s.world
}

// processInput reads this frame's input and handles quit and inactivity.
func (s *Session) processInput() {
	s.state.Input = input.ReadInput(s.inputStream)
	in := s.state.Input

	if in.Closed || in.Quit {
		s.state.Running = false
		return
	}

	if len(in.Pressed) > 0 || in.Pointer != nil {
		s.lastInput = s.now()
		s.state.isInactive = false
		return
	}

	idle := s.now().Sub(s.lastInput).Seconds()
	switch {
	case !s.inactivity:
	case idle > config.InactivityDisconnectUser:
		s.logger.Info("disconnecting idle session", "idle", idle)
		s.state.Running = false
	case idle > config.InactivityWarnUser:
		s.state.isInactive = true
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area and refits the viewport.
func (s *Session) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSizeRawWith(s.termSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth == s.canvas.TerminalWidth() && renderHeight == s.canvas.TerminalHeight() &&
		offsetCol == s.canvas.OffsetCol() && offsetRow == s.canvas.OffsetRow() {
		return
	}

	draw.ClearScreen(s.writer)
	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.canvas.ForceRedraw()
	s.chunkWriter.SetOffset(offsetCol, offsetRow)

	s.translator.Resize(s.canvas.Width(), s.canvas.Height())
	s.world.SetBounds(s.translator.Bounds())
	s.logger.Debug("viewport resized", "cols", renderWidth, "rows", renderHeight)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}
