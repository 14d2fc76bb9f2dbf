// Package window runs the game in a desktop window with ebiten.
package window

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tomz197/starcatch/internal/config"
	"github.com/tomz197/starcatch/internal/object"
	"github.com/tomz197/starcatch/internal/projection"
	"github.com/tomz197/starcatch/internal/world"
)

// MaxDelta caps the frame time handed to the world after a stall.
const MaxDelta = 100 * time.Millisecond

// Options configures a windowed game.
type Options struct {
	Config    config.Config
	Width     int // Initial window size in pixels
	Height    int
	Logger    *log.Logger
	OnCollect func()
	Clock     world.Clock
	Seed      int64 // Non-zero makes star placement reproducible
}

// Game implements ebiten.Game for one session.
type Game struct {
	cfg        config.Config
	world      *world.World
	translator projection.Translator
	logger     *log.Logger
	score      string

	width, height int
	started       bool
	lastUpdate    time.Time
	lastCursor    [2]int
	touchIDs      []ebiten.TouchID

	renderables []object.Renderable
	renderer    *renderer
}

// New creates a game sized to the given window.
func New(opts Options) (*Game, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("window size %dx%d: %w", opts.Width, opts.Height, config.ErrInvalid)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	tr, err := projection.New(opts.Config, opts.Width, opts.Height)
	if err != nil {
		return nil, fmt.Errorf("viewport: %w", err)
	}

	g := &Game{
		cfg:        opts.Config,
		translator: tr,
		logger:     logger,
		width:      opts.Width,
		height:     opts.Height,
		lastCursor: [2]int{-1, -1},
	}

	worldOpts := []world.Option{
		world.WithScoreDisplay(g),
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
	g.world = world.New(opts.Config, worldOpts...)
	g.world.SetBounds(tr.Bounds())
	return g, nil
}

// ShowScore implements world.ScoreDisplay.
func (g *Game) ShowScore(text string) {
	g.score = text
}

// World returns the game's world.
func (g *Game) World() *world.World {
	return g.world
}

// Update implements ebiten.Game: input, then one tick.
func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastUpdate)
	if g.lastUpdate.IsZero() || dt > MaxDelta {
		dt = MaxDelta
	}
	g.lastUpdate = now

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if !g.started {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
			g.start()
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.logger.Info("game restarted", "variant", g.cfg.Variant, "score", g.world.Score())
		g.world.Reset()
		return nil
	}

	g.readPointer()
	g.readKeys()

	res := g.world.Tick(dt)
	if res.Collected > 0 {
		g.logger.Debug("collected", "stars", res.Collected, "score", g.world.Score())
	}
	return nil
}

func (g *Game) start() {
	g.world.Reset()
	g.started = true
	g.logger.Info("game started", "variant", g.cfg.Variant)
}

// readPointer retargets the player from the first touch, or the cursor when it moved.
func (g *Game) readPointer() {
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(g.touchIDs[0])
		g.pointerAt(float64(x), float64(y))
		return
	}

	x, y := ebiten.CursorPosition()
	if x == g.lastCursor[0] && y == g.lastCursor[1] {
		return
	}
	g.lastCursor = [2]int{x, y}
	g.pointerAt(float64(x), float64(y))
}

func (g *Game) pointerAt(x, y float64) {
	target, err := g.translator.Translate(x, y)
	if err != nil {
		g.logger.Debug("pointer ignored", "x", x, "y", y, "err", err)
		return
	}
	g.world.SetTarget(target)
}

func (g *Game) readKeys() {
	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy++
	}
	if dx == 0 && dy == 0 {
		return
	}
	if g.cfg.Mode == config.ModeProjected {
		dy = -dy
	}
	g.world.Nudge(dx, dy)
}

// Layout implements ebiten.Game. The logical screen follows the window and
// the viewport is refitted when it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.resize(outsideWidth, outsideHeight)
	return g.width, g.height
}

func (g *Game) resize(width, height int) {
	if width <= 0 || height <= 0 || (width == g.width && height == g.height) {
		return
	}
	g.width, g.height = width, height
	g.translator.Resize(width, height)
	g.world.SetBounds(g.translator.Bounds())
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, title string) error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	g.logger.Info("window closed", "variant", g.cfg.Variant, "score", g.world.Score())
	return nil
}
