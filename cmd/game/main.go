package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tomz197/starcatch/internal/audio"
	"github.com/tomz197/starcatch/internal/config"
	"github.com/tomz197/starcatch/internal/loop"
	"golang.org/x/term"
)

const logPath = "logs/starcatch.log"

func main() {
	variant := flag.String("variant", "", "game variant: "+strings.Join(config.Variants(), ", "))
	debug := flag.Bool("debug", false, "write debug logs to "+logPath)
	sound := flag.Bool("sound", false, "play a chime for every star")
	seed := flag.Int64("seed", 0, "fixed random seed for star placement (0 = random)")
	flag.Parse()

	if err := run(*variant, *debug, *sound, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "starcatch: %v\n", err)
		os.Exit(1)
	}
}

func run(variant string, debug, sound bool, seed int64) (err error) {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load(variant)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(debug)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := loop.Options{Config: cfg, Logger: logger, Seed: seed}
	if sound {
		chime := audio.NewChime(0.3)
		if err := chime.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer chime.Close()
			opts.OnCollect = chime.Play
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()
	// The terminal must be restored before a panic message is printed.
	defer func() {
		if r := recover(); r != nil {
			_ = term.Restore(fd, oldState)
			logger.Error("panic", "recovered", r)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	logger.Info("starting", "variant", cfg.Variant)
	if err := loop.Run(bufio.NewReader(os.Stdin), os.Stdout, opts); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	return nil
}

// newLogger logs to a file in debug mode. Otherwise logs are discarded so
// they never draw over the game.
func newLogger(debug bool) (*log.Logger, func(), error) {
	if !debug {
		return log.New(io.Discard), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "starcatch",
	})
	return logger, func() { _ = f.Close() }, nil
}
