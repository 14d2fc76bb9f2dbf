package main

import (
	"flag"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tomz197/starcatch/internal/audio"
	"github.com/tomz197/starcatch/internal/config"
	"github.com/tomz197/starcatch/internal/window"
)

func main() {
	variant := flag.String("variant", "", "game variant: "+strings.Join(config.Variants(), ", "))
	width := flag.Int("width", 800, "window width in pixels")
	height := flag.Int("height", 600, "window height in pixels")
	sound := flag.Bool("sound", true, "play a chime for every star")
	debug := flag.Bool("debug", false, "enable debug logging")
	seed := flag.Int64("seed", 0, "fixed random seed for star placement (0 = random)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "starcatch",
	})
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	if err := config.LoadDotEnv(); err != nil {
		logger.Fatal("load .env", "err", err)
	}
	cfg, err := config.Load(*variant)
	if err != nil {
		logger.Fatal("load config", "err", err)
	}

	opts := window.Options{
		Config: cfg,
		Width:  *width,
		Height: *height,
		Logger: logger,
		Seed:   *seed,
	}
	if *sound {
		chime := audio.NewChime(0.3)
		if err := chime.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer chime.Close()
			opts.OnCollect = chime.Play
		}
	}

	g, err := window.New(opts)
	if err != nil {
		logger.Fatal("create game", "err", err)
	}
	logger.Info("starting", "variant", cfg.Variant, "width", *width, "height", *height)
	if err := window.Run(g, "starcatch - "+cfg.Variant); err != nil {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}
