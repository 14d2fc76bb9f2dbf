package config

import (
	"errors"
	"fmt"
	"strings"
)

// Load builds the configuration for a variant: preset first, then
// STARCATCH_* environment overrides, then validation.
// An empty variant falls back to STARCATCH_VARIANT and then "classic".
func Load(variant string) (Config, error) {
	if variant == "" {
		variant = GetEnv(EnvPrefix+"VARIANT", "classic")
	}
	cfg, err := Preset(variant)
	if err != nil {
		return Config{}, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from STARCATCH_* variables. All parse errors
// are reported together.
func ApplyEnv(cfg *Config) error {
	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	var err error
	cfg.NumStars, err = GetEnvInt(EnvPrefix+"NUM_STARS", cfg.NumStars)
	collect(err)
	cfg.NumBackgroundStars, err = GetEnvInt(EnvPrefix+"BACKGROUND_STARS", cfg.NumBackgroundStars)
	collect(err)
	cfg.MaxStars, err = GetEnvInt(EnvPrefix+"MAX_STARS", cfg.MaxStars)
	collect(err)
	cfg.PlayerSize, err = GetEnvFloat(EnvPrefix+"PLAYER_SIZE", cfg.PlayerSize)
	collect(err)
	cfg.StarSize, err = GetEnvFloat(EnvPrefix+"STAR_SIZE", cfg.StarSize)
	collect(err)
	cfg.LerpFactor, err = GetEnvFloat(EnvPrefix+"LERP", cfg.LerpFactor)
	collect(err)
	cfg.ShrinkRate, err = GetEnvFloat(EnvPrefix+"SHRINK_RATE", cfg.ShrinkRate)
	collect(err)
	cfg.GrowthFactor, err = GetEnvFloat(EnvPrefix+"GROWTH", cfg.GrowthFactor)
	collect(err)
	cfg.FlashDuration, err = GetEnvFloat(EnvPrefix+"FLASH_DURATION", cfg.FlashDuration)
	collect(err)
	cfg.SpawnInterval, err = GetEnvDuration(EnvPrefix+"SPAWN_INTERVAL", cfg.SpawnInterval)
	collect(err)

	cfg.Features.Flee, err = GetEnvBool(EnvPrefix+"FLEE", cfg.Features.Flee)
	collect(err)
	cfg.Features.Flash, err = GetEnvBool(EnvPrefix+"FLASH", cfg.Features.Flash)
	collect(err)
	cfg.Features.Shrink, err = GetEnvBool(EnvPrefix+"SHRINK", cfg.Features.Shrink)
	collect(err)
	cfg.Features.Grow, err = GetEnvBool(EnvPrefix+"GROW", cfg.Features.Grow)
	collect(err)
	cfg.Features.Backdrop, err = GetEnvBool(EnvPrefix+"BACKDROP", cfg.Features.Backdrop)
	collect(err)

	if v := GetEnv(EnvPrefix+"TIMER", ""); v != "" {
		cfg.TimerMode, err = ParseTimerMode(v)
		collect(err)
	}
	if v := GetEnv(EnvPrefix+"SPAWN_POLICY", ""); v != "" {
		cfg.SpawnPolicy, err = ParseSpawnPolicy(v)
		collect(err)
	}
	return errors.Join(errs...)
}

// ParseTimerMode parses "fixed" or "delta".
func ParseTimerMode(s string) (TimerMode, error) {
	switch strings.ToLower(s) {
	case "fixed":
		return TimerFixed, nil
	case "delta":
		return TimerDelta, nil
	}
	return TimerFixed, fmt.Errorf("%w: timer mode %q", ErrInvalid, s)
}

// ParseSpawnPolicy parses "catch-up" or "reset".
func ParseSpawnPolicy(s string) (SpawnPolicy, error) {
	switch strings.ToLower(s) {
	case "catch-up", "catchup":
		return SpawnCatchUp, nil
	case "reset":
		return SpawnReset, nil
	}
	return SpawnCatchUp, fmt.Errorf("%w: spawn policy %q", ErrInvalid, s)
}
