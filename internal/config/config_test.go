package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestPresetsAreValid(t *testing.T) {
	for _, name := range Variants() {
		t.Run(name, func(t *testing.T) {
			cfg, err := Preset(name)
			if err != nil {
				t.Fatalf("Preset(%q): %v", name, err)
			}
			if cfg.Variant != name {
				t.Fatalf("variant = %q, want %q", cfg.Variant, name)
			}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("Validate: %v", err)
			}
		})
	}
}

func TestPresetUnknown(t *testing.T) {
	if _, err := Preset("asteroids"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestPresetFeatures(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		feat  Features
		score ScoreMode
	}{
		{"classic", ModeDirect, Features{}, ScoreCount},
		{"sphere", ModeProjected, Features{}, ScoreCount},
		{"flash", ModeProjected, Features{Flash: true}, ScoreCount},
		{"grow", ModeProjected, Features{Shrink: true, Grow: true}, ScoreScale},
		{"flee", ModeProjected, Features{Flee: true, Flash: true, Backdrop: true}, ScoreCount},
	}
	for _, tt := range tests {
		cfg, err := Preset(tt.name)
		if err != nil {
			t.Fatalf("Preset(%q): %v", tt.name, err)
		}
		if cfg.Mode != tt.mode || cfg.Features != tt.feat || cfg.ScoreMode != tt.score {
			t.Errorf("%s: mode=%v features=%+v score=%v, want %v %+v %v",
				tt.name, cfg.Mode, cfg.Features, cfg.ScoreMode, tt.mode, tt.feat, tt.score)
		}
	}
}

func TestHitRadii(t *testing.T) {
	cfg, _ := Preset("classic")
	if p, s := cfg.HitRadii(); p != 20 || s != 10 {
		t.Fatalf("classic hit radii = %v, %v, want 20, 10", p, s)
	}
	cfg, _ = Preset("sphere")
	if p, s := cfg.HitRadii(); p+s != 0.75 {
		t.Fatalf("sphere hit distance = %v, want 0.75", p+s)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero player size", func(c *Config) { c.PlayerSize = 0 }},
		{"negative stars", func(c *Config) { c.NumStars = -1 }},
		{"lerp above one", func(c *Config) { c.LerpFactor = 1.5 }},
		{"lerp zero", func(c *Config) { c.LerpFactor = 0 }},
		{"zero min scale", func(c *Config) { c.MinScale = 0 }},
		{"shrinking growth", func(c *Config) { c.GrowthFactor = 0.9 }},
		{"negative interval", func(c *Config) { c.SpawnInterval = -time.Second }},
		{"zero fixed step", func(c *Config) { c.FixedStep = 0 }},
		{"inverted bounds", func(c *Config) { c.Bounds.MinX = c.Bounds.MaxX + 1 }},
		{"bad camera", func(c *Config) { c.Camera.FOV = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _ := Preset("sphere")
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvPrefix+"NUM_STARS", "25")
	t.Setenv(EnvPrefix+"SPAWN_INTERVAL", "1500ms")
	t.Setenv(EnvPrefix+"FLEE", "true")
	t.Setenv(EnvPrefix+"TIMER", "delta")
	t.Setenv(EnvPrefix+"SPAWN_POLICY", "reset")

	cfg, _ := Preset("classic")
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}

	if cfg.NumStars != 25 {
		t.Errorf("NumStars = %d, want 25", cfg.NumStars)
	}
	if cfg.SpawnInterval != 1500*time.Millisecond {
		t.Errorf("SpawnInterval = %v, want 1.5s", cfg.SpawnInterval)
	}
	if !cfg.Features.Flee {
		t.Error("Flee not enabled")
	}
	if cfg.TimerMode != TimerDelta {
		t.Errorf("TimerMode = %v, want delta", cfg.TimerMode)
	}
	if cfg.SpawnPolicy != SpawnReset {
		t.Errorf("SpawnPolicy = %v, want reset", cfg.SpawnPolicy)
	}
}

func TestApplyEnvReportsAllErrors(t *testing.T) {
	t.Setenv(EnvPrefix+"NUM_STARS", "many")
	t.Setenv(EnvPrefix+"LERP", "fast")
	t.Setenv(EnvPrefix+"TIMER", "sometimes")

	cfg, _ := Preset("classic")
	err := ApplyEnv(&cfg)
	if err == nil {
		t.Fatal("ApplyEnv succeeded, want error")
	}
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want it to wrap ErrInvalid", err)
	}
	if cfg.NumStars != 10 || cfg.LerpFactor != 0.1 {
		t.Errorf("bad values overwrote fallbacks: NumStars=%d Lerp=%v", cfg.NumStars, cfg.LerpFactor)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvPrefix+"VARIANT", "grow")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Variant != "grow" {
		t.Fatalf("variant = %q, want grow", cfg.Variant)
	}

	cfg, err = Load("flee")
	if err != nil {
		t.Fatalf("Load(flee): %v", err)
	}
	if cfg.Variant != "flee" {
		t.Fatalf("variant = %q, want flee", cfg.Variant)
	}
}

func TestLoadRejectsInvalidOverride(t *testing.T) {
	t.Setenv(EnvPrefix+"LERP", "2")

	if _, err := Load("classic"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.env")
	if err := os.WriteFile(path, []byte("STARCATCH_TEST_DOTENV=hello\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("STARCATCH_TEST_DOTENV") })

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := GetEnv("STARCATCH_TEST_DOTENV", ""); got != "hello" {
		t.Fatalf("value = %q, want hello", got)
	}
}

func TestParseModes(t *testing.T) {
	if m, err := ParseTimerMode("FIXED"); err != nil || m != TimerFixed {
		t.Errorf("ParseTimerMode(FIXED) = %v, %v", m, err)
	}
	if p, err := ParseSpawnPolicy("catch-up"); err != nil || p != SpawnCatchUp {
		t.Errorf("ParseSpawnPolicy(catch-up) = %v, %v", p, err)
	}
	if _, err := ParseSpawnPolicy("never"); !errors.Is(err, ErrInvalid) {
		t.Errorf("ParseSpawnPolicy(never) err = %v, want ErrInvalid", err)
	}
}
