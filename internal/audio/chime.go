// Package audio plays the collection chime.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Chime notes: a rising fifth.
const (
	noteLow    = 880.0
	noteHigh   = 1320.0
	noteLength = 60 * time.Millisecond
)

// Chime plays a short tone each time a star is collected.
// It is safe to call Play from any goroutine, and before or without Init.
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewChime creates a chime at the given linear volume (0 to 1).
func NewChime(volume float64) *Chime {
	return &Chime{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the audio device.
func (c *Chime) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Play queues one chime. It does nothing until Init has succeeded.
func (c *Chime) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	s, err := Tone(sampleRate, c.volume)
	if err != nil {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// Close stops any playing chime.
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// Tone builds the two-note chime at the given sample rate and linear volume.
func Tone(sr beep.SampleRate, volume float64) (beep.Streamer, error) {
	low, err := note(sr, noteLow)
	if err != nil {
		return nil, err
	}
	high, err := note(sr, noteHigh)
	if err != nil {
		return nil, err
	}
	return withVolume(beep.Seq(low, high), volume), nil
}

func note(sr beep.SampleRate, freq float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("tone %v Hz: %w", freq, err)
	}
	return beep.Take(sr.N(noteLength), sine), nil
}

// withVolume applies a linear volume using the logarithmic Volume effect.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
