// Package pipeline runs the crepitus detector: acquire a signal, band-pass
// filter it, score it and plot it.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-crepitus/dsp/core"
	"github.com/cwbudde/algo-crepitus/dsp/filter/bandpass"
	"github.com/cwbudde/algo-crepitus/internal/render"
)

// Detector defaults.
const (
	DefaultDuration      = 2.0
	DefaultLowHz         = 3000.0
	DefaultHighHz        = 3050.0
	DefaultOrder         = 5
	DefaultToneHz        = 3025.0
	DefaultToneAmplitude = 2.0
	DefaultNoiseSigma    = 0.5
	DefaultSeed          = 1
	DefaultPlotPath      = "crepitus.png"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("pipeline: invalid config")

// Config holds every parameter of a detector run.
type Config struct {
	SampleRate float64 // Hz; replaced by the WAV rate when InputPath is set
	Duration   float64 // seconds of synthesized signal

	LowHz  float64
	HighHz float64
	Order  int

	ToneHz        float64
	ToneAmplitude float64
	NoiseMean     float64
	NoiseSigma    float64
	Seed          int64

	InputPath  string // optional mono WAV replacing the synthesized signal
	PlotPath   string // comparison PNG; empty disables plotting
	PSDPath    string // Welch PSD PNG; empty disables it
	PlotWindow int    // samples drawn per panel
	Show       bool   // open PlotPath in the OS viewer; ignored without PlotPath
}

// DefaultConfig returns the fixed detector configuration.
func DefaultConfig() Config {
	return Config{
		SampleRate:    core.DefaultSampleRate,
		Duration:      DefaultDuration,
		LowHz:         DefaultLowHz,
		HighHz:        DefaultHighHz,
		Order:         DefaultOrder,
		ToneHz:        DefaultToneHz,
		ToneAmplitude: DefaultToneAmplitude,
		NoiseSigma:    DefaultNoiseSigma,
		Seed:          DefaultSeed,
		PlotPath:      DefaultPlotPath,
		PlotWindow:    render.DefaultWindow,
		Show:          true,
	}
}

// FilterSpec returns the band-pass specification at sampleRate.
func (c Config) FilterSpec(sampleRate float64) bandpass.Spec {
	return bandpass.Spec{
		Order:      c.Order,
		LowHz:      c.LowHz,
		HighHz:     c.HighHz,
		SampleRate: sampleRate,
	}
}

// Validate checks the parameters that do not depend on the input file.
// Filter errors wrap bandpass.ErrInvalidFilterSpecification.
func (c Config) Validate() error {
	if c.InputPath == "" {
		if err := c.FilterSpec(c.SampleRate).Validate(); err != nil {
			return err
		}
		if c.Duration <= 0 || !core.IsFinite(c.Duration) {
			return fmt.Errorf("%w: duration must be > 0, got %v", ErrInvalidConfig, c.Duration)
		}
		if c.ToneHz <= 0 || c.ToneHz >= c.SampleRate/2 {
			return fmt.Errorf("%w: tone %v Hz outside (0, %v)", ErrInvalidConfig, c.ToneHz, c.SampleRate/2)
		}
		if c.NoiseSigma < 0 || !core.IsFinite(c.NoiseSigma, c.NoiseMean, c.ToneAmplitude) {
			return fmt.Errorf("%w: noise sigma must be >= 0, got %v", ErrInvalidConfig, c.NoiseSigma)
		}
	}
	if c.PlotWindow < 0 {
		return fmt.Errorf("%w: plot window must be >= 0, got %d", ErrInvalidConfig, c.PlotWindow)
	}
	return nil
}
