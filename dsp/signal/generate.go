package signal

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-crepitus/dsp/core"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Samples returns the number of samples covering duration seconds.
func (g *Generator) Samples(duration float64) int {
	return int(math.Round(duration * g.cfg.SampleRate))
}

// TimeAxis returns the sample instants i/sampleRate for i in [0, samples).
func (g *Generator) TimeAxis(samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("time axis samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = float64(i) / g.cfg.SampleRate
	}
	return out, nil
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if freqHz < 0 || freqHz > g.cfg.Nyquist() {
		return nil, fmt.Errorf("sine frequency %v Hz outside [0, %v]", freqHz, g.cfg.Nyquist())
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// GaussianNoise generates deterministic normally distributed noise.
//
// Two generators with the same seed produce identical sequences.
func (g *Generator) GaussianNoise(mean, sigma float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if sigma < 0 {
		return nil, fmt.Errorf("noise sigma must be >= 0: %f", sigma)
	}

	dist := distuv.Normal{
		Mu:    mean,
		Sigma: sigma,
		Src:   g.source(),
	}

	out := make([]float64, samples)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out, nil
}

func (g *Generator) source() rand.Source {
	s := uint64(g.seed)
	return rand.NewPCG(s, s^0x9e3779b97f4a7c15)
}
