package signal

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// SynthConfig describes a noisy recording with one embedded tone.
type SynthConfig struct {
	Duration      float64 // seconds
	ToneHz        float64
	ToneAmplitude float64
	NoiseMean     float64
	NoiseSigma    float64
}

// Synthesis is a synthesized time series and its time axis.
type Synthesis struct {
	Time []float64
	Raw  []float64
}

// Synthesize returns Gaussian noise plus a pure tone sampled over
// [0, cfg.Duration) at the generator's sample rate.
func (g *Generator) Synthesize(cfg SynthConfig) (Synthesis, error) {
	n := g.Samples(cfg.Duration)
	if n <= 0 {
		return Synthesis{}, fmt.Errorf("synthesize duration too short: %v s at %v Hz", cfg.Duration, g.cfg.SampleRate)
	}

	t, err := g.TimeAxis(n)
	if err != nil {
		return Synthesis{}, err
	}

	raw, err := g.GaussianNoise(cfg.NoiseMean, cfg.NoiseSigma, n)
	if err != nil {
		return Synthesis{}, err
	}

	tone, err := g.Sine(cfg.ToneHz, cfg.ToneAmplitude, n)
	if err != nil {
		return Synthesis{}, err
	}

	vecmath.AddBlockInPlace(raw, tone)

	return Synthesis{Time: t, Raw: raw}, nil
}
