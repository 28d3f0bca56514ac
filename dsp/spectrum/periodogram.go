package spectrum

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptyInput is returned for spectral estimates of an empty signal.
var ErrEmptyInput = errors.New("spectrum: empty input")

// Periodogram is a one-sided power spectrum of a zero-padded, mean-removed
// signal. Power[k] belongs to frequency k*BinHz.
type Periodogram struct {
	Power []float64
	BinHz float64
}

// NewPeriodogram computes the one-sided periodogram of signal.
// The FFT size is the next power of two >= len(signal).
func NewPeriodogram(signal []float64, sampleRate float64) (Periodogram, error) {
	if len(signal) == 0 {
		return Periodogram{}, ErrEmptyInput
	}
	if sampleRate <= 0 {
		return Periodogram{}, fmt.Errorf("periodogram sample rate must be > 0: %v", sampleRate)
	}

	fftSize := nextPowerOf2(len(signal))
	mean := stat.Mean(signal, nil)

	in := make([]complex128, fftSize)
	for i, x := range signal {
		in[i] = complex(x-mean, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Periodogram{}, fmt.Errorf("periodogram plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Periodogram{}, fmt.Errorf("periodogram forward: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	return Periodogram{
		Power: power,
		BinHz: sampleRate / float64(fftSize),
	}, nil
}

// BandFraction returns the share of periodogram power between lowHz and
// highHz inclusive. It is 0 when the spectrum carries no power.
//
// Interior bins are doubled relative to DC and Nyquist so the fraction is
// consistent with a two-sided sum.
func (p Periodogram) BandFraction(lowHz, highHz float64) float64 {
	if len(p.Power) == 0 || p.BinHz <= 0 {
		return 0
	}

	weighted := make([]float64, len(p.Power))
	copy(weighted, p.Power)
	for k := 1; k < len(weighted)-1; k++ {
		weighted[k] *= 2
	}

	total := floats.Sum(weighted)
	if total == 0 {
		return 0
	}

	lo := max(int(math.Ceil(lowHz/p.BinHz)), 0)
	hi := min(int(math.Floor(highHz/p.BinHz)), len(weighted)-1)
	if lo > hi {
		return 0
	}

	return floats.Sum(weighted[lo:hi+1]) / total
}

// BandEnergyFraction is a convenience wrapper around NewPeriodogram and
// Periodogram.BandFraction.
func BandEnergyFraction(signal []float64, lowHz, highHz, sampleRate float64) (float64, error) {
	p, err := NewPeriodogram(signal, sampleRate)
	if err != nil {
		return 0, err
	}
	return p.BandFraction(lowHz, highHz), nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
