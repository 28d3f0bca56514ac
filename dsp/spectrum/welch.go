package spectrum

import (
	"errors"
	"fmt"

	"github.com/mjibson/go-dsp/spectral"
	"github.com/mjibson/go-dsp/window"
)

// DefaultWelchSegment is the Welch segment length used when none is given.
const DefaultWelchSegment = 1024

// MinWelchSegment is the shortest segment with a non-zero Hann window.
const MinWelchSegment = 4

// ErrShortInput is returned when a signal is too short for a Welch estimate.
var ErrShortInput = errors.New("spectrum: input shorter than minimum Welch segment")

// PSD is a Welch power spectral density estimate.
type PSD struct {
	Freqs []float64
	Power []float64
}

// Welch estimates the power spectral density of signal with Hann-windowed,
// half-overlapping segments of the given length. segment <= 0 selects
// DefaultWelchSegment; segments longer than the signal are shortened to it.
// Segments shorter than MinWelchSegment return ErrShortInput.
func Welch(signal []float64, sampleRate float64, segment int) (PSD, error) {
	if len(signal) == 0 {
		return PSD{}, ErrEmptyInput
	}
	if sampleRate <= 0 {
		return PSD{}, fmt.Errorf("welch sample rate must be > 0: %v", sampleRate)
	}
	if segment <= 0 {
		segment = DefaultWelchSegment
	}
	segment = min(segment, len(signal))
	if segment < MinWelchSegment {
		return PSD{}, fmt.Errorf("%w: %d < %d samples", ErrShortInput, segment, MinWelchSegment)
	}

	power, freqs := spectral.Pwelch(signal, sampleRate, &spectral.PwelchOptions{
		NFFT:     segment,
		Noverlap: segment / 2,
		Window:   window.Hann,
	})

	return PSD{Freqs: freqs, Power: power}, nil
}

// Peak returns the frequency and power of the largest PSD bin. It returns
// zeros for an empty estimate.
func (p PSD) Peak() (freqHz, power float64) {
	for i, v := range p.Power {
		if i == 0 || v > power {
			freqHz, power = p.Freqs[i], v
		}
	}
	return freqHz, power
}
