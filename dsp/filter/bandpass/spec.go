package bandpass

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-crepitus/dsp/core"
)

// ErrInvalidFilterSpecification is returned when band edges, order or
// sample rate cannot describe a realizable band-pass filter.
var ErrInvalidFilterSpecification = errors.New("bandpass: invalid filter specification")

// Spec describes a band-pass filter.
//
// Valid specifications satisfy 0 < LowHz < HighHz < SampleRate/2 and Order >= 1.
type Spec struct {
	Order      int
	LowHz      float64
	HighHz     float64
	SampleRate float64
}

// Validate reports whether s is realizable. Errors wrap
// ErrInvalidFilterSpecification.
func (s Spec) Validate() error {
	switch {
	case s.Order < 1:
		return fmt.Errorf("%w: order must be >= 1, got %d", ErrInvalidFilterSpecification, s.Order)
	case !core.IsFinite(s.LowHz, s.HighHz, s.SampleRate):
		return fmt.Errorf("%w: non-finite parameter (low=%v high=%v rate=%v)",
			ErrInvalidFilterSpecification, s.LowHz, s.HighHz, s.SampleRate)
	case s.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate must be > 0, got %v", ErrInvalidFilterSpecification, s.SampleRate)
	case s.LowHz <= 0:
		return fmt.Errorf("%w: low cut must be > 0, got %v", ErrInvalidFilterSpecification, s.LowHz)
	case s.LowHz >= s.HighHz:
		return fmt.Errorf("%w: low cut %v must be below high cut %v", ErrInvalidFilterSpecification, s.LowHz, s.HighHz)
	case s.HighHz >= s.Nyquist():
		return fmt.Errorf("%w: high cut %v must be below Nyquist %v", ErrInvalidFilterSpecification, s.HighHz, s.Nyquist())
	}

	return nil
}

// Nyquist returns half the sample rate.
func (s Spec) Nyquist() float64 {
	return s.SampleRate / 2
}

// Center returns the digital frequency (Hz) that maps to the geometric
// centre of the pre-warped analog band. The Butterworth response has unity
// gain there.
func (s Spec) Center() float64 {
	wl, wh := s.warpedEdges()
	w0 := math.Sqrt(wl * wh)
	return s.SampleRate / math.Pi * math.Atan(w0/(2*s.SampleRate))
}

// warpedEdges returns the analog band edges (rad/s) that the bilinear
// transform maps exactly onto LowHz and HighHz.
func (s Spec) warpedEdges() (float64, float64) {
	fs2 := 2 * s.SampleRate
	wl := fs2 * math.Tan(math.Pi*s.LowHz/s.SampleRate)
	wh := fs2 * math.Tan(math.Pi*s.HighHz/s.SampleRate)
	return wl, wh
}
