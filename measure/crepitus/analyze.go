package crepitus

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-crepitus/dsp/spectrum"
)

// ErrLengthMismatch is returned when raw and filtered differ in length.
var ErrLengthMismatch = errors.New("crepitus: raw and filtered length mismatch")

// Options configures Analyze.
type Options struct {
	SampleRate   float64
	LowHz        float64
	HighHz       float64
	WelchSegment int // 0 selects spectrum.DefaultWelchSegment
}

// Result holds the crepitus index and its supporting measurements.
type Result struct {
	Index      float64 // percent
	TotalPower float64
	BandPower  float64

	// Tone amplitude at the band centre, estimated with a Goertzel filter.
	RawTone      float64
	FilteredTone float64

	// Fraction of the raw signal's periodogram energy inside [LowHz, HighHz].
	BandFraction float64

	// Strongest Welch PSD bin of the filtered signal. Both are 0 when the
	// signal is shorter than spectrum.MinWelchSegment.
	PeakHz    float64
	PeakPower float64
}

// CenterHz returns the arithmetic centre of the analysis band.
func (o Options) CenterHz() float64 {
	return (o.LowHz + o.HighHz) / 2
}

func (o Options) validate() error {
	if o.SampleRate <= 0 {
		return fmt.Errorf("crepitus: sample rate must be > 0: %v", o.SampleRate)
	}
	if o.LowHz <= 0 || o.HighHz <= o.LowHz || o.HighHz >= o.SampleRate/2 {
		return fmt.Errorf("crepitus: invalid band [%v, %v] Hz at %v Hz", o.LowHz, o.HighHz, o.SampleRate)
	}
	return nil
}

// Analyze computes the crepitus index of raw and filtered together with
// spectral diagnostics of both signals.
func Analyze(raw, filtered []float64, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	if len(raw) != len(filtered) {
		return Result{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(raw), len(filtered))
	}
	if len(raw) == 0 {
		return Result{}, spectrum.ErrEmptyInput
	}

	res := Result{
		TotalPower: TotalPower(raw),
		BandPower:  BandPower(filtered),
	}
	if res.TotalPower != 0 {
		res.Index = res.BandPower / res.TotalPower * 100
	}

	center := opts.CenterHz()

	var err error
	if res.RawTone, err = spectrum.ToneAmplitude(raw, center, opts.SampleRate); err != nil {
		return Result{}, err
	}
	if res.FilteredTone, err = spectrum.ToneAmplitude(filtered, center, opts.SampleRate); err != nil {
		return Result{}, err
	}

	if res.BandFraction, err = spectrum.BandEnergyFraction(raw, opts.LowHz, opts.HighHz, opts.SampleRate); err != nil {
		return Result{}, err
	}

	psd, err := spectrum.Welch(filtered, opts.SampleRate, opts.WelchSegment)
	switch {
	case errors.Is(err, spectrum.ErrShortInput):
	case err != nil:
		return Result{}, err
	default:
		res.PeakHz, res.PeakPower = psd.Peak()
	}

	return res, nil
}
