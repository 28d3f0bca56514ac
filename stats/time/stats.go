// Package time computes time-domain summaries of raw and filtered signals.
package time

import "math"

// Stats holds time-domain signal statistics.
//
//nolint:revive
type Stats struct {
	Length         int
	DC             float64 // mean
	RMS            float64
	RMS_dB         float64
	Peak           float64 // max(|x|)
	Peak_dB        float64
	CrestFactor_dB float64
	Energy         float64 // sum of squares
	Deviation      float64 // sum of squared deviations from DC
	Variance       float64 // Deviation / Length
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// Calculate computes the statistics in a single pass. The deviation term uses
// Welford's update so constant signals yield exactly zero.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{
			RMS_dB:         math.Inf(-1),
			Peak_dB:        math.Inf(-1),
			CrestFactor_dB: math.Inf(-1),
		}
	}

	var mean, m2, sumSq, peak float64
	for i, x := range signal {
		ni := float64(i + 1)
		delta := x - mean
		mean += delta / ni
		m2 += delta * (x - mean)

		sumSq += x * x
		if a := math.Abs(x); a > peak {
			peak = a
		}
	}

	nf := float64(n)
	rms := math.Sqrt(sumSq / nf)

	crestdB := 0.0
	if rms > 0 {
		crestdB = ampTodB(peak / rms)
	}

	return Stats{
		Length:         n,
		DC:             mean,
		RMS:            rms,
		RMS_dB:         ampTodB(rms),
		Peak:           peak,
		Peak_dB:        ampTodB(peak),
		CrestFactor_dB: crestdB,
		Energy:         sumSq,
		Deviation:      m2,
		Variance:       m2 / nf,
	}
}
