package crepitus

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Index returns the crepitus index of raw and its band-pass output filtered.
// It returns 0 when the raw signal has no deviation energy. The result is not
// clamped; a filter with passband gain above unity can exceed 100.
func Index(raw, filtered []float64) float64 {
	total := TotalPower(raw)
	if total == 0 {
		return 0
	}

	return BandPower(filtered) / total * 100
}

// TotalPower returns sum((raw - mean(raw))^2). It is exactly 0 for a
// constant signal, whose rounded mean can differ from the constant.
func TotalPower(raw []float64) float64 {
	if len(raw) == 0 || floats.Min(raw) == floats.Max(raw) {
		return 0
	}

	mean := stat.Mean(raw, nil)
	dev := make([]float64, len(raw))
	copy(dev, raw)
	floats.AddConst(-mean, dev)

	return sumSquares(dev)
}

// BandPower returns sum(filtered^2).
func BandPower(filtered []float64) float64 {
	return sumSquares(filtered)
}

func sumSquares(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	sq := make([]float64, len(x))
	vecmath.MulBlock(sq, x, x)

	return floats.Sum(sq)
}
