package time

import (
	"math"
	"testing"
)

const tolerance = 1e-10

func generateSine(amplitude, freq, sampleRate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/sampleRate)
	}
	return out
}

func TestCalculate_Empty(t *testing.T) {
	s := Calculate(nil)
	if s.Length != 0 || s.Energy != 0 {
		t.Fatalf("unexpected stats: %+v", s)
	}
	if !math.IsInf(s.RMS_dB, -1) || !math.IsInf(s.Peak_dB, -1) {
		t.Fatalf("dB fields should be -Inf: %+v", s)
	}
}

func TestCalculate_DC(t *testing.T) {
	s := Calculate([]float64{0.5, 0.5, 0.5, 0.5})
	if s.DC != 0.5 || s.RMS != 0.5 || s.Peak != 0.5 {
		t.Fatalf("unexpected stats: %+v", s)
	}
	if s.Deviation != 0 || s.Variance != 0 {
		t.Fatalf("constant signal deviation = %v variance = %v, want 0", s.Deviation, s.Variance)
	}
	if s.CrestFactor_dB != 0 {
		t.Fatalf("crest = %v, want 0", s.CrestFactor_dB)
	}
}

func TestCalculate_Sine(t *testing.T) {
	// 3025 Hz, 10 kHz, 20000 samples: integer number of cycles.
	s := Calculate(generateSine(2, 3025, 10000, 20000))

	if math.Abs(s.RMS-math.Sqrt2) > 1e-9 {
		t.Errorf("RMS = %v, want sqrt(2)", s.RMS)
	}
	if math.Abs(s.DC) > tolerance {
		t.Errorf("DC = %v, want 0", s.DC)
	}
	if math.Abs(s.Energy-40000) > 1e-6 {
		t.Errorf("Energy = %v, want 40000", s.Energy)
	}
	if math.Abs(s.Deviation-s.Energy) > 1e-6 {
		t.Errorf("Deviation = %v, want Energy %v for zero-mean input", s.Deviation, s.Energy)
	}
	if math.Abs(s.CrestFactor_dB-20*math.Log10(math.Sqrt2)) > 1e-3 {
		t.Errorf("crest = %v dB, want ~3.01", s.CrestFactor_dB)
	}
}

func TestCalculate_Offset(t *testing.T) {
	s := Calculate([]float64{1, 2, 3, 4})
	if math.Abs(s.DC-2.5) > tolerance {
		t.Errorf("DC = %v, want 2.5", s.DC)
	}
	if math.Abs(s.Deviation-5) > tolerance {
		t.Errorf("Deviation = %v, want 5", s.Deviation)
	}
	if math.Abs(s.Variance-1.25) > tolerance {
		t.Errorf("Variance = %v, want 1.25", s.Variance)
	}
	if s.Energy != 30 || s.Peak != 4 {
		t.Errorf("Energy = %v Peak = %v", s.Energy, s.Peak)
	}
}
