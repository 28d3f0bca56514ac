package spectrum

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-crepitus/internal/testutil"
)

func TestGoertzel_MatchesDFT(t *testing.T) {
	sampleRate := 10000.0
	freq0 := 3025.0
	sig := testutil.DeterministicSine(freq0, sampleRate, 1.0, 1000)

	g, err := NewGoertzel(freq0, sampleRate)
	if err != nil {
		t.Fatalf("NewGoertzel: %v", err)
	}
	g.ProcessBlock(sig)

	var dft complex128
	for n, x := range sig {
		angle := -2 * math.Pi * freq0 / sampleRate * float64(n)
		dft += complex(x, 0) * cmplx.Exp(complex(0, angle))
	}

	wantP := real(dft)*real(dft) + imag(dft)*imag(dft)
	if pwr := g.Power(); math.Abs(pwr-wantP) > 1e-7*wantP {
		t.Errorf("Power mismatch: got %v, want %v", pwr, wantP)
	}
	if mag := g.Magnitude(); math.Abs(mag-cmplx.Abs(dft)) > 1e-7*cmplx.Abs(dft) {
		t.Errorf("Magnitude mismatch: got %v, want %v", mag, cmplx.Abs(dft))
	}
}

func TestGoertzel_BlocksAccumulate(t *testing.T) {
	sig := testutil.DeterministicSine(440, 8000, 0.3, 257)

	a, _ := NewGoertzel(440, 8000)
	b, _ := NewGoertzel(440, 8000)
	a.ProcessBlock(sig)
	b.ProcessBlock(sig[:100])
	b.ProcessBlock(sig[100:])
	if a.Power() != b.Power() {
		t.Fatalf("whole=%v split=%v", a.Power(), b.Power())
	}
	if a.Amplitude() != b.Amplitude() {
		t.Fatalf("amplitude whole=%v split=%v", a.Amplitude(), b.Amplitude())
	}
}

func TestGoertzel_Empty(t *testing.T) {
	g, _ := NewGoertzel(1000, 48000)
	if g.Power() != 0 || g.Amplitude() != 0 {
		t.Errorf("before processing: power=%v amplitude=%v", g.Power(), g.Amplitude())
	}
}

func TestGoertzel_InvalidParams(t *testing.T) {
	tests := []struct {
		name       string
		freq, rate float64
	}{
		{"zero rate", 1000, 0},
		{"negative freq", -1, 48000},
		{"above nyquist", 30000, 48000},
		{"nan freq", math.NaN(), 48000},
		{"inf rate", 1000, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGoertzel(tt.freq, tt.rate); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestToneAmplitude(t *testing.T) {
	// 3025 Hz completes an integer number of cycles in 20000 samples at 10 kHz.
	sig := testutil.DeterministicSine(3025, 10000, 2, 20000)
	amp, err := ToneAmplitude(sig, 3025, 10000)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(amp-2) > 1e-6 {
		t.Fatalf("amplitude = %v, want 2", amp)
	}

	if _, err := ToneAmplitude(sig, 6000, 10000); err == nil {
		t.Fatal("expected error above Nyquist")
	}
}
