package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	if rms := RMS(DeterministicSine(1000, 48000, 2, 48000)); math.Abs(rms-math.Sqrt2) > 1e-9 {
		t.Fatalf("rms = %v, want sqrt(2)", rms)
	}
}

func TestDeterministicGaussian(t *testing.T) {
	a := DeterministicGaussian(42, 0.5, 20000)
	b := DeterministicGaussian(42, 0.5, 20000)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
	if rms := RMS(a); math.Abs(rms-0.5) > 0.02 {
		t.Fatalf("rms = %v, want ~0.5", rms)
	}

	c := DeterministicGaussian(43, 0.5, 16)
	if c[0] == a[0] && c[1] == a[1] {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestDCAndAdd(t *testing.T) {
	sum := Add(DC(1, 4), DC(2, 3))
	if len(sum) != 3 {
		t.Fatalf("len = %d, want 3", len(sum))
	}
	for i, v := range sum {
		if v != 3 {
			t.Fatalf("sum[%d] = %v, want 3", i, v)
		}
	}
	if RMS(nil) != 0 {
		t.Fatal("RMS(nil) != 0")
	}
}
