package biquad

import (
	"math"
	"testing"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func testCoeffs() Coefficients {
	return Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
}

func TestProcessBlock_DFIIT(t *testing.T) {
	// n=0: y=0.25, d0=0.55, d1=0.24
	// n=1: y=0.55, d0=0.35, d1=-0.022
	// n=2: y=0.35, d0=0.048, d1=-0.014
	// n=3: y=0.048
	s := Section{Coefficients: testCoeffs()}

	buf := []float64{1, 0, 0, 0}
	s.ProcessBlock(buf)

	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		if !almostEqual(buf[i], w, eps) {
			t.Errorf("sample %d: got %.15f, want %.15f", i, buf[i], w)
		}
	}
}

func TestProcessBlock_SplitMatchesWhole(t *testing.T) {
	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8, 0.1}

	for _, split := range []int{0, 1, 4, 5, 9} {
		whole := Section{Coefficients: testCoeffs()}
		ref := append([]float64(nil), input...)
		whole.ProcessBlock(ref)

		parts := Section{Coefficients: testCoeffs()}
		got := append([]float64(nil), input...)
		parts.ProcessBlock(got[:split])
		parts.ProcessBlock(got[split:])

		for i := range got {
			if got[i] != ref[i] {
				t.Errorf("split=%d sample %d: %.15f, want %.15f", split, i, got[i], ref[i])
			}
		}
	}
}

func TestCoefficients_Scaled(t *testing.T) {
	c := testCoeffs().Scaled(2)
	if c.B0 != 0.5 || c.B1 != 1 || c.B2 != 0.5 {
		t.Fatalf("numerator not scaled: %+v", c)
	}
	if c.A1 != -0.2 || c.A2 != 0.04 {
		t.Fatalf("denominator changed: %+v", c)
	}
}
