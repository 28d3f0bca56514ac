package biquad

import (
	"math/cmplx"
	"testing"
)

func TestCoefficients_Poles(t *testing.T) {
	c := Coefficients{B0: 1, B1: -0.6, B2: 0.25, A1: -1.4, A2: 0.53}
	if poles := c.Poles(); !unorderedRootsClose(poles, complex(0.7, 0.2), complex(0.7, -0.2), 1e-12) {
		t.Fatalf("poles = %v", poles)
	}

	realPoles := Coefficients{B0: 1, A1: -0.5, A2: 0.06}
	if poles := realPoles.Poles(); !unorderedRootsClose(poles, 0.3, 0.2, 1e-12) {
		t.Fatalf("real poles = %v", poles)
	}
}

func TestStable(t *testing.T) {
	tests := []struct {
		name   string
		coeffs Coefficients
		want   bool
	}{
		{name: "inside", coeffs: Coefficients{B0: 1, A1: -1.4, A2: 0.53}, want: true},
		{name: "on circle", coeffs: Coefficients{B0: 1, A1: 0, A2: 1}, want: false},
		{name: "outside", coeffs: Coefficients{B0: 1, A1: -2.5, A2: 1.2}, want: false},
		{name: "fir", coeffs: Coefficients{B0: 0.5, B1: 0.5}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coeffs.Stable(); got != tt.want {
				t.Fatalf("Stable() = %v, want %v (poles %v)", got, tt.want, tt.coeffs.Poles())
			}
		})
	}

	chain := NewChain([]Coefficients{tests[0].coeffs, tests[2].coeffs})
	if chain.Stable() {
		t.Fatal("chain with an unstable section reported stable")
	}
}

func unorderedRootsClose(got [2]complex128, want1, want2 complex128, tol float64) bool {
	return (rootsClose(got[0], want1, tol) && rootsClose(got[1], want2, tol)) ||
		(rootsClose(got[0], want2, tol) && rootsClose(got[1], want1, tol))
}

func rootsClose(a, b complex128, tol float64) bool {
	return cmplx.Abs(a-b) <= tol
}
