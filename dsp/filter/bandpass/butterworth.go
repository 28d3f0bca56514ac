package bandpass

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/cwbudde/algo-crepitus/dsp/filter/biquad"
)

// realPoleTol is the imaginary-part magnitude below which a z-plane pole is
// treated as real when grouping poles into sections.
const realPoleTol = 1e-10

// Filter designs coefficients for a Spec and runs them over a signal.
type Filter interface {
	Design(spec Spec) ([]biquad.Coefficients, error)
	Apply(sections []biquad.Coefficients, data []float64) []float64
}

// Butterworth is the Filter backed by Design and Apply.
type Butterworth struct{}

var _ Filter = Butterworth{}

// Design implements Filter.
func (Butterworth) Design(spec Spec) ([]biquad.Coefficients, error) {
	return Design(spec)
}

// Apply implements Filter.
func (Butterworth) Apply(sections []biquad.Coefficients, data []float64) []float64 {
	return Apply(sections, data)
}

// Design returns spec.Order second-order sections implementing a Butterworth
// band-pass between spec.LowHz and spec.HighHz.
//
// The overall gain is folded into the first section. Sections are ordered by
// pole radius so that the most resonant section runs last.
func Design(spec Spec) ([]biquad.Coefficients, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	fs2 := 2 * spec.SampleRate
	wl, wh := spec.warpedEdges()
	bw := wh - wl
	w0sq := complex(wl*wh, 0)
	n := spec.Order

	zPoles := make([]complex128, 0, 2*n)
	gain := complex(1, 0)

	// Analog prototype poles on the left half of the unit circle, shifted to
	// the band and mapped through z = (fs2+s)/(fs2-s). Each prototype pole
	// contributes bw*fs2 / ((fs2-s1)(fs2-s2)) to the digital gain.
	for m := -n + 1; m < n; m += 2 {
		p := -cmplx.Exp(complex(0, math.Pi*float64(m)/float64(2*n)))
		half := p * complex(bw/2, 0)
		root := cmplx.Sqrt(half*half - w0sq)

		s1 := half + root
		s2 := half - root
		k := complex(fs2, 0)
		zPoles = append(zPoles, (k+s1)/(k-s1), (k+s2)/(k-s2))
		gain *= complex(bw*fs2, 0) / ((k - s1) * (k - s2))
	}

	sections := groupPoles(zPoles)
	sortByPoleRadius(sections)
	sections[0] = sections[0].Scaled(real(gain))

	return sections, nil
}

// groupPoles builds one section per conjugate pole pair and one per pair of
// real poles. Every section gets numerator 1 - z^-2.
func groupPoles(poles []complex128) []biquad.Coefficients {
	sections := make([]biquad.Coefficients, 0, len(poles)/2)
	var reals []float64

	for _, p := range poles {
		switch {
		case imag(p) > realPoleTol:
			sections = append(sections, biquad.Coefficients{
				B0: 1, B1: 0, B2: -1,
				A1: -2 * real(p),
				A2: real(p)*real(p) + imag(p)*imag(p),
			})
		case imag(p) >= -realPoleTol:
			reals = append(reals, real(p))
		}
	}

	sort.Float64s(reals)
	for i := 0; i+1 < len(reals); i += 2 {
		r1, r2 := reals[i], reals[i+1]
		sections = append(sections, biquad.Coefficients{
			B0: 1, B1: 0, B2: -1,
			A1: -(r1 + r2),
			A2: r1 * r2,
		})
	}

	return sections
}

func sortByPoleRadius(sections []biquad.Coefficients) {
	radius := func(c biquad.Coefficients) float64 {
		poles := c.Poles()
		return math.Max(cmplx.Abs(poles[0]), cmplx.Abs(poles[1]))
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return radius(sections[i]) < radius(sections[j])
	})
}

// Apply filters data through the section cascade in a single causal pass and
// returns a new slice of the same length. data is not modified.
func Apply(sections []biquad.Coefficients, data []float64) []float64 {
	out := make([]float64, len(data))
	copy(out, data)

	biquad.NewChain(sections).ProcessBlock(out)

	return out
}

// ApplyBandPass designs an order-N Butterworth band-pass for [lowCut, highCut]
// and applies it to data. The output has the same length as data.
func ApplyBandPass(data []float64, lowCut, highCut, sampleRate float64, order int) ([]float64, error) {
	sections, err := Design(Spec{
		Order:      order,
		LowHz:      lowCut,
		HighHz:     highCut,
		SampleRate: sampleRate,
	})
	if err != nil {
		return nil, err
	}

	return Apply(sections, data), nil
}
