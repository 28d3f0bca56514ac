package spectrum_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-crepitus/dsp/spectrum"
)

func ExampleToneAmplitude() {
	sig := make([]float64, 10000)
	for i := range sig {
		sig[i] = 2 * math.Sin(2*math.Pi*3025*float64(i)/10000)
	}

	amp, err := spectrum.ToneAmplitude(sig, 3025, 10000)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.3f\n", amp)
	// Output:
	// 2.000
}
