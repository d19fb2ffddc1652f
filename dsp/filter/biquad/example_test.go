package biquad_test

import (
	"fmt"

	"github.com/cwbudde/algo-chanscan/dsp/filter/biquad"
)

func ExampleSection_ProcessSample() {
	// Create a lowpass-like biquad section.
	s := biquad.NewSection(biquad.Coefficients{
		B0: 0.25, B1: 0.5, B2: 0.25,
		A1: -0.2, A2: 0.04,
	})

	// Process an impulse.
	for i := range 4 {
		var x float64
		if i == 0 {
			x = 1
		}

		y := s.ProcessSample(x)
		fmt.Printf("y[%d] = %.6f\n", i, y)
	}
	// Output:
	// y[0] = 0.250000
	// y[1] = 0.550000
	// y[2] = 0.350000
	// y[3] = 0.048000
}

func ExampleChain_ProcessSample() {
	// Two-section cascade over a complex step.
	chain := biquad.NewChain([]biquad.Coefficients{
		{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04},
		{B0: 0.1, B1: 0.2, B2: 0.1, A1: -0.5, A2: 0.1},
	})

	for i := range 4 {
		y := chain.ProcessSample(1 + 1i)
		fmt.Printf("y[%d] = %.6f%+.6fi\n", i, real(y), imag(y))
	}
	// Output:
	// y[0] = 0.025000+0.025000i
	// y[1] = 0.142500+0.142500i
	// y[2] = 0.368750+0.368750i
	// y[3] = 0.599925+0.599925i
}
