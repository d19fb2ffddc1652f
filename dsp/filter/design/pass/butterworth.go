package pass

import (
	"github.com/cwbudde/algo-chanscan/dsp/filter/biquad"
)

// ButterworthLP designs a lowpass Butterworth cascade with its -3 dB point
// at freq (Hz).
//
// For odd orders, the final section is first-order (B2=A2=0). It returns
// nil when order is not positive or freq is outside (0, sampleRate/2).
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 {
		return nil
	}
	if _, ok := bilinearK(freq, sampleRate); !ok {
		return nil
	}
	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		sections = append(sections, lowpassRBJ(freq, q, sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, butterworthFirstOrderLP(freq, sampleRate))
	}
	return sections
}

// ButterworthLPNormalized designs a lowpass Butterworth cascade with the
// cutoff given as a fraction of Nyquist (1.0 == sampleRate/2).
func ButterworthLPNormalized(cutoff float64, order int, sampleRate float64) []biquad.Coefficients {
	return ButterworthLP(cutoff*sampleRate/2, order, sampleRate)
}
