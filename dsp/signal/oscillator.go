package signal

import (
	"math"
	"math/cmplx"
)

// Oscillator is a numerically controlled complex oscillator. The detector
// keeps one tuned to its center frequency as the local oscillator.
type Oscillator struct {
	freq  float64
	phase float64
	step  float64
}

// NewOscillator returns an oscillator at freqHz for the given sample rate.
func NewOscillator(freqHz, sampleRate float64) *Oscillator {
	o := &Oscillator{freq: freqHz}
	if sampleRate > 0 {
		o.step = 2 * math.Pi * freqHz / sampleRate
	}
	return o
}

// Frequency returns the tuned frequency in Hz.
func (o *Oscillator) Frequency() float64 { return o.freq }

// Next returns exp(i·phase) and advances the phase by one sample.
func (o *Oscillator) Next() complex128 {
	y := cmplx.Exp(complex(0, o.phase))
	o.phase = math.Remainder(o.phase+o.step, 2*math.Pi)
	return y
}

// Reset sets the phase back to zero.
func (o *Oscillator) Reset() { o.phase = 0 }
