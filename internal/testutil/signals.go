package testutil

import (
	"math"
	"math/cmplx"
	"math/rand"
)

// ComplexTone returns amplitude*exp(2πi·freqHz·n/sampleRate) for n in
// [0, length).
func ComplexTone(freqHz, sampleRate, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = complex(amplitude, 0) * cmplx.Exp(complex(0, step*float64(i)))
	}
	return out
}

// ComplexNoise returns seeded complex white noise with I and Q uniform in
// [-amplitude, amplitude].
func ComplexNoise(seed int64, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(re, im)
	}
	return out
}

// Silence returns length zero samples.
func Silence(length int) []complex128 {
	return make([]complex128, length)
}
