package core

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// FlushDenormals converts tiny denormal-like values to exact zero.
// Exponential averages decaying towards a silent bin otherwise sink into the
// subnormal range and stall hot loops.
func FlushDenormals(x float64) float64 {
	const epsilon = 1e-30
	if x > -epsilon && x < epsilon {
		return 0
	}

	return x
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// NormToAbsFreq converts a frequency normalized to Nyquist (1.0 == rate/2)
// into Hz.
func NormToAbsFreq(rate, norm float64) float64 {
	return rate * norm / 2
}

// AbsToNormFreq converts a frequency in Hz into a frequency normalized to
// Nyquist.
func AbsToNormFreq(rate, freq float64) float64 {
	if rate == 0 {
		return 0
	}
	return 2 * freq / rate
}
