// Package frequency summarizes averaged magnitude spectra produced by the
// channel detector.
//
// Spectra are in FFT bin order with bin i at i*binWidth Hz. Only the lower
// half (bins 0 .. len/2-1) is summarized, matching the detector's scan.
package frequency

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Stats holds descriptors of the scanned half of a magnitude spectrum.
type Stats struct {
	BinCount      int
	BinWidth      float64 // Hz
	Floor         float64 // minimum magnitude
	FloorBin      int
	Peak          float64 // maximum magnitude
	PeakBin       int
	PeakFrequency float64 // Hz
	Mean          float64
	DynamicRange  float64 // dB between peak and floor
	Energy        float64 // sum of squared magnitudes
	Centroid      float64 // Hz
	Spread        float64 // Hz
	Flatness      float64 // Wiener entropy, 0..1
	Rolloff       float64 // Hz below which 85% of the energy lies
	Bandwidth     float64 // 3 dB bandwidth around the peak, Hz
}

// RolloffFraction is the energy fraction used for Stats.Rolloff.
const RolloffFraction = 0.85

// Half returns the scanned lower half of spectrum.
func Half(spectrum []float64) []float64 {
	return spectrum[:len(spectrum)/2]
}

// Calculate summarizes the lower half of spectrum. An empty half yields a
// zero Stats with BinWidth set.
func Calculate(spectrum []float64, binWidth float64) Stats {
	mag := Half(spectrum)
	s := Stats{BinCount: len(mag), BinWidth: binWidth}
	if len(mag) == 0 {
		return s
	}

	s.FloorBin = floats.MinIdx(mag)
	s.PeakBin = floats.MaxIdx(mag)
	s.Floor = mag[s.FloorBin]
	s.Peak = mag[s.PeakBin]
	s.PeakFrequency = float64(s.PeakBin) * binWidth
	sum := floats.Sum(mag)
	s.Mean = sum / float64(len(mag))
	s.DynamicRange = dynamicRange(s.Floor, s.Peak)
	s.Energy = floats.Dot(mag, mag)

	s.Centroid = centroid(mag, binWidth, sum)
	s.Spread = spread(mag, binWidth, s.Centroid, sum)
	s.Flatness = Flatness(mag)
	s.Rolloff = rolloff(mag, binWidth, RolloffFraction, s.Energy)
	s.Bandwidth = bandwidth(mag, binWidth, s.PeakBin)

	return s
}

func dynamicRange(floor, peak float64) float64 {
	switch {
	case peak <= 0:
		return 0
	case floor <= 0:
		return math.Inf(1)
	}
	return 20 * math.Log10(peak/floor)
}

// Centroid returns the magnitude-weighted mean frequency of the lower half
// of spectrum in Hz.
func Centroid(spectrum []float64, binWidth float64) float64 {
	mag := Half(spectrum)
	return centroid(mag, binWidth, floats.Sum(mag))
}

func centroid(mag []float64, binWidth, sum float64) float64 {
	if len(mag) == 0 || sum == 0 {
		return 0
	}
	weighted := 0.0
	for i, v := range mag {
		weighted += float64(i) * binWidth * v
	}
	return weighted / sum
}

func spread(mag []float64, binWidth, cent, sum float64) float64 {
	if len(mag) == 0 || sum == 0 {
		return 0
	}
	acc := 0.0
	for i, v := range mag {
		d := float64(i)*binWidth - cent
		acc += d * d * v
	}
	return math.Sqrt(acc / sum)
}

// Flatness returns the spectral flatness exp(mean(log|X|))/mean(|X|) of mag.
// Any zero bin makes the geometric mean, and thus the result, zero.
func Flatness(mag []float64) float64 {
	if len(mag) == 0 {
		return 0
	}
	sumLog := 0.0
	for _, v := range mag {
		if v <= 0 {
			return 0
		}
		sumLog += math.Log(v)
	}
	mean := floats.Sum(mag) / float64(len(mag))
	return math.Exp(sumLog/float64(len(mag))) / mean
}

func rolloff(mag []float64, binWidth, fraction, energy float64) float64 {
	if len(mag) == 0 || energy == 0 {
		return 0
	}
	target := fraction * energy
	cum := 0.0
	for i, v := range mag {
		cum += v * v
		if cum >= target {
			return float64(i) * binWidth
		}
	}
	return float64(len(mag)-1) * binWidth
}

// bandwidth measures the width around peak where the magnitude stays above
// peak/sqrt(2), interpolating the crossings linearly.
func bandwidth(mag []float64, binWidth float64, peak int) float64 {
	if len(mag) < 2 || mag[peak] == 0 {
		return 0
	}
	level := mag[peak] / math.Sqrt2

	lower := 0.0
	for i := peak; i >= 1; i-- {
		if mag[i-1] <= level {
			lower = crossing(i-1, mag[i-1], mag[i], level)
			break
		}
	}

	upper := float64(len(mag) - 1)
	for i := peak; i < len(mag)-1; i++ {
		if mag[i+1] <= level {
			upper = crossing(i, mag[i], mag[i+1], level)
			break
		}
	}

	return (upper - lower) * binWidth
}

// crossing returns the fractional bin between i and i+1 where a line from a
// to b reaches level.
func crossing(i int, a, b, level float64) float64 {
	if a == b {
		return float64(i) + 0.5
	}
	return float64(i) + (level-a)/(b-a)
}
