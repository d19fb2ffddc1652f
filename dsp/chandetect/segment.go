package chandetect

import (
	"gonum.org/v1/gonum/floats"
)

// Threshold weights: T = peakWeight*max + floorWeight*min.
const (
	peakWeight  = 0.15
	floorWeight = 0.85
)

// Threshold returns the adaptive occupancy threshold for a spectrum with the
// given floor and peak.
func Threshold(floor, peak float64) float64 {
	return peakWeight*peak + floorWeight*floor
}

// segment rebuilds the registry from the averaged spectrum and returns the
// floor, peak and threshold used.
func (d *Detector) segment() (floor, peak, threshold float64) {
	avg := d.avg.Values()
	floor, peak = floats.Min(avg), floats.Max(avg)
	threshold = Threshold(floor, peak)

	d.reg.Reset()

	half := len(avg) / 2
	inChannel := false
	start := 0.0
	for i := 0; i < half; i++ {
		above := avg[i] > threshold
		switch {
		case above && !inChannel:
			start = d.BinFrequency(i)
			inChannel = true
		case !above && inChannel:
			d.closeRun(start, d.BinFrequency(i))
			inChannel = false
		}
	}
	if inChannel {
		d.closeRun(start, d.BinFrequency(half))
	}

	return floor, peak, threshold
}

func (d *Detector) closeRun(start, end float64) {
	d.reg.Submit((start+end)/2, end-start)
}
