package frequency_test

import (
	"fmt"

	frequencystats "github.com/cwbudde/algo-chanscan/stats/frequency"
)

func ExampleCalculate() {
	// Eight-bin averaged spectrum at 1 kHz per bin; only bins 0..3 are used.
	spectrum := []float64{1, 1, 9, 1, 0, 0, 0, 0}
	s := frequencystats.Calculate(spectrum, 1000)
	fmt.Printf("peak=%.0f Hz range=%.1f dB\n", s.PeakFrequency, s.DynamicRange)

	// Output:
	// peak=2000 Hz range=19.1 dB
}
