package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-chanscan/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(48000),
		core.WithBlockSize(256),
		core.WithDecimation(6),
	)

	fmt.Printf("rate=%.0f bin=%.2f\n", cfg.EffectiveRate(), cfg.BinWidth())

	// Output:
	// rate=8000 bin=31.25
}

func ExampleNormToAbsFreq() {
	fmt.Printf("%.0f Hz\n", core.NormToAbsFreq(8000, 0.25))

	// Output:
	// 1000 Hz
}
