package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-chanscan/dsp/core"
	"github.com/cwbudde/algo-chanscan/dsp/signal"
)

func ExampleGenerator_Tone() {
	g := signal.NewGenerator(core.WithSampleRate(1000))
	x, err := g.Tone(250, 1, 4)
	if err != nil {
		panic(err)
	}
	for _, v := range x {
		fmt.Printf("%+.0f%+.0fi ", real(v), imag(v))
	}
	fmt.Println()

	// Output:
	// +1+0i +0+1i -1+0i -0-1i
}
