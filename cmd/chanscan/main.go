// Command chanscan finds occupied frequency channels in complex baseband
// recordings.
//
// Usage:
//
//	chanscan scan [flags] FILE.wav
//	chanscan demo [flags]
//	chanscan version
//
// Mono WAV files are scanned as real signals; stereo files are read as I/Q
// with the left channel as I. Settings come from flags, CHANSCAN_*
// environment variables and chanscan.yaml, in that order of precedence.
//
// Examples:
//
//	chanscan scan capture.wav
//	chanscan scan --window-size 1024 --alpha 0.1 -o json capture.wav
//	chanscan scan --db runs.db capture.wav
//	chanscan demo --tones 700,1800 --noise 0.2
//	chanscan scan --print-config
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
