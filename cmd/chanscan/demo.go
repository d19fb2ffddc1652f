package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-chanscan/dsp/core"
	"github.com/cwbudde/algo-chanscan/dsp/signal"
	"github.com/cwbudde/algo-chanscan/internal/config"
	"github.com/cwbudde/algo-chanscan/internal/source"
)

func (a *app) newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Scan a synthetic multi-tone signal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := synthesize(a.cfg.Demo)
			if err != nil {
				return err
			}
			src := source.FromSamples(a.cfg.Demo.SampleRate, samples)
			return a.runAndReport(cmd, "demo", src)
		},
	}

	fs := cmd.Flags()
	addDetectorFlags(fs)
	fs.String("db", "", "record every detection cycle in this SQLite database")
	fs.Int("demo-rate", 8000, "sample rate of the synthetic signal in Hz")
	fs.Float64("seconds", 2, "signal duration in seconds")
	fs.StringSlice("tones", nil, "tone frequencies in Hz (default 1000,2500)")
	fs.Float64("amplitude", 1, "amplitude of each tone")
	fs.Float64("noise", 0.05, "amplitude of the complex white noise")
	fs.Int64("seed", 1, "noise seed")

	return cmd
}

// synthesize renders the demo tones plus noise.
func synthesize(cfg config.DemoConfig) ([]complex128, error) {
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("demo sample rate must be positive: %d", cfg.SampleRate)
	}
	n := int(cfg.Seconds * float64(cfg.SampleRate))

	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(float64(cfg.SampleRate))},
		signal.WithSeed(cfg.Seed),
	)

	x, err := gen.Multitone(cfg.Tones, cfg.Amplitude, n)
	if err != nil {
		return nil, err
	}
	if cfg.Noise > 0 {
		noise, err := gen.WhiteNoise(cfg.Noise, n)
		if err != nil {
			return nil, err
		}
		signal.Add(x, noise)
	}
	return x, nil
}
