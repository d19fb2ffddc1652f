package signal

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/cwbudde/algo-chanscan/dsp/core"
)

// Generator creates deterministic complex baseband signals from a shared
// configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 { return g.seed }

// Tone generates the complex exponential amplitude*exp(2πi·freqHz·n/rate).
// Negative frequencies rotate clockwise.
func (g *Generator) Tone(freqHz, amplitude float64, samples int) ([]complex128, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("tone samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("tone sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	out := make([]complex128, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = complex(amplitude, 0) * cmplx.Exp(complex(0, step*float64(i)))
	}
	return out, nil
}

// Multitone sums equal-amplitude complex tones.
func (g *Generator) Multitone(freqsHz []float64, amplitude float64, samples int) ([]complex128, error) {
	if len(freqsHz) == 0 {
		return nil, fmt.Errorf("multitone requires at least one frequency")
	}
	out := make([]complex128, samples)
	for _, f := range freqsHz {
		tone, err := g.Tone(f, amplitude, samples)
		if err != nil {
			return nil, err
		}
		for i := range out {
			out[i] += tone[i]
		}
	}
	return out, nil
}

// WhiteNoise generates deterministic complex white noise whose I and Q
// components are uniform in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]complex128, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]complex128, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(re, im)
	}
	return out, nil
}

// Add sums src into dst element-wise over the shorter length.
func Add(dst, src []complex128) {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] += src[i]
	}
}
