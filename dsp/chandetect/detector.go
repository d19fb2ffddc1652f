package chandetect

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-chanscan/dsp/core"
	"github.com/cwbudde/algo-chanscan/dsp/decimate"
	"github.com/cwbudde/algo-chanscan/dsp/signal"
	"github.com/cwbudde/algo-chanscan/dsp/spectrum"
)

// Detector is a streaming spectral channel detector. Create one with New.
type Detector struct {
	cfg    Config
	proc   core.ProcessorConfig
	logger *zap.Logger
	hook   func(Cycle)

	lo   *signal.Oscillator
	dec  *decimate.Decimator
	win  window
	plan *algofft.Plan[complex128]
	bins []complex128
	avg  *spectrum.Averager
	reg  *Registry

	settle  uint64
	windows uint64
	cycles  uint64
}

// New validates cfg and allocates every buffer the detector needs. It
// returns an error wrapping ErrInvalidConfig, ErrUnsupportedMode or
// ErrAllocation.
func New(cfg Config, opts ...Option) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !cfg.Mode.Implemented() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMode, cfg.Mode)
	}

	o := applyOptions(opts)

	dec, err := decimate.New(cfg.Decimation, float64(cfg.SampleRate))
	if err != nil {
		return nil, fmt.Errorf("%w: antialias filter: %w", ErrAllocation, err)
	}

	plan, err := algofft.NewPlan64(cfg.WindowSize)
	if err != nil {
		return nil, fmt.Errorf("%w: fft plan for %d bins: %w", ErrAllocation, cfg.WindowSize, err)
	}

	avg, err := spectrum.NewAverager(cfg.WindowSize, cfg.Alpha)
	if err != nil {
		return nil, fmt.Errorf("%w: averager: %w", ErrInvalidConfig, err)
	}

	d := &Detector{
		cfg:    cfg,
		proc:   cfg.Processor(),
		logger: o.logger,
		hook:   o.hook,
		lo:     signal.NewOscillator(cfg.CenterFrequency, float64(cfg.SampleRate)),
		dec:    dec,
		win:    newWindow(cfg.WindowSize),
		plan:   plan,
		bins:   make([]complex128, cfg.WindowSize),
		avg:    avg,
		reg:    NewRegistry(cfg.WindowSize/4 + 1),
		settle: cfg.SettleWindows(),
	}

	d.logger.Debug("detector ready",
		zap.Stringer("mode", cfg.Mode),
		zap.Int("sample_rate", cfg.SampleRate),
		zap.Int("window_size", cfg.WindowSize),
		zap.Float64("alpha", cfg.Alpha),
		zap.Int("decimation", cfg.Decimation),
		zap.Float64("cutoff_hz", dec.Cutoff()),
		zap.Float64("bin_width_hz", d.BinWidth()),
		zap.Uint64("settle_windows", d.settle),
	)

	return d, nil
}

// Feed processes one input sample. Discovery mode never fails; a detector
// whose mode has no implementation returns ErrUnsupportedMode.
func (d *Detector) Feed(x complex128) error {
	switch d.cfg.Mode {
	case ModeDiscovery:
		return d.discover(x)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedMode, d.cfg.Mode)
	}
}

// FeedBlock feeds every sample of xs in order and stops at the first error.
func (d *Detector) FeedBlock(xs []complex128) error {
	for _, x := range xs {
		if err := d.Feed(x); err != nil {
			return err
		}
	}
	return nil
}

func (d *Detector) discover(x complex128) error {
	y, ok := d.dec.Process(x)
	if !ok {
		return nil
	}
	if !d.win.push(y) {
		return nil
	}

	if err := d.plan.Forward(d.bins, d.win.buf); err != nil {
		return fmt.Errorf("chandetect: forward transform: %w", err)
	}
	if err := d.avg.Update(d.bins); err != nil {
		return fmt.Errorf("chandetect: average spectrum: %w", err)
	}

	d.windows++
	if d.windows < d.settle {
		if ce := d.logger.Check(zapcore.DebugLevel, "averaging window"); ce != nil {
			ce.Write(zap.Uint64("window", d.windows), zap.Uint64("settle", d.settle))
		}
		return nil
	}

	floor, peak, threshold := d.segment()
	d.cycles++

	if ce := d.logger.Check(zapcore.DebugLevel, "segmentation cycle"); ce != nil {
		ce.Write(
			zap.Uint64("cycle", d.cycles),
			zap.Uint64("window", d.windows),
			zap.Float64("threshold", threshold),
			zap.Int("channels", d.reg.Len()),
		)
	}

	if d.hook != nil {
		d.hook(Cycle{
			Index:     d.cycles,
			Window:    d.windows,
			Floor:     floor,
			Peak:      peak,
			Threshold: threshold,
			Channels:  d.reg.View(),
		})
	}
	return nil
}

// Channels returns a snapshot of the channels found by the latest scan.
func (d *Detector) Channels() []Channel { return d.reg.Channels() }

// AppendChannels appends the latest channels to dst without allocating when
// dst has enough capacity.
func (d *Detector) AppendChannels(dst []Channel) []Channel { return d.reg.AppendTo(dst) }

// Spectrum returns the averaged magnitude spectrum in FFT bin order. The
// slice is owned by the detector and changes when the next window completes.
func (d *Detector) Spectrum() []float64 { return d.avg.Values() }

// Windows returns the number of completed windows.
func (d *Detector) Windows() uint64 { return d.windows }

// Cycles returns the number of segmentation scans performed.
func (d *Detector) Cycles() uint64 { return d.cycles }

// Config returns the detector configuration.
func (d *Detector) Config() Config { return d.cfg }

// BinWidth returns the spacing between bins in Hz at the decimated rate.
func (d *Detector) BinWidth() float64 { return d.proc.BinWidth() }

// BinFrequency maps bin i of the lower half-spectrum to Hz.
// It scales by the decimated rate fs/D, not fs*D, so one bin equals BinWidth.
func (d *Detector) BinFrequency(i int) float64 {
	norm := 2 * float64(i) / float64(d.cfg.WindowSize)
	return core.NormToAbsFreq(d.proc.EffectiveRate(), norm)
}

// Cutoff returns the antialias filter cutoff in Hz, or 0 without decimation.
func (d *Detector) Cutoff() float64 { return d.dec.Cutoff() }

// CenterFrequency returns the local oscillator frequency in Hz.
func (d *Detector) CenterFrequency() float64 { return d.lo.Frequency() }

// Reset returns the detector to its freshly constructed state.
func (d *Detector) Reset() {
	d.dec.Reset()
	d.lo.Reset()
	d.win.reset()
	d.avg.Reset()
	d.reg.Reset()
	core.ZeroComplex(d.bins)
	d.windows = 0
	d.cycles = 0
}
