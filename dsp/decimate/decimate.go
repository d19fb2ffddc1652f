package decimate

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-chanscan/dsp/filter/biquad"
	"github.com/cwbudde/algo-chanscan/dsp/filter/design/pass"
)

// FilterOrder is the order of the antialias lowpass.
const FilterOrder = 5

var (
	// ErrInvalidFactor indicates a decimation factor below 1.
	ErrInvalidFactor = errors.New("decimate: invalid factor")
	// ErrInvalidRate indicates a non-positive sample rate.
	ErrInvalidRate = errors.New("decimate: invalid sample rate")
)

// Decimator filters and decimates a complex sample stream by an integer
// factor. It is not safe for concurrent use.
type Decimator struct {
	factor int
	cutoff float64
	filter *biquad.Chain // nil when factor == 1
	phase  int
}

// New returns a Decimator for the given factor and input sample rate (Hz).
func New(factor int, sampleRate float64) (*Decimator, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFactor, factor)
	}
	if !(sampleRate > 0) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidRate, sampleRate)
	}

	d := &Decimator{factor: factor}
	if factor == 1 {
		return d, nil
	}

	d.cutoff = sampleRate / (4 * float64(factor))
	sections := pass.ButterworthLP(d.cutoff, FilterOrder, sampleRate)
	if sections == nil {
		return nil, fmt.Errorf("decimate: cannot design %d-order lowpass at %.3f Hz", FilterOrder, d.cutoff)
	}
	d.filter = biquad.NewChain(sections)

	return d, nil
}

// Process feeds one input sample. It returns the filtered sample and true
// when the sample is forwarded, or false while the gate is closed.
func (d *Decimator) Process(x complex128) (complex128, bool) {
	if d.filter == nil {
		return x, true
	}

	y := d.filter.ProcessSample(x)

	d.phase++
	if d.phase < d.factor {
		return 0, false
	}
	d.phase = 0

	return y, true
}

// Reset clears the filter memory and the decimation phase.
func (d *Decimator) Reset() {
	d.phase = 0
	if d.filter != nil {
		d.filter.Reset()
	}
}

// Cutoff returns the antialias -3 dB frequency in Hz, or 0 without a filter.
func (d *Decimator) Cutoff() float64 { return d.cutoff }
