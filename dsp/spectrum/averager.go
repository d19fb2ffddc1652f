package spectrum

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-chanscan/dsp/core"
)

var (
	// ErrInvalidAlpha indicates a damping factor outside (0, 1].
	ErrInvalidAlpha = errors.New("spectrum: damping factor must be in (0, 1]")
	// ErrInvalidSize indicates a non-positive bin count.
	ErrInvalidSize = errors.New("spectrum: bin count must be > 0")
	// ErrLengthMismatch indicates an update with the wrong number of bins.
	ErrLengthMismatch = errors.New("spectrum: length mismatch")
)

// Averager maintains an exponentially smoothed magnitude spectrum:
//
//	avg[k] = alpha*|X[k]| + (1-alpha)*avg[k]
//
// The average starts at zero and persists across updates until Reset. All
// buffers are allocated once by NewAverager; Update does not allocate.
type Averager struct {
	alpha float64
	avg   []float64
	mag   []float64
	re    []float64
	im    []float64
}

// NewAverager returns an averager over n bins with damping factor alpha.
// Smaller alpha tracks more slowly with less variance.
func NewAverager(n int, alpha float64) (*Averager, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	if !(alpha > 0 && alpha <= 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAlpha, alpha)
	}

	buf := make([]float64, 4*n)
	return &Averager{
		alpha: alpha,
		avg:   buf[0*n : 1*n : 1*n],
		mag:   buf[1*n : 2*n : 2*n],
		re:    buf[2*n : 3*n : 3*n],
		im:    buf[3*n : 4*n : 4*n],
	}, nil
}

// Update folds one complex spectrum into the running average.
func (a *Averager) Update(bins []complex128) error {
	if len(bins) != len(a.avg) {
		return fmt.Errorf("%w: got %d bins, want %d", ErrLengthMismatch, len(bins), len(a.avg))
	}

	core.SplitComplex(a.re, a.im, bins)
	MagnitudeFromParts(a.mag, a.re, a.im)

	keep := 1 - a.alpha
	for i, m := range a.mag {
		a.avg[i] = core.FlushDenormals(a.alpha*m + keep*a.avg[i])
	}
	return nil
}

// Values returns the averaged spectrum. The slice is owned by the averager
// and is overwritten by the next Update; callers must not modify it.
func (a *Averager) Values() []float64 { return a.avg }

// Len returns the number of bins.
func (a *Averager) Len() int { return len(a.avg) }

// Alpha returns the damping factor.
func (a *Averager) Alpha() float64 { return a.alpha }

// Settle returns the number of updates after which the initial zero state
// has decayed below 1/e of its weight, i.e. ceil(1/alpha).
func (a *Averager) Settle() int {
	return int(math.Ceil(1 / a.alpha))
}

// Reset zeroes the running average.
func (a *Averager) Reset() {
	core.Zero(a.avg)
}
