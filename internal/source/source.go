// Package source provides complex sample sources for the channel scanner.
package source

import (
	"errors"
	"io"
)

// ErrInvalidFormat indicates input that cannot be decoded into samples.
var ErrInvalidFormat = errors.New("source: invalid format")

// Source delivers complex baseband samples at a fixed rate.
type Source interface {
	// SampleRate returns the rate in samples per second.
	SampleRate() int
	// Read fills dst and returns the number of samples written. It returns
	// 0, io.EOF once the source is exhausted.
	Read(dst []complex128) (int, error)
}

// Samples is an in-memory Source.
type Samples struct {
	rate int
	data []complex128
	pos  int
}

// FromSamples returns a Source reading data at rate.
func FromSamples(rate int, data []complex128) *Samples {
	return &Samples{rate: rate, data: data}
}

// SampleRate returns the sample rate.
func (s *Samples) SampleRate() int { return s.rate }

// Read copies the next samples into dst.
func (s *Samples) Read(dst []complex128) (int, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}
	n := copy(dst, s.data[s.pos:])
	s.pos += n
	return n, nil
}

// Len returns the total number of samples.
func (s *Samples) Len() int { return len(s.data) }
