package source

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WAV reads complex samples from a PCM WAV stream. Mono files map each
// sample to its real part; files with two or more channels use the first
// channel as I and the second as Q. Samples are normalized to [-1, 1).
type WAV struct {
	closer   io.Closer
	dec      *wav.Decoder
	buf      audio.IntBuffer
	rate     int
	channels int
	depth    int
	offset   int
	scale    float64
}

// OpenWAV opens the WAV file at path. Close releases the file.
func OpenWAV(path string) (*WAV, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: opening %s: %w", path, err)
	}

	w, err := NewWAV(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("source: %s: %w", path, err)
	}
	w.closer = f
	return w, nil
}

// NewWAV decodes the WAV header from r.
func NewWAV(r io.ReadSeeker) (*WAV, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: not a PCM WAV file", ErrInvalidFormat)
	}

	format := dec.Format()
	depth := int(dec.BitDepth)
	switch {
	case format == nil || format.SampleRate <= 0:
		return nil, fmt.Errorf("%w: missing sample rate", ErrInvalidFormat)
	case format.NumChannels < 1:
		return nil, fmt.Errorf("%w: no channels", ErrInvalidFormat)
	case depth != 8 && depth != 16 && depth != 24 && depth != 32:
		return nil, fmt.Errorf("%w: unsupported bit depth %d", ErrInvalidFormat, depth)
	}

	w := &WAV{
		dec:      dec,
		buf:      audio.IntBuffer{Format: format, SourceBitDepth: depth},
		rate:     format.SampleRate,
		channels: format.NumChannels,
		depth:    depth,
		scale:    1 / float64(int64(1)<<(depth-1)),
	}
	// 8-bit PCM is unsigned.
	if depth == 8 {
		w.offset = 128
	}
	return w, nil
}

// SampleRate returns the file's sample rate.
func (w *WAV) SampleRate() int { return w.rate }

// Channels returns the number of interleaved channels in the file.
func (w *WAV) Channels() int { return w.channels }

// BitDepth returns the PCM sample size in bits.
func (w *WAV) BitDepth() int { return w.depth }

// Duration returns the playing time of the file.
func (w *WAV) Duration() (time.Duration, error) {
	return w.dec.Duration()
}

// Read decodes up to len(dst) frames into dst.
func (w *WAV) Read(dst []complex128) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * w.channels
	if cap(w.buf.Data) < need {
		w.buf.Data = make([]int, need)
	}
	w.buf.Data = w.buf.Data[:need]

	n, err := w.dec.PCMBuffer(&w.buf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("source: decoding PCM: %w", err)
	}

	frames := n / w.channels
	if frames == 0 {
		return 0, io.EOF
	}

	data := w.buf.Data
	for i := range frames {
		base := i * w.channels
		re := float64(data[base]-w.offset) * w.scale
		im := 0.0
		if w.channels > 1 {
			im = float64(data[base+1]-w.offset) * w.scale
		}
		dst[i] = complex(re, im)
	}
	return frames, nil
}

// Close releases the underlying file, if any.
func (w *WAV) Close() error {
	if w.closer == nil {
		return nil
	}
	err := w.closer.Close()
	w.closer = nil
	return err
}
