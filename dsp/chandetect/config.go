package chandetect

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-chanscan/dsp/core"
)

// Config holds the detector parameters. It is copied into the Detector at
// construction and never changes afterwards.
type Config struct {
	// Mode selects the processing branch. Only ModeDiscovery is implemented.
	Mode Mode `json:"mode" yaml:"mode"`
	// SampleRate is the input rate in samples per second, before decimation.
	SampleRate int `json:"sample_rate" yaml:"sample_rate"`
	// WindowSize is the number of complex samples per transform, which is
	// also the number of frequency bins.
	WindowSize int `json:"window_size" yaml:"window_size"`
	// Alpha is the weight of the newest spectrum in the running average.
	Alpha float64 `json:"alpha" yaml:"alpha"`
	// CenterFrequency tunes the local oscillator for the tuned modes.
	// Discovery ignores it.
	CenterFrequency float64 `json:"center_frequency" yaml:"center_frequency"`
	// Decimation is the integer rate reduction applied before windowing.
	Decimation int `json:"decimation" yaml:"decimation"`
	// MaxOrder is reserved for order estimation.
	MaxOrder int `json:"max_order" yaml:"max_order"`
}

// DefaultConfig returns an 8 kHz discovery configuration with 512 bins,
// alpha 0.25 and no decimation.
func DefaultConfig() Config {
	return Config{
		Mode:       ModeDiscovery,
		SampleRate: 8000,
		WindowSize: 512,
		Alpha:      0.25,
		Decimation: 1,
		MaxOrder:   8,
	}
}

// Validate checks the numeric fields. It does not reject unimplemented
// modes; New does that separately so callers can tell the two apart.
func (c Config) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate must be > 0: %d", ErrInvalidConfig, c.SampleRate)
	case c.WindowSize <= 0:
		return fmt.Errorf("%w: window size must be > 0: %d", ErrInvalidConfig, c.WindowSize)
	case !(c.Alpha > 0 && c.Alpha <= 1):
		return fmt.Errorf("%w: alpha must be in (0, 1]: %v", ErrInvalidConfig, c.Alpha)
	case c.Decimation < 1:
		return fmt.Errorf("%w: decimation must be >= 1: %d", ErrInvalidConfig, c.Decimation)
	case math.IsNaN(c.CenterFrequency) || math.IsInf(c.CenterFrequency, 0):
		return fmt.Errorf("%w: center frequency must be finite: %v", ErrInvalidConfig, c.CenterFrequency)
	case c.MaxOrder < 0:
		return fmt.Errorf("%w: max order must be >= 0: %d", ErrInvalidConfig, c.MaxOrder)
	}
	return nil
}

// Processor returns the shared processor view of the configuration.
func (c Config) Processor() core.ProcessorConfig {
	return core.ApplyProcessorOptions(
		core.WithSampleRate(float64(c.SampleRate)),
		core.WithBlockSize(c.WindowSize),
		core.WithDecimation(c.Decimation),
	)
}

// SettleWindows returns the number of windows averaged before the first
// segmentation scan, ceil(1/Alpha).
func (c Config) SettleWindows() uint64 {
	return uint64(math.Ceil(1 / c.Alpha))
}
