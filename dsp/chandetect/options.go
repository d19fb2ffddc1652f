package chandetect

import "go.uber.org/zap"

// Cycle describes one segmentation scan.
type Cycle struct {
	// Index counts qualifying scans, starting at 1.
	Index uint64
	// Window is the completed-window count at the time of the scan.
	Window uint64
	// Floor and Peak are the minimum and maximum of the averaged spectrum.
	Floor, Peak float64
	// Threshold is the level a bin must exceed to count as occupied.
	Threshold float64
	// Channels is a read-only view of the registry, valid only for the
	// duration of the hook call.
	Channels []Channel
}

// Option configures a Detector.
type Option func(*options)

type options struct {
	logger *zap.Logger
	hook   func(Cycle)
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCycleHook registers fn to run after every segmentation scan.
func WithCycleHook(fn func(Cycle)) Option {
	return func(o *options) {
		o.hook = fn
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
