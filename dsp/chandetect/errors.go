package chandetect

import "errors"

var (
	// ErrInvalidConfig indicates a configuration with out-of-range values.
	ErrInvalidConfig = errors.New("chandetect: invalid config")
	// ErrUnsupportedMode indicates a detector mode without an implementation.
	ErrUnsupportedMode = errors.New("chandetect: unsupported mode")
	// ErrAllocation indicates that a transform plan or filter could not be
	// constructed for the configuration.
	ErrAllocation = errors.New("chandetect: allocation failed")
)
