package core

// ProcessorConfig defines common DSP processing settings.
//
// SampleRate is the input rate in Hz. Decimation is the integer factor by
// which a processor reduces that rate before analysis.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
	Decimation int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the defaults used by the channel scanner:
// 8 kHz input, 512-sample blocks, no decimation.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 8000,
		BlockSize:  512,
		Decimation: 1,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the processing block size.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// WithDecimation sets the decimation factor. Values below 1 are ignored.
func WithDecimation(factor int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if factor >= 1 {
			cfg.Decimation = factor
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// EffectiveRate returns the sample rate after decimation.
func (c ProcessorConfig) EffectiveRate() float64 {
	if c.Decimation <= 1 {
		return c.SampleRate
	}
	return c.SampleRate / float64(c.Decimation)
}

// BinWidth returns the frequency spacing in Hz between adjacent bins of a
// BlockSize-point transform taken at the effective rate.
func (c ProcessorConfig) BinWidth() float64 {
	if c.BlockSize <= 0 {
		return 0
	}
	return c.EffectiveRate() / float64(c.BlockSize)
}
