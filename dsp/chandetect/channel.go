package chandetect

// Channel is a contiguous frequency band judged to carry energy above the
// adaptive noise threshold.
type Channel struct {
	// Frequency is the center frequency in Hz.
	Frequency float64 `json:"frequency" yaml:"frequency"`
	// Bandwidth is the width in Hz. Always > 0.
	Bandwidth float64 `json:"bandwidth" yaml:"bandwidth"`
	// SNR is reserved and always 0 in discovery mode.
	SNR float64 `json:"snr" yaml:"snr"`
}

// Low returns the lower band edge in Hz.
func (c Channel) Low() float64 { return c.Frequency - c.Bandwidth/2 }

// High returns the upper band edge in Hz.
func (c Channel) High() float64 { return c.Frequency + c.Bandwidth/2 }

// Contains reports whether f lies within [Low, High].
func (c Channel) Contains(f float64) bool {
	return f >= c.Low() && f <= c.High()
}
