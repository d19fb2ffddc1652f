package chandetect

import (
	"fmt"
	"strings"
)

// Mode selects the detector's processing branch.
type Mode int

const (
	// ModeDiscovery finds channels from raw spectral energy.
	ModeDiscovery Mode = iota
	// ModeCyclostationary estimates the baud rate of a tuned channel.
	// Not implemented.
	ModeCyclostationary
	// ModeOrderEstimation estimates the constellation order of a tuned
	// channel. Not implemented.
	ModeOrderEstimation
)

var modeNames = [...]string{
	ModeDiscovery:       "discovery",
	ModeCyclostationary: "cyclostationary",
	ModeOrderEstimation: "order-estimation",
}

// String returns the mode name.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Implemented reports whether the mode has a processing branch.
func (m Mode) Implemented() bool {
	return m == ModeDiscovery
}

// ParseMode parses a mode name as returned by String. Matching ignores case
// and surrounding whitespace.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("chandetect: unknown mode %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(modeNames) {
		return nil, fmt.Errorf("chandetect: unknown mode %d", int(m))
	}
	return []byte(modeNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
