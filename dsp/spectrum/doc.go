// Package spectrum provides FFT-adjacent spectrum-domain utilities.
//
// The package does not implement the FFT itself. It operates on complex
// spectrum bins produced by an external FFT plan: magnitude extraction and
// the exponential spectral averager that the channel detector segments.
package spectrum
