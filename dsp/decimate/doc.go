// Package decimate implements the decimating antialias stage of the channel
// detector.
//
// A [Decimator] with factor 1 is an identity gate. With factor D > 1 every
// complex input sample passes through a fixed 5th-order Butterworth lowpass
// with its cutoff at 0.5/D of Nyquist, and only every D-th filtered sample is
// forwarded. The samples in between are discarded after they have updated
// the filter memory.
package decimate
