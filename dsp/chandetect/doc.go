// Package chandetect implements an online spectral channel detector.
//
// A Detector ingests complex baseband samples one at a time. Samples pass
// through an optional decimating antialias filter and are collected into
// fixed-size windows. Each full window is transformed with a forward FFT and
// folded into an exponentially averaged magnitude spectrum. Once the average
// has had ceil(1/alpha) windows to converge, every further window triggers a
// segmentation scan: bins in the lower half of the spectrum that exceed an
// adaptive threshold (15% of the way from the spectral floor to its peak)
// are grouped into contiguous runs and reported as channels.
//
// Only discovery mode is implemented. The cyclostationary and
// order-estimation modes are valid Mode values that are rejected with
// ErrUnsupportedMode.
//
// A Detector is not safe for concurrent use. Feed does not allocate once the
// detector has been constructed.
package chandetect
