package core

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// ZeroComplex sets all values in buf to 0.
func ZeroComplex(buf []complex128) {
	for i := range buf {
		buf[i] = 0
	}
}

// SplitComplex writes the real and imaginary parts of src into re and im.
// It returns the number of elements written, bounded by the shortest slice.
func SplitComplex(re, im []float64, src []complex128) int {
	n := min(len(src), len(re), len(im))
	for i := range n {
		re[i] = real(src[i])
		im[i] = imag(src[i])
	}
	return n
}
