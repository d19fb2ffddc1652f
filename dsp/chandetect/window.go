package chandetect

import "github.com/cwbudde/algo-chanscan/dsp/core"

// window accumulates decimated samples into a reusable buffer.
type window struct {
	buf []complex128
	pos int
}

func newWindow(n int) window {
	return window{buf: make([]complex128, n)}
}

// push stores x and reports whether the window is now full. A full window
// rewinds the write position, so buf must be consumed before the next push.
func (w *window) push(x complex128) bool {
	w.buf[w.pos] = x
	w.pos++
	if w.pos < len(w.buf) {
		return false
	}
	w.pos = 0
	return true
}

func (w *window) reset() {
	w.pos = 0
	core.ZeroComplex(w.buf)
}
