package core

import "testing"

func TestZero(t *testing.T) {
	buf := []float64{1, 2, 3}
	Zero(buf)

	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %v, want 0", i, v)
		}
	}
}

func TestZeroComplex(t *testing.T) {
	buf := []complex128{1 + 1i, -2i}
	ZeroComplex(buf)

	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %v, want 0", i, v)
		}
	}
}

func TestSplitComplex(t *testing.T) {
	re := make([]float64, 2)
	im := make([]float64, 3)

	n := SplitComplex(re, im, []complex128{1 + 2i, 3 - 4i, 5})
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}
	if re[0] != 1 || re[1] != 3 || im[0] != 2 || im[1] != -4 {
		t.Fatalf("unexpected split: re=%v im=%v", re, im)
	}
	if im[2] != 0 {
		t.Fatalf("im[2] = %v, want untouched 0", im[2])
	}
}
