package testutil

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestComplexTone(t *testing.T) {
	s := ComplexTone(1000, 8000, 0.5, 16)
	if len(s) != 16 {
		t.Fatalf("len = %d, want 16", len(s))
	}
	if s[0] != 0.5 {
		t.Fatalf("s[0] = %v, want 0.5", s[0])
	}
	for i, v := range s {
		if math.Abs(cmplx.Abs(v)-0.5) > 1e-12 {
			t.Fatalf("|s[%d]| = %v, want 0.5", i, cmplx.Abs(v))
		}
	}
	// Eight samples per period.
	if cmplx.Abs(s[8]-s[0]) > 1e-12 {
		t.Fatalf("s[8] = %v, want %v", s[8], s[0])
	}
}

func TestComplexNoise(t *testing.T) {
	a := ComplexNoise(42, 1, 64)
	b := ComplexNoise(42, 1, 64)
	c := ComplexNoise(43, 1, 64)
	same := true
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] != c[i] {
			same = false
		}
		if math.Abs(real(a[i])) > 1 || math.Abs(imag(a[i])) > 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestSilence(t *testing.T) {
	s := Silence(4)
	if len(s) != 4 {
		t.Fatalf("len = %d, want 4", len(s))
	}
	for i, v := range s {
		if v != 0 {
			t.Fatalf("s[%d] = %v, want 0", i, v)
		}
	}
}
