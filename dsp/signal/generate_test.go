package signal

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-chanscan/dsp/core"
)

func TestToneUnitMagnitude(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(8000))
	x, err := g.Tone(1000, 0.5, 64)
	if err != nil {
		t.Fatalf("Tone() error = %v", err)
	}
	if len(x) != 64 {
		t.Fatalf("len = %d, want 64", len(x))
	}
	for i, v := range x {
		if math.Abs(cmplx.Abs(v)-0.5) > 1e-12 {
			t.Fatalf("|x[%d]| = %v, want 0.5", i, cmplx.Abs(v))
		}
	}
	// 1 kHz at 8 kHz advances by a quarter turn per 2 samples.
	if cmplx.Abs(x[2]-0.5i) > 1e-12 {
		t.Fatalf("x[2] = %v, want 0.5i", x[2])
	}
}

func TestToneInvalid(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Tone(100, 1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
}

func TestMultitone(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(8000))
	x, err := g.Multitone([]float64{500, -500}, 1, 16)
	if err != nil {
		t.Fatalf("Multitone() error = %v", err)
	}
	// exp(iwt) + exp(-iwt) is real.
	for i, v := range x {
		if math.Abs(imag(v)) > 1e-12 {
			t.Fatalf("x[%d] = %v, want real", i, v)
		}
	}
	if _, err := g.Multitone(nil, 1, 16); err == nil {
		t.Fatal("expected error without frequencies")
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGeneratorWithOptions(nil, WithSeed(42))
	g2 := NewGeneratorWithOptions(nil, WithSeed(42))

	n1, err := g1.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	n2, err := g2.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
		if math.Abs(real(n1[i])) > 1 || math.Abs(imag(n1[i])) > 1 {
			t.Fatalf("noise out of range at %d: %v", i, n1[i])
		}
	}
	if g1.Seed() != 42 {
		t.Fatalf("Seed() = %d, want 42", g1.Seed())
	}
}

func TestWhiteNoiseInvalid(t *testing.T) {
	g := NewGenerator()
	if _, err := g.WhiteNoise(-1, 8); err == nil {
		t.Fatal("expected error for negative amplitude")
	}
}

func TestAdd(t *testing.T) {
	dst := []complex128{1, 2, 3}
	Add(dst, []complex128{1i, 1i})
	want := []complex128{1 + 1i, 2 + 1i, 3}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}
