package spectrum

import (
	"math"
	"testing"
)

func TestMagnitudeFromParts(t *testing.T) {
	dst := make([]float64, 3)
	MagnitudeFromParts(dst, []float64{3, -1, 0}, []float64{4, -1, 0})

	want := []float64{5, math.Sqrt2, 0}
	for i, w := range want {
		if math.Abs(dst[i]-w) > 1e-12 {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], w)
		}
	}
}
