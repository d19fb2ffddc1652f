package chandetect

import (
	"slices"
	"testing"
)

func TestRegistrySubmit(t *testing.T) {
	type candidate struct{ center, bw float64 }

	tests := []struct {
		name  string
		input []candidate
		want  []Channel
	}{
		{
			name:  "single",
			input: []candidate{{1000, 100}},
			want:  []Channel{{Frequency: 1000, Bandwidth: 100}},
		},
		{
			name:  "merge widens and keeps center",
			input: []candidate{{1000, 100}, {1040, 300}},
			want:  []Channel{{Frequency: 1000, Bandwidth: 300}},
		},
		{
			name:  "merge never narrows",
			input: []candidate{{1000, 100}, {1010, 10}},
			want:  []Channel{{Frequency: 1000, Bandwidth: 100}},
		},
		{
			name:  "upper edge is inclusive",
			input: []candidate{{1000, 100}, {1050, 20}},
			want:  []Channel{{Frequency: 1000, Bandwidth: 100}},
		},
		{
			name:  "outside range appends",
			input: []candidate{{1000, 100}, {1051, 20}},
			want: []Channel{
				{Frequency: 1000, Bandwidth: 100},
				{Frequency: 1051, Bandwidth: 20},
			},
		},
		{
			name:  "first containing channel wins",
			input: []candidate{{1000, 100}, {1100, 200}, {1040, 400}},
			want: []Channel{
				{Frequency: 1000, Bandwidth: 400},
				{Frequency: 1100, Bandwidth: 200},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRegistry(4)
			for _, c := range tc.input {
				r.Submit(c.center, c.bw)
			}
			if got := r.Channels(); !slices.Equal(got, tc.want) {
				t.Fatalf("Channels() = %+v, want %+v", got, tc.want)
			}
			if r.Len() != len(tc.want) {
				t.Fatalf("Len() = %d, want %d", r.Len(), len(tc.want))
			}
		})
	}
}

func TestRegistryReset(t *testing.T) {
	r := NewRegistry(2)
	r.Submit(100, 10)
	r.Submit(200, 10)
	r.Reset()
	if r.Len() != 0 {
		t.Fatalf("Len() after Reset = %d", r.Len())
	}
	if cap(r.View()) < 2 {
		t.Fatalf("Reset dropped capacity: %d", cap(r.View()))
	}
}

func TestRegistrySnapshotIsCopy(t *testing.T) {
	r := NewRegistry(1)
	r.Submit(100, 10)
	snap := r.Channels()
	snap[0].Frequency = -1
	if r.View()[0].Frequency != 100 {
		t.Fatal("snapshot aliases registry storage")
	}
}

func TestRegistrySubmitDoesNotAllocate(t *testing.T) {
	r := NewRegistry(8)
	allocs := testing.AllocsPerRun(100, func() {
		r.Reset()
		for i := range 8 {
			r.Submit(float64(i)*100, 10)
		}
	})
	if allocs != 0 {
		t.Fatalf("allocs per run = %v, want 0", allocs)
	}
}

func TestChannelEdges(t *testing.T) {
	c := Channel{Frequency: 1000, Bandwidth: 200}
	if c.Low() != 900 || c.High() != 1100 {
		t.Fatalf("edges = [%v, %v], want [900, 1100]", c.Low(), c.High())
	}
	for _, f := range []float64{900, 1000, 1100} {
		if !c.Contains(f) {
			t.Fatalf("Contains(%v) = false", f)
		}
	}
	if c.Contains(899.9) || c.Contains(1100.1) {
		t.Fatal("Contains accepted frequency outside range")
	}
}
