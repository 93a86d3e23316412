package fenwick

import (
	"errors"
	"math"
	"testing"
)

func TestBuildAllZeroWeights(t *testing.T) {
	_, err := Build([]float64{0, 0, 0})
	if !errors.Is(err, ErrAllWeightsZero) {
		t.Fatalf("Build(all zero) = %v, want ErrAllWeightsZero", err)
	}
}

func TestSampleDistribution(t *testing.T) {
	weights := []float64{1, 0, 3, 0, 6}
	idx, err := Build(weights)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	counts := make([]int, len(weights))
	const trials = 200000
	for i := 0; i < trials; i++ {
		u := float64(i) / float64(trials) // deterministic stratified sweep over [0,1)
		pos, err := idx.Sample(u)
		if err != nil {
			t.Fatalf("Sample: %v", err)
		}
		counts[pos]++
	}

	total := 10.0
	for i, w := range weights {
		want := w / total
		got := float64(counts[i]) / float64(trials)
		if math.Abs(got-want) > 0.01 {
			t.Fatalf("index %d: empirical freq %v, want %v", i, got, want)
		}
	}
}

func TestUpdateMatchesRebuild(t *testing.T) {
	weights := []float64{2, 4, 1, 9}
	idx, err := Build(weights)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	patches := []Patch{{Index: 1, Weight: 10}, {Index: 3, Weight: 0.5}}
	if err := idx.Update(patches); err != nil {
		t.Fatalf("Update: %v", err)
	}

	rebuilt, err := Build([]float64{2, 10, 1, 0.5})
	if err != nil {
		t.Fatalf("Build rebuilt: %v", err)
	}

	if idx.Total() != rebuilt.Total() {
		t.Fatalf("Total() = %v, want %v", idx.Total(), rebuilt.Total())
	}

	for _, u := range []float64{0, 0.1, 0.33, 0.5, 0.75, 0.999} {
		got, _ := idx.Sample(u)
		want, _ := rebuilt.Sample(u)
		if got != want {
			t.Fatalf("Sample(%v) after Update = %d, want %d (rebuilt)", u, got, want)
		}
	}
}

func TestUpdateSameWeightIsNoOp(t *testing.T) {
	weights := []float64{1, 2, 3}
	idx, err := Build(weights)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	before := idx.Total()
	if err := idx.Update([]Patch{{Index: 1, Weight: weights[1]}}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if idx.Total() != before {
		t.Fatalf("Total() changed on no-op update: %v != %v", idx.Total(), before)
	}
}

func TestUpdateToAllZeroReportsError(t *testing.T) {
	idx, err := Build([]float64{5})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	err = idx.Update([]Patch{{Index: 0, Weight: 0}})
	if !errors.Is(err, ErrAllWeightsZero) {
		t.Fatalf("Update to all-zero = %v, want ErrAllWeightsZero", err)
	}
}
