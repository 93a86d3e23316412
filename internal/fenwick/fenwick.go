// Package fenwick implements a Fenwick-tree (binary indexed tree) backed
// weighted index: a sampleable categorical distribution over nonnegative
// weights supporting O(log N) point updates and O(log N) sampling. It
// backs the solver's live vertex-reactivity index; no
// available library offers a dynamic weighted sampler with
// logarithmic point-updates, so this data structure is hand-rolled.
package fenwick

import "errors"

// ErrAllWeightsZero is returned by Build and Update when the sum of all
// weights is zero (or negative, which should not occur for well-formed
// callers): there is nothing left to sample.
var ErrAllWeightsZero = errors.New("fenwick: all weights are zero")

// Patch is a single point update: set the weight at Index to Weight.
type Patch struct {
	Index  int
	Weight float64
}

// Index is a live categorical distribution over vertices whose
// unnormalized weights are patched in place as the simulation evolves.
type Index struct {
	tree    []float64 // 1-indexed Fenwick tree of partial sums
	weights []float64 // raw weights, 0-indexed, mirrors tree's contents
	n       int
	total   float64
	topBit  int // highest power of two <= n, precomputed for Sample
}

// Build constructs an Index from weights. At least one weight must be
// strictly positive; otherwise Build returns ErrAllWeightsZero.
func Build(weights []float64) (*Index, error) {
	n := len(weights)
	idx := &Index{
		tree:    make([]float64, n+1),
		weights: append([]float64(nil), weights...),
		n:       n,
		topBit:  highestPowerOfTwo(n),
	}

	for i, w := range weights {
		idx.add(i, w)
		idx.total += w
	}

	if idx.total <= 0 {
		return nil, ErrAllWeightsZero
	}
	return idx, nil
}

// Total returns the current sum of all weights.
func (idx *Index) Total() float64 { return idx.total }

// Weight returns the current weight at i.
func (idx *Index) Weight(i int) float64 { return idx.weights[i] }

// add applies delta to the weight at the 0-indexed position i, propagating
// it through the Fenwick tree's ancestor chain.
func (idx *Index) add(i int, delta float64) {
	for i++; i <= idx.n; i += i & (-i) {
		idx.tree[i] += delta
	}
}

// Sample draws an index i with probability weights[i] / Total(), using u,
// a uniform draw in [0, 1), as the inverse-CDF input.
func (idx *Index) Sample(u float64) (int, error) {
	if idx.total <= 0 {
		return 0, ErrAllWeightsZero
	}

	target := u * idx.total
	pos := 0
	for pw := idx.topBit; pw > 0; pw >>= 1 {
		next := pos + pw
		if next <= idx.n && idx.tree[next] <= target {
			target -= idx.tree[next]
			pos = next
		}
	}
	return pos, nil
}

// Update applies a batch of point updates. Patches may be supplied in any
// order: each Patch.Index is updated independently. After Update, the
// distribution Sample materializes matches what Build would yield on the
// latest weight array.
func (idx *Index) Update(patches []Patch) error {
	for _, p := range patches {
		delta := p.Weight - idx.weights[p.Index]
		if delta == 0 {
			continue
		}
		idx.weights[p.Index] = p.Weight
		idx.add(p.Index, delta)
		idx.total += delta
	}

	if idx.total <= 0 {
		return ErrAllWeightsZero
	}
	return nil
}

// highestPowerOfTwo returns the largest power of two <= n (0 if n == 0).
func highestPowerOfTwo(n int) int {
	p := 1
	for p*2 <= n {
		p *= 2
	}
	if n == 0 {
		return 0
	}
	return p
}
