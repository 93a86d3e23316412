package graph

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErdosRenyi is a G(n, p) random graph: every unordered pair of distinct
// vertices is connected independently with probability p, where p is
// derived from the requested average degree.
type ErdosRenyi struct {
	n         int
	adjacency [][]int
}

// NewErdosRenyi builds an Erdős–Rényi random graph over n vertices whose
// expected average degree is avgDegree, drawing edge inclusions from src.
// n must be >= 2 and avgDegree must lie in [0, n-1].
func NewErdosRenyi(n int, avgDegree float64, src rand.Source) (*ErdosRenyi, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: erdos-renyi needs n >= 2, got %d", ErrInvalidConfig, n)
	}
	if avgDegree < 0 || avgDegree > float64(n-1) {
		return nil, fmt.Errorf("%w: avg_degree=%v must be in [0, %d]",
			ErrInvalidConfig, avgDegree, n-1)
	}

	p := avgDegree / float64(n-1)
	inclusion := distuv.Bernoulli{P: p, Src: src}

	adjacency := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if inclusion.Rand() == 1 {
				adjacency[i] = append(adjacency[i], j)
				adjacency[j] = append(adjacency[j], i)
			}
		}
	}

	return &ErdosRenyi{n: n, adjacency: adjacency}, nil
}

// VertexCount implements Graph.
func (e *ErdosRenyi) VertexCount() int { return e.n }

// Neighbors implements Graph.
func (e *ErdosRenyi) Neighbors(v int) []int { return e.adjacency[v] }
