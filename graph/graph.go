// Package graph specifies the neighborhood oracle the solver consumes and
// provides the canonical constructors: n-dimensional torus/cylinder/box
// grids, Erdős–Rényi random graphs, and a diluted 2-D lattice.
package graph

import "errors"

// ErrInvalidConfig is returned by a constructor when its parameters cannot
// describe a valid graph.
var ErrInvalidConfig = errors.New("graph: invalid configuration")

// Graph is the neighborhood oracle the solver borrows for the duration of
// a simulation run. Neighbors(v) must be deterministic and stable for the
// graph's lifetime, and edges must be undirected in practice: u is in
// Neighbors(v) if and only if v is in Neighbors(u). Standard constructors
// never place v in its own neighbor set.
type Graph interface {
	// VertexCount returns N, the number of vertices. Vertices are the
	// dense integer range [0, N).
	VertexCount() int

	// Neighbors returns the (possibly empty) set of vertices adjacent to
	// v. The returned slice may share backing storage across calls;
	// callers must not mutate it.
	Neighbors(v int) []int
}
