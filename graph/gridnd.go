package graph

import "fmt"

// GridND is an n-dimensional rectangular grid, with each axis independently
// either cyclic (wraps, giving a torus along that axis) or open (a box
// boundary along that axis). Vertex indices are row-major over Dims, the
// same flat-index convention as a 2-D gridworld generalized to N axes.
type GridND struct {
	dims    []int
	cyclic  []bool
	strides []int
	total   int
}

// NewGridND returns a GridND with the given per-axis size and cyclic flag.
// len(dims) must equal len(cyclic), and every dims[i] must be >= 2 (a
// dimension of 0 or 1 describes no graph or a graph with no neighbors
// along that axis, both invalid per the grid contract).
func NewGridND(dims []int, cyclic []bool) (*GridND, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("%w: grid must have at least one dimension", ErrInvalidConfig)
	}
	if len(dims) != len(cyclic) {
		return nil, fmt.Errorf("%w: len(dims)=%d != len(cyclic)=%d",
			ErrInvalidConfig, len(dims), len(cyclic))
	}
	for i, d := range dims {
		if d < 2 {
			return nil, fmt.Errorf("%w: dims[%d]=%d, dimensions must be >= 2",
				ErrInvalidConfig, i, d)
		}
	}

	strides := make([]int, len(dims))
	total := 1
	for i := len(dims) - 1; i >= 0; i-- {
		strides[i] = total
		total *= dims[i]
	}

	return &GridND{
		dims:    append([]int(nil), dims...),
		cyclic:  append([]bool(nil), cyclic...),
		strides: strides,
		total:   total,
	}, nil
}

// VertexCount implements Graph.
func (g *GridND) VertexCount() int { return g.total }

// Dims returns the per-axis extents of the grid.
func (g *GridND) Dims() []int { return g.dims }

// coords decomposes a flat vertex index into per-axis coordinates.
func (g *GridND) coords(v int) []int {
	c := make([]int, len(g.dims))
	for i, s := range g.strides {
		c[i] = (v / s) % g.dims[i]
	}
	return c
}

// index recomposes per-axis coordinates into a flat vertex index.
func (g *GridND) index(c []int) int {
	idx := 0
	for i, s := range g.strides {
		idx += c[i] * s
	}
	return idx
}

// Neighbors implements Graph. For each axis it yields the -1 and +1
// neighbor along that axis: wrapped if the axis is cyclic, omitted if it
// would fall outside [0, dims[axis]) otherwise. A cyclic axis of size 2
// naturally yields the same other vertex from both directions (two
// parallel wrap-around edges), which is preserved rather than
// deduplicated.
func (g *GridND) Neighbors(v int) []int {
	c := g.coords(v)
	neighbors := make([]int, 0, 2*len(g.dims))

	for axis, size := range g.dims {
		for _, delta := range [2]int{-1, 1} {
			nc := c[axis] + delta
			if g.cyclic[axis] {
				nc = ((nc % size) + size) % size
			} else if nc < 0 || nc >= size {
				continue
			}

			coord := append([]int(nil), c...)
			coord[axis] = nc
			neighbors = append(neighbors, g.index(coord))
		}
	}

	return neighbors
}
