package graph

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// DilutedLattice is a toroidal W x H lattice in which each of the 2*W*H
// axis-parallel edges is present independently with probability p. At
// p == 1.0 it is exactly the plain toroidal lattice of the same size.
//
// Edges are enumerated as ordered (direction, origin-vertex) pairs — one
// "right" and one "down" edge per vertex — rather than indexed through a
// shared bitmask, so inclusion and symmetrization cannot drift apart.
type DilutedLattice struct {
	w, h      int
	adjacency [][]int
}

// NewDilutedLattice builds a W x H diluted toroidal lattice, including
// each axis-parallel edge independently with probability p, drawing
// inclusions from src. W and H must each be >= 2, and p must lie in
// [0, 1].
func NewDilutedLattice(w, h int, p float64, src rand.Source) (*DilutedLattice, error) {
	if w < 2 || h < 2 {
		return nil, fmt.Errorf("%w: diluted-lattice needs W, H >= 2, got %d, %d",
			ErrInvalidConfig, w, h)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: percent=%v must be in [0, 1]", ErrInvalidConfig, p)
	}

	n := w * h
	adjacency := make([][]int, n)
	inclusion := distuv.Bernoulli{P: p, Src: src}

	index := func(r, c int) int { return r*w + c }

	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			u := index(r, c)

			if inclusion.Rand() == 1 {
				v := index(r, (c+1)%w)
				adjacency[u] = append(adjacency[u], v)
				adjacency[v] = append(adjacency[v], u)
			}
			if inclusion.Rand() == 1 {
				v := index((r+1)%h, c)
				adjacency[u] = append(adjacency[u], v)
				adjacency[v] = append(adjacency[v], u)
			}
		}
	}

	return &DilutedLattice{w: w, h: h, adjacency: adjacency}, nil
}

// VertexCount implements Graph.
func (d *DilutedLattice) VertexCount() int { return d.w * d.h }

// Neighbors implements Graph.
func (d *DilutedLattice) Neighbors(v int) []int { return d.adjacency[v] }

// Width returns W.
func (d *DilutedLattice) Width() int { return d.w }

// Height returns H.
func (d *DilutedLattice) Height() int { return d.h }
