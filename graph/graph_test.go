package graph

import (
	"sort"
	"testing"

	"golang.org/x/exp/rand"
)

func TestGridNDTorusFourNeighbors(t *testing.T) {
	g, err := NewGridND([]int{4, 4}, []bool{true, true})
	if err != nil {
		t.Fatalf("NewGridND: %v", err)
	}

	for v := 0; v < g.VertexCount(); v++ {
		neighbors := g.Neighbors(v)
		if len(neighbors) != 4 {
			t.Fatalf("vertex %d: got %d neighbors, want 4", v, len(neighbors))
		}
		seen := map[int]bool{}
		for _, n := range neighbors {
			if n == v {
				t.Fatalf("vertex %d is its own neighbor", v)
			}
			seen[n] = true
		}
		if len(seen) != 4 {
			t.Fatalf("vertex %d: neighbors not all distinct: %v", v, neighbors)
		}
	}
}

func TestGridNDScenario6(t *testing.T) {
	g, err := NewGridND([]int{2, 3, 4}, []bool{true, true, true})
	if err != nil {
		t.Fatalf("NewGridND: %v", err)
	}

	got := g.Neighbors(13)
	want := []int{1, 1, 21, 17, 12, 14}
	sort.Ints(got)
	sort.Ints(want)
	if len(got) != len(want) {
		t.Fatalf("Neighbors(13) = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("Neighbors(13) = %v, want %v", got, want)
		}
	}
}

func TestGridNDRejectsSmallDims(t *testing.T) {
	if _, err := NewGridND([]int{1, 4}, []bool{true, true}); err == nil {
		t.Fatal("expected error for dimension of 1")
	}
	if _, err := NewGridND([]int{0, 4}, []bool{true, true}); err == nil {
		t.Fatal("expected error for dimension of 0")
	}
}

func TestGridNDBoxBoundary(t *testing.T) {
	g, err := NewGridND([]int{3, 3}, []bool{false, false})
	if err != nil {
		t.Fatalf("NewGridND: %v", err)
	}
	// Corner vertex (0,0) = index 0 has only two neighbors in a box.
	if len(g.Neighbors(0)) != 2 {
		t.Fatalf("corner vertex neighbors = %v, want 2 entries", g.Neighbors(0))
	}
}

func TestErdosRenyiSymmetric(t *testing.T) {
	src := rand.NewSource(42)
	g, err := NewErdosRenyi(50, 4.0, src)
	if err != nil {
		t.Fatalf("NewErdosRenyi: %v", err)
	}

	for u := 0; u < g.VertexCount(); u++ {
		for _, v := range g.Neighbors(u) {
			found := false
			for _, back := range g.Neighbors(v) {
				if back == u {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("edge %d-%d not symmetric", u, v)
			}
		}
	}
}

func TestDilutedLatticeFullEquivalentToTorus(t *testing.T) {
	src := rand.NewSource(1)
	diluted, err := NewDilutedLattice(4, 4, 1.0, src)
	if err != nil {
		t.Fatalf("NewDilutedLattice: %v", err)
	}
	torus, err := NewGridND([]int{4, 4}, []bool{true, true})
	if err != nil {
		t.Fatalf("NewGridND: %v", err)
	}

	if diluted.VertexCount() != torus.VertexCount() {
		t.Fatalf("vertex counts differ: %d != %d", diluted.VertexCount(), torus.VertexCount())
	}
	for v := 0; v < diluted.VertexCount(); v++ {
		got := append([]int(nil), diluted.Neighbors(v)...)
		want := append([]int(nil), torus.Neighbors(v)...)
		sort.Ints(got)
		sort.Ints(want)
		if len(got) != len(want) {
			t.Fatalf("vertex %d: diluted neighbors %v != torus neighbors %v", v, got, want)
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("vertex %d: diluted neighbors %v != torus neighbors %v", v, got, want)
			}
		}
	}
}

func TestDilutedLatticeRejectsSmallDims(t *testing.T) {
	src := rand.NewSource(1)
	if _, err := NewDilutedLattice(1, 4, 0.5, src); err == nil {
		t.Fatal("expected error for W < 2")
	}
}
