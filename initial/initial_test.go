package initial

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/ips/rules"
)

func TestRandomCoversAllStates(t *testing.T) {
	r := rules.NewSI(1, 1)
	src := rand.NewSource(42)

	cfg := Random(5000, r, src)
	seen := map[rules.State]bool{}
	for _, s := range cfg {
		seen[s] = true
	}
	for _, s := range r.States() {
		if !seen[s] {
			t.Fatalf("state %v never drawn across 5000 samples", s)
		}
	}
}

func TestRandomLength(t *testing.T) {
	r := rules.NewVoter(4, 1)
	src := rand.NewSource(1)
	cfg := Random(17, r, src)
	if len(cfg) != 17 {
		t.Fatalf("len(cfg) = %d, want 17", len(cfg))
	}
}

func TestDifferentParticlesSeedsListedVertices(t *testing.T) {
	cfg, err := DifferentParticles(6, rules.State(1), []int{1, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []rules.State{0, 1, 0, 1, 0, 0}
	for i := range want {
		if cfg[i] != want[i] {
			t.Fatalf("cfg[%d] = %v, want %v", i, cfg[i], want[i])
		}
	}
}

func TestDifferentParticlesRejectsOutOfRange(t *testing.T) {
	if _, err := DifferentParticles(4, rules.State(1), []int{4}); err == nil {
		t.Fatal("expected an error for an out-of-range index")
	}
	if _, err := DifferentParticles(4, rules.State(1), []int{-1}); err == nil {
		t.Fatal("expected an error for a negative index")
	}
}
