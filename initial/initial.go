// Package initial assembles initial configurations for the solver: a
// uniformly random draw over a rule set's states, or a "different
// particles" configuration with explicit vertices seeded to a given
// state and every other vertex left at state 0.
package initial

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/ips/rules"
)

// Random returns a configuration of length n where each vertex
// independently draws a state uniformly from r.States(), using src as the
// source of randomness.
func Random(n int, r rules.RuleSet, src rand.Source) []rules.State {
	states := r.States()
	weights := make([]float64, len(states))
	for i := range weights {
		weights[i] = 1.0 / float64(len(weights))
	}
	draw := distuv.NewCategorical(weights, src)

	cfg := make([]rules.State, n)
	for i := range cfg {
		cfg[i] = states[int(draw.Rand())]
	}
	return cfg
}

// DifferentParticles returns a configuration of length n in which every
// vertex in indices is seeded to state, and every other vertex is seeded
// to state 0.
func DifferentParticles(n int, state rules.State, indices []int) ([]rules.State, error) {
	cfg := make([]rules.State, n)
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("initial: vertex index %d out of range [0, %d)", idx, n)
		}
		cfg[idx] = state
	}
	return cfg, nil
}
