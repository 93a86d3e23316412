// Package solver implements the event-driven Gillespie loop: it owns the
// configuration, the reactivity vector, the weighted index, and the
// record for the duration of a single Run call, driving the graph oracle,
// rule set, and halt/record policies to produce a time-ordered record of
// the global configuration.
package solver

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/ips/graph"
	"github.com/samuelfneumann/ips/internal/fenwick"
	"github.com/samuelfneumann/ips/policy"
	"github.com/samuelfneumann/ips/rules"
	"github.com/samuelfneumann/ips/sampler"
	"github.com/samuelfneumann/ips/utils/floatutils"
	"github.com/samuelfneumann/ips/utils/intutils"
)

// ErrConfigLengthMismatch is returned when the initial configuration's
// length does not match the graph's vertex count.
var ErrConfigLengthMismatch = errors.New("solver: initial configuration length does not match graph vertex count")

// ErrNumericDrift is returned when a periodic from-scratch recomputation
// of the total reactivity produces an impossible negative sum. This
// indicates a bug in an extension rule set, not a recoverable condition.
// A recomputed total that merely disagrees with the incrementally
// maintained one by more than the drift tolerance is not an error: Run
// adopts the recomputed total and rebuilds the weighted index.
var ErrNumericDrift = errors.New("solver: incremental total reactivity diverged from recomputed total")

// driftTolerance is the relative tolerance allowed between
// the incrementally maintained total reactivity and a from-scratch
// recomputation.
const driftTolerance = 1e-9

// Config bundles everything Run needs to drive a simulation.
type Config struct {
	Graph   graph.Graph
	Rules   rules.RuleSet
	Initial []rules.State
	Halt    policy.Halt
	Record  policy.Record
	Rand    rand.Source
}

// Result is the solver's produced contract: the concatenated record, the
// final configuration, and scalar telemetry.
type Result struct {
	// Record is the concatenated snapshot stream; the k-th snapshot
	// occupies Record[k*N : (k+1)*N].
	Record            []rules.State
	Final             []rules.State
	TimePassed        float64
	SnapshotsRecorded int
	EventsTaken       int
}

// Run drives a single, synchronous simulation to completion. It makes no
// observable side effects besides consuming entropy from cfg.Rand.
func Run(cfg Config) (Result, error) {
	n := cfg.Graph.VertexCount()
	if len(cfg.Initial) != n {
		return Result{}, fmt.Errorf("%w: len(initial)=%d, vertex count=%d",
			ErrConfigLengthMismatch, len(cfg.Initial), n)
	}

	states := cfg.Rules.States()
	configuration := append([]rules.State(nil), cfg.Initial...)

	// Phase I: build the reactivity vector and the weighted index.
	reactivity := make([]float64, n)
	for v := 0; v < n; v++ {
		counts := neighborCounts(cfg.Graph, configuration, v, len(states))
		reactivity[v] = rules.Reactivity(cfg.Rules, configuration[v], counts)
	}
	total := floats.Sum(reactivity)

	index, err := fenwick.Build(reactivity)
	if errors.Is(err, fenwick.ErrAllWeightsZero) {
		// The simulation is absorbing before a single event is taken.
		// Phase II never runs; Phase III's unconditional finalization
		// still appends the (unchanged) final configuration.
		initial := append([]rules.State(nil), configuration...)
		final := append([]rules.State(nil), configuration...)
		record := append(initial, final...)
		return Result{
			Record:            record,
			Final:             final,
			TimePassed:        0,
			SnapshotsRecorded: 0,
			EventsTaken:       0,
		}, nil
	}
	if err != nil {
		return Result{}, err
	}

	rng := rand.New(cfg.Rand)
	exp := sampler.New(cfg.Rand)

	driftEvery := intutils.Max(1024, n)

	var record []rules.State
	timePassed := 0.0
	eventsTaken := 0
	snapshotsRecorded := 0

	// Phase II: the event loop.
	for cfg.Halt.ShouldContinue(timePassed, snapshotsRecorded, eventsTaken) {
		eventsTaken++

		dt := exp.Next() / total
		timePassed += dt

		// The record policy depends only on timePassed/dt/eventsTaken, so
		// we can decide whether to clone the pre-event configuration
		// before mutating anything, and skip the clone entirely when no
		// copies will be emitted this iteration.
		contribution := cfg.Record.Contribution(timePassed, dt, eventsTaken)
		var preEvent []rules.State
		if contribution > 0 {
			preEvent = append([]rules.State(nil), configuration...)
		}

		v, err := index.Sample(rng.Float64())
		if errors.Is(err, fenwick.ErrAllWeightsZero) {
			break
		}

		counts := neighborCounts(cfg.Graph, configuration, v, len(states))
		mutationRates := make([]float64, len(states))
		var rowSum float64
		for i, goal := range states {
			mutationRates[i] = rules.MutationRate(cfg.Rules, configuration[v], goal, counts)
			rowSum += mutationRates[i]
		}
		if rowSum <= 0 {
			// No further transitions are possible for v: reactivity[v] >
			// 0 could not be consistently maintained, but a trapped
			// absorbing state can legitimately zero out the row.
			break
		}

		goalCategorical := distuv.NewCategorical(mutationRates, cfg.Rand)
		goal := states[int(goalCategorical.Rand())]

		old := configuration[v]
		configuration[v] = goal

		// counts is the pre-mutation neighbor-state histogram over N(v);
		// it is still valid here because only cfg[v] changed, and v is
		// excluded from its own neighbor set.
		newReactivity := rules.Reactivity(cfg.Rules, goal, counts)
		total += newReactivity - reactivity[v]
		reactivity[v] = newReactivity

		neighbors := cfg.Graph.Neighbors(v)
		patches := make([]fenwick.Patch, 0, 1+len(neighbors))
		patches = append(patches, fenwick.Patch{Index: v, Weight: reactivity[v]})

		for _, nb := range neighbors {
			delta := rules.NeighborReactivity(cfg.Rules, configuration[nb], goal) -
				rules.NeighborReactivity(cfg.Rules, configuration[nb], old)
			reactivity[nb] += delta
			total += delta
			reactivity[nb] = floatutils.Clip(reactivity[nb], 0, math.MaxFloat64)
			patches = append(patches, fenwick.Patch{Index: nb, Weight: reactivity[nb]})
		}

		updateErr := index.Update(patches)

		for i := 0; i < contribution; i++ {
			if !cfg.Halt.ShouldContinue(timePassed, snapshotsRecorded, eventsTaken) {
				break
			}
			record = append(record, preEvent...)
			snapshotsRecorded++
		}

		if errors.Is(updateErr, fenwick.ErrAllWeightsZero) {
			break
		}

		if eventsTaken%driftEvery == 0 {
			recomputed := floats.Sum(reactivity)
			if recomputed < 0 {
				return Result{}, fmt.Errorf("%w: recomputed total %v is negative", ErrNumericDrift, recomputed)
			}
			tolerance := driftTolerance * math.Max(1, recomputed)
			if math.Abs(total-recomputed) > tolerance {
				total = recomputed
				rebuilt, err := fenwick.Build(reactivity)
				if errors.Is(err, fenwick.ErrAllWeightsZero) {
					break
				}
				if err != nil {
					return Result{}, err
				}
				index = rebuilt
			}
		}
	}

	// Phase III: unconditional finalization.
	final := append([]rules.State(nil), configuration...)
	record = append(record, final...)

	return Result{
		Record:            record,
		Final:             final,
		TimePassed:        timePassed,
		SnapshotsRecorded: snapshotsRecorded,
		EventsTaken:       eventsTaken,
	}, nil
}

// neighborCounts builds the neighbor-state histogram over v's neighbors,
// dense over [0, numStates).
func neighborCounts(g graph.Graph, cfg []rules.State, v, numStates int) rules.Counts {
	counts := make(rules.Counts, numStates)
	for _, nb := range g.Neighbors(v) {
		counts[cfg[nb]]++
	}
	return counts
}
