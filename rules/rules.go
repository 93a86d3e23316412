// Package rules specifies the vacuum and neighbor-induced transition rates
// that drive a particle's evolution, and the canonical rule sets used by
// the CLI (SI, SIR, Two-SI, Voter(K)).
package rules

// State identifies the discrete value a single particle can hold. By
// convention 0 denotes a default/ground state when one is meaningful
// (susceptible, neutral, empty).
type State int

// Counts is a dense histogram of neighbor states, indexed by State. Its
// length equals the owning RuleSet's number of states.
type Counts []int

// RuleSet specifies, for a fixed finite set of states, the spontaneous
// ("vacuum") rate of a current->goal transition and the additive
// contribution a single neighbor in some sender state makes to that same
// transition. Implementations must be pure and cheap: they are called
// inside the solver's hot loop, once per event in proportion to
// |States()| * (1 + neighbor count).
type RuleSet interface {
	// States returns the finite, stable-ordered set of valid state
	// identifiers. Implementations return the same backing slice every
	// call; callers must not mutate it.
	States() []State

	// VacuumRate is the spontaneous current->goal rate, >= 0, and exactly
	// 0 when current == goal.
	VacuumRate(current, goal State) float64

	// NeighborRate is the additive current->goal rate contributed by a
	// single neighbor in state sender, >= 0, and exactly 0 when
	// current == goal.
	NeighborRate(current, goal, sender State) float64
}

// NeighborReactivity sums a RuleSet's NeighborRate over every goal state,
// for a neighbor sitting in state sender next to a particle in state
// current. The solver uses this to repair a neighbor's reactivity after
// the central vertex changes state, without re-walking that neighbor's
// own neighborhood.
func NeighborReactivity(r RuleSet, current, sender State) float64 {
	var sum float64
	for _, goal := range r.States() {
		sum += r.NeighborRate(current, goal, sender)
	}
	return sum
}

// MutationRate is one entry of the target-state categorical for a
// particle in state current with neighbor-state histogram counts: the
// vacuum rate plus each neighbor's additive contribution.
func MutationRate(r RuleSet, current, goal State, counts Counts) float64 {
	rate := r.VacuumRate(current, goal)
	for s, k := range counts {
		if k == 0 {
			continue
		}
		rate += float64(k) * r.NeighborRate(current, goal, State(s))
	}
	return rate
}

// Reactivity is the full row sum for a particle in state current with
// neighbor-state histogram counts: the total rate at which it will
// undergo any state change.
func Reactivity(r RuleSet, current State, counts Counts) float64 {
	var sum float64
	for _, goal := range r.States() {
		sum += MutationRate(r, current, goal, counts)
	}
	return sum
}

// NewCounts returns a zeroed Counts histogram sized for r's state set.
func NewCounts(r RuleSet) Counts {
	return make(Counts, len(r.States()))
}
