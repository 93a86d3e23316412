package rules

// TwoSI states: 0 = empty, 1 = species A, 2 = species B.
var twoSIStates = []State{0, 1, 2}

// TwoSI is an SI process with two invasive species competing indirectly
// through empty space and directly through conversion. Both species share
// BirthRate and DeathRate; CompeteRate governs direct A<->B conversion.
type TwoSI struct {
	BirthRate   float64
	DeathRate   float64
	CompeteRate float64
}

// NewTwoSI returns a TwoSI rule set with the given birth, death, and
// compete rates.
func NewTwoSI(birthRate, deathRate, competeRate float64) TwoSI {
	return TwoSI{BirthRate: birthRate, DeathRate: deathRate, CompeteRate: competeRate}
}

// States implements RuleSet.
func (TwoSI) States() []State { return twoSIStates }

// VacuumRate implements RuleSet. 1 -> 0 and 2 -> 0 at DeathRate.
func (r TwoSI) VacuumRate(current, goal State) float64 {
	if goal == 0 && (current == 1 || current == 2) {
		return r.DeathRate
	}
	return 0
}

// NeighborRate implements RuleSet: 0 -> 1 and 0 -> 2 at BirthRate per
// same-species neighbor; 1 -> 2 and 2 -> 1 at CompeteRate per
// opposite-species neighbor (direct conversion).
func (r TwoSI) NeighborRate(current, goal, sender State) float64 {
	switch {
	case current == 0 && goal == 1 && sender == 1:
		return r.BirthRate
	case current == 0 && goal == 2 && sender == 2:
		return r.BirthRate
	case current == 1 && goal == 2 && sender == 2:
		return r.CompeteRate
	case current == 2 && goal == 1 && sender == 1:
		return r.CompeteRate
	default:
		return 0
	}
}
