package rules

// SIR states: 0 = susceptible, 1 = infected, 2 = removed.
var sirStates = []State{0, 1, 2}

// SIR is the susceptible-infected-removed process: an infected particle is
// removed spontaneously at DeathRate, and a susceptible particle is
// infected by each infected neighbor at BirthRate. Removed is absorbing.
type SIR struct {
	BirthRate float64
	DeathRate float64
}

// NewSIR returns an SIR rule set with the given birth and removal rates.
func NewSIR(birthRate, deathRate float64) SIR {
	return SIR{BirthRate: birthRate, DeathRate: deathRate}
}

// States implements RuleSet.
func (SIR) States() []State { return sirStates }

// VacuumRate implements RuleSet. 1 -> 2 at DeathRate.
func (r SIR) VacuumRate(current, goal State) float64 {
	if current == 1 && goal == 2 {
		return r.DeathRate
	}
	return 0
}

// NeighborRate implements RuleSet. 0 -> 1 at BirthRate per infected (1)
// neighbor.
func (r SIR) NeighborRate(current, goal, sender State) float64 {
	if current == 0 && goal == 1 && sender == 1 {
		return r.BirthRate
	}
	return 0
}
