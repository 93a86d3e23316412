package rules

// SI states: 0 = susceptible, 1 = infected.
var siStates = []State{0, 1}

// SI is the contact process: an infected particle recovers to susceptible
// spontaneously at DeathRate, and a susceptible particle is infected by
// each infected neighbor at BirthRate.
type SI struct {
	BirthRate float64
	DeathRate float64
}

// NewSI returns an SI rule set with the given birth and death rates.
func NewSI(birthRate, deathRate float64) SI {
	return SI{BirthRate: birthRate, DeathRate: deathRate}
}

// States implements RuleSet.
func (SI) States() []State { return siStates }

// VacuumRate implements RuleSet. 1 -> 0 at DeathRate.
func (r SI) VacuumRate(current, goal State) float64 {
	if current == 1 && goal == 0 {
		return r.DeathRate
	}
	return 0
}

// NeighborRate implements RuleSet. 0 -> 1 at BirthRate per infected (1)
// neighbor.
func (r SI) NeighborRate(current, goal, sender State) float64 {
	if current == 0 && goal == 1 && sender == 1 {
		return r.BirthRate
	}
	return 0
}
