package rules

// Voter is the K-party voter model: states are 0..K-1, transitions carry no
// vacuum component, and a particle adopts a neighbor's party at
// ChangeRate whenever that neighbor's party differs from its own.
type Voter struct {
	Parties    int
	ChangeRate float64
	states     []State
}

// NewVoter returns a Voter rule set over Parties states 0..Parties-1.
// Parties must be >= 1.
func NewVoter(parties int, changeRate float64) Voter {
	states := make([]State, parties)
	for i := range states {
		states[i] = State(i)
	}
	return Voter{Parties: parties, ChangeRate: changeRate, states: states}
}

// States implements RuleSet.
func (v Voter) States() []State { return v.states }

// VacuumRate implements RuleSet; the voter model has no spontaneous
// transitions.
func (Voter) VacuumRate(current, goal State) float64 {
	return 0
}

// NeighborRate implements RuleSet: a current-state particle adopts goal
// at ChangeRate when a neighbor sits in sender == goal != current, and is
// zero otherwise (a particle never pushes a neighbor toward a third
// party it does not itself hold).
func (v Voter) NeighborRate(current, goal, sender State) float64 {
	if current == goal {
		return 0
	}
	if sender != goal {
		return 0
	}
	return v.ChangeRate
}
