package policy

import "math"

// Record decides how many copies of the pre-event configuration the
// solver should append to its record after a given event.
type Record interface {
	// Contribution returns how many copies of the pre-event configuration
	// to record for an event that took dt simulated time, landing the
	// clock at timePassed (which already includes dt), on event number
	// eventsTaken.
	Contribution(timePassed, dt float64, eventsTaken int) int
}

// FinalOnly never records per-event; only the solver's unconditional
// finalization snapshot appears in the record.
type FinalOnly struct{}

// Contribution implements Record.
func (FinalOnly) Contribution(float64, float64, int) int { return 0 }

// NthStep records one copy every N events. N must be >= 1.
type NthStep struct {
	N int
}

// Contribution implements Record.
func (r NthStep) Contribution(_, _ float64, eventsTaken int) int {
	if eventsTaken%r.N == 0 {
		return 1
	}
	return 0
}

// ConstantTime records once per multiple of Tau simulated time that the
// event's interval crosses. A single large dt that crosses several grid
// lines contributes more than one copy, all of the same pre-event
// configuration (which was in force across the whole interval).
type ConstantTime struct {
	Tau float64
}

// Contribution implements Record.
func (r ConstantTime) Contribution(timePassed, dt float64, _ int) int {
	after := math.Floor(timePassed / r.Tau)
	before := math.Floor((timePassed - dt) / r.Tau)
	return int(after - before)
}
