// Package policy implements the solver's halt and record policies as
// small boolean-predicate types, queried once per event.
package policy

// Halt decides whether the solver's event loop should continue, given the
// simulated time elapsed, the number of snapshots recorded so far, and the
// number of events taken so far.
type Halt interface {
	// ShouldContinue reports whether another event should be attempted.
	ShouldContinue(timePassed float64, snapshotsRecorded, eventsTaken int) bool
}

// TimePassed halts once the simulated clock reaches T. Comparison is
// strict: the loop continues while timePassed < T.
type TimePassed struct {
	T float64
}

// ShouldContinue implements Halt.
func (h TimePassed) ShouldContinue(timePassed float64, _, _ int) bool {
	return timePassed < h.T
}

// StepsRecorded halts once S snapshots have been recorded. Comparison is
// strict: the loop continues while snapshotsRecorded < S.
type StepsRecorded struct {
	S int
}

// ShouldContinue implements Halt.
func (h StepsRecorded) ShouldContinue(_ float64, snapshotsRecorded, _ int) bool {
	return snapshotsRecorded < h.S
}

// StepsTaken halts after E events have been taken. Comparison is
// non-strict (<=), a deliberate asymmetry with TimePassed/StepsRecorded
// preserved from the reference implementation: the loop is entered one
// more time than E would otherwise suggest, permitting exactly one event
// past the nominal budget.
type StepsTaken struct {
	E int
}

// ShouldContinue implements Halt.
func (h StepsTaken) ShouldContinue(_ float64, _, eventsTaken int) bool {
	return eventsTaken <= h.E
}
