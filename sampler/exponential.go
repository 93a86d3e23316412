// Package sampler produces the standard-exponential variates the solver
// scales by total reactivity to obtain each event's waiting time.
package sampler

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Exponential draws standard-exponential variates (rate 1) from a shared
// random source. The solver divides each draw by the current total
// reactivity to get the waiting time to the next event.
type Exponential struct {
	dist distuv.Exponential
}

// New returns an Exponential sampler drawing from src.
func New(src rand.Source) Exponential {
	return Exponential{dist: distuv.Exponential{Rate: 1, Src: src}}
}

// Next draws one standard-exponential variate (rate 1) with
// distuv.Exponential.Rand.
func (e Exponential) Next() float64 {
	return e.dist.Rand()
}
