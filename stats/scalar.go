package stats

import "github.com/katalvlaran/morle/mcmc"

// Scalar marks a statistic that reduces to a single float64 over the
// whole sampling phase, for console logging and single-column TSV export.
type Scalar interface {
	mcmc.Statistic
	Value() float64
}

// AcceptanceRate tracks the fraction of iterations whose proposed move
// was accepted (any edge added or removed), matching the original
// sampler's acc_rate statistic.
type AcceptanceRate struct {
	accepted int
	total    int
	moved    bool
	rate     float64
}

// NewAcceptanceRate builds an AcceptanceRate statistic.
func NewAcceptanceRate() *AcceptanceRate { return &AcceptanceRate{} }

func (a *AcceptanceRate) Reset() {
	a.accepted = 0
	a.total = 0
	a.moved = false
	a.rate = 0
}

func (a *AcceptanceRate) EdgeAdded(int)   { a.moved = true }
func (a *AcceptanceRate) EdgeRemoved(int) { a.moved = true }

func (a *AcceptanceRate) NextIter() {
	a.total++
	if a.moved {
		a.accepted++
	}
	a.moved = false
}

func (a *AcceptanceRate) Update() {
	if a.total > 0 {
		a.rate = float64(a.accepted) / float64(a.total)
	}
}

// Value returns the finalized acceptance rate (call after Update).
func (a *AcceptanceRate) Value() float64 { return a.rate }

// ExpectedCost tracks the running time-weighted average of the sampler's
// log-likelihood, sampled once per iteration, matching the original
// sampler's exp_cost statistic.
type ExpectedCost struct {
	sampler *mcmc.Sampler
	avg     *runningAverage
}

// NewExpectedCost builds an ExpectedCost statistic reading s's current
// log-likelihood every iteration.
func NewExpectedCost(s *mcmc.Sampler) *ExpectedCost {
	return &ExpectedCost{sampler: s, avg: newRunningAverage(1)}
}

func (e *ExpectedCost) Reset() {
	e.avg = newRunningAverage(1)
	e.avg.set(0, e.sampler.LogLikelihood())
}

func (e *ExpectedCost) EdgeAdded(int)   { e.avg.set(0, e.sampler.LogLikelihood()) }
func (e *ExpectedCost) EdgeRemoved(int) { e.avg.set(0, e.sampler.LogLikelihood()) }

func (e *ExpectedCost) NextIter() { e.avg.nextIter() }

func (e *ExpectedCost) Update() { e.avg.finalize() }

// Value returns the finalized expected cost (call after Update).
func (e *ExpectedCost) Value() float64 { return e.avg.value(0) }
