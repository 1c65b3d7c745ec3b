package stats

// runningAverage maintains, per index, a time-weighted running mean of a
// value that changes at discrete iterations: set(idx, v) folds in however
// much of the iteration count elapsed since idx's value last changed, then
// installs v as the new current value. This is the same identity the
// original sampler uses for its tag-frequency bookkeeping (one weighted
// update per change, rather than one update per iteration per index),
// generalized here from a boolean presence flag to an arbitrary float64.
type runningAverage struct {
	val          []float64
	current      []float64
	lastModified []int
	iter         int
}

func newRunningAverage(n int) *runningAverage {
	return &runningAverage{
		val:          make([]float64, n),
		current:      make([]float64, n),
		lastModified: make([]int, n),
	}
}

// set folds the elapsed interval into val[idx], then starts a new interval
// at the current iteration with value v.
func (r *runningAverage) set(idx int, v float64) {
	r.flush(idx)
	r.current[idx] = v
}

// flush folds the interval [lastModified[idx], iter) into val[idx] without
// changing current[idx].
func (r *runningAverage) flush(idx int) {
	if r.iter > 0 {
		elapsed := r.iter - r.lastModified[idx]
		r.val[idx] = r.val[idx]*float64(r.lastModified[idx])/float64(r.iter) +
			r.current[idx]*float64(elapsed)/float64(r.iter)
	}
	r.lastModified[idx] = r.iter
}

func (r *runningAverage) nextIter() { r.iter++ }

// finalize folds every index's pending interval up to the current
// iteration, so val reflects the average over the whole phase.
func (r *runningAverage) finalize() {
	for idx := range r.val {
		r.flush(idx)
	}
}

func (r *runningAverage) value(idx int) float64 { return r.val[idx] }
