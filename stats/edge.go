package stats

import "github.com/katalvlaran/morle/mcmc"

// EdgeIndexed marks a statistic that reports one value per candidate
// edge ID, for edge-stat TSV export and the soft-EM edge-weight vector.
type EdgeIndexed interface {
	mcmc.Statistic
	Value(edgeID int) float64
}

// EdgeFrequency tracks, for every candidate edge, the time-weighted
// fraction of the sampling phase during which that edge was present in
// the branching: the posterior marginal the outer soft-EM loop refits
// the model against.
type EdgeFrequency struct {
	sampler *mcmc.Sampler
	avg     *runningAverage
}

// NewEdgeFrequency builds an EdgeFrequency statistic over every candidate
// edge in s's edge set.
func NewEdgeFrequency(s *mcmc.Sampler) *EdgeFrequency {
	return &EdgeFrequency{sampler: s, avg: newRunningAverage(s.Edges.Len())}
}

// Reset zeroes the running average and seeds every edge present in the
// current branching as already "on" for this phase.
func (f *EdgeFrequency) Reset() {
	f.avg = newRunningAverage(f.sampler.Edges.Len())
	for _, eid := range f.sampler.Branching.PresentEdgeIDs() {
		f.avg.set(eid, 1)
	}
}

func (f *EdgeFrequency) EdgeAdded(edgeID int)   { f.avg.set(edgeID, 1) }
func (f *EdgeFrequency) EdgeRemoved(edgeID int) { f.avg.set(edgeID, 0) }

func (f *EdgeFrequency) NextIter() { f.avg.nextIter() }

func (f *EdgeFrequency) Update() { f.avg.finalize() }

// Value returns the finalized marginal frequency of edgeID (call after
// Update).
func (f *EdgeFrequency) Value(edgeID int) float64 { return f.avg.value(edgeID) }

// Weights returns the finalized frequency of every candidate edge, in ID
// order, the shape model.Suite.Fit expects as edgeWeights.
func (f *EdgeFrequency) Weights() []float64 {
	out := make([]float64, f.sampler.Edges.Len())
	for i := range out {
		out[i] = f.avg.value(i)
	}
	return out
}
