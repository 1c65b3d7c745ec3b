package stats

import "github.com/katalvlaran/morle/mcmc"

// WordPairIndexed marks a statistic that reports one value per unordered
// word pair, for word-pair-stat TSV export.
type WordPairIndexed interface {
	mcmc.Statistic
	Value(pair mcmc.WordPair) float64
}

// UndirectedEdgeFrequency tracks, for every unordered candidate word
// pair, the time-weighted fraction of the sampling phase during which
// some edge connecting that pair (in either direction, under any rule)
// was present in the branching: the connection marginal, as distinct
// from EdgeFrequency's per-(source,target,rule) marginal.
type UndirectedEdgeFrequency struct {
	sampler *mcmc.Sampler
	index   map[mcmc.WordPair]int
	avg     *runningAverage
	count   []int
}

// NewUndirectedEdgeFrequency builds an UndirectedEdgeFrequency statistic
// over s's word-pair index.
func NewUndirectedEdgeFrequency(s *mcmc.Sampler) *UndirectedEdgeFrequency {
	idx := s.WordPairIndex()
	return &UndirectedEdgeFrequency{
		sampler: s,
		index:   idx,
		avg:     newRunningAverage(len(idx)),
		count:   make([]int, len(idx)),
	}
}

func (u *UndirectedEdgeFrequency) pairSlot(edgeID int) int {
	e := u.sampler.Edges.Get(edgeID)
	return u.index[wordPairKey(e.Source, e.Target)]
}

func wordPairKey(a, b int) mcmc.WordPair {
	if a < b {
		return mcmc.WordPair{A: a, B: b}
	}
	return mcmc.WordPair{A: b, B: a}
}

func (u *UndirectedEdgeFrequency) Reset() {
	u.avg = newRunningAverage(len(u.index))
	u.count = make([]int, len(u.index))
	for _, eid := range u.sampler.Branching.PresentEdgeIDs() {
		slot := u.pairSlot(eid)
		u.count[slot]++
	}
	for slot, c := range u.count {
		if c > 0 {
			u.avg.set(slot, 1)
		}
	}
}

func (u *UndirectedEdgeFrequency) EdgeAdded(edgeID int) {
	slot := u.pairSlot(edgeID)
	u.count[slot]++
	u.avg.set(slot, 1)
}

func (u *UndirectedEdgeFrequency) EdgeRemoved(edgeID int) {
	slot := u.pairSlot(edgeID)
	u.count[slot]--
	if u.count[slot] <= 0 {
		u.avg.set(slot, 0)
	}
}

func (u *UndirectedEdgeFrequency) NextIter() { u.avg.nextIter() }

func (u *UndirectedEdgeFrequency) Update() { u.avg.finalize() }

// Value returns the finalized connection marginal for pair (call after
// Update). Pairs outside the candidate edge set return 0.
func (u *UndirectedEdgeFrequency) Value(pair mcmc.WordPair) float64 {
	slot, ok := u.index[pair]
	if !ok {
		return 0
	}
	return u.avg.value(slot)
}
