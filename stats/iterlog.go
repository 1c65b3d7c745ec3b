package stats

import "github.com/katalvlaran/morle/mcmc"

// IterationIndexed marks a statistic that reports a history of snapshots
// taken at a fixed iteration interval, for the sample-iter-stats output.
type IterationIndexed interface {
	mcmc.Statistic
	Records() []IterRecord
}

// IterRecord is one snapshot: the iteration it was taken at, and the
// value of every tracked scalar statistic at that point.
type IterRecord struct {
	Iter    int
	Scalars map[string]float64
}

// IterationLog snapshots a set of named Scalar statistics every interval
// iterations, reproducing print_scalar_stats/log_scalar_stats's periodic
// progress dump (samplers.py:299-318) as a recorded history rather than
// an immediate log line, so corpus.WriteIterStats can render it as a
// sample-iter-stats TSV after the run completes.
//
// Snapshots taken before the final Update() read each tracked statistic's
// running value as of its last internal flush, not a fully up-to-the-tick
// value — acceptable for a progress log, not a substitute for the
// finalized per-statistic values written to sample-edge-stats/
// sample-rule-stats.
type IterationLog struct {
	interval int
	scalars  map[string]Scalar
	iter     int
	records  []IterRecord
}

// NewIterationLog builds an IterationLog snapshotting scalars every
// interval iterations. interval <= 0 disables the periodic snapshots;
// Update still records one final snapshot. Register this statistic AFTER the scalars it snapshots,
// so a final Update() reads their already-finalized values.
func NewIterationLog(interval int, scalars map[string]Scalar) *IterationLog {
	return &IterationLog{interval: interval, scalars: scalars}
}

func (l *IterationLog) Reset() {
	l.iter = 0
	l.records = nil
}

func (l *IterationLog) EdgeAdded(int)   {}
func (l *IterationLog) EdgeRemoved(int) {}

func (l *IterationLog) NextIter() {
	l.iter++
	if l.interval > 0 && l.iter%l.interval == 0 {
		l.snapshot()
	}
}

func (l *IterationLog) Update() { l.snapshot() }

func (l *IterationLog) snapshot() {
	values := make(map[string]float64, len(l.scalars))
	for name, s := range l.scalars {
		values[name] = s.Value()
	}
	l.records = append(l.records, IterRecord{Iter: l.iter, Scalars: values})
}

// Records returns every snapshot taken so far, oldest first.
func (l *IterationLog) Records() []IterRecord { return l.records }
