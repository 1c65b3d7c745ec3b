package stats

import (
	"sort"

	"github.com/katalvlaran/morle/mcmc"
	"github.com/sirupsen/logrus"
)

// Registry wraps a sampler's registered statistics for lookup by
// capability, so console logging and the corpus package's TSV writers
// don't need to know each statistic's concrete type.
type Registry struct {
	sampler *mcmc.Sampler
}

// NewRegistry builds a Registry over s's already-registered statistics.
func NewRegistry(s *mcmc.Sampler) *Registry { return &Registry{sampler: s} }

// Scalars returns every registered statistic implementing Scalar, keyed
// by registration name, in sorted name order.
func (r *Registry) Scalars() []struct {
	Name string
	Stat Scalar
} {
	var out []struct {
		Name string
		Stat Scalar
	}
	for _, name := range r.sampler.StatNames() {
		if sc, ok := r.sampler.Stat(name).(Scalar); ok {
			out = append(out, struct {
				Name string
				Stat Scalar
			}{name, sc})
		}
	}
	return out
}

// EdgeStats returns every registered statistic implementing EdgeIndexed,
// keyed by registration name (a map, so it has no order).
func (r *Registry) EdgeStats() map[string]EdgeIndexed {
	out := make(map[string]EdgeIndexed)
	for _, name := range r.sampler.StatNames() {
		if es, ok := r.sampler.Stat(name).(EdgeIndexed); ok {
			out[name] = es
		}
	}
	return out
}

// RuleStats returns every registered statistic implementing RuleIndexed,
// keyed by registration name.
func (r *Registry) RuleStats() map[string]RuleIndexed {
	out := make(map[string]RuleIndexed)
	for _, name := range r.sampler.StatNames() {
		if rs, ok := r.sampler.Stat(name).(RuleIndexed); ok {
			out[name] = rs
		}
	}
	return out
}

// WordPairStats returns every registered statistic implementing
// WordPairIndexed, keyed by registration name.
func (r *Registry) WordPairStats() map[string]WordPairIndexed {
	out := make(map[string]WordPairIndexed)
	for _, name := range r.sampler.StatNames() {
		if wp, ok := r.sampler.Stat(name).(WordPairIndexed); ok {
			out[name] = wp
		}
	}
	return out
}

// LogScalars writes every registered scalar statistic's finalized value
// to log at info level, one field per statistic, in sorted name order
// for deterministic output.
func (r *Registry) LogScalars(log *logrus.Entry) {
	if log == nil {
		return
	}
	scalars := r.Scalars()
	sort.Slice(scalars, func(i, j int) bool { return scalars[i].Name < scalars[j].Name })
	fields := logrus.Fields{}
	for _, s := range scalars {
		fields[s.Name] = s.Stat.Value()
	}
	log.WithFields(fields).Info("sampling phase statistics")
}
