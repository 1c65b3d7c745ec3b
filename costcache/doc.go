// Package costcache holds the dense, per-word and per-edge cost arrays
// the sampler scores moves against, and the exact cost_of_change formula
// used to evaluate a proposed set of edge additions/removals.
//
// The caches are recomputed in full whenever the model is refit and are
// never mutated mid-sampling; acceptance decisions read only from the
// cached values, mirroring MCMCGraphSampler.cache_costs/cost_of_change.
package costcache
