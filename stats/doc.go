// Package stats implements the running estimators a mcmc.Sampler
// accumulates over a sampling phase: acceptance rate, expected cost, edge
// and rule marginal frequencies, and the rule expected-contribution
// estimate the rule selector reads between outer iterations.
//
// Every concrete type here implements mcmc.Statistic and is registered
// into a sampler via Sampler.AddStat under a name; a Registry built over
// the same sampler exposes the registered estimators back out by
// capability (Scalar, EdgeIndexed, RuleIndexed, WordPairIndexed) for
// logging and for the corpus package's output writers.
package stats
