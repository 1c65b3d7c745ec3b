// Package model implements the cost model suite the sampler scores
// branchings against: a read-only external root-cost collaborator, a
// Bernoulli rule-application model, and a log-normal edge-frequency
// model, combined by Suite into the dense arrays package costcache caches.
//
// The internal models are mutated only by Suite.Initialize (a cold-start
// fit before the first soft-EM outer iteration) and Suite.Fit, called once
// per outer iteration with the edge marginals the sampler measured; they
// never change mid-sampling.
package model
