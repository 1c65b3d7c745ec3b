// Package morle infers an unsupervised morphological analysis of a word
// list: a rooted forest ("branching") over a graph of candidate
// morphological derivations, each edge carrying a rule and weighted by a
// probabilistic cost model.
//
// The system alternates two phases:
//
//	E-step — an MCMC sampler (package mcmc) explores the space of
//	         branchings via Metropolis–Hastings moves (add/delete/
//	         swap-parent/flip), producing edge-presence marginals.
//	M-step — the cost model (package model) refits from those marginals,
//	         and low-value rules are deleted (package modsel).
//
// Subpackages are organized the way lvlath organizes its graph primitives:
// flat, one concern per package, no internal/ nesting.
//
//	lexicon/    — words and their stable IDs
//	rule/       — morphological rules and domain sizes
//	edgeset/    — candidate edges, indexed by ID and by rule
//	branching/  — the mutable spanning forest
//	costcache/  — dense root/edge cost arrays and incremental cost deltas
//	model/      — the Bernoulli/log-normal cost model suite
//	mcmc/       — the Metropolis–Hastings sampler
//	stats/      — running estimators registered into the sampler
//	modsel/     — the soft-EM outer driver and rule selector
//	corpus/     — stat-dump TSV writers
//	cmd/morle/  — the CLI entry point
//
//	go get github.com/katalvlaran/morle
package morle
