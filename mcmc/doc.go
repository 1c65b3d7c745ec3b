// Package mcmc implements the Metropolis-Hastings engine that proposes
// and accepts/rejects branching moves: add, delete, swap-parent, and the
// two flip sub-variants, each exactly balanced against its own proposal
// probability ratio so the chain's stationary distribution is the
// branching posterior costcache.Cache/model.Suite define.
//
// Scheduling is single-threaded and cooperative: each Next call is one
// indivisible iteration. Registered Statistic observers are notified of
// every edge addition/removal and at the end of every iteration,
// regardless of whether the proposed move was accepted.
package mcmc
