// Package rngutil centralizes deterministic random generation for the
// sampler and any other stochastic component (initial branching, flip
// coin, statistics). Same seed, same stream ID -> identical sequence,
// across platforms.
//
// math/rand.Rand is not goroutine-safe; use Derive to hand independent
// streams to components that run concurrently.
package rngutil
