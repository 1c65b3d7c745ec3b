package modsel

import "errors"

// ErrEnsuredConnectionLost indicates rule selection would delete every
// surviving candidate edge for a semi-supervised ensured connection. This
// is a configuration error, distinct from mcmc.ErrEnsuredConnectionLost
// (a single proposal rejected mid-sampling): it is only ever detected
// once, after an outer iteration's deletions are computed, and it is
// fatal — the driver has no recovery path for it.
var ErrEnsuredConnectionLost = errors.New("modsel: rule selection would strand an ensured connection")

// ErrNoOuterIterations indicates a Driver was configured with zero or
// negative outer iterations.
var ErrNoOuterIterations = errors.New("modsel: outer iteration count must be positive")
