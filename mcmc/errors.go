package mcmc

import "errors"

// ErrImpossibleMove indicates the move a randomly picked edge implied
// cannot be realized because a required candidate edge is absent from the
// edge set. The iteration is skipped: no mutation, still counted.
var ErrImpossibleMove = errors.New("mcmc: impossible move")

// ErrInvariantViolation indicates a move's bookkeeping found the
// branching in a state its own invariants rule out (e.g. a node's parent
// edge is missing where the forest structure guarantees one exists). This
// is fatal: the caller should log the offending IDs and abort.
var ErrInvariantViolation = errors.New("mcmc: branching invariant violation")

// ErrDuplicateStatistic indicates a statistic name was registered twice.
var ErrDuplicateStatistic = errors.New("mcmc: duplicate statistic name")

// ErrEnsuredConnectionLost indicates a semi-supervised sampler's move
// would have severed a connection the caller marked as ensured.
var ErrEnsuredConnectionLost = errors.New("mcmc: move would lose an ensured connection")
