package model

import "errors"

// ErrWeightsLengthMismatch indicates a weights vector passed to Fit did
// not have one entry per edge in the edge set.
var ErrWeightsLengthMismatch = errors.New("model: weights length does not match edge set")

// ErrRootWeightsLengthMismatch indicates a root weights vector did not
// have one entry per lexicon word. No Fit in this package takes root
// weights, so none of them returns it.
var ErrRootWeightsLengthMismatch = errors.New("model: root weights length does not match lexicon")

// ErrNotFitted indicates a cost was requested from a model before it was
// ever fit or loaded.
var ErrNotFitted = errors.New("model: rule probabilities not yet fitted")
