package costcache

import "errors"

// ErrNaNCost indicates a NaN value was detected in a root or edge cost,
// either while caching costs from the model or while evaluating a
// proposed change. This is treated as a programming error, not a
// recoverable condition: see spec invariant on NaN costs.
var ErrNaNCost = errors.New("costcache: NaN cost detected")
