package branching

import "errors"

// ErrTargetHasParent indicates add_edge was attempted for an edge whose
// target already has an incoming edge in the branching.
var ErrTargetHasParent = errors.New("branching: target already has a parent")

// ErrWouldCreateCycle indicates add_edge was attempted for an edge that
// would close a directed cycle.
var ErrWouldCreateCycle = errors.New("branching: edge would create a cycle")

// ErrEdgeNotPresent indicates remove_edge was asked to remove an edge the
// branching does not currently contain.
var ErrEdgeNotPresent = errors.New("branching: edge not present")

// ErrUnknownEdgeID indicates an edge ID outside the companion edge set's
// range was referenced.
var ErrUnknownEdgeID = errors.New("branching: unknown edge id")
