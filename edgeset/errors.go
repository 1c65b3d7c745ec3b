package edgeset

import "errors"

// ErrUnknownWord indicates an edge referenced a word ID outside the
// companion lexicon's range.
var ErrUnknownWord = errors.New("edgeset: unknown word id")

// ErrUnknownRule indicates an edge referenced a rule ID outside the
// companion rule set's range.
var ErrUnknownRule = errors.New("edgeset: unknown rule id")

// ErrSelfLoop indicates an edge's source and target were the same word.
var ErrSelfLoop = errors.New("edgeset: self-loop edge")

// ErrDuplicateEdge indicates the same (source, rule) pair was supplied
// twice; (source, rule) must uniquely determine target.
var ErrDuplicateEdge = errors.New("edgeset: duplicate (source, rule) pair")

// ErrEdgeNotFound indicates a lookup by ID found nothing.
var ErrEdgeNotFound = errors.New("edgeset: edge not found")
