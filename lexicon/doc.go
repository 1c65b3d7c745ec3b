// Package lexicon holds the immutable word list the morphology sampler
// builds a branching over.
//
// A Word is an immutable lexicon entry: its symbol and tag sequences,
// observed frequency, and an optional dense feature vector. A Lexicon
// assigns every Word a stable, contiguous integer ID on construction
// ([0, Len())) and never changes that mapping afterwards — exactly the
// ID-stability contract core.Graph gives vertices (see core/types.go),
// specialized to a fixed, never-mutated collection instead of a live graph.
package lexicon
