// Package branching implements the mutable directed forest the sampler
// proposes moves against: each word has at most one incoming edge, and no
// directed cycle may form. Branching tracks parent pointers and outgoing
// adjacency over a fixed edgeset.EdgeSet, the way core.Graph tracks
// adjacency over a fixed vertex set, specialized to the at-most-one-parent
// forest invariant instead of a general multigraph.
package branching
