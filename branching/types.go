package branching

import (
	"math/rand"

	"github.com/katalvlaran/morle/edgeset"
)

// noParent marks a word with no incoming edge in the branching.
const noParent = -1

// Branching is a mutable directed forest over the words of a fixed
// edgeset.EdgeSet: at most one incoming edge per word, no directed cycles.
type Branching struct {
	edges        *edgeset.EdgeSet
	parentEdge   []int // parentEdge[w] = edge ID incoming to w, or noParent
	outgoingEdge [][]int
}

// Empty returns a Branching with no edges present, over the words implied
// by es (word IDs 0..numWords-1).
func Empty(es *edgeset.EdgeSet, numWords int) *Branching {
	b := &Branching{
		edges:        es,
		parentEdge:   make([]int, numWords),
		outgoingEdge: make([][]int, numWords),
	}
	for i := range b.parentEdge {
		b.parentEdge[i] = noParent
	}
	return b
}

// Random builds a branching by visiting words in random order and, for
// each, picking uniformly between leaving it a root and attaching it to
// one of its currently cycle-safe candidate parents. This yields a valid
// spanning branching to seed the sampler's Markov chain from; it is not
// claimed to be uniform over the full space of spanning branchings, only
// a valid and randomized starting point (the chain's stationary
// distribution does not depend on the starting branching).
func Random(es *edgeset.EdgeSet, numWords int, rng *rand.Rand) (*Branching, error) {
	b := Empty(es, numWords)
	order := rng.Perm(numWords)
	for _, w := range order {
		var candidates []int
		for _, edgeID := range incomingEdgeIDs(es, w) {
			e := es.Get(edgeID)
			if b.HasPath(w, e.Source) {
				continue // would create a cycle
			}
			candidates = append(candidates, edgeID)
		}
		// +1 slot for "stay a root".
		pick := rng.Intn(len(candidates) + 1)
		if pick == len(candidates) {
			continue
		}
		if err := b.AddEdge(candidates[pick]); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func incomingEdgeIDs(es *edgeset.EdgeSet, target int) []int {
	var ids []int
	for id := 0; id < es.Len(); id++ {
		if es.Get(id).Target == target {
			ids = append(ids, id)
		}
	}
	return ids
}

// Parent returns the parent word ID of w, or (-1, false) if w is a root.
func (b *Branching) Parent(w int) (int, bool) {
	eid := b.parentEdge[w]
	if eid == noParent {
		return -1, false
	}
	return b.edges.Get(eid).Source, true
}

// ParentEdge returns the incoming edge ID of w, or (-1, false) if w is a
// root.
func (b *Branching) ParentEdge(w int) (int, bool) {
	eid := b.parentEdge[w]
	if eid == noParent {
		return -1, false
	}
	return eid, true
}

// OutgoingEdges returns the edge IDs currently present with source w. The
// returned slice aliases internal storage and must not be mutated.
func (b *Branching) OutgoingEdges(w int) []int { return b.outgoingEdge[w] }

// HasEdge reports whether the specific (source, target, rule) edge is
// present in the branching.
func (b *Branching) HasEdge(source, target, ruleID int) bool {
	eid := b.parentEdge[target]
	if eid == noParent {
		return false
	}
	e := b.edges.Get(eid)
	return e.Source == source && e.Rule == ruleID
}

// FindEdges returns the edge ID present in the branching from source to
// target, if any (a forest admits at most one, since target can have at
// most one incoming edge).
func (b *Branching) FindEdges(source, target int) []int {
	eid := b.parentEdge[target]
	if eid == noParent {
		return nil
	}
	if b.edges.Get(eid).Source != source {
		return nil
	}
	return []int{eid}
}

// HasPath reports whether target is reachable from a by following present
// outgoing edges.
func (b *Branching) HasPath(a, target int) bool {
	if a == target {
		return true
	}
	visited := make(map[int]bool)
	stack := []int{a}
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		for _, eid := range b.outgoingEdge[cur] {
			nxt := b.edges.Get(eid).Target
			if nxt == target {
				return true
			}
			if !visited[nxt] {
				stack = append(stack, nxt)
			}
		}
	}
	return false
}

// AddEdge adds edgeID to the branching. It fails if the target already has
// a parent, or if adding would create a directed cycle.
func (b *Branching) AddEdge(edgeID int) error {
	if edgeID < 0 || edgeID >= b.edges.Len() {
		return ErrUnknownEdgeID
	}
	e := b.edges.Get(edgeID)
	if b.parentEdge[e.Target] != noParent {
		return ErrTargetHasParent
	}
	if b.HasPath(e.Target, e.Source) {
		return ErrWouldCreateCycle
	}
	b.parentEdge[e.Target] = edgeID
	b.outgoingEdge[e.Source] = append(b.outgoingEdge[e.Source], edgeID)
	return nil
}

// RemoveEdge removes edgeID from the branching. It fails if the edge is
// not currently present.
func (b *Branching) RemoveEdge(edgeID int) error {
	if edgeID < 0 || edgeID >= b.edges.Len() {
		return ErrUnknownEdgeID
	}
	e := b.edges.Get(edgeID)
	if b.parentEdge[e.Target] != edgeID {
		return ErrEdgeNotPresent
	}
	b.parentEdge[e.Target] = noParent
	out := b.outgoingEdge[e.Source]
	for i, id := range out {
		if id == edgeID {
			b.outgoingEdge[e.Source] = append(out[:i], out[i+1:]...)
			break
		}
	}
	return nil
}

// PresentEdgeIDs returns every edge ID currently present in the branching,
// in target-word-ID order.
func (b *Branching) PresentEdgeIDs() []int {
	var ids []int
	for _, eid := range b.parentEdge {
		if eid != noParent {
			ids = append(ids, eid)
		}
	}
	return ids
}

// NumWords returns the number of words in the branching's domain.
func (b *Branching) NumWords() int { return len(b.parentEdge) }
