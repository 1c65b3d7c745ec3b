package mcmc

// proposal is a candidate branching mutation: the edges to add, the edges
// to remove, and q_ratio = q(current | proposed) / q(proposed | current).
type proposal struct {
	add           []int
	remove        []int
	proposalRatio float64
}

// determineMoveProposal classifies a randomly picked edge against the
// current branching and proposes the matching move, per spec.md §4.5:
// already present -> delete; would close a cycle -> flip; target already
// has a (different) parent -> swap-parent; otherwise -> add.
func (s *Sampler) determineMoveProposal(edgeID int) (proposal, error) {
	e := s.Edges.Get(edgeID)
	if s.Branching.HasEdge(e.Source, e.Target, e.Rule) {
		return s.proposeDelete(edgeID), nil
	}
	if s.Branching.HasPath(e.Target, e.Source) {
		return s.proposeFlip(edgeID)
	}
	if _, hasParent := s.Branching.Parent(e.Target); hasParent {
		return s.proposeSwapParent(edgeID), nil
	}
	return s.proposeAdd(edgeID), nil
}

func (s *Sampler) proposeAdd(edgeID int) proposal {
	return proposal{add: []int{edgeID}, proposalRatio: 1}
}

func (s *Sampler) proposeDelete(edgeID int) proposal {
	return proposal{remove: []int{edgeID}, proposalRatio: 1}
}

func (s *Sampler) proposeSwapParent(edgeID int) proposal {
	target := s.Edges.Get(edgeID).Target
	parent, _ := s.Branching.Parent(target)
	remove := s.Branching.FindEdges(parent, target)
	return proposal{add: []int{edgeID}, remove: remove, proposalRatio: 1}
}

func (s *Sampler) proposeFlip(edgeID int) (proposal, error) {
	if s.rng.Float64() < 0.5 {
		return s.proposeFlip1(edgeID)
	}
	return s.proposeFlip2(edgeID)
}

// flipNodes are the five nodes nodes_for_flip identifies relative to the
// randomly picked edge (node_1 -> node_2, whose proposed addition would
// close a cycle because node_2 is already an ancestor of node_1).
type flipNodes struct {
	n1, n2   int
	n3       int // parent(n2); -1 if n2 is a root
	n3Exists bool
	n4       int // parent(n1); always exists, since n1 is a descendant of n2
	n5       int // the child of n4's ancestor chain whose parent is n2
}

func (s *Sampler) nodesForFlip(edgeID int) flipNodes {
	e := s.Edges.Get(edgeID)
	n1, n2 := e.Source, e.Target
	n3, n3ok := s.Branching.Parent(n2)
	n4, _ := s.Branching.Parent(n1)
	n5 := n4
	if n5 != n2 {
		for {
			p, _ := s.Branching.Parent(n5)
			if p == n2 {
				break
			}
			n5 = p
		}
	}
	return flipNodes{n1: n1, n2: n2, n3: n3, n3Exists: n3ok, n4: n4, n5: n5}
}

// proposeFlip1 removes the edge n3->n2 (if any) and n4->n1 (which must
// exist), and adds a uniformly-chosen candidate edge n3->n1.
func (s *Sampler) proposeFlip1(edgeID int) (proposal, error) {
	fn := s.nodesForFlip(edgeID)

	candidates := s.Edges.EdgeIDsBetween(fn.n3, fn.n1)
	if len(candidates) == 0 {
		return proposal{}, ErrImpossibleMove
	}
	edge31 := candidates[s.rng.Intn(len(candidates))]

	var remove []int
	if fn.n3Exists {
		if e32 := s.Branching.FindEdges(fn.n3, fn.n2); len(e32) > 0 {
			remove = append(remove, e32...)
		}
	}
	e41 := s.Branching.FindEdges(fn.n4, fn.n1)
	if len(e41) == 0 {
		return proposal{}, ErrInvariantViolation
	}
	remove = append(remove, e41...)

	n32 := len(s.Edges.EdgeIDsBetween(fn.n3, fn.n2))
	ratio := float64(n32) / float64(len(candidates))

	return proposal{add: []int{edge31}, remove: remove, proposalRatio: ratio}, nil
}

// proposeFlip2 removes the edges n2->n5 (if any) and n3->n2 (if any), and
// adds a uniformly-chosen candidate edge n3->n5.
func (s *Sampler) proposeFlip2(edgeID int) (proposal, error) {
	fn := s.nodesForFlip(edgeID)

	candidates := s.Edges.EdgeIDsBetween(fn.n3, fn.n5)
	if len(candidates) == 0 {
		return proposal{}, ErrImpossibleMove
	}
	edge35 := candidates[s.rng.Intn(len(candidates))]

	var remove []int
	e25 := s.Branching.FindEdges(fn.n2, fn.n5)
	if len(e25) > 0 {
		remove = append(remove, e25...)
	} else if fn.n2 != fn.n5 {
		return proposal{}, ErrInvariantViolation
	}
	if fn.n3Exists {
		if e32 := s.Branching.FindEdges(fn.n3, fn.n2); len(e32) > 0 {
			remove = append(remove, e32...)
		}
	}

	n32 := len(s.Edges.EdgeIDsBetween(fn.n3, fn.n2))
	ratio := float64(n32) / float64(len(candidates))

	return proposal{add: []int{edge35}, remove: remove, proposalRatio: ratio}, nil
}
