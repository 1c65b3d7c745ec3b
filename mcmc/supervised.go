package mcmc

import (
	"math/rand"

	"github.com/katalvlaran/morle/branching"
	"github.com/katalvlaran/morle/edgeset"
	"github.com/katalvlaran/morle/lexicon"
	"github.com/katalvlaran/morle/model"
	"github.com/katalvlaran/morle/rule"
	"github.com/sirupsen/logrus"
)

// candidateEdgesForPair returns every candidate edge connecting p in
// either direction (word pairs are unordered; the underlying edge is not).
func candidateEdgesForPair(es *edgeset.EdgeSet, p WordPair) []int {
	out := append([]int(nil), es.EdgeIDsBetween(p.A, p.B)...)
	return append(out, es.EdgeIDsBetween(p.B, p.A)...)
}

// Supervised is a Sampler restricted to a fixed set of known connections:
// it never proposes an add, delete, flip, or swap-parent that would join
// or sever a pair outside Pairs, only resamples which of a connected
// pair's candidate edges (i.e. which rule) realizes it.
type Supervised struct {
	*Sampler
	Pairs []WordPair
}

// NewSupervised builds a Supervised sampler over the given fixed pairs.
// Run seeds the branching itself via InitLexicon.
func NewSupervised(lx *lexicon.Lexicon, rs *rule.RuleSet, es *edgeset.EdgeSet, suite *model.Suite, pairs []WordPair, warmupIter, samplingIter int, rng *rand.Rand, log *logrus.Entry) *Supervised {
	return &Supervised{
		Sampler: New(lx, rs, es, suite, warmupIter, samplingIter, rng, log),
		Pairs:   pairs,
	}
}

// InitLexicon seeds the branching with one uniformly-chosen candidate edge
// per connected pair, accepted unconditionally: the connection itself is
// given, only the realizing rule is uncertain. Pairs with no candidate
// edge in the edge set are left unconnected.
func (s *Supervised) InitLexicon() error {
	b := branching.Empty(s.Edges, s.Lexicon.Len())
	for _, p := range s.Pairs {
		candidates := candidateEdgesForPair(s.Edges, p)
		if len(candidates) == 0 {
			continue
		}
		edgeID := candidates[s.rng.Intn(len(candidates))]
		if err := b.AddEdge(edgeID); err != nil {
			return err
		}
	}
	return s.SetInitialBranching(b)
}

// Run performs one full sampling cycle seeded by InitLexicon rather than a
// random branching, restricted throughout to rule-swaps within Pairs.
func (s *Supervised) Run() error {
	return s.runLoop(s.InitLexicon, s.determineSupervisedProposal)
}

// Next performs one restricted iteration.
func (s *Supervised) Next() error {
	return s.step(s.determineSupervisedProposal)
}

// determineSupervisedProposal only proposes a rule swap between the two
// candidate edges realizing an already-connected pair; a picked edge
// outside the fixed connection set is an impossible move (skip, no
// mutation, still counted).
func (s *Supervised) determineSupervisedProposal(edgeID int) (proposal, error) {
	e := s.Edges.Get(edgeID)
	pair := unorderedPair(e.Source, e.Target)
	if !containsPair(s.Pairs, pair) {
		return proposal{}, ErrImpossibleMove
	}
	if s.Branching.HasEdge(e.Source, e.Target, e.Rule) {
		return proposal{}, ErrImpossibleMove // already the realizing edge
	}
	parent, hasParent := s.Branching.Parent(e.Target)
	if !hasParent || parent != e.Source {
		return proposal{}, ErrImpossibleMove // connection not yet seeded
	}
	remove := s.Branching.FindEdges(parent, e.Target)
	return proposal{add: []int{edgeID}, remove: remove, proposalRatio: 1}, nil
}

func containsPair(pairs []WordPair, p WordPair) bool {
	for _, q := range pairs {
		if q == p {
			return true
		}
	}
	return false
}

// SemiSupervised is a Sampler that treats a subset of connections as
// ensured: any move that would sever an ensured connection without
// immediately re-establishing it is rejected with ErrEnsuredConnectionLost,
// which the sampler handles like ErrImpossibleMove: the iteration is
// skipped without mutation and still counted.
type SemiSupervised struct {
	*Sampler
	Ensured map[Connection]bool
}

// Connection is a directed (source, target) word pair: direction matters
// here, unlike WordPair's unordered use for stats indexing, because an
// ensured connection records which word is the derivational source.
type Connection struct{ Source, Target int }

// NewSemiSupervised builds a SemiSupervised sampler over the given ensured
// connections (may be empty, in which case it behaves exactly like
// Sampler).
func NewSemiSupervised(lx *lexicon.Lexicon, rs *rule.RuleSet, es *edgeset.EdgeSet, suite *model.Suite, ensured map[Connection]bool, warmupIter, samplingIter int, rng *rand.Rand, log *logrus.Entry) *SemiSupervised {
	return &SemiSupervised{
		Sampler: New(lx, rs, es, suite, warmupIter, samplingIter, rng, log),
		Ensured: ensured,
	}
}

// Run performs one full sampling cycle, seeded with a random branching like
// Sampler.Run, guarding every proposal against severing an ensured
// connection.
func (s *SemiSupervised) Run() error {
	return s.runLoop(s.SeedRandomBranching, s.determineGuardedProposal)
}

// Next performs one guarded iteration.
func (s *SemiSupervised) Next() error {
	return s.step(s.determineGuardedProposal)
}

// determineGuardedProposal delegates to determineMoveProposal, then
// rejects any resulting removal of an ensured (source, target) connection
// unless that same directed connection is also being re-added, matching
// MCMCSemiSupervisedGraphSampler.determine_move_proposal's
// removed_conn & ensured_conn check.
func (s *SemiSupervised) determineGuardedProposal(edgeID int) (proposal, error) {
	prop, err := s.determineMoveProposal(edgeID)
	if err != nil {
		return prop, err
	}
	added := make(map[Connection]bool, len(prop.add))
	for _, id := range prop.add {
		e := s.Edges.Get(id)
		added[Connection{e.Source, e.Target}] = true
	}
	for _, id := range prop.remove {
		e := s.Edges.Get(id)
		conn := Connection{e.Source, e.Target}
		if s.Ensured[conn] && !added[conn] {
			return proposal{}, ErrEnsuredConnectionLost
		}
	}
	return prop, nil
}
