package mcmc

import (
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/morle/branching"
	"github.com/katalvlaran/morle/costcache"
	"github.com/katalvlaran/morle/edgeset"
	"github.com/katalvlaran/morle/lexicon"
	"github.com/katalvlaran/morle/model"
	"github.com/katalvlaran/morle/rule"
	"github.com/sirupsen/logrus"
)

// WordPair is an unordered pair of word IDs, used to index statistics
// that aggregate over connections rather than directed edges.
type WordPair struct{ A, B int }

func unorderedPair(x, y int) WordPair {
	if x < y {
		return WordPair{x, y}
	}
	return WordPair{y, x}
}

// Sampler is the Metropolis-Hastings engine: it owns the branching and
// drives it through accept/reject iterations scored against a
// costcache.Cache built from a model.Suite.
type Sampler struct {
	Lexicon *lexicon.Lexicon
	Rules   *rule.RuleSet
	Edges   *edgeset.EdgeSet
	Model   *model.Suite

	Branching *branching.Branching
	cache     *costcache.Cache

	WarmupIter   int
	SamplingIter int

	iterNum int
	logl    float64

	rng   *rand.Rand
	stats map[string]Statistic
	order []string // registration order, for deterministic iteration

	wordPairIndex map[WordPair]int

	log *logrus.Entry
}

// New builds a Sampler over a candidate edge set and a fitted model
// suite, with no branching yet (call Run or SeedRandomBranching before
// Next). rng provides every random choice the sampler makes.
func New(lx *lexicon.Lexicon, rs *rule.RuleSet, es *edgeset.EdgeSet, suite *model.Suite, warmupIter, samplingIter int, rng *rand.Rand, log *logrus.Entry) *Sampler {
	s := &Sampler{
		Lexicon:       lx,
		Rules:         rs,
		Edges:         es,
		Model:         suite,
		WarmupIter:    warmupIter,
		SamplingIter:  samplingIter,
		rng:           rng,
		stats:         make(map[string]Statistic),
		wordPairIndex: make(map[WordPair]int),
		log:           log,
	}
	nextID := 0
	for i := 0; i < es.Len(); i++ {
		e := es.Get(i)
		key := unorderedPair(e.Source, e.Target)
		if _, ok := s.wordPairIndex[key]; !ok {
			s.wordPairIndex[key] = nextID
			nextID++
		}
	}
	return s
}

// AddStat registers a named statistic observer. Names must be unique.
func (s *Sampler) AddStat(name string, stat Statistic) error {
	if _, exists := s.stats[name]; exists {
		return ErrDuplicateStatistic
	}
	s.stats[name] = stat
	s.order = append(s.order, name)
	return nil
}

// Stat returns the registered statistic with the given name, or nil.
func (s *Sampler) Stat(name string) Statistic { return s.stats[name] }

// WordPairIndex returns the stable unordered-(source,target) pair index
// built from the candidate edge set, used by word-pair-level statistics.
func (s *Sampler) WordPairIndex() map[WordPair]int { return s.wordPairIndex }

// LogLikelihood returns the running log-likelihood maintained since the
// initial branching was set.
func (s *Sampler) LogLikelihood() float64 { return s.logl }

// Cache returns the root/edge cost cache the sampler currently scores
// moves against, or nil before the first CacheCosts call. Statistics that
// need to evaluate hypothetical cost changes (e.g. a rule's expected
// contribution) read it through this accessor rather than recomputing it.
func (s *Sampler) Cache() *costcache.Cache { return s.cache }

// CacheCosts recomputes root and edge costs from the current model state.
func (s *Sampler) CacheCosts() error {
	if s.log != nil {
		s.log.Info("computing root and edge costs")
	}
	cache, err := s.Model.Cache(s.Lexicon, s.Edges)
	if err != nil {
		return err
	}
	s.cache = cache
	return nil
}

// SeedRandomBranching replaces the sampler's branching with a fresh random
// one and recomputes the running log-likelihood from it.
func (s *Sampler) SeedRandomBranching() error {
	b, err := branching.Random(s.Edges, s.Lexicon.Len(), s.rng)
	if err != nil {
		return err
	}
	return s.SetInitialBranching(b)
}

// SetInitialBranching installs b as the sampler's branching and computes
// the log-likelihood of that state, per:
//
//	logl = Σ root_cost + Σ_r rule_cost_r + cost_of_change(edges(b), [])
//
// Costs are cached first if CacheCosts has not run yet.
func (s *Sampler) SetInitialBranching(b *branching.Branching) error {
	if s.cache == nil {
		if err := s.CacheCosts(); err != nil {
			return err
		}
	}
	s.Branching = b
	nullCost, err := s.Model.NullCost(s.Lexicon)
	if err != nil {
		return err
	}
	delta, err := s.cache.CostOfChange(s.Edges, b.PresentEdgeIDs(), nil)
	if err != nil {
		return err
	}
	s.logl = nullCost + delta
	if s.log != nil {
		s.log.WithField("initial_logl", s.logl).Debug("initial branching installed")
	}
	return nil
}

// Reset zeroes the iteration counter and every registered statistic,
// starting a new phase (warmup or sampling).
func (s *Sampler) Reset() {
	s.iterNum = 0
	for _, name := range s.order {
		s.stats[name].Reset()
	}
}

// updateStats finalizes every registered statistic at the end of a
// sampling phase.
func (s *Sampler) updateStats() {
	for _, name := range s.order {
		s.stats[name].Update()
	}
}

// Run performs one full sampling cycle: cache costs, seed a random
// branching, warm up (stats reset before, discarded), then sample (stats
// reset before, accumulated and finalized after).
func (s *Sampler) Run() error {
	return s.runLoop(s.SeedRandomBranching, s.determineMoveProposal)
}

// runLoop is Run's body, parameterized over how the initial branching is
// seeded and how a picked edge is turned into a proposal. Supervised seeds
// via InitLexicon instead of a random branching; both Supervised and
// SemiSupervised restrict or guard the proposal classifier.
func (s *Sampler) runLoop(seed func() error, propose func(edgeID int) (proposal, error)) error {
	if err := s.CacheCosts(); err != nil {
		return err
	}
	if err := seed(); err != nil {
		return err
	}
	s.Reset()
	for i := 0; i < s.WarmupIter; i++ {
		if err := s.step(propose); err != nil {
			return err
		}
	}
	s.Reset()
	for i := 0; i < s.SamplingIter; i++ {
		if err := s.step(propose); err != nil {
			return err
		}
	}
	s.updateStats()
	return nil
}

// Next performs one indivisible iteration: pick a random candidate edge,
// classify and propose a move, accept it with the computed probability,
// then notify every statistic that the iteration completed. A move that
// ErrImpossibleMove's out is skipped (no mutation) but still counted.
func (s *Sampler) Next() error {
	return s.step(s.determineMoveProposal)
}

// step is Next's body, parameterized over how a picked edge is turned into
// a proposal. Supervised and SemiSupervised reuse it with a restricted or
// guarded classifier instead of determineMoveProposal.
func (s *Sampler) step(propose func(edgeID int) (proposal, error)) error {
	s.iterNum++
	edgeID := s.Edges.RandomEdgeID(s.rng)

	prop, err := propose(edgeID)
	if err == ErrImpossibleMove || err == ErrEnsuredConnectionLost {
		// fall through: stay in place, count the iteration. Losing an
		// ensured connection is treated like any other unrealizable move,
		// not a fatal error: the chain simply stays put this iteration.
	} else if err != nil {
		return err
	} else {
		accProb, err := s.computeAcceptanceProb(prop)
		if err != nil {
			return err
		}
		if accProb >= 1 || accProb >= s.rng.Float64() {
			if err := s.acceptMove(prop); err != nil {
				return err
			}
		}
	}

	for _, name := range s.order {
		s.stats[name].NextIter()
	}
	return nil
}

// computeAcceptanceProb computes α = min(1, exp(-Δ)·q_ratio) underflow
// safely: if Δ < log(q_ratio), the probability already saturates at 1
// without needing to evaluate exp(-Δ) (which could overflow for very
// favorable moves).
func (s *Sampler) computeAcceptanceProb(p proposal) (float64, error) {
	cost, err := s.cache.CostOfChange(s.Edges, p.add, p.remove)
	if err != nil {
		return 0, err
	}
	if cost < math.Log(p.proposalRatio) {
		return 1.0, nil
	}
	return math.Exp(-cost) * p.proposalRatio, nil
}

// acceptMove mutates the branching (removals first, then additions,
// matching accept_move's order) and notifies every statistic.
func (s *Sampler) acceptMove(p proposal) error {
	delta, err := s.cache.CostOfChange(s.Edges, p.add, p.remove)
	if err != nil {
		return err
	}
	s.logl += delta
	if math.IsNaN(s.logl) {
		return ErrInvariantViolation
	}

	for _, eid := range p.remove {
		if err := s.Branching.RemoveEdge(eid); err != nil {
			return err
		}
		for _, name := range s.order {
			s.stats[name].EdgeRemoved(eid)
		}
	}
	for _, eid := range p.add {
		if err := s.Branching.AddEdge(eid); err != nil {
			return err
		}
		for _, name := range s.order {
			s.stats[name].EdgeAdded(eid)
		}
	}
	return nil
}

// StatNames returns registered statistic names in sorted order, for
// deterministic reporting (see stats.Registry.LogScalars).
func (s *Sampler) StatNames() []string {
	names := append([]string(nil), s.order...)
	sort.Strings(names)
	return names
}
