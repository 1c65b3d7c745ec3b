package mcmc_test

import (
	"testing"

	"github.com/katalvlaran/morle/edgeset"
	"github.com/katalvlaran/morle/lexicon"
	"github.com/katalvlaran/morle/mcmc"
	"github.com/katalvlaran/morle/model"
	"github.com/katalvlaran/morle/rngutil"
	"github.com/katalvlaran/morle/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainFixture builds a 4-word lexicon (A,B,C,D) with two candidate rules
// and an edge set that exercises add, delete and swap-parent moves: A->B,
// B->C, C->D directly chain the words; A->C and B->D give swap-parent
// alternatives; a second rule on A->B gives a same-pair rule swap. Every
// edge runs from a shorter word to a longer one, so no edge can close a
// cycle and no flip is ever proposed.
func chainFixture(t *testing.T) (*lexicon.Lexicon, *rule.RuleSet, *edgeset.EdgeSet, *model.Suite) {
	t.Helper()
	words := make([]lexicon.Word, 4)
	var err error
	words[0], err = lexicon.ParseWord("a<N>", 20, nil)
	require.NoError(t, err)
	words[1], err = lexicon.ParseWord("ab<N>", 10, nil)
	require.NoError(t, err)
	words[2], err = lexicon.ParseWord("abc<N>", 6, nil)
	require.NoError(t, err)
	words[3], err = lexicon.ParseWord("abcd<N>", 3, nil)
	require.NoError(t, err)
	lx, err := lexicon.NewLexicon(words)
	require.NoError(t, err)

	r0, err := rule.Parse(":b")
	require.NoError(t, err)
	r1, err := rule.Parse(":x")
	require.NoError(t, err)
	rs, err := rule.NewRuleSet([]rule.Rule{r0, r1}, []int{4, 4})
	require.NoError(t, err)

	es, err := edgeset.New([]edgeset.GraphEdge{
		{Source: 0, Target: 1, Rule: 0}, // A->B
		{Source: 0, Target: 1, Rule: 1}, // A->B, alternate rule
		{Source: 1, Target: 2, Rule: 0}, // B->C
		{Source: 2, Target: 3, Rule: 0}, // C->D
		{Source: 0, Target: 2, Rule: 1}, // A->C
		{Source: 1, Target: 3, Rule: 1}, // B->D
	}, lx.Len(), rs.Len())
	require.NoError(t, err)

	suite := model.NewSuite(model.ZipfRootCoster{}, rs, model.DefaultAlpha, model.DefaultBeta)
	require.NoError(t, suite.Initialize(es, lx))

	return lx, rs, es, suite
}

func validBranchingInvariants(t *testing.T, b interface {
	Parent(int) (int, bool)
	NumWords() int
}) {
	t.Helper()
	for w := 0; w < b.NumWords(); w++ {
		seen := map[int]bool{w: true}
		cur := w
		for {
			p, ok := b.Parent(cur)
			if !ok {
				break
			}
			require.False(t, seen[p], "cycle detected through word %d", w)
			seen[p] = true
			cur = p
		}
	}
}

func TestSamplerRunProducesValidBranching(t *testing.T) {
	lx, rs, es, suite := chainFixture(t)
	rng := rngutil.New(7)
	s := mcmc.New(lx, rs, es, suite, 50, 50, rng, nil)
	require.NoError(t, s.Run())
	validBranchingInvariants(t, s.Branching)
	assert.False(t, s.LogLikelihood() != s.LogLikelihood()) // not NaN
}

func TestSamplerDeterministicWithSameSeed(t *testing.T) {
	lx1, rs1, es1, suite1 := chainFixture(t)
	s1 := mcmc.New(lx1, rs1, es1, suite1, 30, 30, rngutil.New(42), nil)
	require.NoError(t, s1.Run())

	lx2, rs2, es2, suite2 := chainFixture(t)
	s2 := mcmc.New(lx2, rs2, es2, suite2, 30, 30, rngutil.New(42), nil)
	require.NoError(t, s2.Run())

	assert.InDelta(t, s1.LogLikelihood(), s2.LogLikelihood(), 1e-9)
}

func TestAddStatRejectsDuplicateName(t *testing.T) {
	lx, rs, es, suite := chainFixture(t)
	s := mcmc.New(lx, rs, es, suite, 1, 1, rngutil.New(1), nil)
	require.NoError(t, s.AddStat("acc_rate", dummyStat{}))
	err := s.AddStat("acc_rate", dummyStat{})
	assert.ErrorIs(t, err, mcmc.ErrDuplicateStatistic)
}

func TestStatNamesSorted(t *testing.T) {
	lx, rs, es, suite := chainFixture(t)
	s := mcmc.New(lx, rs, es, suite, 1, 1, rngutil.New(1), nil)
	require.NoError(t, s.AddStat("zzz", dummyStat{}))
	require.NoError(t, s.AddStat("aaa", dummyStat{}))
	assert.Equal(t, []string{"aaa", "zzz"}, s.StatNames())
}

func TestWordPairIndexCoversEveryCandidatePair(t *testing.T) {
	lx, rs, es, suite := chainFixture(t)
	s := mcmc.New(lx, rs, es, suite, 1, 1, rngutil.New(1), nil)
	idx := s.WordPairIndex()
	// A-B, B-C, C-D, A-C, B-D: five distinct unordered pairs.
	assert.Len(t, idx, 5)
}

func TestSupervisedInitLexiconOnlyConnectsGivenPairs(t *testing.T) {
	lx, rs, es, suite := chainFixture(t)
	pairs := []mcmc.WordPair{{A: 0, B: 1}, {A: 1, B: 2}}
	s := mcmc.NewSupervised(lx, rs, es, suite, pairs, 20, 20, rngutil.New(3), nil)
	require.NoError(t, s.InitLexicon())

	_, ok := s.Branching.Parent(1)
	assert.True(t, ok)
	_, ok = s.Branching.Parent(2)
	assert.True(t, ok)
	_, ok = s.Branching.Parent(3)
	assert.False(t, ok, "word 3 is outside the fixed pairs, should stay unconnected")
}

func TestSupervisedRunStaysWithinFixedPairs(t *testing.T) {
	lx, rs, es, suite := chainFixture(t)
	pairs := []mcmc.WordPair{{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 3}}
	s := mcmc.NewSupervised(lx, rs, es, suite, pairs, 50, 50, rngutil.New(11), nil)
	require.NoError(t, s.Run())
	validBranchingInvariants(t, s.Branching)

	for _, p := range pairs {
		_, aHasParent := s.Branching.Parent(p.A)
		_, bHasParent := s.Branching.Parent(p.B)
		assert.True(t, aHasParent || bHasParent, "pair %v should remain connected", p)
	}
}

func TestSemiSupervisedRunDoesNotErrorWithEnsuredPairs(t *testing.T) {
	lx, rs, es, suite := chainFixture(t)
	ensured := map[mcmc.Connection]bool{{Source: 0, Target: 1}: true}
	s := mcmc.NewSemiSupervised(lx, rs, es, suite, ensured, 50, 50, rngutil.New(5), nil)
	require.NoError(t, s.Run())
	validBranchingInvariants(t, s.Branching)
}

// dummyStat is a no-op Statistic used to exercise AddStat/StatNames.
type dummyStat struct{}

func (dummyStat) Reset()             {}
func (dummyStat) Update()            {}
func (dummyStat) EdgeAdded(int)      {}
func (dummyStat) EdgeRemoved(int)    {}
func (dummyStat) NextIter()          {}
