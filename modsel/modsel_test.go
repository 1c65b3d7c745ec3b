package modsel_test

import (
	"testing"

	"github.com/katalvlaran/morle/edgeset"
	"github.com/katalvlaran/morle/lexicon"
	"github.com/katalvlaran/morle/mcmc"
	"github.com/katalvlaran/morle/model"
	"github.com/katalvlaran/morle/modsel"
	"github.com/katalvlaran/morle/rngutil"
	"github.com/katalvlaran/morle/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainFixture builds a lexicon where one rule (r0) is supported by a
// single edge between two frequent words and a second rule (r1) has a
// single candidate edge with a domain size (1,000,000) inflated far
// beyond its actual use, driving its contribution non-negative so rule
// selection deletes it.
func chainFixture(t *testing.T) (*lexicon.Lexicon, *rule.RuleSet, *edgeset.EdgeSet, *model.Suite) {
	t.Helper()
	w1, err := lexicon.ParseWord("a<N>", 20, nil)
	require.NoError(t, err)
	w2, err := lexicon.ParseWord("ab<N>", 10, nil)
	require.NoError(t, err)
	w3, err := lexicon.ParseWord("ac<N>", 1, nil)
	require.NoError(t, err)
	lx, err := lexicon.NewLexicon([]lexicon.Word{w1, w2, w3})
	require.NoError(t, err)

	r0, err := rule.Parse(":b")
	require.NoError(t, err)
	r1, err := rule.Parse(":c")
	require.NoError(t, err)
	rs, err := rule.NewRuleSet([]rule.Rule{r0, r1}, []int{1, 1000000})
	require.NoError(t, err)

	es, err := edgeset.New([]edgeset.GraphEdge{
		{Source: 0, Target: 1, Rule: 0}, // A->AB, well supported
		{Source: 0, Target: 2, Rule: 1}, // A->AC, inflated domsize rule
	}, lx.Len(), rs.Len())
	require.NoError(t, err)

	suite := model.NewSuite(model.ZipfRootCoster{}, rs, model.DefaultAlpha, model.DefaultBeta)
	require.NoError(t, suite.Initialize(es, lx))

	return lx, rs, es, suite
}

func TestDriverRunDeletesUnsupportedRule(t *testing.T) {
	lx, rs, es, suite := chainFixture(t)
	cfg := modsel.Config{OuterIterations: 3, WarmupIter: 30, SamplingIter: 200}
	d := modsel.NewDriver(lx, rs, es, suite, cfg, rngutil.New(5), nil)

	result, err := d.Run()
	require.NoError(t, err)

	assert.Less(t, result.Rules.Len(), rs.Len(), "the inflated-domsize rule should have been deleted")
	for i := 0; i < result.Edges.Len(); i++ {
		e := result.Edges.Get(i)
		assert.GreaterOrEqual(t, e.Rule, 0)
		assert.Less(t, e.Rule, result.Rules.Len())
	}
}

func TestDriverRejectsZeroIterations(t *testing.T) {
	lx, rs, es, suite := chainFixture(t)
	d := modsel.NewDriver(lx, rs, es, suite, modsel.Config{}, rngutil.New(1), nil)
	_, err := d.Run()
	assert.ErrorIs(t, err, modsel.ErrNoOuterIterations)
}

func TestDriverInvokesCheckpointHookEveryIteration(t *testing.T) {
	lx, rs, es, suite := chainFixture(t)
	cfg := modsel.Config{OuterIterations: 2, WarmupIter: 10, SamplingIter: 50}
	d := modsel.NewDriver(lx, rs, es, suite, cfg, rngutil.New(2), nil)

	calls := 0
	d.OnOuterIteration = func(iter int, rs *rule.RuleSet, es *edgeset.EdgeSet) error {
		calls++
		assert.Equal(t, calls-1, iter)
		return nil
	}
	_, err := d.Run()
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDriverSupervisedStaysWithinPairs(t *testing.T) {
	lx, rs, es, suite := chainFixture(t)
	cfg := modsel.Config{OuterIterations: 2, WarmupIter: 10, SamplingIter: 50}
	d := modsel.NewDriver(lx, rs, es, suite, cfg, rngutil.New(3), nil)
	d.Supervised = true
	d.Pairs = []mcmc.WordPair{{A: 0, B: 1}}

	result, err := d.Run()
	require.NoError(t, err)
	assert.NotNil(t, result.Edges)
}

func TestDriverSemiSupervisedErrorsIfEnsuredConnectionStranded(t *testing.T) {
	lx, rs, es, suite := chainFixture(t)
	cfg := modsel.Config{OuterIterations: 3, WarmupIter: 10, SamplingIter: 50}
	d := modsel.NewDriver(lx, rs, es, suite, cfg, rngutil.New(4), nil)
	d.SemiSupervised = true
	// Ensure the connection realized only by the rule that gets deleted.
	d.Ensured = map[mcmc.Connection]bool{{Source: 0, Target: 2}: true}

	_, err := d.Run()
	assert.ErrorIs(t, err, modsel.ErrEnsuredConnectionLost)
}
