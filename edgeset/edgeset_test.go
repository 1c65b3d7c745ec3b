package edgeset_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/morle/edgeset"
	"github.com/katalvlaran/morle/lexicon"
	"github.com/katalvlaran/morle/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFixture(t *testing.T) (*lexicon.Lexicon, *rule.RuleSet) {
	t.Helper()
	w1, err := lexicon.ParseWord("walk<V>", 10, nil)
	require.NoError(t, err)
	w2, err := lexicon.ParseWord("walked<V>", 4, nil)
	require.NoError(t, err)
	lx, err := lexicon.NewLexicon([]lexicon.Word{w1, w2})
	require.NoError(t, err)

	r1, err := rule.Parse(":ed")
	require.NoError(t, err)
	rs, err := rule.NewRuleSet([]rule.Rule{r1}, []int{1})
	require.NoError(t, err)
	return lx, rs
}

func TestNewRejectsSelfLoop(t *testing.T) {
	lx, rs := buildFixture(t)
	_, err := edgeset.New([]edgeset.GraphEdge{{Source: 0, Target: 0, Rule: 0}}, lx.Len(), rs.Len())
	assert.ErrorIs(t, err, edgeset.ErrSelfLoop)
}

func TestNewRejectsDuplicateSourceRule(t *testing.T) {
	lx, rs := buildFixture(t)
	edges := []edgeset.GraphEdge{
		{Source: 0, Target: 1, Rule: 0},
		{Source: 0, Target: 1, Rule: 0},
	}
	_, err := edgeset.New(edges, lx.Len(), rs.Len())
	assert.ErrorIs(t, err, edgeset.ErrDuplicateEdge)
}

func TestEdgeIDsByRuleAndBetween(t *testing.T) {
	lx, rs := buildFixture(t)
	es, err := edgeset.New([]edgeset.GraphEdge{{Source: 0, Target: 1, Rule: 0}}, lx.Len(), rs.Len())
	require.NoError(t, err)

	assert.Equal(t, []int{0}, es.EdgeIDsByRule(0))
	assert.Equal(t, []int{0}, es.EdgeIDsBetween(0, 1))
	assert.Empty(t, es.EdgeIDsBetween(1, 0))
}

func TestRandomEdgeIDIsInRange(t *testing.T) {
	lx, rs := buildFixture(t)
	es, err := edgeset.New([]edgeset.GraphEdge{{Source: 0, Target: 1, Rule: 0}}, lx.Len(), rs.Len())
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	id := es.RandomEdgeID(rng)
	assert.GreaterOrEqual(t, id, 0)
	assert.Less(t, id, es.Len())
}

func TestRemoveEdgesRemapsIDs(t *testing.T) {
	w1, _ := lexicon.ParseWord("a<N>", 1, nil)
	w2, _ := lexicon.ParseWord("b<N>", 1, nil)
	w3, _ := lexicon.ParseWord("c<N>", 1, nil)
	lx, err := lexicon.NewLexicon([]lexicon.Word{w1, w2, w3})
	require.NoError(t, err)

	r1, _ := rule.Parse("x:y")
	r2, _ := rule.Parse("y:z")
	rs, err := rule.NewRuleSet([]rule.Rule{r1, r2}, []int{1, 1})
	require.NoError(t, err)

	es, err := edgeset.New([]edgeset.GraphEdge{
		{Source: 0, Target: 1, Rule: 0},
		{Source: 1, Target: 2, Rule: 1},
	}, lx.Len(), rs.Len())
	require.NoError(t, err)

	out, remap := es.RemoveEdges(map[int]bool{0: true})
	assert.Equal(t, 1, out.Len())
	newID, ok := remap[1]
	require.True(t, ok)
	assert.Equal(t, edgeset.GraphEdge{Source: 1, Target: 2, Rule: 1}, out.Get(newID))
	_, hadOld := remap[0]
	assert.False(t, hadOld)
}

func TestLoadSaveRoundTrip(t *testing.T) {
	lx, rs := buildFixture(t)
	in := "walk<V>\twalked<V>\t:ed\n"
	es, err := edgeset.Load(strings.NewReader(in), lx, rs)
	require.NoError(t, err)
	require.Equal(t, 1, es.Len())

	var sb strings.Builder
	require.NoError(t, edgeset.Save(&sb, es, lx, rs))
	assert.Equal(t, in, sb.String())
}
