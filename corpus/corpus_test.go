package corpus_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/morle/corpus"
	"github.com/katalvlaran/morle/edgeset"
	"github.com/katalvlaran/morle/lexicon"
	"github.com/katalvlaran/morle/mcmc"
	"github.com/katalvlaran/morle/model"
	"github.com/katalvlaran/morle/rngutil"
	"github.com/katalvlaran/morle/rule"
	"github.com/katalvlaran/morle/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T) (*lexicon.Lexicon, *rule.RuleSet, *edgeset.EdgeSet, *mcmc.Sampler) {
	t.Helper()
	w1, err := lexicon.ParseWord("a<N>", 10, nil)
	require.NoError(t, err)
	w2, err := lexicon.ParseWord("ab<N>", 5, nil)
	require.NoError(t, err)
	lx, err := lexicon.NewLexicon([]lexicon.Word{w1, w2})
	require.NoError(t, err)

	r0, err := rule.Parse(":b")
	require.NoError(t, err)
	rs, err := rule.NewRuleSet([]rule.Rule{r0}, []int{1})
	require.NoError(t, err)

	es, err := edgeset.New([]edgeset.GraphEdge{{Source: 0, Target: 1, Rule: 0}}, lx.Len(), rs.Len())
	require.NoError(t, err)

	suite := model.NewSuite(model.ZipfRootCoster{}, rs, model.DefaultAlpha, model.DefaultBeta)
	require.NoError(t, suite.Initialize(es, lx))

	s := mcmc.New(lx, rs, es, suite, 10, 50, rngutil.New(1), nil)
	return lx, rs, es, s
}

func TestWriteEdgeStats(t *testing.T) {
	lx, rs, es, s := fixture(t)
	ef := stats.NewEdgeFrequency(s)
	require.NoError(t, s.AddStat("edge_freq", ef))
	require.NoError(t, s.Run())

	reg := stats.NewRegistry(s)
	var sb strings.Builder
	require.NoError(t, corpus.WriteEdgeStats(&sb, es, lx, rs, reg))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "source\ttarget\trule\tedge_freq", lines[0])
	assert.Contains(t, lines[1], "a<N>\tab<N>\t:b\t")
}

func TestWriteRuleStats(t *testing.T) {
	_, rs, _, s := fixture(t)
	rf := stats.NewRuleFrequency(s)
	require.NoError(t, s.AddStat("rule_freq", rf))
	require.NoError(t, s.Run())

	reg := stats.NewRegistry(s)
	var sb strings.Builder
	require.NoError(t, corpus.WriteRuleStats(&sb, rs, reg))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "rule\trule_freq", lines[0])
}

func TestWriteWordPairStats(t *testing.T) {
	lx, _, _, s := fixture(t)
	uf := stats.NewUndirectedEdgeFrequency(s)
	require.NoError(t, s.AddStat("wordpair_freq", uf))
	require.NoError(t, s.Run())

	reg := stats.NewRegistry(s)
	var sb strings.Builder
	require.NoError(t, corpus.WriteWordPairStats(&sb, lx, s.WordPairIndex(), reg))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "word_a\tword_b\twordpair_freq", lines[0])
}

func TestWriteIterStats(t *testing.T) {
	_, _, _, s := fixture(t)
	accRate := stats.NewAcceptanceRate()
	expCost := stats.NewExpectedCost(s)
	require.NoError(t, s.AddStat("acc_rate", accRate))
	require.NoError(t, s.AddStat("exp_cost", expCost))
	log := stats.NewIterationLog(10, map[string]stats.Scalar{"acc_rate": accRate, "exp_cost": expCost})
	require.NoError(t, s.AddStat("iter_log", log))
	require.NoError(t, s.Run())

	var sb strings.Builder
	require.NoError(t, corpus.WriteIterStats(&sb, log))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	assert.Equal(t, "iter\tacc_rate\texp_cost", lines[0])
	assert.Greater(t, len(lines), 1)
}
