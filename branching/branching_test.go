package branching_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/morle/branching"
	"github.com/katalvlaran/morle/edgeset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainEdgeSet(t *testing.T) *edgeset.EdgeSet {
	t.Helper()
	// 0 -> 1 -> 2, plus a candidate 2 -> 0 that would close a cycle once
	// both chain edges are present, and a competing edge into 1.
	es, err := edgeset.New([]edgeset.GraphEdge{
		{Source: 0, Target: 1, Rule: 0}, // id 0
		{Source: 1, Target: 2, Rule: 0}, // id 1
		{Source: 2, Target: 0, Rule: 0}, // id 2: would close 0->1->2->0
		{Source: 2, Target: 1, Rule: 1}, // id 3: competing parent for 1
	}, 3, 2)
	require.NoError(t, err)
	return es
}

func TestAddEdgeBasic(t *testing.T) {
	es := chainEdgeSet(t)
	b := branching.Empty(es, 3)

	require.NoError(t, b.AddEdge(0))
	parent, ok := b.Parent(1)
	assert.True(t, ok)
	assert.Equal(t, 0, parent)
	assert.True(t, b.HasEdge(0, 1, 0))
	assert.Equal(t, []int{0}, b.OutgoingEdges(0))
}

func TestAddEdgeRejectsSecondParent(t *testing.T) {
	es := chainEdgeSet(t)
	b := branching.Empty(es, 3)
	require.NoError(t, b.AddEdge(0))
	err := b.AddEdge(3) // also targets 1
	assert.ErrorIs(t, err, branching.ErrTargetHasParent)
}

func TestAddEdgeRejectsCycle(t *testing.T) {
	es := chainEdgeSet(t)
	b := branching.Empty(es, 3)
	require.NoError(t, b.AddEdge(0)) // 0->1
	require.NoError(t, b.AddEdge(1)) // 1->2
	err := b.AddEdge(2)              // 2->0 would close the cycle
	assert.ErrorIs(t, err, branching.ErrWouldCreateCycle)
}

func TestHasPath(t *testing.T) {
	es := chainEdgeSet(t)
	b := branching.Empty(es, 3)
	require.NoError(t, b.AddEdge(0))
	require.NoError(t, b.AddEdge(1))
	assert.True(t, b.HasPath(0, 2))
	assert.False(t, b.HasPath(2, 0))
	assert.True(t, b.HasPath(0, 0))
}

func TestRemoveEdge(t *testing.T) {
	es := chainEdgeSet(t)
	b := branching.Empty(es, 3)
	require.NoError(t, b.AddEdge(0))
	require.NoError(t, b.RemoveEdge(0))
	_, ok := b.Parent(1)
	assert.False(t, ok)
	assert.Empty(t, b.OutgoingEdges(0))
}

func TestRemoveEdgeNotPresent(t *testing.T) {
	es := chainEdgeSet(t)
	b := branching.Empty(es, 3)
	err := b.RemoveEdge(0)
	assert.ErrorIs(t, err, branching.ErrEdgeNotPresent)
}

func TestFindEdges(t *testing.T) {
	es := chainEdgeSet(t)
	b := branching.Empty(es, 3)
	require.NoError(t, b.AddEdge(0))
	assert.Equal(t, []int{0}, b.FindEdges(0, 1))
	assert.Nil(t, b.FindEdges(1, 0))
}

func TestRandomProducesValidForest(t *testing.T) {
	es := chainEdgeSet(t)
	rng := rand.New(rand.NewSource(42))
	b, err := branching.Random(es, 3, rng)
	require.NoError(t, err)
	// No word should see itself as a descendant through a cycle.
	for w := 0; w < b.NumWords(); w++ {
		for _, eid := range b.OutgoingEdges(w) {
			assert.False(t, b.HasPath(es.Get(eid).Target, w))
		}
	}
}
