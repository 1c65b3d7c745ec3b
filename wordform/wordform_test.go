package wordform_test

import (
	"testing"

	"github.com/katalvlaran/morle/wordform"
	"github.com/stretchr/testify/assert"
)

func TestParseWord(t *testing.T) {
	symbols, tags, ok := wordform.ParseWord("run<V><PST>")
	assert.True(t, ok)
	assert.Equal(t, []string{"r", "u", "n"}, symbols)
	assert.Equal(t, []string{"<V>", "<PST>"}, tags)
}

func TestParseWordBracedSymbol(t *testing.T) {
	symbols, tags, ok := wordform.ParseWord("a{AFF1}b<N>")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "{AFF1}", "b"}, symbols)
	assert.Equal(t, []string{"<N>"}, tags)
}

func TestParseWordRejectsTagBeforeSymbol(t *testing.T) {
	_, _, ok := wordform.ParseWord("<V>run")
	assert.False(t, ok)
}

func TestParseWordRejectsEmpty(t *testing.T) {
	_, _, ok := wordform.ParseWord("")
	assert.False(t, ok)
}

func TestJoinWordRoundTrip(t *testing.T) {
	got := wordform.JoinWord([]string{"r", "u", "n"}, []string{"<V>"})
	assert.Equal(t, "run<V>", got)
}

func TestParseSubst(t *testing.T) {
	from, to, ok := wordform.ParseSubst("ed:ing")
	assert.True(t, ok)
	assert.Equal(t, []string{"e", "d"}, from)
	assert.Equal(t, []string{"i", "n", "g"}, to)
}

func TestParseSubstAllowsEmptySide(t *testing.T) {
	from, to, ok := wordform.ParseSubst(":ing")
	assert.True(t, ok)
	assert.Empty(t, from)
	assert.Equal(t, []string{"i", "n", "g"}, to)
}

func TestJoinSubstRoundTrip(t *testing.T) {
	s := wordform.JoinSubst([]string{"e", "d"}, []string{"i", "n", "g"})
	assert.Equal(t, "ed:ing", s)
	from, to, ok := wordform.ParseSubst(s)
	assert.True(t, ok)
	assert.Equal(t, []string{"e", "d"}, from)
	assert.Equal(t, []string{"i", "n", "g"}, to)
}

func TestParseTagSubst(t *testing.T) {
	from, to, ok := wordform.ParseTagSubst("<PST>:<PRS>")
	assert.True(t, ok)
	assert.Equal(t, []string{"<PST>"}, from)
	assert.Equal(t, []string{"<PRS>"}, to)
}
