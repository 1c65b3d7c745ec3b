package model

import (
	"math"

	"github.com/katalvlaran/morle/lexicon"
)

// RootCoster is the external root-cost collaborator: a read-only
// probabilistic cost per word, trained once outside this system (by a PFA
// inference procedure) and consulted as a pure function. Non-goal: this
// package does not train one.
type RootCoster interface {
	RootCosts(lx *lexicon.Lexicon) []float64
}

// ZipfRootCoster is a minimal RootCoster stand-in: root_cost(w) =
// log(freq) + log(freq+1). It is not a trained PFA model; it exists so
// Suite can be exercised (tests, small runs) without one, mirroring the
// original's ZipfRootFrequencyModel, which served the same illustrative
// role there.
type ZipfRootCoster struct{}

// RootCosts implements RootCoster.
func (ZipfRootCoster) RootCosts(lx *lexicon.Lexicon) []float64 {
	words := lx.Words()
	out := make([]float64, len(words))
	for i, w := range words {
		out[i] = math.Log(w.Freq) + math.Log(w.Freq+1)
	}
	return out
}
