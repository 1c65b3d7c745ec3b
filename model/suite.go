package model

import (
	"github.com/katalvlaran/morle/costcache"
	"github.com/katalvlaran/morle/edgeset"
	"github.com/katalvlaran/morle/lexicon"
	"github.com/katalvlaran/morle/rule"
)

// Suite combines the external root-cost collaborator with the internal
// Bernoulli and LogNormalEdgeFrequency models into the dense cost arrays
// costcache.Cache holds during sampling.
type Suite struct {
	Root RootCoster
	Appl *Bernoulli
	Freq *LogNormalEdgeFrequency
}

// NewSuite builds a Suite with fresh, unfit internal models over rs.
func NewSuite(root RootCoster, rs *rule.RuleSet, alpha, beta float64) *Suite {
	return &Suite{
		Root: root,
		Appl: NewBernoulli(rs, alpha, beta),
		Freq: NewLogNormalEdgeFrequency(rs),
	}
}

// Initialize gives every internal model a usable cold-start fit, treating
// every candidate edge as if it were fully present (weight 1). This lets
// the first soft-EM outer iteration's sampler run with valid costs before
// any marginal has actually been measured, mirroring ModelSuite.initialize
// in the original driver.
func (s *Suite) Initialize(es *edgeset.EdgeSet, lx *lexicon.Lexicon) error {
	uniform := make([]float64, es.Len())
	for i := range uniform {
		uniform[i] = 1.0
	}
	if err := s.Appl.Fit(es, uniform); err != nil {
		return err
	}
	return s.Freq.Initialize(es, lx, uniform)
}

// Fit refits both internal models from the sampler's per-edge marginal
// weights. It takes no root weights: the root cost collaborator is
// read-only and nothing here is refit from them.
func (s *Suite) Fit(es *edgeset.EdgeSet, lx *lexicon.Lexicon, edgeWeights []float64) error {
	if err := s.Appl.Fit(es, edgeWeights); err != nil {
		return err
	}
	return s.Freq.Fit(es, lx, edgeWeights)
}

// RecomputeCosts rebuilds the full root-cost and edge-cost arrays from the
// current model state, ready to be handed to costcache.Fill.
func (s *Suite) RecomputeCosts(lx *lexicon.Lexicon, es *edgeset.EdgeSet) (rootCost, edgeCost []float64, err error) {
	rootCost = s.Root.RootCosts(lx)
	edgeCost = make([]float64, es.Len())
	for i := 0; i < es.Len(); i++ {
		e := es.Get(i)
		applCost, err := s.Appl.ApplCost(e.Rule)
		if err != nil {
			return nil, nil, err
		}
		delta := lx.Get(e.Target).LogFreq - lx.Get(e.Source).LogFreq
		freqCost, err := s.Freq.EdgeCost(e.Rule, delta)
		if err != nil {
			return nil, nil, err
		}
		edgeCost[i] = applCost + freqCost
	}
	return rootCost, edgeCost, nil
}

// NullCost returns the log-posterior cost of the fully disconnected
// branching: the sum of every rule's rule_cost plus the sum of every
// word's root cost.
func (s *Suite) NullCost(lx *lexicon.Lexicon) (float64, error) {
	ruleNull, err := s.Appl.NullCost()
	if err != nil {
		return 0, err
	}
	var rootSum float64
	for _, c := range s.Root.RootCosts(lx) {
		rootSum += c
	}
	return ruleNull + rootSum, nil
}

// Cache builds a costcache.Cache from the suite's current state.
func (s *Suite) Cache(lx *lexicon.Lexicon, es *edgeset.EdgeSet) (*costcache.Cache, error) {
	rootCost, edgeCost, err := s.RecomputeCosts(lx, es)
	if err != nil {
		return nil, err
	}
	return costcache.Fill(rootCost, edgeCost)
}
