package costcache

import (
	"math"

	"github.com/katalvlaran/morle/edgeset"
)

// Cache holds the dense root-cost and edge-cost arrays the sampler scores
// moves against.
type Cache struct {
	rootCost []float64 // indexed by word ID
	edgeCost []float64 // indexed by edge ID
}

// Fill builds a Cache from freshly computed root and edge costs, rejecting
// any NaN entry.
func Fill(rootCost, edgeCost []float64) (*Cache, error) {
	for _, c := range rootCost {
		if math.IsNaN(c) {
			return nil, ErrNaNCost
		}
	}
	for _, c := range edgeCost {
		if math.IsNaN(c) {
			return nil, ErrNaNCost
		}
	}
	return &Cache{
		rootCost: append([]float64(nil), rootCost...),
		edgeCost: append([]float64(nil), edgeCost...),
	}, nil
}

// RootCost returns the cached root cost of word w.
func (c *Cache) RootCost(w int) float64 { return c.rootCost[w] }

// EdgeCost returns the cached cost of edge e.
func (c *Cache) EdgeCost(e int) float64 { return c.edgeCost[e] }

// NullCost returns the sum of every word's root cost, the log-posterior
// cost of the fully disconnected (no-edges) branching's word part.
func (c *Cache) NullCost() float64 {
	var sum float64
	for _, v := range c.rootCost {
		sum += v
	}
	return sum
}

// CostOfChange returns the exact log-posterior delta of adding addIDs and
// removing removeIDs from the branching, per:
//
//	Δ = Σ_add (edge_cost[e] − root_cost[target(e)]) − Σ_rem (edge_cost[e] − root_cost[target(e)])
//
// Removing an incoming edge makes its target a root (pay root cost, refund
// edge cost); adding one does the reverse.
func (c *Cache) CostOfChange(es *edgeset.EdgeSet, addIDs, removeIDs []int) (float64, error) {
	var delta float64
	for _, eid := range addIDs {
		target := es.Get(eid).Target
		delta += c.edgeCost[eid] - c.rootCost[target]
	}
	for _, eid := range removeIDs {
		target := es.Get(eid).Target
		delta -= c.edgeCost[eid] - c.rootCost[target]
	}
	if math.IsNaN(delta) {
		return 0, ErrNaNCost
	}
	return delta, nil
}
