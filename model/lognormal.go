package model

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/morle/edgeset"
	"github.com/katalvlaran/morle/lexicon"
	"github.com/katalvlaran/morle/rule"
	"gonum.org/v1/gonum/stat/distuv"
)

// VarianceFloor is the additive variance floor applied after fitting each
// rule's log-frequency-difference Gaussian, avoiding degenerate (zero
// variance) fits.
const VarianceFloor = 0.001

// LogNormalEdgeFrequency fits, per rule, a univariate Gaussian over the
// weighted sample of logfreq(target)-logfreq(source) across that rule's
// edges.
type LogNormalEdgeFrequency struct {
	rs    *rule.RuleSet
	means []float64
	vars  []float64
	fit   []bool
	floor float64
}

// NewLogNormalEdgeFrequency builds an unfit model over rs, using
// VarianceFloor as the default regularizer.
func NewLogNormalEdgeFrequency(rs *rule.RuleSet) *LogNormalEdgeFrequency {
	n := rs.Len()
	return &LogNormalEdgeFrequency{
		rs:    rs,
		means: make([]float64, n),
		vars:  make([]float64, n),
		fit:   make([]bool, n),
		floor: VarianceFloor,
	}
}

// SetVarianceFloor overrides the additive variance regularizer, letting
// morleconfig's Gaussian variance floor setting reach the fit. Must be
// called before Initialize/Fit to take effect.
func (m *LogNormalEdgeFrequency) SetVarianceFloor(floor float64) {
	m.floor = floor
}

// Fit refits the per-rule Gaussians from per-edge weights. Rules with at
// most one positive-weight edge keep their previous parameters (or remain
// unfit, if never fit before), matching LogNormalEdgeFrequencyModel.fit_rule.
func (m *LogNormalEdgeFrequency) Fit(es *edgeset.EdgeSet, lx *lexicon.Lexicon, weights []float64) error {
	if len(weights) != es.Len() {
		return ErrWeightsLengthMismatch
	}
	for ruleID, edgeIDs := range es.AllEdgeIDsByRule() {
		m.fitRule(es, lx, ruleID, edgeIDs, weights)
	}
	return nil
}

func (m *LogNormalEdgeFrequency) fitRule(es *edgeset.EdgeSet, lx *lexicon.Lexicon, ruleID int, edgeIDs []int, weights []float64) {
	positive := 0
	for _, eid := range edgeIDs {
		if weights[eid] > 0 {
			positive++
		}
	}
	if positive <= 1 {
		return
	}

	var weightSum, meanAcc float64
	deltas := make([]float64, len(edgeIDs))
	for i, eid := range edgeIDs {
		e := es.Get(eid)
		delta := lx.Get(e.Target).LogFreq - lx.Get(e.Source).LogFreq
		deltas[i] = delta
		weightSum += weights[eid]
		meanAcc += weights[eid] * delta
	}
	mean := meanAcc / weightSum

	var varAcc float64
	for i, eid := range edgeIDs {
		err := deltas[i] - mean
		varAcc += weights[eid] * err * err
	}
	variance := varAcc/weightSum + m.floor

	m.means[ruleID] = mean
	m.vars[ruleID] = variance
	m.fit[ruleID] = true
}

// Initialize fits every rule as Fit does, then assigns a standard-normal
// fallback (mean 0, variance 1 plus the variance floor) to any rule that still has
// fewer than two positive-weight edges, so every rule has usable
// parameters before the first sampling run. Used once, before the first
// soft-EM outer iteration.
func (m *LogNormalEdgeFrequency) Initialize(es *edgeset.EdgeSet, lx *lexicon.Lexicon, weights []float64) error {
	if err := m.Fit(es, lx, weights); err != nil {
		return err
	}
	for ruleID := range m.fit {
		if !m.fit[ruleID] {
			m.means[ruleID] = 0
			m.vars[ruleID] = 1 + m.floor
			m.fit[ruleID] = true
		}
	}
	return nil
}

// EdgeCost returns -log N(Δlogfreq; mean_r, var_r) for the given edge.
func (m *LogNormalEdgeFrequency) EdgeCost(ruleID int, deltaLogFreq float64) (float64, error) {
	if !m.fit[ruleID] {
		return 0, ErrNotFitted
	}
	n := distuv.Normal{Mu: m.means[ruleID], Sigma: math.Sqrt(m.vars[ruleID])}
	return -n.LogProb(deltaLogFreq), nil
}

// Save writes means and variances as a flat binary array, one (mean,var)
// pair per rule ID, each a little-endian float64 — the Go analogue of the
// original's np.savez binary archive.
func (m *LogNormalEdgeFrequency) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := range m.means {
		if err := binary.Write(bw, binary.LittleEndian, m.means[i]); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, m.vars[i]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// LoadLogNormal reads a binary array previously written by Save against rs.
func LoadLogNormal(r io.Reader, rs *rule.RuleSet) (*LogNormalEdgeFrequency, error) {
	m := NewLogNormalEdgeFrequency(rs)
	for i := 0; i < rs.Len(); i++ {
		var mean, variance float64
		if err := binary.Read(r, binary.LittleEndian, &mean); err != nil {
			return nil, fmt.Errorf("model: reading mean for rule %d: %w", i, err)
		}
		if err := binary.Read(r, binary.LittleEndian, &variance); err != nil {
			return nil, fmt.Errorf("model: reading variance for rule %d: %w", i, err)
		}
		m.means[i] = mean
		m.vars[i] = variance
		m.fit[i] = true
	}
	return m, nil
}
