package model

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/morle/edgeset"
	"github.com/katalvlaran/morle/rule"
)

// DefaultAlpha and DefaultBeta are the Beta prior hyperparameters used
// when none are configured, matching SimpleEdgeModel's defaults.
const (
	DefaultAlpha = 1.1
	DefaultBeta  = 1.1
)

// Bernoulli is the rule-application cost model: for each rule r, an
// application probability p_r fitted as the posterior mean of a
// Beta(alpha,beta) prior given the expected number of edges carrying r.
type Bernoulli struct {
	rs    *rule.RuleSet
	alpha float64
	beta  float64

	prob     []float64 // p_r, nil until Fit/Load
	applCost []float64 // -log(p_r) + log(1-p_r)
	ruleCost []float64 // -log(1-p_r) * domsize_r
	nullCost float64   // sum(ruleCost)
}

// NewBernoulli builds a Bernoulli model over rs with the given prior
// hyperparameters. It must be Fit or Load-ed before costs are queried.
func NewBernoulli(rs *rule.RuleSet, alpha, beta float64) *Bernoulli {
	return &Bernoulli{rs: rs, alpha: alpha, beta: beta}
}

// Fit refits p_r for every rule from per-edge weights (the sampler's edge
// marginals), aggregated per rule via es.
//
//	p_r = (freq_r + alpha - 1) / (domsize_r + alpha + beta - 2)
//	freq_r = Σ_{e with rule r} weight(e)
func (b *Bernoulli) Fit(es *edgeset.EdgeSet, weights []float64) error {
	if len(weights) != es.Len() {
		return ErrWeightsLengthMismatch
	}
	n := b.rs.Len()
	ruleFreq := make([]float64, n)
	for r, edgeIDs := range es.AllEdgeIDsByRule() {
		var sum float64
		for _, eid := range edgeIDs {
			sum += weights[eid]
		}
		ruleFreq[r] = sum
	}
	probs := make([]float64, n)
	for r := 0; r < n; r++ {
		domsize := float64(b.rs.DomSize(r))
		probs[r] = (ruleFreq[r] + b.alpha - 1) / (domsize + b.alpha + b.beta - 2)
	}
	b.setProbs(probs)
	return nil
}

func (b *Bernoulli) setProbs(probs []float64) {
	n := len(probs)
	applCost := make([]float64, n)
	ruleCost := make([]float64, n)
	var null float64
	for r, p := range probs {
		applCost[r] = -math.Log(p) + math.Log(1-p)
		ruleCost[r] = -math.Log(1-p) * float64(b.rs.DomSize(r))
		null += ruleCost[r]
	}
	b.prob = probs
	b.applCost = applCost
	b.ruleCost = ruleCost
	b.nullCost = null
}

// ApplCost returns appl_cost_r for the given rule ID.
func (b *Bernoulli) ApplCost(ruleID int) (float64, error) {
	if b.applCost == nil {
		return 0, ErrNotFitted
	}
	return b.applCost[ruleID], nil
}

// RuleCost returns rule_cost_r for the given rule ID.
func (b *Bernoulli) RuleCost(ruleID int) (float64, error) {
	if b.ruleCost == nil {
		return 0, ErrNotFitted
	}
	return b.ruleCost[ruleID], nil
}

// NullCost returns the total rule cost with no edges present.
func (b *Bernoulli) NullCost() (float64, error) {
	if b.ruleCost == nil {
		return 0, ErrNotFitted
	}
	return b.nullCost, nil
}

// Prob returns the fitted application probability p_r for the given rule.
func (b *Bernoulli) Prob(ruleID int) (float64, error) {
	if b.prob == nil {
		return 0, ErrNotFitted
	}
	return b.prob[ruleID], nil
}

// Save writes rule probabilities as a TSV (rule_string, prob), one per
// line in rule-ID order.
func (b *Bernoulli) Save(w io.Writer) error {
	if b.prob == nil {
		return ErrNotFitted
	}
	bw := bufio.NewWriter(w)
	for id, r := range b.rs.Rules() {
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", r.String(), strconv.FormatFloat(b.prob[id], 'g', -1, 64)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Load reads rule probabilities previously written by Save, keyed by rule
// string against rs.
func Load(r io.Reader, rs *rule.RuleSet, alpha, beta float64) (*Bernoulli, error) {
	b := NewBernoulli(rs, alpha, beta)
	probs := make([]float64, rs.Len())
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	seen := make([]bool, rs.Len())
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) != 2 {
			return nil, fmt.Errorf("model: malformed rule probability line %q", line)
		}
		parsed, err := rule.Parse(cols[0])
		if err != nil {
			return nil, err
		}
		id, err := rs.GetID(parsed)
		if err != nil {
			return nil, err
		}
		p, err := strconv.ParseFloat(cols[1], 64)
		if err != nil {
			return nil, err
		}
		probs[id] = p
		seen[id] = true
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for id, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("model: missing probability for rule %q", rs.Get(id).String())
		}
	}
	b.setProbs(probs)
	return b, nil
}
