package stats

import "github.com/katalvlaran/morle/mcmc"

// RuleIndexed marks a statistic that reports one value per rule ID, for
// rule-stat TSV export and rule selection.
type RuleIndexed interface {
	mcmc.Statistic
	Value(ruleID int) float64
}

// RuleFrequency tracks, for every rule, the time-weighted average number
// of candidate edges carrying that rule which are present in the
// branching at any given moment.
type RuleFrequency struct {
	sampler *mcmc.Sampler
	avg     *runningAverage
	count   []int
}

// NewRuleFrequency builds a RuleFrequency statistic over every rule in
// s's rule set.
func NewRuleFrequency(s *mcmc.Sampler) *RuleFrequency {
	return &RuleFrequency{
		sampler: s,
		avg:     newRunningAverage(s.Rules.Len()),
		count:   make([]int, s.Rules.Len()),
	}
}

func (r *RuleFrequency) Reset() {
	r.avg = newRunningAverage(r.sampler.Rules.Len())
	r.count = make([]int, r.sampler.Rules.Len())
	for _, eid := range r.sampler.Branching.PresentEdgeIDs() {
		ruleID := r.sampler.Edges.Get(eid).Rule
		r.count[ruleID]++
	}
	for ruleID, c := range r.count {
		r.avg.set(ruleID, float64(c))
	}
}

func (r *RuleFrequency) EdgeAdded(edgeID int) {
	ruleID := r.sampler.Edges.Get(edgeID).Rule
	r.count[ruleID]++
	r.avg.set(ruleID, float64(r.count[ruleID]))
}

func (r *RuleFrequency) EdgeRemoved(edgeID int) {
	ruleID := r.sampler.Edges.Get(edgeID).Rule
	r.count[ruleID]--
	r.avg.set(ruleID, float64(r.count[ruleID]))
}

func (r *RuleFrequency) NextIter() { r.avg.nextIter() }

func (r *RuleFrequency) Update() { r.avg.finalize() }

// Value returns the finalized average active-edge count for ruleID (call
// after Update).
func (r *RuleFrequency) Value(ruleID int) float64 { return r.avg.value(ruleID) }

// RuleExpectedContribution tracks, for every rule r, the running mean of
//
//	cost_of_change([], E_r) + rule_cost_r
//
// where E_r is the set of candidate edges carrying r currently present in
// the branching: the log-posterior cost of deleting r outright (removing
// every edge it currently realizes and no longer paying its rule cost).
// A non-negative value means the rule is not worth keeping: deleting it
// would not increase cost, so the rule selector removes any rule whose
// finalized contribution is >= 0.
type RuleExpectedContribution struct {
	sampler *mcmc.Sampler
	avg     *runningAverage
}

// NewRuleExpectedContribution builds a RuleExpectedContribution statistic
// over every rule in s's rule set. s must already have cached costs
// (CacheCosts/Run) before Reset is called.
func NewRuleExpectedContribution(s *mcmc.Sampler) *RuleExpectedContribution {
	return &RuleExpectedContribution{sampler: s, avg: newRunningAverage(s.Rules.Len())}
}

func (c *RuleExpectedContribution) Reset() {
	c.avg = newRunningAverage(c.sampler.Rules.Len())
	for ruleID := 0; ruleID < c.sampler.Rules.Len(); ruleID++ {
		c.touch(ruleID)
	}
}

func (c *RuleExpectedContribution) EdgeAdded(edgeID int) {
	c.touch(c.sampler.Edges.Get(edgeID).Rule)
}

func (c *RuleExpectedContribution) EdgeRemoved(edgeID int) {
	c.touch(c.sampler.Edges.Get(edgeID).Rule)
}

// touch recomputes ruleID's contribution from the branching's current
// state and folds it into the running average; called only when an edge
// carrying ruleID changed presence, not every iteration.
func (c *RuleExpectedContribution) touch(ruleID int) {
	var present []int
	for _, eid := range c.sampler.Edges.EdgeIDsByRule(ruleID) {
		e := c.sampler.Edges.Get(eid)
		if c.sampler.Branching.HasEdge(e.Source, e.Target, ruleID) {
			present = append(present, eid)
		}
	}
	deletionCost, err := c.sampler.Cache().CostOfChange(c.sampler.Edges, nil, present)
	if err != nil {
		// A NaN cost is a programming error elsewhere (costcache.Fill
		// already rejects NaN inputs); treat it as "no contribution"
		// rather than panicking inside a statistics callback.
		return
	}
	ruleCost, err := c.sampler.Model.Appl.RuleCost(ruleID)
	if err != nil {
		return
	}
	c.avg.set(ruleID, deletionCost+ruleCost)
}

func (c *RuleExpectedContribution) NextIter() { c.avg.nextIter() }

func (c *RuleExpectedContribution) Update() { c.avg.finalize() }

// Value returns the finalized expected contribution for ruleID (call
// after Update). A value >= 0 means the rule selector should delete r.
func (c *RuleExpectedContribution) Value(ruleID int) float64 { return c.avg.value(ruleID) }
