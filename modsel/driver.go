package modsel

import (
	"math/rand"

	"github.com/katalvlaran/morle/edgeset"
	"github.com/katalvlaran/morle/lexicon"
	"github.com/katalvlaran/morle/mcmc"
	"github.com/katalvlaran/morle/model"
	"github.com/katalvlaran/morle/rngutil"
	"github.com/katalvlaran/morle/rule"
	"github.com/katalvlaran/morle/stats"
	"github.com/sirupsen/logrus"
)

// Config controls a Driver's outer loop, mirroring spec.md §6's
// modsel.iterations/warmup_iterations/sampling_iterations table.
type Config struct {
	OuterIterations int
	WarmupIter      int
	SamplingIter    int
}

// Driver runs the soft-EM outer loop: construct a sampler over the
// current edge/rule set, sample, refit the model suite from the sampled
// edge marginals, then delete rules whose expected contribution is no
// longer worth their cost, shrinking the edge set for the next
// iteration. Model.Initialize must already have been called on Model
// before Run, giving the first iteration's sampler valid costs.
type Driver struct {
	Lexicon *lexicon.Lexicon
	Rules   *rule.RuleSet // full, unfiltered rule set; IDs stay stable all loop
	Edges   *edgeset.EdgeSet
	Model   *model.Suite
	Config  Config

	Supervised     bool
	Pairs          []mcmc.WordPair // required if Supervised
	SemiSupervised bool
	Ensured        map[mcmc.Connection]bool // required if SemiSupervised

	rng *rand.Rand
	log *logrus.Entry

	// OnOuterIteration, if set, is called after each outer iteration with
	// the final-shape rule/edge set as of that point (rules filtered,
	// edge IDs remapped), for checkpointing per spec.md §7's recovery
	// policy. It does not affect the driver's internal working state.
	OnOuterIteration func(iter int, rs *rule.RuleSet, es *edgeset.EdgeSet) error

	// OnSamplerDone, if set, is called once per outer iteration right
	// after that iteration's sampler finishes running and before its
	// edge/rule marginals are consumed for refitting, giving a caller
	// access to the full per-edge/per-rule/per-word-pair statistics (not
	// just the four the driver itself reads) for the detailed stat dumps
	// spec.md §6 names. iter's workingEdges is es; the sampler's own
	// stats registry can be built with stats.NewRegistry(sampler).
	OnSamplerDone func(iter int, sampler *mcmc.Sampler, es *edgeset.EdgeSet) error
}

// NewDriver builds a Driver. rng seeds every outer iteration's sampler
// via an independent derived stream, keeping the whole run reproducible
// from one root seed.
func NewDriver(lx *lexicon.Lexicon, rs *rule.RuleSet, es *edgeset.EdgeSet, suite *model.Suite, cfg Config, rng *rand.Rand, log *logrus.Entry) *Driver {
	return &Driver{
		Lexicon: lx,
		Rules:   rs,
		Edges:   es,
		Model:   suite,
		Config:  cfg,
		rng:     rng,
		log:     log,
	}
}

// Result is a single outer iteration's observable outcome, returned by
// Run's final iteration and usable for end-to-end assertions in tests.
type Result struct {
	Rules *rule.RuleSet
	Edges *edgeset.EdgeSet
}

// Run executes Config.OuterIterations outer iterations and returns the
// final, rule-filtered rule set and edge set.
func (d *Driver) Run() (*Result, error) {
	if d.Config.OuterIterations <= 0 {
		return nil, ErrNoOuterIterations
	}

	workingEdges := d.Edges
	deleted := make(map[int]bool)

	for iter := 0; iter < d.Config.OuterIterations; iter++ {
		sampler, run, err := d.buildSampler(workingEdges, iter)
		if err != nil {
			return nil, err
		}

		accRate := stats.NewAcceptanceRate()
		expCost := stats.NewExpectedCost(sampler)
		edgeFreq := stats.NewEdgeFrequency(sampler)
		ruleContrib := stats.NewRuleExpectedContribution(sampler)
		if err := sampler.AddStat("acc_rate", accRate); err != nil {
			return nil, err
		}
		if err := sampler.AddStat("exp_cost", expCost); err != nil {
			return nil, err
		}
		if err := sampler.AddStat("edge_freq", edgeFreq); err != nil {
			return nil, err
		}
		if err := sampler.AddStat("rule_contrib", ruleContrib); err != nil {
			return nil, err
		}

		if err := run.Run(); err != nil {
			return nil, err
		}
		if d.log != nil {
			reg := stats.NewRegistry(sampler)
			reg.LogScalars(d.log.WithField("outer_iter", iter))
		}

		if d.OnSamplerDone != nil {
			if err := d.OnSamplerDone(iter, sampler, workingEdges); err != nil {
				return nil, err
			}
		}

		if err := d.Model.Fit(workingEdges, d.Lexicon, edgeFreq.Weights()); err != nil {
			return nil, err
		}

		for ruleID := 0; ruleID < d.Rules.Len(); ruleID++ {
			if deleted[ruleID] {
				continue
			}
			if ruleContrib.Value(ruleID) >= 0 {
				deleted[ruleID] = true
			}
		}

		workingEdges = removeDeletedRuleEdges(workingEdges, deleted)

		if d.SemiSupervised {
			if err := d.checkEnsuredSurvived(workingEdges); err != nil {
				return nil, err
			}
		}

		if d.OnOuterIteration != nil {
			filteredRules, filteredEdges, err := (Selector{}).Apply(d.Rules, workingEdges, deleted, d.Lexicon.Len())
			if err != nil {
				return nil, err
			}
			if err := d.OnOuterIteration(iter, filteredRules, filteredEdges); err != nil {
				return nil, err
			}
		}
	}

	finalRules, finalEdges, err := (Selector{}).Apply(d.Rules, workingEdges, deleted, d.Lexicon.Len())
	if err != nil {
		return nil, err
	}
	return &Result{Rules: finalRules, Edges: finalEdges}, nil
}

// checkEnsuredSurvived verifies every ensured (source, target) connection
// still has at least one realizing candidate edge in es.
func (d *Driver) checkEnsuredSurvived(es *edgeset.EdgeSet) error {
	for conn := range d.Ensured {
		if len(es.EdgeIDsBetween(conn.Source, conn.Target)) == 0 {
			return ErrEnsuredConnectionLost
		}
	}
	return nil
}

// runner is the subset of a sampler variant's interface the outer loop
// drives: Run() dispatches through Supervised/SemiSupervised's own
// override rather than the embedded base Sampler's, which calling
// through the base *mcmc.Sampler pointer directly would bypass.
type runner interface {
	Run() error
}

// buildSampler constructs the sampler variant for this outer iteration,
// seeded with an independent, reproducible stream derived from iter. It
// returns both the concrete base Sampler (for registering/reading
// statistics, which take *mcmc.Sampler) and the runner that must be used
// to actually drive it, so Supervised/SemiSupervised's overridden Run is
// not skipped.
func (d *Driver) buildSampler(es *edgeset.EdgeSet, iter int) (*mcmc.Sampler, runner, error) {
	rng := rngutil.Derive(d.rng, uint64(iter))
	log := d.log
	if log != nil {
		log = log.WithField("outer_iter", iter)
	}

	switch {
	case d.Supervised:
		s := mcmc.NewSupervised(d.Lexicon, d.Rules, es, d.Model, d.Pairs, d.Config.WarmupIter, d.Config.SamplingIter, rng, log)
		return s.Sampler, s, nil
	case d.SemiSupervised:
		s := mcmc.NewSemiSupervised(d.Lexicon, d.Rules, es, d.Model, d.Ensured, d.Config.WarmupIter, d.Config.SamplingIter, rng, log)
		return s.Sampler, s, nil
	default:
		s := mcmc.New(d.Lexicon, d.Rules, es, d.Model, d.Config.WarmupIter, d.Config.SamplingIter, rng, log)
		return s, s, nil
	}
}
