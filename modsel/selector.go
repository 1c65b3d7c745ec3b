package modsel

import (
	"github.com/katalvlaran/morle/edgeset"
	"github.com/katalvlaran/morle/rule"
)

// Selector applies a set of deleted rule IDs to a (rule set, edge set)
// pair, producing the surviving rule set (with domain sizes preserved)
// and the surviving edge set, remapped to the new rule IDs.
type Selector struct{}

// Apply filters rs down to the rules not in deleted, drops every edge in
// es whose rule is deleted, and remaps the surviving edges' Rule field to
// the filtered rule set's IDs. numWords is the companion lexicon size
// es was built against.
func (Selector) Apply(rs *rule.RuleSet, es *edgeset.EdgeSet, deleted map[int]bool, numWords int) (*rule.RuleSet, *edgeset.EdgeSet, error) {
	filteredRules, ruleRemap := rs.Filter(deleted)

	kept := make([]edgeset.GraphEdge, 0, es.Len())
	for i := 0; i < es.Len(); i++ {
		e := es.Get(i)
		if deleted[e.Rule] {
			continue
		}
		newRuleID, ok := ruleRemap[e.Rule]
		if !ok {
			// deleted and ruleRemap are built from the same rs; a rule
			// not marked deleted must have survived filtering.
			continue
		}
		kept = append(kept, edgeset.GraphEdge{Source: e.Source, Target: e.Target, Rule: newRuleID})
	}

	filteredEdges, err := edgeset.New(kept, numWords, filteredRules.Len())
	if err != nil {
		return nil, nil, err
	}
	return filteredRules, filteredEdges, nil
}

// removeDeletedRuleEdges drops every edge carrying a deleted rule from es
// without touching rs or remapping rule IDs, used between outer
// iterations where the sampler must keep scoring against the original,
// unfiltered rule set (see DESIGN.md's modsel entry).
func removeDeletedRuleEdges(es *edgeset.EdgeSet, deleted map[int]bool) *edgeset.EdgeSet {
	if len(deleted) == 0 {
		return es
	}
	removedIDs := make(map[int]bool)
	for ruleID := range deleted {
		for _, eid := range es.EdgeIDsByRule(ruleID) {
			removedIDs[eid] = true
		}
	}
	if len(removedIDs) == 0 {
		return es
	}
	out, _ := es.RemoveEdges(removedIDs)
	return out
}
