package edgeset

import "math/rand"

// GraphEdge is an immutable candidate edge: a (source, target, rule)
// triple, referencing a lexicon word ID, a lexicon word ID, and a rule ID
// respectively.
type GraphEdge struct {
	Source int
	Target int
	Rule   int
}

type sourceRuleKey struct {
	source, rule int
}

type sourceTargetKey struct {
	source, target int
}

// EdgeSet is an ID-indexed, immutable collection of candidate GraphEdges
// (RemoveEdges returns a filtered copy rather than mutating the set). Edge
// IDs are contiguous over [0, Len()).
type EdgeSet struct {
	edges        []GraphEdge
	byRule       map[int][]int
	bySourceRule map[sourceRuleKey]int
	byPair       map[sourceTargetKey][]int
	numWords     int
	numRules     int
}

// New builds an EdgeSet from edges, validating that every source/target is
// within [0, numWords) and every rule is within [0, numRules), that there
// are no self-loops, and that (source, rule) pairs are unique.
func New(edges []GraphEdge, numWords, numRules int) (*EdgeSet, error) {
	es := &EdgeSet{
		edges:        make([]GraphEdge, 0, len(edges)),
		byRule:       make(map[int][]int),
		bySourceRule: make(map[sourceRuleKey]int, len(edges)),
		byPair:       make(map[sourceTargetKey][]int),
		numWords:     numWords,
		numRules:     numRules,
	}
	for _, e := range edges {
		if e.Source < 0 || e.Source >= numWords || e.Target < 0 || e.Target >= numWords {
			return nil, ErrUnknownWord
		}
		if e.Rule < 0 || e.Rule >= numRules {
			return nil, ErrUnknownRule
		}
		if e.Source == e.Target {
			return nil, ErrSelfLoop
		}
		srKey := sourceRuleKey{e.Source, e.Rule}
		if _, exists := es.bySourceRule[srKey]; exists {
			return nil, ErrDuplicateEdge
		}
		id := len(es.edges)
		es.bySourceRule[srKey] = id
		es.edges = append(es.edges, e)
		es.byRule[e.Rule] = append(es.byRule[e.Rule], id)
		pairKey := sourceTargetKey{e.Source, e.Target}
		es.byPair[pairKey] = append(es.byPair[pairKey], id)
	}
	return es, nil
}

// Len returns the number of candidate edges.
func (es *EdgeSet) Len() int { return len(es.edges) }

// NumWords returns the size of the companion lexicon this edge set was
// built against, for callers (e.g. package modsel) that need to rebuild
// an EdgeSet via New after filtering by rule.
func (es *EdgeSet) NumWords() int { return es.numWords }

// Get returns the edge with the given ID.
func (es *EdgeSet) Get(id int) GraphEdge { return es.edges[id] }

// EdgeIDsByRule returns the edge IDs carrying the given rule, in insertion
// order. The returned slice aliases internal storage and must not be
// mutated.
func (es *EdgeSet) EdgeIDsByRule(ruleID int) []int { return es.byRule[ruleID] }

// AllEdgeIDsByRule returns a stable rule ID -> edge ID list mapping, used
// by the model suite's vectorized fits.
func (es *EdgeSet) AllEdgeIDsByRule() map[int][]int {
	out := make(map[int][]int, len(es.byRule))
	for r, ids := range es.byRule {
		out[r] = append([]int(nil), ids...)
	}
	return out
}

// EdgeIDsBetween returns the edge IDs from source to target (there may be
// more than one, one per rule that derives target from source).
func (es *EdgeSet) EdgeIDsBetween(source, target int) []int {
	return es.byPair[sourceTargetKey{source, target}]
}

// RandomEdgeID picks an edge ID uniformly at random using rng.
func (es *EdgeSet) RandomEdgeID(rng *rand.Rand) int {
	return rng.Intn(len(es.edges))
}

// RemoveEdges returns a new EdgeSet with the given edge IDs removed,
// preserving the relative order of surviving edges, along with a map from
// old ID to new ID for the edges that survived.
func (es *EdgeSet) RemoveEdges(removed map[int]bool) (*EdgeSet, map[int]int) {
	var kept []GraphEdge
	remap := make(map[int]int)
	for id, e := range es.edges {
		if removed[id] {
			continue
		}
		remap[id] = len(kept)
		kept = append(kept, e)
	}
	out, err := New(kept, es.numWords, es.numRules)
	if err != nil {
		// Removing edges from an already-valid set cannot reintroduce a
		// validation failure.
		panic(err)
	}
	return out, remap
}
