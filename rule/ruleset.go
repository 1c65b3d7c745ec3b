package rule

// RuleSet is an ID-indexed, deduplicated collection of Rules. IDs are
// contiguous over [0, Len()) in insertion order and stable once assigned,
// mirroring lexicon.Lexicon's ID-stability contract.
type RuleSet struct {
	rules    []Rule
	domsizes []int
	idByKey  map[string]int
}

// NewRuleSet builds a RuleSet from rules and their parallel domain sizes.
// Domain sizes must be non-negative; duplicate rule strings are rejected.
func NewRuleSet(rules []Rule, domsizes []int) (*RuleSet, error) {
	if len(rules) != len(domsizes) {
		panic("rule: rules and domsizes length mismatch")
	}
	rs := &RuleSet{
		rules:    make([]Rule, 0, len(rules)),
		domsizes: make([]int, 0, len(rules)),
		idByKey:  make(map[string]int, len(rules)),
	}
	for i, r := range rules {
		if domsizes[i] < 0 {
			return nil, ErrNegativeDomSize
		}
		key := r.String()
		if _, exists := rs.idByKey[key]; exists {
			return nil, ErrDuplicateRule
		}
		rs.idByKey[key] = len(rs.rules)
		rs.rules = append(rs.rules, r)
		rs.domsizes = append(rs.domsizes, domsizes[i])
	}
	return rs, nil
}

// Len returns the number of rules in the set.
func (rs *RuleSet) Len() int { return len(rs.rules) }

// Get returns the rule with the given ID.
func (rs *RuleSet) Get(id int) Rule { return rs.rules[id] }

// DomSize returns the domain size of the rule with the given ID.
func (rs *RuleSet) DomSize(id int) int { return rs.domsizes[id] }

// GetID returns the stable ID of r, or ErrRuleNotFound if r is not a
// member of this set.
func (rs *RuleSet) GetID(r Rule) (int, error) {
	id, ok := rs.idByKey[r.String()]
	if !ok {
		return 0, ErrRuleNotFound
	}
	return id, nil
}

// Rules returns the set's rules in ID order. The returned slice aliases
// internal storage and must not be mutated.
func (rs *RuleSet) Rules() []Rule { return rs.rules }

// Filter returns a new RuleSet containing only the rules whose ID is not
// in excluded, preserving relative order. It also returns a map from old
// ID to new ID for IDs that survived, so callers can remap references
// held elsewhere (e.g. edgeset.EdgeSet).
func (rs *RuleSet) Filter(excluded map[int]bool) (*RuleSet, map[int]int) {
	var rules []Rule
	var domsizes []int
	remap := make(map[int]int)
	for id, r := range rs.rules {
		if excluded[id] {
			continue
		}
		remap[id] = len(rules)
		rules = append(rules, r)
		domsizes = append(domsizes, rs.domsizes[id])
	}
	out, err := NewRuleSet(rules, domsizes)
	if err != nil {
		// Filtering a valid set can never reintroduce a duplicate or a
		// negative domain size; this would indicate rs was already
		// corrupt, which NewRuleSet's caller already guards against.
		panic(err)
	}
	return out, remap
}
