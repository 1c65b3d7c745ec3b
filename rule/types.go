package rule

import (
	"strings"

	"github.com/katalvlaran/morle/wordform"
)

// Subst is one "from:to" symbol substitution within a Rule.
type Subst struct {
	From []string
	To   []string
}

// TagSubst is the optional trailing tag substitution of a Rule.
type TagSubst struct {
	From []string
	To   []string
}

// Rule is an ordered list of symbol substitutions plus an optional tag
// substitution. Two Rules are equal iff their String() forms
// match; Rule itself is not comparable with == because it embeds slices,
// so callers needing equality or map keys should compare/key by String().
type Rule struct {
	Substs   []Subst
	TagSubst *TagSubst // nil if the rule has no tag substitution
}

// Parse parses a raw rule string into a Rule. It mirrors the reference
// grammar: substitutions separated by "/", with an optional "___tagsubst"
// suffix.
func Parse(s string) (Rule, error) {
	if s == "" {
		return Rule{}, ErrEmptyRule
	}

	if substs, ok := parseSubstList(s); ok {
		return Rule{Substs: substs}, nil
	}

	if idx := strings.LastIndex(s, wordform.TagSubSep); idx >= 0 {
		prefix, suffix := s[:idx], s[idx+len(wordform.TagSubSep):]
		substs, ok := parseSubstList(prefix)
		if !ok {
			return Rule{}, ErrMalformedRule
		}
		from, to, ok := wordform.ParseTagSubst(suffix)
		if !ok {
			return Rule{}, ErrMalformedRule
		}
		return Rule{Substs: substs, TagSubst: &TagSubst{From: from, To: to}}, nil
	}

	return Rule{}, ErrMalformedRule
}

func parseSubstList(s string) ([]Subst, bool) {
	if s == "" {
		return nil, false
	}
	parts := strings.Split(s, wordform.PartSep)
	substs := make([]Subst, 0, len(parts))
	for _, p := range parts {
		from, to, ok := wordform.ParseSubst(p)
		if !ok {
			return nil, false
		}
		substs = append(substs, Subst{From: from, To: to})
	}
	return substs, true
}

// String reassembles the raw rule string, the inverse of Parse.
func (r Rule) String() string {
	parts := make([]string, len(r.Substs))
	for i, sub := range r.Substs {
		parts[i] = wordform.JoinSubst(sub.From, sub.To)
	}
	s := strings.Join(parts, wordform.PartSep)
	if r.TagSubst != nil {
		s += wordform.TagSubSep + wordform.JoinTagSubst(r.TagSubst.From, r.TagSubst.To)
	}
	return s
}
