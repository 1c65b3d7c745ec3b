package rule

import "errors"

// ErrMalformedRule indicates a rule string did not match the substitution
// grammar (see wordform.ParseSubst/ParseTagSubst).
var ErrMalformedRule = errors.New("rule: malformed rule string")

// ErrEmptyRule indicates a rule string had no substitutions at all.
var ErrEmptyRule = errors.New("rule: no substitutions")

// ErrNegativeDomSize indicates a rule's domain size field was negative.
var ErrNegativeDomSize = errors.New("rule: negative domain size")

// ErrDuplicateRule indicates the same rule string appeared twice while
// building a RuleSet.
var ErrDuplicateRule = errors.New("rule: duplicate rule")

// ErrRuleNotFound indicates a lookup by rule or by ID found nothing.
var ErrRuleNotFound = errors.New("rule: rule not found")
