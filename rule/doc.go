// Package rule defines morphological rules: ordered symbol substitutions
// plus an optional tag substitution, and the RuleSet that assigns each
// distinct rule a stable ID and a domain-size bound.
//
// A Rule's string form round-trips through Parse/String exactly as the
// reference implementation's rule strings do: substitutions separated by
// "/", an optional "___tagsubst" suffix. Rules compare by structural
// equality, not by pointer identity, since the candidate graph and the
// sampler both rebuild Rule values from strings read off disk.
package rule
