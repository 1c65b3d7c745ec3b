// Package edgeset holds the fixed candidate graph the sampler explores:
// immutable (source, target, rule) triples, ID-indexed and grouped by
// rule for the vectorized model fits in package model.
package edgeset
