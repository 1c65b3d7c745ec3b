// Package modsel implements the soft-EM outer loop and the rule selector
// that runs between its iterations: construct a sampler over the current
// edge/rule set, sample, refit the model suite from the edge marginals,
// then delete any rule whose expected contribution is no longer worth
// its cost, shrinking the candidate edge set for the next iteration.
package modsel
