// Package corpus writes the sampling run's output TSVs: per-edge,
// per-rule, per-iteration, and per-word-pair statistic dumps. Reading and
// writing the core input/output shapes (wordlist, rules, graph, and the
// fitted model files) already lives next to the types that own them
// (lexicon.Load/Save, rule.Load/Save, edgeset.Load/Save,
// model.Bernoulli.Save/model.LoadLogNormal); this package covers only the
// four stat-dump file kinds, which have no natural owning type of their
// own.
package corpus
