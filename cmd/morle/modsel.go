package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/morle/corpus"
	"github.com/katalvlaran/morle/edgeset"
	"github.com/katalvlaran/morle/lexicon"
	"github.com/katalvlaran/morle/mcmc"
	"github.com/katalvlaran/morle/model"
	"github.com/katalvlaran/morle/modsel"
	"github.com/katalvlaran/morle/morleconfig"
	"github.com/katalvlaran/morle/morlelog"
	"github.com/katalvlaran/morle/rngutil"
	"github.com/katalvlaran/morle/rule"
	"github.com/katalvlaran/morle/stats"
	"github.com/spf13/cobra"
)

func newModselCmd() *cobra.Command {
	parent := &cobra.Command{
		Use:   "modsel",
		Short: "Soft-EM model fitting and rule selection",
	}
	parent.AddCommand(newModselRunCmd())
	return parent
}

func newModselRunCmd() *cobra.Command {
	var configPath, workdir, logLevel string
	var jsonLogs bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the soft-EM rule and branching inference loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModsel(configPath, workdir, logLevel, jsonLogs)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to the configuration file (required)")
	cmd.Flags().StringVar(&workdir, "workdir", ".", "directory input files are read from and output files written to")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "logrus level: debug, info, warn, error")
	cmd.Flags().BoolVar(&jsonLogs, "json-logs", false, "emit structured JSON logs instead of text")
	cmd.MarkFlagRequired("config")
	return cmd
}

func runModsel(configPath, workdir, logLevel string, jsonLogs bool) error {
	log, err := morlelog.Setup(logLevel, jsonLogs)
	if err != nil {
		return fmt.Errorf("logging setup: %w", err)
	}

	cfg, err := morleconfig.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	lx, rs, es, err := loadInputs(workdir, cfg)
	if err != nil {
		return fmt.Errorf("loading inputs: %w", err)
	}
	log.WithField("words", lx.Len()).WithField("rules", rs.Len()).WithField("edges", es.Len()).Info("inputs loaded")

	suite := model.NewSuite(model.ZipfRootCoster{}, rs, cfg.Prior.BetaAlpha, cfg.Prior.BetaBeta)
	suite.Freq.SetVarianceFloor(cfg.Prior.VarianceFloor)
	if err := suite.Initialize(es, lx); err != nil {
		return fmt.Errorf("initializing model: %w", err)
	}

	driver := modsel.NewDriver(lx, rs, es, suite, modsel.Config{
		OuterIterations: cfg.Modsel.Iterations,
		WarmupIter:      cfg.Modsel.WarmupIterations,
		SamplingIter:    cfg.Modsel.SamplingIterations,
	}, rngutil.New(cfg.Seed), log)

	if cfg.General.Supervised {
		pairs, err := loadPairsFile(workdir, cfg.Files.SupervisedPairs, lx)
		if err != nil {
			return fmt.Errorf("loading supervised pairs: %w", err)
		}
		driver.Supervised = true
		driver.Pairs = pairs
	}
	if cfg.General.SemiSupervised {
		ensured, err := loadEnsuredFile(workdir, cfg.Files.Ensured, lx)
		if err != nil {
			return fmt.Errorf("loading ensured connections: %w", err)
		}
		driver.SemiSupervised = true
		driver.Ensured = ensured
	}

	driver.OnOuterIteration = func(iter int, rs *rule.RuleSet, es *edgeset.EdgeSet) error {
		return writeCheckpoint(workdir, cfg, rs, es, lx)
	}
	driver.OnSamplerDone = func(iter int, sampler *mcmc.Sampler, es *edgeset.EdgeSet) error {
		if iter != cfg.Modsel.Iterations-1 {
			return nil
		}
		return writeStatDumps(workdir, cfg, sampler, es, lx, rs)
	}

	result, err := driver.Run()
	if err != nil {
		return err
	}

	if err := saveModel(workdir, cfg.Files.ApplModelOut, suite.Appl.Save); err != nil {
		return fmt.Errorf("writing application model: %w", err)
	}
	if err := saveModel(workdir, cfg.Files.FreqModelOut, suite.Freq.Save); err != nil {
		return fmt.Errorf("writing frequency model: %w", err)
	}

	log.WithField("surviving_rules", result.Rules.Len()).WithField("surviving_edges", result.Edges.Len()).Info("run complete")
	return nil
}

func loadInputs(workdir string, cfg *morleconfig.Config) (*lexicon.Lexicon, *rule.RuleSet, *edgeset.EdgeSet, error) {
	wordlistFile, err := os.Open(path(workdir, cfg.Files.Wordlist))
	if err != nil {
		return nil, nil, nil, err
	}
	defer wordlistFile.Close()
	lx, err := lexicon.Load(wordlistFile)
	if err != nil {
		return nil, nil, nil, err
	}

	rulesFile, err := os.Open(path(workdir, cfg.Files.Rules))
	if err != nil {
		return nil, nil, nil, err
	}
	defer rulesFile.Close()
	rs, err := rule.Load(rulesFile)
	if err != nil {
		return nil, nil, nil, err
	}

	graphFile, err := os.Open(path(workdir, cfg.Files.Graph))
	if err != nil {
		return nil, nil, nil, err
	}
	defer graphFile.Close()
	es, err := edgeset.Load(graphFile, lx, rs)
	if err != nil {
		return nil, nil, nil, err
	}

	return lx, rs, es, nil
}

func loadPairsFile(workdir, name string, lx *lexicon.Lexicon) ([]mcmc.WordPair, error) {
	f, err := os.Open(path(workdir, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return loadWordPairs(f, lx)
}

func loadEnsuredFile(workdir, name string, lx *lexicon.Lexicon) (map[mcmc.Connection]bool, error) {
	f, err := os.Open(path(workdir, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return loadEnsuredConnections(f, lx)
}

func writeCheckpoint(workdir string, cfg *morleconfig.Config, rs *rule.RuleSet, es *edgeset.EdgeSet, lx *lexicon.Lexicon) error {
	rulesOut, err := os.Create(path(workdir, cfg.Files.RulesOut))
	if err != nil {
		return fmt.Errorf("creating rules checkpoint: %w", err)
	}
	defer rulesOut.Close()
	if err := rule.Save(rulesOut, rs); err != nil {
		return fmt.Errorf("writing rules checkpoint: %w", err)
	}

	graphOut, err := os.Create(path(workdir, cfg.Files.GraphOut))
	if err != nil {
		return fmt.Errorf("creating graph checkpoint: %w", err)
	}
	defer graphOut.Close()
	if err := edgeset.Save(graphOut, es, lx, rs); err != nil {
		return fmt.Errorf("writing graph checkpoint: %w", err)
	}
	return nil
}

func saveModel(workdir, name string, save func(io.Writer) error) error {
	f, err := os.Create(path(workdir, name))
	if err != nil {
		return err
	}
	defer f.Close()
	return save(f)
}

// writeStatDumps writes the three per-candidate stat TSVs over the final
// outer iteration's sampler. Only the statistics the driver itself keeps
// for rule selection (acc_rate, exp_cost, edge_freq, rule_contrib) are
// available here; cfg.Sample's remaining flags (stat_rule_frequency,
// stat_undirected_edge_frequency, iter_stat_interval) select additional statistics
// a direct Driver.Run caller could register before Run via a lower-level
// Sampler, but the CLI's single Driver.Run call does not expose that
// extension point today.
func writeStatDumps(workdir string, cfg *morleconfig.Config, sampler *mcmc.Sampler, es *edgeset.EdgeSet, lx *lexicon.Lexicon, rs *rule.RuleSet) error {
	reg := stats.NewRegistry(sampler)

	edgeStatsOut, err := os.Create(path(workdir, cfg.Files.EdgeStatsOut))
	if err != nil {
		return err
	}
	defer edgeStatsOut.Close()
	if err := corpus.WriteEdgeStats(edgeStatsOut, es, lx, rs, reg); err != nil {
		return err
	}

	ruleStatsOut, err := os.Create(path(workdir, cfg.Files.RuleStatsOut))
	if err != nil {
		return err
	}
	defer ruleStatsOut.Close()
	if err := corpus.WriteRuleStats(ruleStatsOut, rs, reg); err != nil {
		return err
	}

	wordPairStatsOut, err := os.Create(path(workdir, cfg.Files.WordPairStatsOut))
	if err != nil {
		return err
	}
	defer wordPairStatsOut.Close()
	return corpus.WriteWordPairStats(wordPairStatsOut, lx, sampler.WordPairIndex(), reg)
}

func path(workdir, name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(workdir, name)
}
