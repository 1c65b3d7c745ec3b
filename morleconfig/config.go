// Package morleconfig loads the configuration table spec.md §6 lists:
// outer-loop iteration counts, per-statistic enable flags, the supervised
// mode switch, and the Bernoulli/Gaussian prior hyperparameters, plus the
// input/output filenames a run reads and writes. Values load from a file
// (INI, YAML, TOML, or JSON, detected by extension) via viper, with
// MORLE_-prefixed environment variables overriding any key, mirroring
// shared.config/shared.filenames/shared.options.
package morleconfig

import (
	"strings"

	"github.com/spf13/viper"
)

// Modsel holds the soft-EM outer-loop sizing: modsel.iterations,
// modsel.warmup_iterations, modsel.sampling_iterations.
type Modsel struct {
	Iterations         int `mapstructure:"iterations"`
	WarmupIterations   int `mapstructure:"warmup_iterations"`
	SamplingIterations int `mapstructure:"sampling_iterations"`
}

// StatFlags holds the sample.stat_* statistic flags. cmd/morle does not
// read them: modsel.Driver always registers acc_rate, exp_cost, edge_freq
// and rule_contrib, and registers no other statistic, whatever the flags say.
type StatFlags struct {
	AcceptanceRate           bool `mapstructure:"stat_acceptance_rate"`
	ExpectedCost             bool `mapstructure:"stat_expected_cost"`
	EdgeFrequency            bool `mapstructure:"stat_edge_frequency"`
	RuleFrequency            bool `mapstructure:"stat_rule_frequency"`
	RuleExpectedContribution bool `mapstructure:"stat_rule_expected_contribution"`
	UndirectedEdgeFrequency  bool `mapstructure:"stat_undirected_edge_frequency"`
	IterStatInterval         int  `mapstructure:"iter_stat_interval"`
}

// General holds the top-level run mode switch: General.supervised.
type General struct {
	Supervised     bool `mapstructure:"supervised"`
	SemiSupervised bool `mapstructure:"semi_supervised"`
}

// Prior holds the Bernoulli Beta prior and the Gaussian variance floor,
// both listed in spec.md §6's configuration table.
type Prior struct {
	BetaAlpha     float64 `mapstructure:"beta_alpha"`
	BetaBeta      float64 `mapstructure:"beta_beta"`
	VarianceFloor float64 `mapstructure:"variance_floor"`
}

// Files names every input and output path a run touches. The supervised
// pair and ensured-connection files are read only when General.Supervised
// or General.SemiSupervised is set, and must then name an existing file.
type Files struct {
	Wordlist        string `mapstructure:"wordlist"`
	Rules           string `mapstructure:"rules"`
	Graph           string `mapstructure:"graph"`
	SupervisedPairs string `mapstructure:"supervised_pairs"`
	Ensured         string `mapstructure:"ensured"`

	RulesOut         string `mapstructure:"rules_out"`
	GraphOut         string `mapstructure:"graph_out"`
	EdgeStatsOut     string `mapstructure:"edge_stats_out"`
	RuleStatsOut     string `mapstructure:"rule_stats_out"`
	WordPairStatsOut string `mapstructure:"wordpair_stats_out"`
	IterStatsOut     string `mapstructure:"iter_stats_out"`
	ApplModelOut     string `mapstructure:"appl_model_out"`
	FreqModelOut     string `mapstructure:"freq_model_out"`
}

// Config is the full, Viper-backed configuration tree.
type Config struct {
	Modsel  Modsel    `mapstructure:"modsel"`
	Sample  StatFlags `mapstructure:"sample"`
	General General   `mapstructure:"general"`
	Prior   Prior     `mapstructure:"prior"`
	Seed    int64     `mapstructure:"seed"`
	Files   Files     `mapstructure:"files"`
}

// defaults mirror the original's shared.config defaults: a conservative
// iteration count, every stat on except the undirected edge frequency,
// unsupervised, and the model package's
// own default prior.
func defaults(v *viper.Viper) {
	v.SetDefault("modsel.iterations", 10)
	v.SetDefault("modsel.warmup_iterations", 1000)
	v.SetDefault("modsel.sampling_iterations", 10000)

	v.SetDefault("sample.stat_acceptance_rate", true)
	v.SetDefault("sample.stat_expected_cost", true)
	v.SetDefault("sample.stat_edge_frequency", true)
	v.SetDefault("sample.stat_rule_frequency", true)
	v.SetDefault("sample.stat_rule_expected_contribution", true)
	v.SetDefault("sample.stat_undirected_edge_frequency", false)
	v.SetDefault("sample.iter_stat_interval", 100)

	v.SetDefault("general.supervised", false)
	v.SetDefault("general.semi_supervised", false)

	v.SetDefault("prior.beta_alpha", 1.1)
	v.SetDefault("prior.beta_beta", 1.1)
	v.SetDefault("prior.variance_floor", 0.001)

	v.SetDefault("seed", 1)

	v.SetDefault("files.rules_out", "rules-modsel")
	v.SetDefault("files.graph_out", "graph-modsel")
	v.SetDefault("files.edge_stats_out", "sample-edge-stats")
	v.SetDefault("files.rule_stats_out", "sample-rule-stats")
	v.SetDefault("files.wordpair_stats_out", "sample-wordpair-stats")
	v.SetDefault("files.iter_stats_out", "sample-iter-stats")
	v.SetDefault("files.appl_model_out", "model-appl")
	v.SetDefault("files.freq_model_out", "model-freq")
}

// Load reads path (any format viper's codecs recognize from the
// extension) into a Config, applying defaults first and MORLE_*
// environment overrides last, so an override always wins over both the
// file and the built-in default.
func Load(path string) (*Config, error) {
	v := viper.New()
	defaults(v)

	v.SetEnvPrefix("MORLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
