package morleconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/morle/morleconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "morle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeYAML(t, "files:\n  wordlist: wordlist.tsv\n")
	cfg, err := morleconfig.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Modsel.Iterations)
	assert.Equal(t, 1000, cfg.Modsel.WarmupIterations)
	assert.Equal(t, 10000, cfg.Modsel.SamplingIterations)
	assert.True(t, cfg.Sample.AcceptanceRate)
	assert.False(t, cfg.General.Supervised)
	assert.InDelta(t, 1.1, cfg.Prior.BetaAlpha, 1e-9)
	assert.Equal(t, "rules-modsel", cfg.Files.RulesOut)
	assert.Equal(t, "wordlist.tsv", cfg.Files.Wordlist)
}

func TestLoadOverridesFromFile(t *testing.T) {
	path := writeYAML(t, `
modsel:
  iterations: 3
general:
  supervised: true
prior:
  variance_floor: 0.01
`)
	cfg, err := morleconfig.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Modsel.Iterations)
	assert.True(t, cfg.General.Supervised)
	assert.InDelta(t, 0.01, cfg.Prior.VarianceFloor, 1e-9)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeYAML(t, "modsel:\n  iterations: 3\n")
	t.Setenv("MORLE_MODSEL_ITERATIONS", "7")

	cfg, err := morleconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Modsel.Iterations)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := morleconfig.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
