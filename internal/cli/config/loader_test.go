package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("root", "", "")
	flags.String("output", "", "")
	flags.Bool("verbose", false, "")
	return flags
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Cleanup(ResetConfig)
	dir := t.TempDir()

	flags := newFlags()
	require.NoError(t, flags.Set("root", dir))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Root)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultToolTimeoutSecs, cfg.ToolTimeoutSecs)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.SkipBuild)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Cleanup(ResetConfig)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shipcheck.yaml"), []byte(
		"output: markdown\ntool_timeout: 60\ndisable:\n  - BD01\n  - BD02\n"), 0o644))

	flags := newFlags()
	require.NoError(t, flags.Set("root", dir))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.OutputFormat)
	assert.Equal(t, 60, cfg.ToolTimeoutSecs)
	assert.Equal(t, []string{"BD01", "BD02"}, cfg.Disable)
	assert.Equal(t, filepath.Join(dir, "shipcheck.yaml"), GetConfigFileUsed())
	assert.Equal(t, cfg, GetCurrentConfig())
}

func TestLoadConfigPrecedence(t *testing.T) {
	t.Cleanup(ResetConfig)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shipcheck.yaml"), []byte("output: markdown\n"), 0o644))

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("SHIPCHECK_OUTPUT", "json")
		flags := newFlags()
		require.NoError(t, flags.Set("root", dir))

		cfg, err := LoadConfig("", flags)
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.OutputFormat)
	})

	t.Run("comma-separated env list splits", func(t *testing.T) {
		t.Setenv("SHIPCHECK_DISABLE", "BD01,BD02")
		flags := newFlags()
		require.NoError(t, flags.Set("root", dir))

		cfg, err := LoadConfig("", flags)
		require.NoError(t, err)
		assert.Equal(t, []string{"BD01", "BD02"}, cfg.Disable)
	})

	t.Run("flag overrides env and file", func(t *testing.T) {
		t.Setenv("SHIPCHECK_OUTPUT", "json")
		flags := newFlags()
		require.NoError(t, flags.Set("root", dir))
		require.NoError(t, flags.Set("output", "text"))

		cfg, err := LoadConfig("", flags)
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.OutputFormat)
	})
}

func TestLoadConfigExplicitFile(t *testing.T) {
	t.Cleanup(ResetConfig)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "shipcheck.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("verbose: true\n"), 0o644))

	cfg, err := LoadConfig(cfgPath, newFlags())
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	// The config file's directory becomes the project root.
	assert.Equal(t, dir, cfg.Root)
}

func TestFindProjectRootUpward(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "shipcheck.yaml"), []byte("{}\n"), 0o644))
	nested := filepath.Join(root, "src", "components", "Settings")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	assert.Equal(t, root, findProjectRootUpward(nested))
	assert.Equal(t, "", findProjectRootUpward(t.TempDir()))
}
