package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/wudgraph/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.StringP("file", "f", "graph.toml", "")
	f.Bool("trace", false, "")
	f.Bool("connected", false, "")
	f.BoolP("verbose", "v", false, "")
	f.Bool("json", false, "")

	return f
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.LoadFrom(nil, filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, &config.Config{File: "graph.toml"}, cfg)
}

func TestLoad_Layering(t *testing.T) {
	path := writeConfig(t, "file = \"from-file.toml\"\ntrace = true\nverbose = true\n")

	t.Run("file", func(t *testing.T) {
		cfg, err := config.LoadFrom(newFlags(), path)
		require.NoError(t, err)
		assert.Equal(t, "from-file.toml", cfg.File)
		assert.True(t, cfg.Trace)
		assert.True(t, cfg.Verbose)
		assert.False(t, cfg.Connected)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("WUDGRAPH_FILE", "from-env.yaml")
		t.Setenv("WUDGRAPH_CONNECTED", "true")

		cfg, err := config.LoadFrom(newFlags(), path)
		require.NoError(t, err)
		assert.Equal(t, "from-env.yaml", cfg.File)
		assert.True(t, cfg.Connected)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Setenv("WUDGRAPH_FILE", "from-env.yaml")

		f := newFlags()
		require.NoError(t, f.Parse([]string{"--file", "from-flag.toml", "--json", "--trace=false"}))

		cfg, err := config.LoadFrom(f, path)
		require.NoError(t, err)
		assert.Equal(t, "from-flag.toml", cfg.File)
		assert.True(t, cfg.JSON)
		assert.False(t, cfg.Trace)
		assert.True(t, cfg.Verbose)
	})
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "file = [unterminated\ntrace = true\n")

	cfg, err := config.LoadFrom(nil, path)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), path)
}
