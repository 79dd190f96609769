// Package config layers CLI configuration from defaults, an optional config
// file, environment variables and command-line flags.
package config

import (
	"io/fs"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const (
	// DefaultConfigFile is read from the working directory when present.
	DefaultConfigFile = "wudgraph.toml"

	// EnvPrefix prefixes environment overrides, e.g. WUDGRAPH_TRACE=true.
	EnvPrefix = "WUDGRAPH_"
)

// Config holds all configuration for the CLI.
type Config struct {
	File      string `koanf:"file"`
	Trace     bool   `koanf:"trace"`
	Connected bool   `koanf:"connected"`
	Verbose   bool   `koanf:"verbose"`
	JSON      bool   `koanf:"json"`
}

// Load reads DefaultConfigFile and the process environment, then applies f.
// Priority: Flags > Env > Config File > Defaults
func Load(f *pflag.FlagSet) (*Config, error) {
	return LoadFrom(f, DefaultConfigFile)
}

// LoadFrom is Load with an explicit config file path. A missing file is
// ignored; an unreadable or malformed one is an error.
func LoadFrom(f *pflag.FlagSet, configFile string) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	defaults := map[string]interface{}{
		"file":      "graph.toml",
		"trace":     false,
		"connected": false,
		"verbose":   false,
		"json":      false,
	}
	if err := k.Load(makeMapProvider(defaults), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	// 2. Config file (optional): only a missing file is skipped
	if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, "failed to load config file %s", configFile)
	}

	// 3. Environment variables
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	// 4. Flags
	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, errors.Wrap(err, "failed to load flags")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}

// mapProvider feeds a plain map into koanf.
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("not implemented")
}
