// Package config assembles the CLI configuration from defaults, an
// optional irlight.yaml, IRLIGHT_ environment variables, and flags.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds the loaded CLI configuration.
type Config struct {
	// Output selects the report format: text or json.
	Output string `koanf:"output"`
	// Verbose surfaces engine diagnostics on stderr.
	Verbose bool `koanf:"verbose"`
}

// configFileUsed tracks the file the last Load consumed.
var configFileUsed string

// findConfigFile finds the config file to use.
// Priority: explicit path > irlight.yaml > irlight.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"irlight.yaml", "irlight.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load assembles the configuration. Later layers win: defaults, then
// the config file, then the environment, then flags the user set.
func Load(explicitFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		"output":  "text",
		"verbose": false,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	configFileUsed = findConfigFile(explicitFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", configFileUsed, err)
		}
	}

	if err := k.Load(env.Provider("IRLIGHT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "IRLIGHT_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// FileUsed returns the config file the last Load consumed, if any.
func FileUsed() string { return configFileUsed }
