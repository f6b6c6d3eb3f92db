package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/goldpath/goldpath/pkg/format"
)

// configFileName is the config file looked up in the working directory
// when --config is not given.
const configFileName = ".goldpath.toml"

// Config holds settings shared by all commands. Flags override config
// file values.
type Config struct {
	// DefaultGapLength substitutes for TPF gap rows that state no length.
	DefaultGapLength int64 `toml:"default_gap_length"`

	// StrictTags makes unrecognized AGP tags a parse error instead of a
	// warning.
	StrictTags bool `toml:"strict_tags"`
}

// loadConfig reads a TOML config file. An empty path means the default
// lookup: .goldpath.toml in the working directory, silently skipped
// when absent. An explicit path that cannot be read is an error.
func loadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = configFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// formatOptions merges the config with command-line overrides into
// parser options.
func (c Config) formatOptions(strictTags bool) format.Options {
	return format.Options{
		StrictTags:       c.StrictTags || strictTags,
		DefaultGapLength: c.DefaultGapLength,
	}
}
