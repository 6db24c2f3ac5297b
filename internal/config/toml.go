package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/dmitrijs2005/ddnsup/internal/flagx"
)

// fileConfig is a DTO used exclusively for TOML decoding. It is pre-filled
// from the runtime Config so that keys absent from the file keep their
// current values.
type fileConfig struct {
	Endpoint       string `toml:"endpoint"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	Verbose        bool   `toml:"verbose"`
	LogLevel       string `toml:"log_level"`
	LogFormat      string `toml:"log_format"`
	Verify         bool   `toml:"verify"`
	Resolver       string `toml:"resolver"`
}

// parseFile overlays cfg with values from the TOML file named by the
// -c/-config flag. When no file was named, cfg is left untouched.
func parseFile(cfg *Config) error {
	path := flagx.ConfigFileFlags()
	if path == "" {
		return nil
	}

	fc := fileConfig{
		Endpoint:       cfg.Endpoint,
		TimeoutSeconds: int(cfg.Timeout.Seconds()),
		Verbose:        cfg.Verbose,
		LogLevel:       cfg.LogLevel,
		LogFormat:      cfg.LogFormat,
		Verify:         cfg.Verify,
		Resolver:       cfg.Resolver,
	}
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg.Endpoint = fc.Endpoint
	cfg.Timeout = secondsToDuration(fc.TimeoutSeconds)
	cfg.Verbose = fc.Verbose
	cfg.LogLevel = fc.LogLevel
	cfg.LogFormat = fc.LogFormat
	cfg.Verify = fc.Verify
	cfg.Resolver = fc.Resolver
	return nil
}
