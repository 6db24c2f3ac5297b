// Package config handles configuration for the ddnsup CLI, including
// defaults, a TOML file overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the ddnsup CLI.
//
// Fields:
//   - Endpoint: host:port of the update service (TLS).
//   - Timeout: dial timeout and absolute session deadline.
//   - Verbose: echo raw wire traffic to stderr.
//   - LogLevel / LogFormat: structured-log settings ("text" or "json").
//   - Verify / Resolver: optional DNS check of the A record after a
//     successful update, against the given resolver (host:port).
type Config struct {
	Endpoint  string
	Timeout   time.Duration
	Verbose   bool
	LogLevel  string
	LogFormat string
	Verify    bool
	Resolver  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Endpoint = "ddnsclient.onamae.com:65010"
	c.Timeout = 60 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.Resolver = "1.1.1.1:53"
}

// Load constructs a Config, applies defaults, then overlays values from a
// TOML file (if one was named with -c/-config) and command-line flags.
// Later sources take precedence over earlier ones.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
