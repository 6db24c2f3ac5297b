package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/ddnsup/internal/flagx"
)

// ValueFlags and BoolFlags name every flag the config layer owns, in the two
// shapes flagx distinguishes. The CLI uses the same lists to locate the
// positional address argument.
var (
	ValueFlags = []string{"-a", "-t", "-c", "-config", "-resolver", "-log-level", "-log-format"}
	BoolFlags  = []string{"-v", "-verify"}
)

// ownFlags is the subset of ValueFlags this FlagSet defines itself; the
// config file path flags are handled earlier by parseFile.
var ownFlags = []string{"-a", "-t", "-resolver", "-log-level", "-log-format"}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string          address and port of the update service
//	-t int             timeout in seconds (dial + session deadline)
//	-v                 echo raw wire traffic to stderr
//	-verify            query DNS for the A record after the update
//	-resolver string   DNS server (host:port) used with -verify
//	-log-level string  debug|info|warn|error
//	-log-format string text|json
//
// The function filters os.Args down to the flags it owns via
// flagx.FilterArgs, so the positional address and -h pass through untouched.
func parseFlags(cfg *Config) error {
	args := flagx.FilterArgs(os.Args[1:], ownFlags, BoolFlags)

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Endpoint, "a", cfg.Endpoint, "address and port of the update service")
	timeout := fs.Int("t", int(cfg.Timeout.Seconds()), "timeout in seconds")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "echo wire traffic to stderr")
	fs.BoolVar(&cfg.Verify, "verify", cfg.Verify, "query DNS for the A record after the update")
	fs.StringVar(&cfg.Resolver, "resolver", cfg.Resolver, "DNS server (host:port) used with -verify")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug|info|warn|error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text|json")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}
	cfg.Timeout = secondsToDuration(*timeout)
	return nil
}

func secondsToDuration(s int) time.Duration {
	return time.Duration(s) * time.Second
}
