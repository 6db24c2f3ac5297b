// Package cli provides the ddnsup command-line front end.
//
// It validates the positional address argument, collects the remaining
// credential fields either interactively or from piped key=value lines,
// establishes the encrypted connection, and runs the authenticated update.
// The protocol itself lives in internal/ddns; this package is input
// collection and wiring.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"net/netip"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/dmitrijs2005/ddnsup/internal/config"
	"github.com/dmitrijs2005/ddnsup/internal/ddns"
	"github.com/dmitrijs2005/ddnsup/internal/flagx"
	"github.com/dmitrijs2005/ddnsup/internal/logging"
	"github.com/dmitrijs2005/ddnsup/internal/netx"
	"github.com/dmitrijs2005/ddnsup/internal/shared"
	"github.com/dmitrijs2005/ddnsup/internal/verify"
)

const usageText = `Usage: ddnsup [options] IPV4

Submits a dynamic-IP update: authenticates against the update service, sends
the new address for a hostname, and closes the session. Credentials are read
interactively when stdin is a terminal, or from stdin as key=value lines
(user=..., pass=..., host=..., dom=...) when piped.

Options:
  -a string           address and port of the update service
  -t int              timeout in seconds (dial + session deadline)
  -c, -config string  path to a TOML config file
  -v                  echo raw wire traffic to stderr
  -verify             query DNS for the A record after the update
  -resolver string    DNS server (host:port) used with -verify
  -log-level string   debug|info|warn|error
  -log-format string  text|json
  -h, --help          print this help menu
`

// App runs one update end to end.
type App struct {
	cfg    *config.Config
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer // prompts and usage
	echo   io.Writer // wire echo target when verbose

	// Test seams.
	dial       func(endpoint string, timeout time.Duration) (net.Conn, error)
	isTerminal func(fd int) bool
	check      func(ctx context.Context, name string, want netip.Addr) (bool, []netip.Addr, error)
}

// NewApp builds an App bound to stdin/stdout/stderr and the real network.
func NewApp(cfg *config.Config, log logging.Logger) *App {
	checker := verify.New(cfg.Resolver, verify.WithLogger(log))
	return &App{
		cfg:        cfg,
		log:        log,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
		echo:       os.Stderr,
		dial:       netx.Dial,
		isTerminal: term.IsTerminal,
		check:      checker.Check,
	}
}

// Run executes one update with the given command-line arguments (without the
// program name) and returns the process exit code. Malformed arguments and
// -h print usage and exit cleanly; any unrecovered error exits non-zero.
func (a *App) Run(args []string) int {
	if flagx.HasHelp(args) {
		a.usage()
		return 0
	}

	positionals := flagx.Positionals(args, config.ValueFlags)
	if len(positionals) != 1 {
		a.usage()
		return 0
	}
	if addr, err := netip.ParseAddr(positionals[0]); err != nil || !addr.Is4() {
		a.usage()
		return 0
	}

	user, pass, host, dom, err := a.collect()
	if err != nil {
		a.log.Error("reading input", "error", err)
		return 1
	}

	info, err := ddns.NewCredentials(user, pass, host, dom, positionals[0])
	if err != nil {
		a.log.Error("building credentials", "error", err)
		return 1
	}

	log := a.log.With("op", uuid.NewString())

	conn, err := a.dial(a.cfg.Endpoint, a.cfg.Timeout)
	if err != nil {
		log.Error("connecting", "endpoint", a.cfg.Endpoint, "error", err)
		return 1
	}
	defer conn.Close()
	log.Debug("connected", "endpoint", a.cfg.Endpoint)

	opts := []ddns.Option{ddns.WithLogger(log)}
	if a.cfg.Verbose {
		opts = append(opts, ddns.WithEcho(a.echo))
	}
	client := ddns.NewClient(conn, opts...)

	if err := client.RunUpdate(info); err != nil {
		log.Error("update failed", "fqdn", info.Fqdn(), "error", err)
		return 1
	}
	log.Info("update confirmed", "fqdn", info.Fqdn(), "addr", info.Addr.String())

	if a.cfg.Verify {
		a.verifyUpdate(log, info)
	}
	return 0
}

// collect gathers the credential fields: interactive prompts on a terminal,
// piped key=value lines otherwise.
func (a *App) collect() (user, pass, host, dom string, err error) {
	if !a.isTerminal(int(os.Stdin.Fd())) {
		fields := ParseAssignments(a.reader)
		return fields.User, fields.Pass, fields.Host, fields.Dom, nil
	}

	if user, err = GetSimpleText(a.reader, "USERID", a.out); err != nil {
		return "", "", "", "", err
	}
	pw, err := GetPassword(a.out)
	if err != nil {
		return "", "", "", "", err
	}
	defer shared.WipeByteArray(pw)
	pass = string(pw)

	if host, err = GetSimpleText(a.reader, "HOSTNAME", a.out); err != nil {
		return "", "", "", "", err
	}
	if dom, err = GetSimpleText(a.reader, "DOMNAME", a.out); err != nil {
		return "", "", "", "", err
	}
	return user, pass, host, dom, nil
}

// verifyUpdate reports whether the A record already resolves to the new
// address. Informational only: resolvers lag behind a fresh update, so a
// mismatch never fails the run.
func (a *App) verifyUpdate(log logging.Logger, info *ddns.Credentials) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	match, addrs, err := a.check(ctx, info.Fqdn(), info.Addr)
	if err != nil {
		log.Warn("verification query failed", "fqdn", info.Fqdn(), "error", err)
		return
	}
	if match {
		log.Info("record verified", "fqdn", info.Fqdn(), "addr", info.Addr.String())
		return
	}
	log.Warn("record not visible yet, propagation may take a while",
		"fqdn", info.Fqdn(), "want", info.Addr.String(), "got", fmt.Sprint(addrs))
}

func (a *App) usage() {
	fmt.Fprint(a.out, usageText)
}
