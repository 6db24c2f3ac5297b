// Package verify checks whether a DNS A record already reflects a freshly
// submitted dynamic-IP update. The check is informational: public resolvers
// lag behind an update by design, so a mismatch is not a failure of the
// update itself.
package verify

import (
	"context"
	"fmt"
	"net/netip"
	"time"

	"github.com/miekg/dns"

	"github.com/dmitrijs2005/ddnsup/internal/logging"
)

// Exchanger performs one DNS query against a server. *dns.Client satisfies
// it; tests substitute a fake.
type Exchanger interface {
	ExchangeContext(ctx context.Context, m *dns.Msg, addr string) (*dns.Msg, time.Duration, error)
}

// Checker resolves A records against a fixed resolver.
type Checker struct {
	server   string
	exchange Exchanger
	log      logging.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithExchanger sets a custom query transport.
func WithExchanger(e Exchanger) Option {
	return func(c *Checker) {
		if e != nil {
			c.exchange = e
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(log logging.Logger) Option {
	return func(c *Checker) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a Checker querying server (host:port).
func New(server string, opts ...Option) *Checker {
	c := &Checker{
		server:   server,
		exchange: &dns.Client{Timeout: 5 * time.Second},
		log:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check queries the A records for name and reports whether any of them
// matches want. The addresses seen are returned for reporting.
func (c *Checker) Check(ctx context.Context, name string, want netip.Addr) (bool, []netip.Addr, error) {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(name), dns.TypeA)
	m.RecursionDesired = true

	c.log.Debug("querying A record", "name", name, "server", c.server)

	resp, rtt, err := c.exchange.ExchangeContext(ctx, m, c.server)
	if err != nil {
		return false, nil, fmt.Errorf("querying %s: %w", c.server, err)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return false, nil, fmt.Errorf("resolver returned %s for %s", dns.RcodeToString[resp.Rcode], name)
	}

	var addrs []netip.Addr
	match := false
	for _, rr := range resp.Answer {
		a, ok := rr.(*dns.A)
		if !ok {
			continue
		}
		ip, ok := netip.AddrFromSlice(a.A.To4())
		if !ok {
			continue
		}
		addrs = append(addrs, ip)
		if ip == want {
			match = true
		}
	}

	c.log.Debug("A record query answered",
		"name", name, "answers", len(addrs), "match", match, "rtt", rtt.String())
	return match, addrs, nil
}
