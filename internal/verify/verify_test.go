package verify

import (
	"context"
	"errors"
	"net"
	"net/netip"
	"testing"
	"time"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExchanger returns a canned response (or error) and records the query.
type fakeExchanger struct {
	resp *dns.Msg
	err  error

	lastMsg  *dns.Msg
	lastAddr string
}

func (f *fakeExchanger) ExchangeContext(ctx context.Context, m *dns.Msg, addr string) (*dns.Msg, time.Duration, error) {
	f.lastMsg = m
	f.lastAddr = addr
	return f.resp, time.Millisecond, f.err
}

func aRecord(t *testing.T, name, addr string) dns.RR {
	t.Helper()
	return &dns.A{
		Hdr: dns.RR_Header{Name: dns.Fqdn(name), Rrtype: dns.TypeA, Class: dns.ClassINET, Ttl: 60},
		A:   net.ParseIP(addr),
	}
}

func answer(t *testing.T, rcode int, rrs ...dns.RR) *dns.Msg {
	t.Helper()
	resp := new(dns.Msg)
	resp.Rcode = rcode
	resp.Answer = rrs
	return resp
}

func TestCheck_Match(t *testing.T) {
	fake := &fakeExchanger{resp: answer(t, dns.RcodeSuccess, aRecord(t, "www.example.org", "203.0.113.5"))}
	c := New("127.0.0.53:53", WithExchanger(fake))

	match, addrs, err := c.Check(context.Background(), "www.example.org", netip.MustParseAddr("203.0.113.5"))
	require.NoError(t, err)
	assert.True(t, match)
	assert.Equal(t, []netip.Addr{netip.MustParseAddr("203.0.113.5")}, addrs)

	// The query must target the configured server and ask for an A record.
	assert.Equal(t, "127.0.0.53:53", fake.lastAddr)
	require.Len(t, fake.lastMsg.Question, 1)
	assert.Equal(t, "www.example.org.", fake.lastMsg.Question[0].Name)
	assert.Equal(t, dns.TypeA, fake.lastMsg.Question[0].Qtype)
}

func TestCheck_Mismatch(t *testing.T) {
	fake := &fakeExchanger{resp: answer(t, dns.RcodeSuccess, aRecord(t, "www.example.org", "198.51.100.7"))}
	c := New("127.0.0.53:53", WithExchanger(fake))

	match, addrs, err := c.Check(context.Background(), "www.example.org", netip.MustParseAddr("203.0.113.5"))
	require.NoError(t, err)
	assert.False(t, match)
	assert.Equal(t, []netip.Addr{netip.MustParseAddr("198.51.100.7")}, addrs)
}

func TestCheck_IgnoresNonARecords(t *testing.T) {
	cname := &dns.CNAME{
		Hdr:    dns.RR_Header{Name: "www.example.org.", Rrtype: dns.TypeCNAME, Class: dns.ClassINET, Ttl: 60},
		Target: "host.example.org.",
	}
	fake := &fakeExchanger{resp: answer(t, dns.RcodeSuccess, cname, aRecord(t, "host.example.org", "203.0.113.5"))}
	c := New("127.0.0.53:53", WithExchanger(fake))

	match, addrs, err := c.Check(context.Background(), "www.example.org", netip.MustParseAddr("203.0.113.5"))
	require.NoError(t, err)
	assert.True(t, match)
	assert.Len(t, addrs, 1)
}

func TestCheck_NXDomain(t *testing.T) {
	fake := &fakeExchanger{resp: answer(t, dns.RcodeNameError)}
	c := New("127.0.0.53:53", WithExchanger(fake))

	_, _, err := c.Check(context.Background(), "gone.example.org", netip.MustParseAddr("203.0.113.5"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NXDOMAIN")
}

func TestCheck_QueryError(t *testing.T) {
	fake := &fakeExchanger{err: errors.New("i/o timeout")}
	c := New("127.0.0.53:53", WithExchanger(fake))

	_, _, err := c.Check(context.Background(), "www.example.org", netip.MustParseAddr("203.0.113.5"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "querying 127.0.0.53:53")
}

func TestCheck_EmptyAnswer(t *testing.T) {
	fake := &fakeExchanger{resp: answer(t, dns.RcodeSuccess)}
	c := New("127.0.0.53:53", WithExchanger(fake))

	match, addrs, err := c.Check(context.Background(), "www.example.org", netip.MustParseAddr("203.0.113.5"))
	require.NoError(t, err)
	assert.False(t, match)
	assert.Empty(t, addrs)
}
