package ddns

import (
	"fmt"
	"net/netip"
)

// Credentials is the input record for RunUpdate: account credentials, the
// record to modify, and the target address. It is immutable after
// construction and owned by the caller.
type Credentials struct {
	User     string
	Password string
	Hostname string
	Domain   string
	Addr     netip.Addr
}

// NewCredentials builds a Credentials record. The address text is parsed
// once here; construction fails if it is not a valid IPv4 literal. The text
// fields are opaque and not validated.
func NewCredentials(user, password, hostname, domain, addr string) (*Credentials, error) {
	ip, err := netip.ParseAddr(addr)
	if err != nil {
		return nil, fmt.Errorf("parsing target address: %w", err)
	}
	if !ip.Is4() {
		return nil, fmt.Errorf("target address %q is not IPv4", addr)
	}
	return &Credentials{
		User:     user,
		Password: password,
		Hostname: hostname,
		Domain:   domain,
		Addr:     ip,
	}, nil
}

// Fqdn returns "hostname.domain", the name the update applies to.
func (c *Credentials) Fqdn() string {
	return c.Hostname + "." + c.Domain
}
