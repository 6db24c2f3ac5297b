package ddns

import "fmt"

// Protocol commands.
const (
	cmdLogin  = "LOGIN"
	cmdModip  = "MODIP"
	cmdLogout = "LOGOUT"
)

// Login authenticates the session. On any failure a best-effort LOGOUT is
// sent before the original error is propagated; its result is deliberately
// ignored so that a second failure during cleanup never masks the cause.
func (c *Client) Login(user, password string) error {
	err := c.Call([]string{cmdLogin, "USERID:" + user, "PASSWORD:" + password})
	if err != nil {
		c.abandon()
		return err
	}
	return nil
}

// Modip submits the address update for hostname.domain. The same rollback
// rule as Login applies: the session is already established, so a failure
// still triggers a best-effort LOGOUT send.
func (c *Client) Modip(hostname, domain, addr string) error {
	err := c.Call([]string{cmdModip, "HOSTNAME:" + hostname, "DOMNAME:" + domain, "IPV4:" + addr})
	if err != nil {
		c.abandon()
		return err
	}
	return nil
}

// Logout closes the session. Its outcome is checked normally.
func (c *Client) Logout() error {
	return c.Call([]string{cmdLogout})
}

// abandon fires a LOGOUT without awaiting or classifying a reply. If the
// connection is already broken the send fails silently.
func (c *Client) abandon() {
	_ = c.Send([]string{cmdLogout})
}

// RunUpdate performs the full authenticated operation against a fresh
// connection: consume the greeting banner, LOGIN, MODIP, LOGOUT. The first
// error encountered aborts the sequence and becomes the result; a greeting
// failure triggers no cleanup because no session was established. There is
// no retry and no partial-success state.
func (c *Client) RunUpdate(info *Credentials) error {
	if err := c.Greeting(); err != nil {
		return fmt.Errorf("greeting: %w", err)
	}
	c.log.Debug("greeting accepted")

	if err := c.Login(info.User, info.Password); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	c.log.Debug("login accepted", "user", info.User)

	if err := c.Modip(info.Hostname, info.Domain, info.Addr.String()); err != nil {
		return fmt.Errorf("modip: %w", err)
	}
	c.log.Debug("modip accepted", "fqdn", info.Fqdn(), "addr", info.Addr.String())

	if err := c.Logout(); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
