// Package ddns implements the client side of the line-oriented dynamic-DNS
// update protocol: command framing, response classification, and the
// LOGIN -> MODIP -> LOGOUT session sequence.
//
// A command frame is one token per line followed by a line containing only
// ".". A response frame is one or more lines followed by the same terminator;
// the first line starts with a decimal status code (see Classify).
package ddns

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/ddnsup/internal/logging"
)

// terminator ends every frame in both directions.
const terminator = "."

// Client is a protocol session over a single duplex byte stream. It owns the
// stream for its whole lifetime: one client, one connection, one session.
// The client is not safe for concurrent use and must not be reused after
// Logout or after any transport error.
type Client struct {
	conn io.ReadWriter
	r    *bufio.Reader
	echo io.Writer // wire echo side channel, nil when disabled
	log  logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithEcho enables echoing of every line sent and received to w.
// This is a diagnostic side channel, not part of the protocol.
func WithEcho(w io.Writer) Option {
	return func(c *Client) {
		c.echo = w
	}
}

// WithLogger sets a custom logger.
func WithLogger(log logging.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient wraps an established duplex stream. The stream must already be
// past any transport-security handshake and have its timeouts configured.
func NewClient(conn io.ReadWriter, opts ...Option) *Client {
	c := &Client{
		conn: conn,
		r:    bufio.NewReader(conn),
		log:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send writes one command frame: each token on its own line, then the
// terminator line. Tokens must not themselves equal the terminator; the wire
// format cannot represent such a token and the constraint is not enforced
// here.
func (c *Client) Send(tokens []string) error {
	w := bufio.NewWriter(c.conn)
	for _, tok := range tokens {
		if err := c.writeLine(w, tok); err != nil {
			return err
		}
	}
	if err := c.writeLine(w, terminator); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("sending command: %w", err)
	}
	return nil
}

func (c *Client) writeLine(w *bufio.Writer, line string) error {
	if c.echo != nil {
		fmt.Fprintln(c.echo, line)
	}
	if _, err := w.WriteString(line); err != nil {
		return fmt.Errorf("sending command: %w", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return fmt.Errorf("sending command: %w", err)
	}
	return nil
}

// Receive reads one response frame and returns it, including the terminator
// as its final line. It blocks until the terminator arrives; end of stream or
// any read failure before that is a transport error.
func (c *Client) Receive() (string, error) {
	var buf strings.Builder
	for {
		line, err := c.r.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("reading response: %w", err)
		}
		if c.echo != nil {
			io.WriteString(c.echo, line)
		}
		buf.WriteString(line)
		if line == terminator+"\n" {
			return buf.String(), nil
		}
	}
}

// Call sends one command frame and classifies the response: nil on Success,
// the matching sentinel error otherwise. Transport failures surface as
// wrapped I/O errors instead.
func (c *Client) Call(tokens []string) error {
	if err := c.Send(tokens); err != nil {
		return err
	}
	return c.receiveOutcome()
}

// Greeting consumes and classifies the banner frame the server sends
// immediately on connection, before any command.
func (c *Client) Greeting() error {
	return c.receiveOutcome()
}

func (c *Client) receiveOutcome() error {
	resp, err := c.Receive()
	if err != nil {
		return err
	}
	outcome := Classify(resp)
	c.log.Debug("response classified", "outcome", outcome.String())
	return outcome.Err()
}
