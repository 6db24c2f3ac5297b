// Package netx establishes the encrypted transport the protocol client runs
// over: TCP connect, TLS handshake, and session deadlines. The protocol core
// only sees the resulting stream.
package netx

import (
	"crypto/tls"
	"fmt"
	"net"
	"time"
)

// Dial connects to endpoint (host:port), performs the TLS handshake, and
// arms a single absolute read/write deadline covering the whole session.
// Timeouts are configured here, once, at establishment time; blocking reads
// and writes on the returned connection fail with a timeout error when the
// deadline passes.
func Dial(endpoint string, timeout time.Duration) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: timeout}

	conn, err := tls.DialWithDialer(dialer, "tcp", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", endpoint, err)
	}

	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setting session deadline: %w", err)
	}
	return conn, nil
}
