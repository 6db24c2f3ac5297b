package cli

import (
	"bufio"
	"strings"
)

// Assignments holds the credential fields collected from piped input.
type Assignments struct {
	User string
	Pass string
	Host string
	Dom  string
}

// ParseAssignments reads key=value lines from r until EOF. Keys are matched
// by prefix (user, pass, host, dom) after leading whitespace is dropped; the
// value is everything after the first '='. Lines without '=' or with an
// unknown prefix are skipped, and later lines override earlier ones.
func ParseAssignments(r *bufio.Reader) Assignments {
	var out Assignments
	for {
		line, err := r.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		out.apply(strings.TrimLeft(line, " \t"))
		if err != nil {
			return out
		}
	}
}

func (a *Assignments) apply(line string) {
	idx := strings.Index(line, "=")
	if idx < 0 {
		return
	}
	value := line[idx+1:]
	switch {
	case strings.HasPrefix(line, "user"):
		a.User = value
	case strings.HasPrefix(line, "pass"):
		a.Pass = value
	case strings.HasPrefix(line, "host"):
		a.Host = value
	case strings.HasPrefix(line, "dom"):
		a.Dom = value
	}
}
