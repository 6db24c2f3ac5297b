package ddns

import (
	"strconv"
	"strings"
)

// Outcome is the classification of a response frame, derived from the
// leading integer of its first line. The numeric mapping is a fixed
// protocol contract.
type Outcome int

const (
	Success Outcome = iota
	CommandError
	LoginError
	DbError
	IpAddressError
	NoConnectionError
	NotFoundError
	Unrecognized
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Success:
		return "Success"
	case CommandError:
		return "CommandError"
	case LoginError:
		return "LoginError"
	case DbError:
		return "DbError"
	case IpAddressError:
		return "IpAddressError"
	case NoConnectionError:
		return "NoConnectionError"
	case NotFoundError:
		return "NotFoundError"
	default:
		return "Unrecognized"
	}
}

// Err maps a failure outcome to its sentinel error. Success maps to nil.
// Callers should match with errors.Is.
func (o Outcome) Err() error {
	switch o {
	case Success:
		return nil
	case CommandError:
		return ErrCommand
	case LoginError:
		return ErrLogin
	case DbError:
		return ErrDb
	case IpAddressError:
		return ErrIPAddress
	case NoConnectionError:
		return ErrNoConnection
	case NotFoundError:
		return ErrNotFound
	default:
		return ErrUnrecognized
	}
}

// Classify inspects the first line of a response and returns its outcome.
// The leading whitespace-delimited field must be a decimal integer:
// 0 means success, 1-6 map to the named failure kinds in fixed order,
// anything else (including a malformed leading field) is Unrecognized.
//
// Classify is pure; it never touches the network.
func Classify(response string) Outcome {
	line, _, _ := strings.Cut(response, "\n")
	field, _, _ := strings.Cut(line, " ")

	code, err := strconv.Atoi(field)
	if err != nil || code < int(Success) || code > int(NotFoundError) {
		return Unrecognized
	}
	return Outcome(code)
}
