package ddns

import "errors"

// Protocol outcome errors, one per failure kind of the response taxonomy.
// They are the expected results of a well-formed exchange and are orthogonal
// to transport I/O errors, which surface as wrapped errors from the
// underlying connection.
var (
	ErrCommand      = errors.New("invalid command")
	ErrLogin        = errors.New("login failed")
	ErrDb           = errors.New("database error")
	ErrIPAddress    = errors.New("invalid ip address")
	ErrNoConnection = errors.New("connection error")
	ErrNotFound     = errors.New("host or domain name not found")
	ErrUnrecognized = errors.New("unrecognized response")
)
