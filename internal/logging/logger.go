// Package logging defines the minimal structured-logging interface used
// across ddnsup. Implementations can wrap slog, zap, zerolog, etc.
package logging

// Logger is a structured logger. The variadic args are interpreted as
// key-value pairs, e.g.:
//
//	log.Info("connected", "endpoint", endpoint)
type Logger interface {
	// Debug logs fine-grained diagnostic detail.
	Debug(msg string, args ...any)

	// Info logs an informational message.
	Info(msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(msg string, args ...any)

	// Error logs an error message for failures.
	Error(msg string, args ...any)

	// With returns a child logger that always includes the given
	// key-value pairs.
	With(args ...any) Logger
}
