package logging

// nopLogger discards everything. Used as the default where no logger
// was injected.
type nopLogger struct{}

// Nop returns a Logger that discards all records.
func Nop() Logger {
	return nopLogger{}
}

func (nopLogger) Debug(msg string, args ...any) {}
func (nopLogger) Info(msg string, args ...any)  {}
func (nopLogger) Warn(msg string, args ...any)  {}
func (nopLogger) Error(msg string, args ...any) {}
func (nopLogger) With(args ...any) Logger       { return nopLogger{} }
