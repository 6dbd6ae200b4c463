package latex

// Logger is the diagnostic capability threaded through the parser.
// It is satisfied by internal/logger.Capability and by test fakes.
// A nil Logger is valid and degrades to a no-op.
type Logger interface {
	// Debug reports per-entry parse progress.
	Debug(format string, args ...any)

	// Info reports scan summaries.
	Info(format string, args ...any)

	// Warn reports recoverable parse failures (skipped entries).
	Warn(format string, args ...any)

	// Error reports conditions the caller should not ignore.
	Error(format string, args ...any)
}

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
