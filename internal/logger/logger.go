// Package logger provides leveled diagnostic logging for the cvforge CLI.
// Warnings and errors always print to stderr; debug and info messages are
// gated behind the --verbose flag so normal runs stay quiet.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[DEBUG] "+format+"\n", args...)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[INFO] "+format+"\n", args...)
	}
}

// Warn prints a warning message. Warnings are always shown.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	fmt.Fprintf(output, "[WARN] "+format+"\n", args...)
}

// Error prints an error message. Errors are always shown.
func Error(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	fmt.Fprintf(output, "[ERROR] "+format+"\n", args...)
}

// Capability adapts the package logger to the explicit logging
// interfaces threaded through core packages, so those packages never
// reach for ambient state themselves.
type Capability struct{}

// Debug implements the debug level.
func (Capability) Debug(format string, args ...any) { Debug(format, args...) }

// Info implements the info level.
func (Capability) Info(format string, args ...any) { Info(format, args...) }

// Warn implements the warning level.
func (Capability) Warn(format string, args ...any) { Warn(format, args...) }

// Error implements the error level.
func (Capability) Error(format string, args ...any) { Error(format, args...) }
