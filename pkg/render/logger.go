package render

import (
	"log"
)

// DefaultLogger implements core.Logger by writing to the standard
// logger (timestamped, to stderr).
type DefaultLogger struct{}

// Printf writes a formatted log line.
func (DefaultLogger) Printf(format string, args ...interface{}) {
	log.Printf(format, args...)
}

// NullLogger implements core.Logger by discarding everything; used in
// tests and whenever -quiet suppresses progress output.
type NullLogger struct{}

// Printf discards its arguments.
func (NullLogger) Printf(format string, args ...interface{}) {}
