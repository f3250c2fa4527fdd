package core

// Logger is the logging surface the renderer writes progress and
// debug lines to. A real CLI run hands in render.DefaultLogger;
// tests hand in render.NullLogger.
type Logger interface {
	Printf(format string, args ...interface{})
}
