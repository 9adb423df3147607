package logging

import "github.com/vvka-141/graphver/pkg/graphver"

var (
	_ graphver.Logger = (*ConsoleLogger)(nil)
	_ graphver.Logger = NullLogger{}
)

// NullLogger discards everything. It is the default for library callers that
// do not pass a logger.
type NullLogger struct{}

// NewNullLogger returns a NullLogger.
func NewNullLogger() NullLogger {
	return NullLogger{}
}

func (NullLogger) Verbose(string, ...interface{}) {}
func (NullLogger) Info(string, ...interface{})    {}
func (NullLogger) Error(string, ...interface{})   {}
