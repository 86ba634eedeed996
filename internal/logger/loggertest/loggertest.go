// Package loggertest provides a capturing logger for tests of code that
// takes an iostreams.Logger.
package loggertest

import (
	"bytes"
	"strings"

	"github.com/rs/zerolog"
)

// TestLogger records JSON log lines in memory.
type TestLogger struct {
	logger zerolog.Logger
	buf    *bytes.Buffer
}

// New creates a test logger that captures every level.
func New() *TestLogger {
	buf := &bytes.Buffer{}
	return &TestLogger{
		logger: zerolog.New(buf).Level(zerolog.DebugLevel),
		buf:    buf,
	}
}

// NewNop creates a test logger that discards all output.
func NewNop() *TestLogger {
	return &TestLogger{
		logger: zerolog.Nop(),
		buf:    &bytes.Buffer{},
	}
}

func (tl *TestLogger) Debug() *zerolog.Event { return tl.logger.Debug() }
func (tl *TestLogger) Info() *zerolog.Event  { return tl.logger.Info() }
func (tl *TestLogger) Warn() *zerolog.Event  { return tl.logger.Warn() }
func (tl *TestLogger) Error() *zerolog.Event { return tl.logger.Error() }

// Output returns captured log output as a string.
func (tl *TestLogger) Output() string { return tl.buf.String() }

// Lines returns the captured entries, one JSON object per element.
func (tl *TestLogger) Lines() []string {
	out := strings.TrimSpace(tl.buf.String())
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// Reset clears captured output.
func (tl *TestLogger) Reset() { tl.buf.Reset() }
