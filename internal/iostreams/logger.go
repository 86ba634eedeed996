package iostreams

import "github.com/rs/zerolog"

// Logger is the logging surface commands and models depend on.
// *zerolog.Logger, logger.Global and loggertest.TestLogger all satisfy it.
type Logger interface {
	Debug() *zerolog.Event
	Info() *zerolog.Event
	Warn() *zerolog.Event
	Error() *zerolog.Event
}
