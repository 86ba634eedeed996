package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileName is the rotated log file written under the logs directory.
const LogFileName = "sanctuary.log"

var (
	// Log is the global logger instance
	Log = zerolog.Nop()

	// fileWriter is the rotating file output, nil when file logging is off
	fileWriter *lumberjack.Logger

	// fileOnlyLog writes only to the file. Used while a full-screen program
	// owns the terminal so log lines never land on top of a frame.
	fileOnlyLog = zerolog.Nop()

	interactiveMode bool
	interactiveMu   sync.RWMutex

	// section is the page section (hero, events, news) attached to entries
	section   string
	sectionMu sync.RWMutex
)

// SetSection tags all subsequent log entries with a page section.
// Pass an empty string to clear. Thread-safe.
func SetSection(name string) {
	sectionMu.Lock()
	defer sectionMu.Unlock()
	section = name
}

func addContext(event *zerolog.Event) *zerolog.Event {
	sectionMu.RLock()
	s := section
	sectionMu.RUnlock()
	if s != "" {
		event = event.Str("section", s)
	}
	return event
}

// LoggingConfig holds configuration for file-based logging.
// Mirrors config.LoggingSettings without importing it.
type LoggingConfig struct {
	FileEnabled *bool
	MaxSizeMB   int
	MaxAgeDays  int
	MaxBackups  int
}

// IsFileEnabled returns whether file logging is enabled.
// Defaults to true if not explicitly set.
func (c *LoggingConfig) IsFileEnabled() bool {
	if c.FileEnabled == nil {
		return true
	}
	return *c.FileEnabled
}

// GetMaxSizeMB returns the max size in MB, defaulting to 10 if not set.
func (c *LoggingConfig) GetMaxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return 10
	}
	return c.MaxSizeMB
}

// GetMaxAgeDays returns the max age in days, defaulting to 7 if not set.
func (c *LoggingConfig) GetMaxAgeDays() int {
	if c.MaxAgeDays <= 0 {
		return 7
	}
	return c.MaxAgeDays
}

// GetMaxBackups returns the max backups, defaulting to 3 if not set.
func (c *LoggingConfig) GetMaxBackups() int {
	if c.MaxBackups <= 0 {
		return 3
	}
	return c.MaxBackups
}

// SetInteractiveMode enables or disables interactive mode.
// While enabled, console output is suppressed for every level so a running
// TUI is never drawn over. File logging is unaffected.
func SetInteractiveMode(enabled bool) {
	interactiveMu.Lock()
	defer interactiveMu.Unlock()
	interactiveMode = enabled
}

func isInteractive() bool {
	interactiveMu.RLock()
	defer interactiveMu.RUnlock()
	return interactiveMode
}

func levelFor(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}
}

// Init installs a console-only logger on stderr.
func Init(debug bool) {
	Log = zerolog.New(consoleWriter(os.Stderr)).
		Level(levelFor(debug)).
		With().
		Timestamp().
		Logger()
	fileOnlyLog = zerolog.Nop()
}

// InitWithFile installs a logger that writes human-readable lines to stderr
// and JSON lines to a rotated file under logsDir. If logsDir is empty or
// cfg disables file logging, this behaves like Init.
func InitWithFile(debug bool, logsDir string, cfg *LoggingConfig) error {
	if logsDir == "" || cfg == nil || !cfg.IsFileEnabled() {
		Init(debug)
		return nil
	}

	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	fileWriter = &lumberjack.Logger{
		Filename:   filepath.Join(logsDir, LogFileName),
		MaxSize:    cfg.GetMaxSizeMB(),
		MaxAge:     cfg.GetMaxAgeDays(),
		MaxBackups: cfg.GetMaxBackups(),
		LocalTime:  true,
	}

	level := levelFor(debug)
	fileOnlyLog = zerolog.New(fileWriter).
		Level(level).
		With().
		Timestamp().
		Logger()

	Log = zerolog.New(io.MultiWriter(consoleWriter(os.Stderr), fileWriter)).
		Level(level).
		With().
		Timestamp().
		Logger()

	return nil
}

// CloseFileWriter closes the file writer if it exists.
// Call this on program shutdown for clean log file closure.
func CloseFileWriter() error {
	if fileWriter != nil {
		err := fileWriter.Close()
		fileWriter = nil
		fileOnlyLog = zerolog.Nop()
		return err
	}
	return nil
}

// GetLogFilePath returns the path to the current log file, or empty string if file logging is disabled.
func GetLogFilePath() string {
	if fileWriter != nil {
		return fileWriter.Filename
	}
	return ""
}

// pick returns the logger an event should go to right now.
func pick() *zerolog.Logger {
	if isInteractive() {
		return &fileOnlyLog
	}
	return &Log
}

// Debug logs a debug message
func Debug() *zerolog.Event { return addContext(pick().Debug()) }

// Info logs an info message
func Info() *zerolog.Event { return addContext(pick().Info()) }

// Warn logs a warning message
func Warn() *zerolog.Event { return addContext(pick().Warn()) }

// Error logs an error message
func Error() *zerolog.Event { return addContext(pick().Error()) }

// WithField returns a logger with an additional field
func WithField(key string, value any) zerolog.Logger {
	return Log.With().Interface(key, value).Logger()
}

// Global satisfies iostreams.Logger by delegating to the package functions,
// so interactive-mode routing applies to injected loggers too.
type Global struct{}

func (Global) Debug() *zerolog.Event { return Debug() }
func (Global) Info() *zerolog.Event  { return Info() }
func (Global) Warn() *zerolog.Event  { return Warn() }
func (Global) Error() *zerolog.Event { return Error() }
