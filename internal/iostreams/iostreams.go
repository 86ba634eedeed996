// Package iostreams owns terminal I/O for sanctuary: the three standard
// streams, TTY detection, color capability and every lipgloss style used
// by the rest of the program.
package iostreams

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IOStreams provides access to standard input/output/error streams.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// Logger receives diagnostics. Never nil in production.
	Logger Logger

	// TTY caches. -1 = unchecked, 0 = false, 1 = true
	isInputTTY  int
	isOutputTTY int
	isStderrTTY int

	// colorEnabled: -1 = auto, 0 = disabled, 1 = enabled
	colorEnabled int

	// colorProfile is resolved lazily from the output stream.
	colorProfile    termenv.Profile
	colorProfileSet bool

	// hasDarkBackground: -1 = unchecked
	hasDarkBackground int
	backgroundQuery   func() bool

	termWidthCache  int
	termHeightCache int
	termSizeCached  bool
}

// System creates an IOStreams connected to the process streams.
func System() *IOStreams {
	return &IOStreams{
		In:                os.Stdin,
		Out:               os.Stdout,
		ErrOut:            os.Stderr,
		isInputTTY:        -1,
		isOutputTTY:       -1,
		isStderrTTY:       -1,
		colorEnabled:      -1,
		hasDarkBackground: -1,
	}
}

func isTerminal(v any) int {
	if f, ok := v.(*os.File); ok {
		return boolToInt(term.IsTerminal(int(f.Fd())))
	}
	return 0
}

// IsInputTTY returns true if stdin is a terminal.
func (s *IOStreams) IsInputTTY() bool {
	if s.isInputTTY == -1 {
		s.isInputTTY = isTerminal(s.In)
	}
	return s.isInputTTY == 1
}

// IsOutputTTY returns true if stdout is a terminal.
func (s *IOStreams) IsOutputTTY() bool {
	if s.isOutputTTY == -1 {
		s.isOutputTTY = isTerminal(s.Out)
	}
	return s.isOutputTTY == 1
}

// IsStderrTTY returns true if stderr is a terminal.
func (s *IOStreams) IsStderrTTY() bool {
	if s.isStderrTTY == -1 {
		s.isStderrTTY = isTerminal(s.ErrOut)
	}
	return s.isStderrTTY == 1
}

// IsInteractive returns true if both stdin and stdout are terminals.
// The full-screen page refuses to start otherwise.
func (s *IOStreams) IsInteractive() bool {
	return s.IsInputTTY() && s.IsOutputTTY()
}

// SetStdinTTY overrides stdin TTY detection.
func (s *IOStreams) SetStdinTTY(v bool) { s.isInputTTY = boolToInt(v) }

// SetStdoutTTY overrides stdout TTY detection.
func (s *IOStreams) SetStdoutTTY(v bool) { s.isOutputTTY = boolToInt(v) }

// SetStderrTTY overrides stderr TTY detection.
func (s *IOStreams) SetStderrTTY(v bool) { s.isStderrTTY = boolToInt(v) }

// ColorProfile reports the color capability of Out. Non-TTY output and
// NO_COLOR both resolve to termenv.Ascii.
func (s *IOStreams) ColorProfile() termenv.Profile {
	if !s.colorProfileSet {
		if s.IsOutputTTY() {
			s.colorProfile = termenv.NewOutput(s.Out).EnvColorProfile()
		} else {
			s.colorProfile = termenv.Ascii
		}
		s.colorProfileSet = true
	}
	return s.colorProfile
}

// ColorEnabled returns whether color output is enabled. In auto mode it
// is on when Out is a terminal whose profile supports any color.
func (s *IOStreams) ColorEnabled() bool {
	if s.colorEnabled == -1 {
		return s.ColorProfile() != termenv.Ascii
	}
	return s.colorEnabled == 1
}

// SetColorEnabled explicitly enables or disables color output.
func (s *IOStreams) SetColorEnabled(enabled bool) {
	s.colorEnabled = boolToInt(enabled)
}

// HasDarkBackground reports the terminal background. Defaults to dark
// when the terminal cannot be queried. The first call on a TTY writes an
// OSC 11 query and reads the reply from the terminal.
func (s *IOStreams) HasDarkBackground() bool {
	if s.hasDarkBackground == -1 {
		dark := true
		if s.IsOutputTTY() {
			query := s.backgroundQuery
			if query == nil {
				query = termenv.NewOutput(s.Out).HasDarkBackground
			}
			dark = query()
		}
		s.hasDarkBackground = boolToInt(dark)
	}
	return s.hasDarkBackground == 1
}

// SetBackgroundQuery replaces the terminal background query and forgets
// any cached answer.
func (s *IOStreams) SetBackgroundQuery(query func() bool) {
	s.backgroundQuery = query
	s.hasDarkBackground = -1
}

// PrepareTerminal answers the terminal queries that read from the tty.
// Call it before a program starts reading stdin, or the replies arrive as
// input.
func (s *IOStreams) PrepareTerminal() {
	s.MarkdownStyle()
}

// ColorScheme returns a ColorScheme configured for this IOStreams.
func (s *IOStreams) ColorScheme() *ColorScheme {
	return NewColorScheme(s.ColorEnabled())
}

// TerminalWidth returns the width of the terminal in columns.
func (s *IOStreams) TerminalWidth() int {
	w, _ := s.TerminalSize()
	return w
}

// TerminalSize returns the width and height of the terminal.
// Returns (80, 24) as defaults if detection fails.
func (s *IOStreams) TerminalSize() (width, height int) {
	if s.termSizeCached {
		return s.termWidthCache, s.termHeightCache
	}

	width, height = 80, 24
	for _, v := range []any{s.Out, s.In} {
		f, ok := v.(*os.File)
		if !ok {
			continue
		}
		if w, h, err := term.GetSize(int(f.Fd())); err == nil && w > 0 && h > 0 {
			width, height = w, h
			break
		}
	}

	s.SetTerminalSizeCache(width, height)
	return width, height
}

// SetTerminalSizeCache pins the reported terminal size.
func (s *IOStreams) SetTerminalSizeCache(width, height int) {
	s.termWidthCache = width
	s.termHeightCache = height
	s.termSizeCached = true
}

// InvalidateTerminalSizeCache clears the cached terminal size.
// Call this after a window resize event.
func (s *IOStreams) InvalidateTerminalSizeCache() {
	s.termSizeCached = false
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
