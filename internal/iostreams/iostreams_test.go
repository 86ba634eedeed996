package iostreams_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/novezhyttia/sanctuary/internal/iostreams"
	"github.com/novezhyttia/sanctuary/internal/iostreams/iostreamstest"
)

func TestSystem_NonFileStreamsAreNotTTY(t *testing.T) {
	ios := iostreams.System()
	ios.In = &bytes.Buffer{}
	ios.Out = &bytes.Buffer{}
	ios.ErrOut = &bytes.Buffer{}

	assert.False(t, ios.IsInputTTY())
	assert.False(t, ios.IsOutputTTY())
	assert.False(t, ios.IsStderrTTY())
	assert.False(t, ios.IsInteractive())
	assert.Equal(t, termenv.Ascii, ios.ColorProfile())
	assert.False(t, ios.ColorEnabled(), "auto mode follows the profile")
}

func TestTTYOverrides(t *testing.T) {
	tio := iostreamstest.New()
	assert.False(t, tio.IsInteractive())

	tio.SetInteractive(true)
	assert.True(t, tio.IsInputTTY())
	assert.True(t, tio.IsOutputTTY())
	assert.True(t, tio.IsStderrTTY())
	assert.True(t, tio.IsInteractive())

	tio.SetStdinTTY(false)
	assert.False(t, tio.IsInteractive())
}

func TestColorEnabled_Explicit(t *testing.T) {
	tio := iostreamstest.New()
	assert.False(t, tio.ColorEnabled())

	tio.SetColorEnabled(true)
	assert.True(t, tio.ColorEnabled())
	assert.True(t, tio.ColorScheme().Enabled())
}

func TestTerminalSize(t *testing.T) {
	tio := iostreamstest.New()
	w, h := tio.TerminalSize()
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)

	tio.SetTerminalSize(132, 40)
	assert.Equal(t, 132, tio.TerminalWidth())

	ios := iostreams.System()
	ios.Out = &bytes.Buffer{}
	ios.In = &bytes.Buffer{}
	ios.InvalidateTerminalSizeCache()
	w, h = ios.TerminalSize()
	assert.Equal(t, 80, w, "falls back when no stream is a terminal")
	assert.Equal(t, 24, h)
}

func TestColorScheme_Disabled(t *testing.T) {
	cs := iostreams.NewColorScheme(false)

	assert.Equal(t, "hi", cs.Red("hi"))
	assert.Equal(t, "hi", cs.Gold("hi"))
	assert.Equal(t, "n=3", cs.Boldf("n=%d", 3))
	assert.Equal(t, "[ok]", cs.SuccessIcon())
	assert.Equal(t, "[warn]", cs.WarningIcon())
	assert.Equal(t, "[error]", cs.FailureIcon())
	assert.Equal(t, "[info]", cs.InfoIcon())
}

func TestColorScheme_EnabledKeepsText(t *testing.T) {
	cs := iostreams.NewColorScheme(true)
	assert.Contains(t, cs.Green("done"), "done")
	assert.Contains(t, cs.SuccessIcon(), "✓")
	assert.Contains(t, cs.FailureIcon(), "✗")
}

func TestPrepareTerminal(t *testing.T) {
	tests := []struct {
		name        string
		color       bool
		tty         bool
		wantQueries int
	}{
		{"color terminal", true, true, 1},
		{"color off", false, true, 0},
		{"redirected", true, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tio := iostreamstest.New()
			tio.SetStdoutTTY(tt.tty)
			tio.SetColorEnabled(tt.color)

			queries := 0
			tio.SetBackgroundQuery(func() bool {
				queries++
				return false
			})

			tio.PrepareTerminal()
			assert.Equal(t, tt.wantQueries, queries)

			if tt.wantQueries > 0 {
				assert.False(t, tio.HasDarkBackground())
				tio.MarkdownStyle()
				assert.Equal(t, 1, queries, "the answer is cached")
			}
		})
	}
}
