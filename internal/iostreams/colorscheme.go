package iostreams

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ColorScheme formats command output with the palette in styles.go.
// When colors are disabled, methods return the input string unmodified.
type ColorScheme struct {
	enabled bool
}

// NewColorScheme creates a new ColorScheme.
func NewColorScheme(enabled bool) *ColorScheme {
	return &ColorScheme{enabled: enabled}
}

// Enabled returns whether colors are enabled.
func (cs *ColorScheme) Enabled() bool {
	return cs.enabled
}

func (cs *ColorScheme) render(style lipgloss.Style, s string) string {
	if !cs.enabled {
		return s
	}
	return style.Render(s)
}

// Red returns the string in the error color.
func (cs *ColorScheme) Red(s string) string { return cs.render(ErrorStyle, s) }

// Yellow returns the string in the warning color.
func (cs *ColorScheme) Yellow(s string) string { return cs.render(WarningStyle, s) }

// Green returns the string in the success color.
func (cs *ColorScheme) Green(s string) string { return cs.render(SuccessStyle, s) }

// Gold returns the string in the brand color.
func (cs *ColorScheme) Gold(s string) string { return cs.render(TitleStyle, s) }

// Cyan returns the string in the info color.
func (cs *ColorScheme) Cyan(s string) string { return cs.render(CyanStyle, s) }

// Bold returns the string in bold.
func (cs *ColorScheme) Bold(s string) string { return cs.render(BoldStyle, s) }

// Boldf returns a formatted string in bold.
func (cs *ColorScheme) Boldf(format string, a ...any) string {
	return cs.Bold(fmt.Sprintf(format, a...))
}

// Muted returns the string in muted/gray color.
func (cs *ColorScheme) Muted(s string) string { return cs.render(MutedStyle, s) }

// Mutedf returns a formatted string in muted color.
func (cs *ColorScheme) Mutedf(format string, a ...any) string {
	return cs.Muted(fmt.Sprintf(format, a...))
}

// SuccessIcon returns a green ✓, or [ok] without colors.
func (cs *ColorScheme) SuccessIcon() string {
	if cs.enabled {
		return cs.Green("✓")
	}
	return "[ok]"
}

// WarningIcon returns a yellow !, or [warn] without colors.
func (cs *ColorScheme) WarningIcon() string {
	if cs.enabled {
		return cs.Yellow("!")
	}
	return "[warn]"
}

// FailureIcon returns a red ✗, or [error] without colors.
func (cs *ColorScheme) FailureIcon() string {
	if cs.enabled {
		return cs.Red("✗")
	}
	return "[error]"
}

// InfoIcon returns a cyan ℹ, or [info] without colors.
func (cs *ColorScheme) InfoIcon() string {
	if cs.enabled {
		return cs.Cyan("ℹ")
	}
	return "[info]"
}
