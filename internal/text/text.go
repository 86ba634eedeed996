// Package text provides pure text/string utility functions.
// Widths are terminal cell widths: ANSI escapes count as zero and wide
// runes count as two. This is a leaf package with zero internal imports.
package text

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// Truncate shortens s to at most width cells, ending with Ellipsis when cut.
// ANSI codes are stripped from a truncated result.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if CountVisibleWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(StripANSI(s), width, Ellipsis)
}

// PadRight pads s on the right to width cells.
func PadRight(s string, width int) string {
	visible := CountVisibleWidth(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// PadCenter centers s within width cells.
func PadCenter(s string, width int) string {
	visible := CountVisibleWidth(s)
	if visible >= width {
		return s
	}

	padding := width - visible
	left := padding / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", padding-left)
}

// WrapLines wraps s on word boundaries so no line exceeds width cells,
// except a single word wider than width, which gets a line of its own.
func WrapLines(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}

	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var line strings.Builder
		lineLen := 0
		for _, word := range words {
			wordLen := runewidth.StringWidth(word)
			switch {
			case lineLen == 0:
				line.WriteString(word)
				lineLen = wordLen
			case lineLen+1+wordLen <= width:
				line.WriteByte(' ')
				line.WriteString(word)
				lineLen += 1 + wordLen
			default:
				lines = append(lines, line.String())
				line.Reset()
				line.WriteString(word)
				lineLen = wordLen
			}
		}
		lines = append(lines, line.String())
	}

	return lines
}

// CountVisibleWidth returns the cell width of s, excluding ANSI codes.
func CountVisibleWidth(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}

// StripANSI removes all ANSI escape sequences from a string.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// FirstLine returns the first line of a multi-line string.
func FirstLine(s string) string {
	if first, _, found := strings.Cut(s, "\n"); found {
		return first
	}
	return s
}
