package iostreams

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/novezhyttia/sanctuary/internal/text"
)

func nonEmpty(components []string) []string {
	var out []string
	for _, c := range components {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// Stack vertically stacks components with the given spacing between them.
// Empty strings are filtered out. Negative spacing is clamped to zero.
func Stack(spacing int, components ...string) string {
	parts := nonEmpty(components)
	if len(parts) == 0 {
		return ""
	}

	spacer := strings.Repeat("\n", max(spacing, 0))
	return strings.Join(parts, "\n"+spacer)
}

// Row places multi-line blocks side by side, top-aligned, with gap
// columns between them. Empty strings are filtered out.
func Row(gap int, components ...string) string {
	parts := nonEmpty(components)
	if len(parts) == 0 {
		return ""
	}

	spacer := strings.Repeat(" ", max(gap, 0))
	joined := make([]string, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 && spacer != "" {
			joined = append(joined, spacer)
		}
		joined = append(joined, p)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joined...)
}

// ColumnWidth splits width into n equal columns separated by gap.
// Never returns less than 1.
func ColumnWidth(width, gap, n int) int {
	if n <= 0 {
		return max(width, 1)
	}
	return max((width-max(gap, 0)*(n-1))/n, 1)
}

// FlexRow arranges items with flexible spacing to fill width.
// Left, center, and right content are distributed across the width.
func FlexRow(width int, left, center, right string) string {
	used := text.CountVisibleWidth(left) + text.CountVisibleWidth(center) + text.CountVisibleWidth(right)
	available := max(width-used, 0)

	leftPad := available / 2
	rightPad := available - leftPad

	if center == "" {
		leftPad = available
		rightPad = 0
	}
	if left == "" {
		leftPad = 0
	}
	if right == "" {
		rightPad = 0
	}

	return left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
}

// AlignCenter centers content within the given width.
func AlignCenter(content string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(content)
}

// Divider renders a horizontal rule of width cells.
func Divider(width int) string {
	return DividerStyle.Render(strings.Repeat("─", max(width, 0)))
}
