package tui

import (
	"strconv"
	"strings"

	"github.com/novezhyttia/sanctuary/internal/iostreams"
	"github.com/novezhyttia/sanctuary/internal/text"
)

// StatusBarModel represents a single-line status bar with left/center/right sections.
type StatusBarModel struct {
	left   string
	center string
	right  string
	width  int
	style  iostreams.Style
}

// NewStatusBar creates a new status bar with the given width.
func NewStatusBar(width int) StatusBarModel {
	return StatusBarModel{
		width: width,
		style: iostreams.StatusBarStyle,
	}
}

// SetLeft sets the left section content.
func (m StatusBarModel) SetLeft(s string) StatusBarModel {
	m.left = s
	return m
}

// SetCenter sets the center section content.
func (m StatusBarModel) SetCenter(s string) StatusBarModel {
	m.center = s
	return m
}

// SetRight sets the right section content.
func (m StatusBarModel) SetRight(s string) StatusBarModel {
	m.right = s
	return m
}

// SetWidth sets the status bar width.
func (m StatusBarModel) SetWidth(width int) StatusBarModel {
	m.width = width
	return m
}

// View renders the status bar.
func (m StatusBarModel) View() string {
	if m.width <= 0 {
		return ""
	}
	// Padding takes one cell on each side.
	innerWidth := max(m.width-2, 0)

	left := text.Truncate(m.left, innerWidth)
	right := text.Truncate(m.right, max(innerWidth-text.CountVisibleWidth(left)-1, 0))
	center := m.center
	if text.CountVisibleWidth(left)+text.CountVisibleWidth(center)+text.CountVisibleWidth(right)+2 > innerWidth {
		center = ""
	}

	content := iostreams.FlexRow(innerWidth, left, center, right)
	return m.style.Width(m.width).Render(content)
}

// Left returns the left section content.
func (m StatusBarModel) Left() string {
	return m.left
}

// Center returns the center section content.
func (m StatusBarModel) Center() string {
	return m.center
}

// Right returns the right section content.
func (m StatusBarModel) Right() string {
	return m.right
}

// Width returns the status bar width.
func (m StatusBarModel) Width() int {
	return m.width
}

// PositionIndicator renders "label 2/5", the 1-based carousel position.
func PositionIndicator(label string, index, maxIndex int) string {
	return label + " " + strconv.Itoa(index+1) + "/" + strconv.Itoa(maxIndex+1)
}

// AutoplayIndicator renders the autoplay state of a carousel.
func AutoplayIndicator(eligible, paused bool) string {
	switch {
	case !eligible:
		return "autoplay off"
	case paused:
		return "⏸ paused"
	default:
		return "▶ autoplay"
	}
}

// JoinIndicators separates status bar fragments.
func JoinIndicators(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " · ")
}
