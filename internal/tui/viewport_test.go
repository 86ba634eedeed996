package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func lines(n int) string {
	out := make([]string, n)
	for i := range out {
		out[i] = "line"
	}
	return strings.Join(out, "\n")
}

func TestNewViewport(t *testing.T) {
	v := NewViewport(ViewportConfig{Width: 80, Height: 24, Title: "Подія"})

	assert.Equal(t, "Подія", v.Title())
	assert.Equal(t, 80, v.Width())
	assert.Equal(t, 24, v.Height())
}

func TestViewportModel_SetSizeReservesTitle(t *testing.T) {
	v := NewViewport(ViewportConfig{Width: 80, Height: 24})
	v = v.SetSize(120, 40)
	assert.Equal(t, 40, v.Height())

	v = v.SetTitle("Новини").SetSize(120, 40)
	assert.Equal(t, 120, v.Width())
	assert.Equal(t, 39, v.Height())
}

func TestViewportModel_Scrolling(t *testing.T) {
	v := NewViewport(ViewportConfig{Width: 20, Height: 3, Content: lines(10)})
	assert.True(t, v.AtTop())
	assert.Equal(t, 0.0, v.ScrollPercent())

	v = v.ScrollDown(2)
	assert.Equal(t, 2, v.YOffset())

	v = v.ScrollUp(5)
	assert.Equal(t, 0, v.YOffset())

	v = v.PageDown()
	assert.Equal(t, 3, v.YOffset())

	v = v.PageUp()
	assert.True(t, v.AtTop())

	v = v.ScrollToBottom()
	assert.True(t, v.AtBottom())
	assert.Equal(t, 7, v.YOffset())
	assert.Equal(t, 1.0, v.ScrollPercent())

	v = v.ScrollToTop()
	assert.Equal(t, 0, v.YOffset())

	v = v.SetYOffset(5)
	assert.Equal(t, 5, v.YOffset())
	v = v.SetYOffset(50)
	assert.Equal(t, 7, v.YOffset())
}

func TestViewportModel_SetContentKeepsOffset(t *testing.T) {
	v := NewViewport(ViewportConfig{Width: 20, Height: 3, Content: lines(10)})
	v = v.ScrollDown(4)
	v = v.SetContent(lines(12))
	assert.Equal(t, 4, v.YOffset())
}

func TestViewportModel_UpdateIgnoresKeys(t *testing.T) {
	v := NewViewport(ViewportConfig{Width: 20, Height: 3, Content: lines(10)})

	updated, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, updated.YOffset())

	updated, _ = v.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Positive(t, updated.YOffset())
}

func TestViewportModel_View(t *testing.T) {
	v := NewViewport(ViewportConfig{Width: 40, Height: 10, Title: "My Panel", Content: "Panel content"})
	view := v.View()
	assert.Contains(t, view, "My Panel")
	assert.Contains(t, view, "Panel content")

	v = NewViewport(ViewportConfig{Width: 40, Height: 10, Content: "Just content"})
	assert.Contains(t, v.View(), "Just content")
}
