package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"

	"github.com/novezhyttia/sanctuary/internal/text"
)

func TestHelpModel_ShortAndFull(t *testing.T) {
	h := NewHelp(DefaultKeyMap(), 200)

	short := text.StripANSI(h.View())
	assert.Contains(t, short, "prev")
	assert.Contains(t, short, "quit")
	assert.NotContains(t, short, "page up")
	assert.False(t, h.ShowAll())

	h = h.ToggleAll()
	assert.True(t, h.ShowAll())
	full := text.StripANSI(h.View())
	assert.Contains(t, full, "page up")
	assert.Contains(t, full, "go to dot")
}

func TestHelpModel_Width(t *testing.T) {
	h := NewHelp(DefaultKeyMap(), 80).SetWidth(30)
	assert.Equal(t, 30, h.Width())
	assert.LessOrEqual(t, text.CountVisibleWidth(h.View()), 30)
}

func TestHelpModel_NoKeys(t *testing.T) {
	assert.Empty(t, HelpModel{}.View())
}

func TestRenderHelpBar(t *testing.T) {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"), key.WithDisabled()),
	}
	out := text.StripANSI(RenderHelpBar(bindings, 80))
	assert.Contains(t, out, "q quit")
	assert.NotContains(t, out, "hidden")
}
