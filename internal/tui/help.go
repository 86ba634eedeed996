package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/novezhyttia/sanctuary/internal/iostreams"
)

// HelpModel is the help bar at the bottom of every view. It wraps
// bubbles/help with the sanctuary palette.
type HelpModel struct {
	help help.Model
	keys help.KeyMap
}

// NewHelp creates a help bar for the given bindings.
func NewHelp(keys help.KeyMap, width int) HelpModel {
	h := help.New()
	h.Width = width
	h.ShortSeparator = " • "
	h.FullSeparator = "   "
	h.Styles.ShortKey = iostreams.HelpKeyStyle
	h.Styles.ShortDesc = iostreams.HelpDescStyle
	h.Styles.ShortSeparator = iostreams.HelpSeparatorStyle
	h.Styles.FullKey = iostreams.HelpKeyStyle
	h.Styles.FullDesc = iostreams.HelpDescStyle
	h.Styles.FullSeparator = iostreams.HelpSeparatorStyle
	h.Styles.Ellipsis = iostreams.HelpSeparatorStyle
	return HelpModel{help: h, keys: keys}
}

// SetWidth sets the help bar width.
func (m HelpModel) SetWidth(width int) HelpModel {
	m.help.Width = width
	return m
}

// ToggleAll switches between the short and full help.
func (m HelpModel) ToggleAll() HelpModel {
	m.help.ShowAll = !m.help.ShowAll
	return m
}

// ShowAll reports whether the full help is shown.
func (m HelpModel) ShowAll() bool {
	return m.help.ShowAll
}

// Width returns the help bar width.
func (m HelpModel) Width() int {
	return m.help.Width
}

// View renders the help bar.
func (m HelpModel) View() string {
	if m.keys == nil {
		return ""
	}
	return m.help.View(m.keys)
}

// RenderHelpBar renders a one-line help bar for bindings that are not
// grouped into a KeyMap.
func RenderHelpBar(bindings []key.Binding, width int) string {
	return NewHelp(bindingList(bindings), width).View()
}

type bindingList []key.Binding

func (b bindingList) ShortHelp() []key.Binding  { return b }
func (b bindingList) FullHelp() [][]key.Binding { return [][]key.Binding{b} }
