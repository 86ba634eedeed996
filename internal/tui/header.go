package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/novezhyttia/sanctuary/internal/content"
	"github.com/novezhyttia/sanctuary/internal/header"
	"github.com/novezhyttia/sanctuary/internal/iostreams"
	"github.com/novezhyttia/sanctuary/internal/text"
)

// inlineNavMinWidth is the narrowest terminal that shows the nav items
// inline; narrower ones collapse them behind the menu key.
const inlineNavMinWidth = 100

// HeaderModel renders the contact top bar and the navigation bar.
// The owning page feeds it the scroll offset.
type HeaderModel struct {
	state  header.State
	brand  string
	topBar content.TopBar
	nav    []header.NavItem
	width  int
	keys   KeyMap
}

// NewHeader creates a header scrolled to the top.
func NewHeader(site *content.Site, topBarHeight, width int) HeaderModel {
	nav := site.Nav
	if len(nav) == 0 {
		nav = header.DefaultNav()
	}
	return HeaderModel{
		state:  header.New(topBarHeight),
		brand:  site.Name,
		topBar: site.TopBar,
		nav:    nav,
		width:  width,
		keys:   DefaultKeyMap(),
	}
}

// Update handles the menu keys. It reports whether the key was consumed.
func (m HeaderModel) Update(msg tea.Msg) (HeaderModel, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, false
	}
	switch {
	case key.Matches(km, m.keys.Menu):
		m.state.ToggleMenu()
		return m, true
	case !m.state.MenuOpen():
		return m, false
	case key.Matches(km, m.keys.Escape):
		m.state.CloseMenu()
		return m, true
	case key.Matches(km, m.keys.GoTo):
		i, _ := DigitIndex(km)
		m.state.ToggleDropdown(i, m.nav)
		return m, true
	}
	return m, false
}

// SetScroll records the page scroll offset. It reports whether the
// navigation bar switched between inline and sticky.
func (m HeaderModel) SetScroll(y int) (HeaderModel, bool) {
	changed := m.state.SetScroll(y)
	return m, changed
}

// SetTopBarHeight applies a reloaded threshold, keeping the scroll offset.
func (m HeaderModel) SetTopBarHeight(h int) HeaderModel {
	y := m.state.ScrollY()
	open := m.state.MenuOpen()
	m.state = header.New(h)
	m.state.SetScroll(y)
	if open {
		m.state.ToggleMenu()
	}
	return m
}

// SetSite applies reloaded content.
func (m HeaderModel) SetSite(site *content.Site) HeaderModel {
	m.brand = site.Name
	m.topBar = site.TopBar
	if len(site.Nav) > 0 {
		m.nav = site.Nav
	}
	m.state.CloseMenu()
	return m
}

// SetWidth sets the width in columns.
func (m HeaderModel) SetWidth(width int) HeaderModel {
	m.width = width
	return m
}

// State returns the header state.
func (m HeaderModel) State() header.State { return m.state }

// IsSticky reports whether the navigation bar is pinned.
func (m HeaderModel) IsSticky() bool { return m.state.IsSticky() }

// TopBarView renders the contact strip. It is exactly TopBarHeight rows
// tall and empty when the height is zero.
func (m HeaderModel) TopBarView() string {
	h := m.state.TopBarHeight()
	if h == 0 || m.width <= 0 {
		return ""
	}
	inner := max(m.width-2, 0)
	contact := JoinIndicators(m.topBar.Phone, m.topBar.Email)
	rows := []string{iostreams.FlexRow(inner, text.Truncate(contact, inner/2), "", text.Truncate(m.topBar.Hours, inner/2))}
	for len(rows) < h {
		rows = append(rows, "")
	}
	return iostreams.TopBarStyle.Width(m.width).Render(strings.Join(rows[:h], "\n"))
}

// NavView renders the navigation bar and, when open, the menu below it.
// The sticky variant carries a bottom rule.
func (m HeaderModel) NavView() string {
	if m.width <= 0 {
		return ""
	}
	style := iostreams.NavBarStyle
	if m.state.IsSticky() {
		style = iostreams.NavBarStickyStyle
	}
	inner := max(m.width-2, 0)

	brand := iostreams.BrandStyle.Render("✝ " + m.brand)
	var right string
	if m.width >= inlineNavMinWidth && !m.state.MenuOpen() {
		items := make([]string, len(m.nav))
		for i, item := range m.nav {
			label := item.Label
			if len(item.Children) > 0 {
				label += " ▾"
			}
			items[i] = iostreams.NavItemStyle.Render(label)
		}
		right = strings.Join(items, "")
	} else {
		right = iostreams.NavItemStyle.Render("☰ меню")
	}
	if text.CountVisibleWidth(brand)+text.CountVisibleWidth(right) > inner {
		right = iostreams.NavItemStyle.Render("☰")
	}
	bar := style.Width(m.width).Render(iostreams.FlexRow(inner, brand, "", right))

	if !m.state.MenuOpen() {
		return bar
	}
	return iostreams.Stack(0, bar, m.menuView())
}

func (m HeaderModel) menuView() string {
	var lines []string
	for i, item := range m.nav {
		label := text.Truncate(item.Label, max(m.width-6, 1))
		prefix := "  "
		if len(item.Children) > 0 {
			prefix = "▸ "
			if m.state.Expanded() == i {
				prefix = "▾ "
			}
		}
		num := ""
		if i < 9 {
			num = string(rune('1'+i)) + " "
		}
		style := iostreams.NavItemStyle
		if m.state.Expanded() == i {
			style = iostreams.NavItemOpenStyle
		}
		lines = append(lines, style.Render(iostreams.MutedStyle.Render(num)+prefix+label))
		if m.state.Expanded() == i {
			for _, child := range item.Children {
				lines = append(lines, iostreams.NavChildStyle.Render(child.Label))
			}
		}
	}
	return strings.Join(lines, "\n")
}
