// Package header holds the page header's transient state: the scroll offset
// that decides when the top bar gives way to the sticky navigation bar, and
// the collapsed mobile menu.
package header

// DefaultTopBarHeight is the height of the contact top bar. Once the page has
// scrolled past it, the navigation bar becomes sticky.
const DefaultTopBarHeight = 2

// NavItem is one navigation link, optionally with a dropdown.
type NavItem struct {
	Label    string    `yaml:"label"`
	Href     string    `yaml:"href"`
	Children []NavItem `yaml:"children,omitempty"`
}

// State is owned by the page and updated from its scroll events.
type State struct {
	topBarHeight int
	scrollY      int
	menuOpen     bool
	expanded     int
}

// New returns header state scrolled to the top with the menu closed.
func New(topBarHeight int) State {
	if topBarHeight < 0 {
		topBarHeight = 0
	}
	return State{topBarHeight: topBarHeight, expanded: -1}
}

// SetScroll records the latest scroll offset. Negative offsets (overscroll)
// count as the top of the page. It reports whether stickiness flipped.
func (s *State) SetScroll(y int) bool {
	was := s.IsSticky()
	s.scrollY = max(y, 0)
	return was != s.IsSticky()
}

// ScrollY returns the last recorded scroll offset.
func (s State) ScrollY() int { return s.scrollY }

// TopBarHeight returns the stickiness threshold.
func (s State) TopBarHeight() int { return s.topBarHeight }

// IsSticky reports whether the top bar has scrolled away.
func (s State) IsSticky() bool { return s.scrollY > s.topBarHeight }

// ToggleMenu opens or closes the mobile menu. Closing it also collapses any
// expanded dropdown.
func (s *State) ToggleMenu() {
	s.menuOpen = !s.menuOpen
	if !s.menuOpen {
		s.expanded = -1
	}
}

// CloseMenu closes the mobile menu, as following a link does.
func (s *State) CloseMenu() {
	s.menuOpen = false
	s.expanded = -1
}

// MenuOpen reports whether the mobile menu is showing.
func (s State) MenuOpen() bool { return s.menuOpen }

// ToggleDropdown expands the dropdown of the nav item at index i, or
// collapses it if it is already expanded. Out-of-range indexes collapse.
func (s *State) ToggleDropdown(i int, items []NavItem) {
	if i < 0 || i >= len(items) || len(items[i].Children) == 0 || s.expanded == i {
		s.expanded = -1
		return
	}
	s.expanded = i
}

// Expanded returns the index of the expanded dropdown, or -1.
func (s State) Expanded() int { return s.expanded }

// DefaultNav is the site navigation.
func DefaultNav() []NavItem {
	return []NavItem{
		{Label: "Головна", Href: "/"},
		{Label: "Про нас", Href: "/about"},
		{
			Label: "Служіння",
			Href:  "/ministries",
			Children: []NavItem{
				{Label: "Дитяче служіння", Href: "/ministries/children"},
				{Label: "Молодіжне служіння", Href: "/ministries/youth"},
				{Label: "Жіноче служіння", Href: "/ministries/women"},
				{Label: "Чоловіче служіння", Href: "/ministries/men"},
			},
		},
		{Label: "Новини", Href: "/news"},
		{Label: "Медіа", Href: "/media"},
		{Label: "Контакти", Href: "/contact"},
	}
}
