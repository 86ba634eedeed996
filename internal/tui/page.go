package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/novezhyttia/sanctuary/internal/config"
	"github.com/novezhyttia/sanctuary/internal/content"
	"github.com/novezhyttia/sanctuary/internal/iostreams"
)

// Carousel slots on the page, in page order.
const (
	slotHero = iota
	slotEvents
	slotNews
	slotCount
)

// SettingsChangedMsg carries a settings reload into a running program.
// Site is nil when the content did not change. Err reports a reload that
// failed; the previous settings stay in effect.
type SettingsChangedMsg struct {
	Settings config.Settings
	Site     *content.Site
	Err      error
}

// PageConfig configures a PageModel.
type PageConfig struct {
	IOStreams *iostreams.IOStreams
	Settings  config.Settings
	Site      *content.Site

	// Width and Height in cells. Zero means the terminal size.
	Width  int
	Height int

	Zone      *zone.Manager
	Scheduler Scheduler
}

// PageModel is the full home page: header, hero slider, typewriter,
// events and news, scrolled as one document.
type PageModel struct {
	ios      *iostreams.IOStreams
	log      iostreams.Logger
	settings config.Settings
	site     *content.Site
	zone     *zone.Manager
	keys     KeyMap

	header    HeaderModel
	carousels [slotCount]CarouselModel
	typist    TypewriterModel
	viewport  ViewportModel
	help      HelpModel

	detail     ViewportModel
	detailOpen bool

	focus   int
	offsets [slotCount]int
	width   int
	height  int
	reload  error
}

// NewPage creates the home page.
func NewPage(cfg PageConfig) (PageModel, error) {
	if cfg.IOStreams == nil {
		panic("NewPage: IOStreams must not be nil")
	}
	if cfg.Site == nil {
		return PageModel{}, fmt.Errorf("page needs site content")
	}

	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		tw, th := cfg.IOStreams.TerminalSize()
		if w <= 0 {
			w = tw
		}
		if h <= 0 {
			h = th
		}
	}

	m := PageModel{
		ios:      cfg.IOStreams,
		log:      loggerFor(cfg.IOStreams),
		settings: cfg.Settings,
		site:     cfg.Site,
		zone:     cfg.Zone,
		keys:     DefaultKeyMap(),
		header:   NewHeader(cfg.Site, cfg.Settings.Header.TopBarHeight, w),
		typist: NewTypewriter(TypewriterConfig{
			Section:   cfg.Site.Typist,
			Pacing:    cfg.Settings.Typewriter,
			Width:     w,
			Scheduler: cfg.Scheduler,
		}),
		viewport: NewViewport(ViewportConfig{}),
		help:     NewHelp(DefaultKeyMap(), w),
		width:    w,
		height:   h,
	}

	for slot, name := range config.CarouselNames() {
		heading, cards, err := cfg.Site.Carousel(name)
		if err != nil {
			return PageModel{}, err
		}
		m.carousels[slot] = NewCarousel(CarouselConfig{
			Name:      name,
			Heading:   heading,
			Cards:     cards,
			Settings:  cfg.Settings.Carousel(name),
			Display:   cfg.Settings.Display,
			Width:     w,
			Hero:      slot == slotHero,
			IOStreams: cfg.IOStreams,
			Zone:      cfg.Zone,
			Scheduler: cfg.Scheduler,
		})
	}

	m.focus = m.nextFocus(-1, 1)
	m = m.applyFocus()
	return m.layout(), nil
}

// Init implements tea.Model.
func (m PageModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.typist.Init()}
	for _, c := range m.carousels {
		cmds = append(cmds, c.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m PageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.header = m.header.SetWidth(msg.Width)
		m.typist = m.typist.SetWidth(msg.Width)
		m.help = m.help.SetWidth(msg.Width)
		for i := range m.carousels {
			var cmd tea.Cmd
			m.carousels[i], cmd = m.carousels[i].SetWidth(msg.Width)
			cmds = append(cmds, cmd)
		}
		if m.detailOpen {
			m = m.openDetail()
		}

	case AutoplayTickMsg:
		for i := range m.carousels {
			if m.carousels[i].ID() == msg.ID {
				var cmd tea.Cmd
				m.carousels[i], cmd = m.carousels[i].Update(msg)
				cmds = append(cmds, cmd)
			}
		}

	case TypewriterTickMsg:
		var cmd tea.Cmd
		m.typist, cmd = m.typist.Update(msg)
		cmds = append(cmds, cmd)

	case SettingsChangedMsg:
		var cmd tea.Cmd
		m, cmd = m.applyReload(msg)
		cmds = append(cmds, cmd)

	case tea.MouseMsg:
		if m.detailOpen {
			m.detail, _ = m.detail.Update(msg)
			break
		}
		m.viewport, _ = m.viewport.Update(msg)
		for i := range m.carousels {
			var cmd tea.Cmd
			m.carousels[i], cmd = m.carousels[i].Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		if IsQuit(msg) {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m, cmd = m.handleKey(msg)
		cmds = append(cmds, cmd)
	}

	return m.layout(), tea.Batch(cmds...)
}

func (m PageModel) handleKey(msg tea.KeyMsg) (PageModel, tea.Cmd) {
	if m.detailOpen {
		return m.handleDetailKey(msg), nil
	}

	var used bool
	if m.header, used = m.header.Update(msg); used {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help = m.help.ToggleAll()
	case key.Matches(msg, m.keys.Focus):
		m.focus = m.nextFocus(m.focus, 1)
		m = m.applyFocus().revealFocus()
	case key.Matches(msg, m.keys.FocusBack):
		m.focus = m.nextFocus(m.focus, -1)
		m = m.applyFocus().revealFocus()
	case key.Matches(msg, m.keys.Open):
		m = m.openDetail()
	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport = m.viewport.ScrollUp(1)
	case key.Matches(msg, m.keys.ScrollDn):
		m.viewport = m.viewport.ScrollDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport = m.viewport.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport = m.viewport.PageDown()
	default:
		if m.focus < 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.carousels[m.focus], cmd = m.carousels[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m PageModel) handleDetailKey(msg tea.KeyMsg) PageModel {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Open):
		m.detailOpen = false
	case key.Matches(msg, m.keys.ScrollUp):
		m.detail = m.detail.ScrollUp(1)
	case key.Matches(msg, m.keys.ScrollDn):
		m.detail = m.detail.ScrollDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.detail = m.detail.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.detail = m.detail.PageDown()
	}
	return m
}

// nextFocus returns the next non-empty carousel after from in direction
// dir, wrapping, or -1 when every carousel is empty.
func (m PageModel) nextFocus(from, dir int) int {
	for step := 1; step <= slotCount; step++ {
		i := ((from+dir*step)%slotCount + slotCount) % slotCount
		if m.carousels[i].State().ItemCount > 0 {
			return i
		}
	}
	return -1
}

func (m PageModel) applyFocus() PageModel {
	for i := range m.carousels {
		m.carousels[i] = m.carousels[i].SetFocused(i == m.focus)
	}
	if m.focus >= 0 {
		m.log.Debug().Str("carousel", m.carousels[m.focus].Name()).Msg("focus changed")
	}
	return m
}

// revealFocus scrolls the focused carousel into view when it is off screen.
func (m PageModel) revealFocus() PageModel {
	if m.focus < 0 {
		return m
	}
	// Offsets are from the previous layout; refresh them first.
	m = m.layout()
	top := m.offsets[m.focus]
	if top < m.viewport.YOffset() || top >= m.viewport.YOffset()+m.viewport.Height() {
		m.viewport = m.viewport.SetYOffset(top)
	}
	return m
}

func (m PageModel) openDetail() PageModel {
	if m.focus < 0 {
		return m
	}
	card, ok := m.carousels[m.focus].Selected()
	if !ok {
		return m
	}
	m.detail = NewDetail(m.ios, card, m.width, max(m.height-m.footerHeight(), 1))
	m.detailOpen = true
	m.log.Debug().Str("carousel", m.carousels[m.focus].Name()).Str("card", card.ID).Msg("detail opened")
	return m
}

func (m PageModel) applyReload(msg SettingsChangedMsg) (PageModel, tea.Cmd) {
	if msg.Err != nil {
		m.reload = msg.Err
		m.log.Warn().Err(msg.Err).Msg("settings reload rejected")
		return m, nil
	}
	m.reload = nil

	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.settings = msg.Settings
	for slot, name := range config.CarouselNames() {
		m.carousels[slot], cmd = m.carousels[slot].SetSettings(msg.Settings.Carousel(name), msg.Settings.Display)
		cmds = append(cmds, cmd)
	}
	m.typist, cmd = m.typist.SetPacing(msg.Settings.Typewriter)
	cmds = append(cmds, cmd)
	m.header = m.header.SetTopBarHeight(msg.Settings.Header.TopBarHeight)

	if msg.Site != nil {
		m.site = msg.Site
		m.header = m.header.SetSite(msg.Site)
		m.typist, cmd = m.typist.SetSection(msg.Site.Typist)
		cmds = append(cmds, cmd)
		for slot, name := range config.CarouselNames() {
			heading, cards, err := msg.Site.Carousel(name)
			if err != nil {
				continue
			}
			m.carousels[slot], cmd = m.carousels[slot].SetCards(heading, cards)
			cmds = append(cmds, cmd)
		}
		if m.focus < 0 || m.carousels[m.focus].State().ItemCount == 0 {
			m.focus = m.nextFocus(m.focus, 1)
			m = m.applyFocus()
		}
		m.detailOpen = false
	}

	m.log.Info().Bool("content", msg.Site != nil).Msg("settings reloaded")
	return m, tea.Batch(cmds...)
}

func (m PageModel) footerHeight() int {
	return iostreams.Height(m.statusView()) + iostreams.Height(m.help.View())
}

// layout sizes the viewport, re-renders the document into it and feeds
// the scroll offset back to the header. Pinning the nav bar changes the
// viewport height, so a flip in stickiness takes a second pass.
func (m PageModel) layout() PageModel {
	for range 2 {
		wasSticky := m.header.IsSticky()
		m = m.render()
		if m.header.IsSticky() == wasSticky {
			break
		}
	}
	return m
}

type pageSection struct {
	slot int
	view string
}

func (m PageModel) render() PageModel {
	pinned := 0
	if m.header.IsSticky() {
		pinned = iostreams.Height(m.header.NavView())
	}
	m.viewport = m.viewport.SetSize(m.width, max(m.height-pinned-m.footerHeight(), 1))

	sections := []pageSection{
		{-1, m.header.TopBarView()},
		{-1, m.header.NavView()},
		{slotHero, m.carousels[slotHero].View()},
		{-1, m.typist.View()},
		{slotEvents, m.carousels[slotEvents].View()},
		{slotNews, m.carousels[slotNews].View()},
		{-1, iostreams.AlignCenter(iostreams.MutedStyle.Render("© "+m.site.Name), m.width)},
	}

	line := 0
	var parts []string
	for _, s := range sections {
		if s.view == "" {
			continue
		}
		if s.slot >= 0 {
			m.offsets[s.slot] = line
		}
		parts = append(parts, s.view)
		line += iostreams.Height(s.view) + 1
	}
	m.viewport = m.viewport.SetContent(iostreams.Stack(1, parts...))
	m.header, _ = m.header.SetScroll(m.viewport.YOffset())
	return m
}

func (m PageModel) statusView() string {
	bar := NewStatusBar(m.width)
	if m.focus >= 0 {
		c := m.carousels[m.focus]
		st := c.State()
		label := c.Heading().Title
		if label == "" {
			label = c.Name()
		}
		bar = bar.SetLeft(PositionIndicator(label, st.CurrentIndex, st.MaxIndex)).
			SetCenter(AutoplayIndicator(st.Autoplay, c.Paused()))
	}
	right := strconv.Itoa(int(m.viewport.ScrollPercent()*100)) + "%"
	if m.reload != nil {
		right = iostreams.ErrorStyle.Render("settings: " + m.reload.Error())
	}
	return bar.SetRight(right).View()
}

// View implements tea.Model.
func (m PageModel) View() string {
	var body string
	switch {
	case m.detailOpen:
		body = m.detail.View()
	case m.header.IsSticky():
		body = iostreams.Stack(0, m.header.NavView(), m.viewport.View())
	default:
		body = m.viewport.View()
	}

	out := iostreams.Stack(0, body, m.statusView(), m.help.View())
	if m.zone != nil {
		return m.zone.Scan(out)
	}
	return out
}

// Focus returns the focused carousel slot, or -1.
func (m PageModel) Focus() int { return m.focus }

// Carousel returns the carousel in a slot.
func (m PageModel) Carousel(slot int) CarouselModel { return m.carousels[slot] }

// Header returns the header model.
func (m PageModel) Header() HeaderModel { return m.header }

// DetailOpen reports whether the detail pane is showing.
func (m PageModel) DetailOpen() bool { return m.detailOpen }

// ScrollY returns the page scroll offset.
func (m PageModel) ScrollY() int { return m.viewport.YOffset() }

// ReloadError returns the last rejected reload, if any.
func (m PageModel) ReloadError() error { return m.reload }
