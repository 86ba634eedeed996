package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/novezhyttia/sanctuary/internal/config"
	"github.com/novezhyttia/sanctuary/internal/content"
	"github.com/novezhyttia/sanctuary/internal/iostreams"
)

// ShowConfig configures a ShowModel.
type ShowConfig struct {
	IOStreams *iostreams.IOStreams
	Name      string
	Settings  config.Settings
	Site      *content.Site

	// Width and Height in cells. Zero means the terminal size.
	Width  int
	Height int

	Zone      *zone.Manager
	Scheduler Scheduler
}

// ShowModel presents a single carousel full screen.
type ShowModel struct {
	ios      *iostreams.IOStreams
	log      iostreams.Logger
	zone     *zone.Manager
	keys     KeyMap
	carousel CarouselModel
	help     HelpModel

	detail     ViewportModel
	detailOpen bool

	width  int
	height int
	reload error
}

// NewShow creates the single-carousel view for cfg.Name.
func NewShow(cfg ShowConfig) (ShowModel, error) {
	if cfg.IOStreams == nil {
		panic("NewShow: IOStreams must not be nil")
	}
	if cfg.Site == nil {
		return ShowModel{}, fmt.Errorf("show needs site content")
	}
	if !slices.Contains(config.CarouselNames(), cfg.Name) {
		return ShowModel{}, fmt.Errorf("unknown carousel %q (want one of %s)", cfg.Name, strings.Join(config.CarouselNames(), ", "))
	}
	heading, cards, err := cfg.Site.Carousel(cfg.Name)
	if err != nil {
		return ShowModel{}, err
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

	c := NewCarousel(CarouselConfig{
		Name:      cfg.Name,
		Heading:   heading,
		Cards:     cards,
		Settings:  cfg.Settings.Carousel(cfg.Name),
		Display:   cfg.Settings.Display,
		Width:     w,
		Hero:      cfg.Name == config.CarouselHero,
		IOStreams: cfg.IOStreams,
		Zone:      cfg.Zone,
		Scheduler: cfg.Scheduler,
	}).SetFocused(true)

	return ShowModel{
		ios:      cfg.IOStreams,
		log:      loggerFor(cfg.IOStreams),
		zone:     cfg.Zone,
		keys:     DefaultKeyMap(),
		carousel: c,
		help:     NewHelp(showKeys{DefaultKeyMap()}, w),
		width:    w,
		height:   h,
	}, nil
}

// showKeys hides the page-only bindings from the help bar.
type showKeys struct{ KeyMap }

func (k showKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Pause, k.Open, k.Help, k.Quit}
}

func (k showKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last, k.GoTo},
		{k.Pause, k.Open, k.Escape, k.Help, k.Quit},
	}
}

// Init implements tea.Model.
func (m ShowModel) Init() tea.Cmd {
	return m.carousel.Init()
}

// Update implements tea.Model.
func (m ShowModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help = m.help.SetWidth(msg.Width)
		m.carousel, cmd = m.carousel.SetWidth(msg.Width)
		if m.detailOpen {
			m = m.openDetail()
		}

	case AutoplayTickMsg:
		m.carousel, cmd = m.carousel.Update(msg)

	case SettingsChangedMsg:
		if msg.Err != nil {
			m.reload = msg.Err
			m.log.Warn().Err(msg.Err).Msg("settings reload rejected")
			return m, nil
		}
		m.reload = nil
		var cmds []tea.Cmd
		m.carousel, cmd = m.carousel.SetSettings(msg.Settings.Carousel(m.carousel.Name()), msg.Settings.Display)
		cmds = append(cmds, cmd)
		if msg.Site != nil {
			if heading, cards, err := msg.Site.Carousel(m.carousel.Name()); err == nil {
				m.carousel, cmd = m.carousel.SetCards(heading, cards)
				cmds = append(cmds, cmd)
			}
			m.detailOpen = false
		}
		m.log.Info().Str("carousel", m.carousel.Name()).Msg("settings reloaded")
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		if m.detailOpen {
			m.detail, cmd = m.detail.Update(msg)
			break
		}
		m.carousel, cmd = m.carousel.Update(msg)

	case tea.KeyMsg:
		if IsQuit(msg) {
			return m, tea.Quit
		}
		if m.detailOpen {
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
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Help):
			m.help = m.help.ToggleAll()
		case key.Matches(msg, m.keys.Open):
			m = m.openDetail()
		default:
			m.carousel, cmd = m.carousel.Update(msg)
		}
	}
	return m, cmd
}

func (m ShowModel) openDetail() ShowModel {
	card, ok := m.carousel.Selected()
	if !ok {
		return m
	}
	m.detail = NewDetail(m.ios, card, m.width, max(m.height-m.footerHeight(), 1))
	m.detailOpen = true
	return m
}

func (m ShowModel) statusView() string {
	st := m.carousel.State()
	label := m.carousel.Heading().Title
	if label == "" {
		label = m.carousel.Name()
	}
	bar := NewStatusBar(m.width).
		SetLeft(PositionIndicator(label, st.CurrentIndex, st.MaxIndex)).
		SetCenter(AutoplayIndicator(st.Autoplay, m.carousel.Paused())).
		SetRight(fmt.Sprintf("%d of %d visible", st.VisibleCount, st.ItemCount))
	if m.reload != nil {
		bar = bar.SetRight(iostreams.ErrorStyle.Render("settings: " + m.reload.Error()))
	}
	return bar.View()
}

func (m ShowModel) footerHeight() int {
	return iostreams.Height(m.statusView()) + iostreams.Height(m.help.View())
}

// View implements tea.Model.
func (m ShowModel) View() string {
	bodyHeight := max(m.height-m.footerHeight(), 0)

	var body string
	switch {
	case m.detailOpen:
		body = m.detail.View()
	case m.carousel.State().ItemCount == 0:
		body = iostreams.AlignCenter(iostreams.EmptyStateStyle.Render("Nothing to show in "+m.carousel.Name()), m.width)
	default:
		body = m.carousel.View()
	}

	out := iostreams.Stack(0, fitHeight(body, bodyHeight), m.statusView(), m.help.View())
	if m.zone != nil {
		return m.zone.Scan(out)
	}
	return out
}

// Carousel returns the carousel model.
func (m ShowModel) Carousel() CarouselModel { return m.carousel }

// DetailOpen reports whether the detail pane is showing.
func (m ShowModel) DetailOpen() bool { return m.detailOpen }

// fitHeight pads or cuts s to exactly h lines.
func fitHeight(s string, h int) string {
	if h <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
