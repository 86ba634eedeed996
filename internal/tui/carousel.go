package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rs/zerolog"

	"github.com/novezhyttia/sanctuary/internal/carousel"
	"github.com/novezhyttia/sanctuary/internal/config"
	"github.com/novezhyttia/sanctuary/internal/content"
	"github.com/novezhyttia/sanctuary/internal/iostreams"
	"github.com/novezhyttia/sanctuary/internal/text"
)

const (
	cardGap       = 1
	cardBodyLines = 4
)

// AutoplayTickMsg is delivered when a carousel's autoplay timer fires.
// ID and Tag identify the model and the schedule that armed it.
type AutoplayTickMsg struct {
	ID  int
	Tag int
}

// CarouselConfig configures a CarouselModel.
type CarouselConfig struct {
	Name     string
	Heading  content.Heading
	Cards    []content.Card
	Settings config.CarouselSettings
	Display  config.DisplaySettings

	// Width in terminal columns. Zero means the terminal width.
	Width int

	// Hero renders full-bleed slides: centered text and call-to-action buttons.
	Hero bool

	IOStreams *iostreams.IOStreams

	// Zone marks arrows and dots as click targets. Nil disables mouse support.
	Zone *zone.Manager

	// Scheduler arms autoplay timers. Nil means tea.Tick.
	Scheduler Scheduler
}

// CarouselModel renders one slider and owns its autoplay timer.
type CarouselModel struct {
	id  int
	tag int

	name    string
	heading content.Heading
	cards   []content.Card
	ctrl    carousel.Controller
	ladder  carousel.Ladder
	display config.DisplaySettings
	width   int
	hero    bool

	paused    bool
	focused   bool
	mounted   bool
	scheduled bool

	schedule Scheduler
	zone     *zone.Manager
	ios      *iostreams.IOStreams
	log      iostreams.Logger
	keys     KeyMap

	bodies map[bodyKey]string
}

type bodyKey struct {
	index int
	width int
}

// NewCarousel creates a mounted carousel. When autoplay is eligible the
// first tick is considered scheduled and Init arms it.
func NewCarousel(cfg CarouselConfig) CarouselModel {
	if cfg.IOStreams == nil {
		panic("NewCarousel: IOStreams must not be nil")
	}

	m := CarouselModel{
		id:       nextModelID(),
		name:     cfg.Name,
		heading:  cfg.Heading,
		cards:    cfg.Cards,
		ladder:   cfg.Settings.Ladder(),
		display:  cfg.Display,
		width:    cfg.Width,
		hero:     cfg.Hero,
		mounted:  true,
		schedule: cfg.Scheduler,
		zone:     cfg.Zone,
		ios:      cfg.IOStreams,
		log:      loggerFor(cfg.IOStreams),
		keys:     DefaultKeyMap(),
		bodies:   make(map[bodyKey]string),
	}
	if m.schedule == nil {
		m.schedule = tea.Tick
	}
	if m.width <= 0 {
		m.width = m.ios.TerminalWidth()
	}

	m.ctrl = carousel.New(carousel.Config{
		ItemCount:        len(cfg.Cards),
		VisibleCount:     m.visibleFor(m.width),
		AutoplayInterval: cfg.Settings.AutoplayInterval,
		Loop:             cfg.Settings.Loop,
	})
	m.scheduled = m.wantAutoplay()
	return m
}

func loggerFor(ios *iostreams.IOStreams) iostreams.Logger {
	if ios.Logger != nil {
		return ios.Logger
	}
	nop := zerolog.Nop()
	return &nop
}

func (m CarouselModel) visibleFor(columns int) int {
	return m.ladder.VisibleFor(m.display.WidthPx(columns))
}

// Init implements tea.Model. It arms the first autoplay tick.
func (m CarouselModel) Init() tea.Cmd {
	if !m.scheduled {
		return nil
	}
	return m.tick()
}

func (m CarouselModel) wantAutoplay() bool {
	return m.mounted && !m.paused && m.ctrl.AutoplayEligible()
}

// sync cancels or arms the autoplay timer to match the model's state.
// Cancelling bumps the tag, so a tick already in flight is ignored.
func (m *CarouselModel) sync(restart bool) tea.Cmd {
	want := m.wantAutoplay()
	if m.scheduled && (!want || restart) {
		m.tag++
		m.scheduled = false
	}
	if want && !m.scheduled {
		m.scheduled = true
		return m.tick()
	}
	return nil
}

func (m CarouselModel) tick() tea.Cmd {
	id, tag := m.id, m.tag
	return m.schedule(m.ctrl.Config().AutoplayInterval, func(time.Time) tea.Msg {
		return AutoplayTickMsg{ID: id, Tag: tag}
	})
}

// Update implements tea.Model.
func (m CarouselModel) Update(msg tea.Msg) (CarouselModel, tea.Cmd) {
	switch msg := msg.(type) {
	case AutoplayTickMsg:
		if msg.ID != m.id || msg.Tag != m.tag || !m.scheduled {
			return m, nil
		}
		if !m.wantAutoplay() {
			m.scheduled = false
			return m, nil
		}
		m.ctrl.Tick()
		m.log.Debug().Str("carousel", m.name).Int("index", m.ctrl.CurrentIndex()).Msg("autoplay advanced")
		return m, m.tick()

	case tea.WindowSizeMsg:
		return m.SetWidth(msg.Width)

	case tea.KeyMsg:
		if !m.focused || m.ctrl.IsEmpty() {
			return m, nil
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.zone == nil || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		for _, id := range m.zoneIDs() {
			if m.zone.Get(id).InBounds(msg) {
				return m.Click(id)
			}
		}
	}
	return m, nil
}

func (m CarouselModel) handleKey(msg tea.KeyMsg) (CarouselModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Prev):
		m.ctrl.Prev()
	case key.Matches(msg, m.keys.Next):
		m.ctrl.Next()
	case key.Matches(msg, m.keys.First):
		m.ctrl.GoTo(0)
	case key.Matches(msg, m.keys.Last):
		m.ctrl.GoTo(m.ctrl.MaxIndex())
	case key.Matches(msg, m.keys.GoTo):
		i, _ := DigitIndex(msg)
		if i >= m.ctrl.DotCount() {
			return m, nil
		}
		m.ctrl.GoTo(i)
	case key.Matches(msg, m.keys.Pause):
		return m.TogglePause()
	default:
		return m, nil
	}
	m.log.Debug().Str("carousel", m.name).Int("index", m.ctrl.CurrentIndex()).Msg("carousel navigated")
	return m, nil
}

// Click handles a click on one of the carousel's zones.
func (m CarouselModel) Click(zoneID string) (CarouselModel, tea.Cmd) {
	switch {
	case zoneID == m.ZonePrev():
		if !m.ctrl.CanGoPrev() {
			return m, nil
		}
		m.ctrl.Prev()
	case zoneID == m.ZoneNext():
		if !m.ctrl.CanGoNext() {
			return m, nil
		}
		m.ctrl.Next()
	case strings.HasPrefix(zoneID, m.zonePrefix()+"dot-"):
		i, err := strconv.Atoi(strings.TrimPrefix(zoneID, m.zonePrefix()+"dot-"))
		if err != nil {
			return m, nil
		}
		m.ctrl.GoTo(i)
	default:
		return m, nil
	}
	m.log.Debug().Str("carousel", m.name).Str("zone", zoneID).Int("index", m.ctrl.CurrentIndex()).Msg("carousel clicked")
	return m, nil
}

// TogglePause pauses or resumes autoplay.
func (m CarouselModel) TogglePause() (CarouselModel, tea.Cmd) {
	m.paused = !m.paused
	cmd := m.sync(false)
	m.log.Debug().Str("carousel", m.name).Bool("paused", m.paused).Msg("autoplay toggled")
	return m, cmd
}

// Mount re-arms autoplay after Unmount.
func (m CarouselModel) Mount() (CarouselModel, tea.Cmd) {
	m.mounted = true
	cmd := m.sync(false)
	return m, cmd
}

// Unmount cancels autoplay. Ticks already in flight are dropped.
func (m CarouselModel) Unmount() CarouselModel {
	m.mounted = false
	m.sync(false)
	return m
}

// SetWidth re-resolves the visible count for a terminal width. Crossing a
// breakpoint restarts the autoplay interval.
func (m CarouselModel) SetWidth(columns int) (CarouselModel, tea.Cmd) {
	if columns = max(columns, 0); columns != m.width {
		m.bodies = make(map[bodyKey]string)
	}
	m.width = columns
	changed := m.ctrl.Reconfigure(len(m.cards), m.visibleFor(m.width))
	if changed {
		m.log.Debug().Str("carousel", m.name).Int("visible", m.ctrl.VisibleCount()).Int("index", m.ctrl.CurrentIndex()).Msg("carousel reconfigured")
	}
	cmd := m.sync(changed)
	return m, cmd
}

// SetSettings applies reloaded settings. A changed interval restarts the
// timer; everything else keeps the current schedule.
func (m CarouselModel) SetSettings(s config.CarouselSettings, display config.DisplaySettings) (CarouselModel, tea.Cmd) {
	restart := s.AutoplayInterval != m.ctrl.Config().AutoplayInterval
	m.ladder = s.Ladder()
	m.display = display
	m.ctrl.SetLoop(s.Loop)
	m.ctrl.SetAutoplayInterval(s.AutoplayInterval)
	m.ctrl.Reconfigure(len(m.cards), m.visibleFor(m.width))
	cmd := m.sync(restart)
	return m, cmd
}

// SetCards replaces the heading and cards, keeping the index when it
// still fits. A changed card count restarts the autoplay interval.
func (m CarouselModel) SetCards(heading content.Heading, cards []content.Card) (CarouselModel, tea.Cmd) {
	m.heading = heading
	m.cards = cards
	m.bodies = make(map[bodyKey]string)
	changed := m.ctrl.Reconfigure(len(cards), m.visibleFor(m.width))
	cmd := m.sync(changed)
	return m, cmd
}

// SetFocused sets whether key presses reach the carousel.
func (m CarouselModel) SetFocused(focused bool) CarouselModel {
	m.focused = focused
	return m
}

// Focused reports whether the carousel receives key presses.
func (m CarouselModel) Focused() bool { return m.focused }

// Name returns the carousel name.
func (m CarouselModel) Name() string { return m.name }

// Heading returns the section heading.
func (m CarouselModel) Heading() content.Heading { return m.heading }

// State returns the controller's current outputs.
func (m CarouselModel) State() carousel.State { return m.ctrl.State() }

// Controller returns a copy of the index controller.
func (m CarouselModel) Controller() carousel.Controller { return m.ctrl }

// ID identifies the model in AutoplayTickMsg.
func (m CarouselModel) ID() int { return m.id }

// Tag is the current schedule generation.
func (m CarouselModel) Tag() int { return m.tag }

// Paused reports whether autoplay was paused by the user.
func (m CarouselModel) Paused() bool { return m.paused }

// Scheduled reports whether an autoplay tick is pending.
func (m CarouselModel) Scheduled() bool { return m.scheduled }

// Mounted reports whether the carousel is on screen.
func (m CarouselModel) Mounted() bool { return m.mounted }

// Width returns the width in columns.
func (m CarouselModel) Width() int { return m.width }

// Visible returns the cards currently in the window.
func (m CarouselModel) Visible() []content.Card {
	return carousel.Window(m.ctrl, m.cards)
}

// Selected returns the first visible card.
func (m CarouselModel) Selected() (content.Card, bool) {
	v := m.Visible()
	if len(v) == 0 {
		return content.Card{}, false
	}
	return v[0], true
}

func (m CarouselModel) zonePrefix() string {
	return fmt.Sprintf("%s-%d-", m.name, m.id)
}

// ZonePrev is the click zone of the previous arrow.
func (m CarouselModel) ZonePrev() string { return m.zonePrefix() + "prev" }

// ZoneNext is the click zone of the next arrow.
func (m CarouselModel) ZoneNext() string { return m.zonePrefix() + "next" }

// ZoneDot is the click zone of dot i.
func (m CarouselModel) ZoneDot(i int) string { return m.zonePrefix() + "dot-" + strconv.Itoa(i) }

func (m CarouselModel) zoneIDs() []string {
	ids := []string{m.ZonePrev(), m.ZoneNext()}
	for i := range m.ctrl.DotCount() {
		ids = append(ids, m.ZoneDot(i))
	}
	return ids
}

func (m CarouselModel) mark(id, s string) string {
	if m.zone == nil {
		return s
	}
	return m.zone.Mark(id, s)
}

// View renders the heading, the visible cards and, unless every card
// fits, the arrows and dots. An empty carousel renders nothing.
func (m CarouselModel) View() string {
	if m.ctrl.IsEmpty() || m.width <= 0 {
		return ""
	}
	return iostreams.Stack(1,
		m.renderHeading(),
		m.renderTrack(),
		m.renderControls(),
	)
}

func (m CarouselModel) renderHeading() string {
	h := m.heading
	if h.PreTitle == "" && h.Title == "" && h.Description == "" {
		return ""
	}
	var lines []string
	if h.PreTitle != "" {
		lines = append(lines, iostreams.PreTitleStyle.Render(text.Truncate(h.PreTitle, m.width)))
	}
	if h.Title != "" {
		title := h.Title
		if m.focused {
			title = "▸ " + title
		}
		lines = append(lines, iostreams.SectionTitleStyle.Render(text.Truncate(title, m.width)))
	}
	if h.Description != "" {
		for _, l := range text.WrapLines(h.Description, m.width) {
			lines = append(lines, iostreams.MutedStyle.Render(l))
		}
	}
	return iostreams.AlignCenter(strings.Join(lines, "\n"), m.width)
}

func (m CarouselModel) renderTrack() string {
	window := m.Visible()
	start, _ := m.ctrl.Bounds()

	cardWidth := iostreams.ColumnWidth(m.width, cardGap, m.ctrl.VisibleCount())
	// Border and padding take two cells each side.
	inner := max(cardWidth-4, 1)

	bodies := make([]string, len(window))
	height := 0
	for i, c := range window {
		bodies[i] = m.renderCardContent(start+i, c, inner)
		height = max(height, iostreams.Height(bodies[i]))
	}

	style := iostreams.CardStyle
	if m.focused {
		style = iostreams.CardFocusedStyle
	}
	rendered := make([]string, len(window))
	for i, b := range bodies {
		rendered[i] = style.Width(max(cardWidth-2, 1)).Height(height).Render(b)
	}
	return iostreams.Row(cardGap, rendered...)
}

func (m CarouselModel) renderCardContent(index int, c content.Card, width int) string {
	var lines []string

	var meta []string
	if c.Tag != "" {
		meta = append(meta, iostreams.TagStyle.Render(c.Tag))
	}
	if c.Date != "" {
		meta = append(meta, iostreams.CardDateStyle.Render(c.Date))
	}
	if len(meta) > 0 {
		lines = append(lines, text.Truncate(strings.Join(meta, " "), width))
	}
	if c.PreTitle != "" {
		lines = append(lines, iostreams.PreTitleStyle.Render(text.Truncate(c.PreTitle, width)))
	}

	titleStyle := iostreams.CardTitleStyle
	if m.hero {
		titleStyle = iostreams.HeroTitleStyle
	}
	for _, l := range text.WrapLines(c.Title, width) {
		lines = append(lines, titleStyle.Render(l))
	}

	if body := m.renderBody(index, c.Body, width); body != "" {
		lines = append(lines, body)
	}

	if len(c.Labels) > 0 {
		badges := make([]string, len(c.Labels))
		for i, l := range c.Labels {
			badges[i] = iostreams.LabelBadgeStyle.Render(l)
		}
		lines = append(lines, text.Truncate(strings.Join(badges, " "), width))
	}

	if len(c.Actions) > 0 {
		buttons := make([]string, len(c.Actions))
		for i, a := range c.Actions {
			if i == 0 {
				buttons[i] = iostreams.ButtonStyle.Render(a.Text)
			} else {
				buttons[i] = iostreams.LinkStyle.Render(a.Text)
			}
		}
		lines = append(lines, "", text.Truncate(strings.Join(buttons, "  "), width))
	}

	out := strings.Join(lines, "\n")
	if m.hero {
		return iostreams.AlignCenter(out, width)
	}
	return out
}

// renderBody renders the card body as markdown, cached per card and width.
// Non-hero bodies are clipped to a few lines.
func (m CarouselModel) renderBody(index int, body string, width int) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	k := bodyKey{index: index, width: width}
	if out, ok := m.bodies[k]; ok {
		return out
	}

	out, err := m.ios.RenderMarkdown(body, width)
	if err != nil {
		m.log.Warn().Err(err).Str("carousel", m.name).Msg("markdown render failed, using plain text")
		out = strings.Join(text.WrapLines(body, width), "\n")
	}
	if !m.hero {
		out = clampLines(out, cardBodyLines, width)
	}
	if m.hero {
		out = iostreams.HeroSubtitleStyle.Render(out)
	}
	if m.bodies != nil {
		m.bodies[k] = out
	}
	return out
}

func clampLines(s string, n, width int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	lines = lines[:n]
	last := text.StripANSI(lines[n-1])
	lines[n-1] = text.Truncate(strings.TrimRight(last, " ")+" "+text.Ellipsis, width)
	return strings.Join(lines, "\n")
}

func (m CarouselModel) renderControls() string {
	st := m.ctrl.State()
	if !st.ShowControls() {
		return ""
	}

	prevStyle, nextStyle := iostreams.ArrowStyle, iostreams.ArrowStyle
	if !st.CanGoPrev {
		prevStyle = iostreams.ArrowDisabledStyle
	}
	if !st.CanGoNext {
		nextStyle = iostreams.ArrowDisabledStyle
	}

	dots := make([]string, st.DotCount)
	for i := range dots {
		if i == st.CurrentIndex {
			dots[i] = m.mark(m.ZoneDot(i), iostreams.DotActiveStyle.Render("●"))
		} else {
			dots[i] = m.mark(m.ZoneDot(i), iostreams.DotStyle.Render("○"))
		}
	}

	row := m.mark(m.ZonePrev(), prevStyle.Render("‹")) +
		" " + strings.Join(dots, " ") + " " +
		m.mark(m.ZoneNext(), nextStyle.Render("›"))
	return iostreams.AlignCenter(row, m.width)
}
