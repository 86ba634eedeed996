package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novezhyttia/sanctuary/internal/config"
	"github.com/novezhyttia/sanctuary/internal/content"
	"github.com/novezhyttia/sanctuary/internal/iostreams/iostreamstest"
	"github.com/novezhyttia/sanctuary/internal/text"
)

func newTestPage(t *testing.T, sched *ManualScheduler, width, height int) PageModel {
	t.Helper()
	p, err := NewPage(PageConfig{
		IOStreams: iostreamstest.New().IOStreams,
		Settings:  config.DefaultSettings(),
		Site:      testSite(t),
		Width:     width,
		Height:    height,
		Scheduler: sched.Schedule,
	})
	require.NoError(t, err)
	return p
}

func update(t *testing.T, m PageModel, msg tea.Msg) (PageModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	p, ok := next.(PageModel)
	require.True(t, ok)
	return p, cmd
}

func TestNewPage_RequiresSite(t *testing.T) {
	_, err := NewPage(PageConfig{IOStreams: iostreamstest.New().IOStreams})
	assert.Error(t, err)
}

func TestPageModel_InitArmsTimers(t *testing.T) {
	sched := NewManualScheduler(time.Unix(0, 0))
	p := newTestPage(t, sched, 120, 40)

	require.NotNil(t, p.Init())
	// Hero (3 slides), events and news at 960px, plus the typewriter.
	assert.Equal(t, 4, sched.Pending())
}

func TestPageModel_RoutesTicks(t *testing.T) {
	sched := NewManualScheduler(time.Unix(0, 0))
	p := newTestPage(t, sched, 120, 40)
	p.Init()

	hero := p.Carousel(slotHero)
	p, cmd := update(t, p, AutoplayTickMsg{ID: hero.ID(), Tag: hero.Tag()})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, p.Carousel(slotHero).State().CurrentIndex)
	assert.Equal(t, 0, p.Carousel(slotEvents).State().CurrentIndex)
}

func TestPageModel_View(t *testing.T) {
	sched := NewManualScheduler(time.Unix(0, 0))
	p := newTestPage(t, sched, 120, 40)

	view := text.StripANSI(p.View())
	assert.Contains(t, view, "+38 (050) 123-45-67")
	assert.Contains(t, view, "Знайди надію, знайди дім")
	assert.Contains(t, view, "quit")
	assert.Equal(t, 40, len(strings.Split(view, "\n")))
}

func TestPageModel_FocusCycles(t *testing.T) {
	sched := NewManualScheduler(time.Unix(0, 0))
	p := newTestPage(t, sched, 120, 20)
	require.Equal(t, slotHero, p.Focus())
	assert.True(t, p.Carousel(slotHero).Focused())

	p, _ = update(t, p, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, slotEvents, p.Focus())
	assert.True(t, p.Carousel(slotEvents).Focused())
	assert.False(t, p.Carousel(slotHero).Focused())

	p, _ = update(t, p, tea.KeyMsg{Type: tea.KeyTab})
	p, _ = update(t, p, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, slotHero, p.Focus())

	p, _ = update(t, p, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, slotNews, p.Focus())
	assert.Positive(t, p.ScrollY(), "focusing news scrolls it into view")
}

func TestPageModel_KeysReachFocusedCarousel(t *testing.T) {
	sched := NewManualScheduler(time.Unix(0, 0))
	p := newTestPage(t, sched, 120, 40)

	p, _ = update(t, p, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, p.Carousel(slotHero).State().CurrentIndex)
	assert.Equal(t, 0, p.Carousel(slotEvents).State().CurrentIndex)
}

func TestPageModel_ScrollDrivesStickyHeader(t *testing.T) {
	sched := NewManualScheduler(time.Unix(0, 0))
	p := newTestPage(t, sched, 120, 30)
	assert.False(t, p.Header().IsSticky())

	for range 5 {
		p, _ = update(t, p, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 5, p.ScrollY())
	assert.True(t, p.Header().IsSticky())
	assert.Equal(t, 5, p.Header().State().ScrollY())

	p, _ = update(t, p, tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 0, p.ScrollY())
	assert.False(t, p.Header().IsSticky())
}

func TestPageModel_Menu(t *testing.T) {
	sched := NewManualScheduler(time.Unix(0, 0))
	p := newTestPage(t, sched, 80, 40)

	p, _ = update(t, p, runeKey("m"))
	assert.True(t, p.Header().State().MenuOpen())

	p, _ = update(t, p, runeKey("2"))
	assert.Equal(t, 0, p.Carousel(slotHero).State().CurrentIndex, "digits go to the open menu")

	p, _ = update(t, p, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, p.Header().State().MenuOpen())

	p, _ = update(t, p, runeKey("2"))
	assert.Equal(t, 1, p.Carousel(slotHero).State().CurrentIndex)
}

func TestPageModel_Detail(t *testing.T) {
	sched := NewManualScheduler(time.Unix(0, 0))
	p := newTestPage(t, sched, 120, 40)

	p, _ = update(t, p, tea.KeyMsg{Type: tea.KeyTab})
	p, _ = update(t, p, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, p.DetailOpen())

	card, ok := p.Carousel(slotEvents).Selected()
	require.True(t, ok)
	assert.Contains(t, text.StripANSI(p.View()), card.Title)

	p, _ = update(t, p, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, p.Carousel(slotEvents).State().CurrentIndex, "carousel keys are ignored under the detail pane")

	p, _ = update(t, p, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, p.DetailOpen())
}

func TestPageModel_Resize(t *testing.T) {
	sched := NewManualScheduler(time.Unix(0, 0))
	p := newTestPage(t, sched, 160, 40)
	assert.Equal(t, 3, p.Carousel(slotNews).State().VisibleCount, "160 columns is 1280px")

	p, _ = update(t, p, tea.WindowSizeMsg{Width: 70, Height: 30})
	assert.Equal(t, 1, p.Carousel(slotNews).State().VisibleCount)
	assert.Equal(t, 1, p.Carousel(slotEvents).State().VisibleCount)

	for _, l := range strings.Split(text.StripANSI(p.View()), "\n") {
		assert.LessOrEqual(t, text.CountVisibleWidth(l), 70)
	}
}

func TestPageModel_SettingsReload(t *testing.T) {
	sched := NewManualScheduler(time.Unix(0, 0))
	p := newTestPage(t, sched, 120, 40)
	p.Init()

	s := config.DefaultSettings()
	news := s.Carousels[config.CarouselNews]
	news.AutoplayInterval = 0
	s.Carousels[config.CarouselNews] = news

	p, _ = update(t, p, SettingsChangedMsg{Settings: s})
	assert.False(t, p.Carousel(slotNews).Scheduled())
	assert.True(t, p.Carousel(slotEvents).Scheduled())
	assert.NoError(t, p.ReloadError())
}

func TestPageModel_SettingsReloadRejected(t *testing.T) {
	sched := NewManualScheduler(time.Unix(0, 0))
	p := newTestPage(t, sched, 120, 40)

	p, _ = update(t, p, SettingsChangedMsg{Err: errors.New("bad breakpoints")})
	assert.EqualError(t, p.ReloadError(), "bad breakpoints")
	assert.Contains(t, text.StripANSI(p.View()), "settings: bad breakpoints")
	assert.True(t, p.Carousel(slotNews).Scheduled(), "previous settings stay in effect")
}

func TestPageModel_ContentReload(t *testing.T) {
	sched := NewManualScheduler(time.Unix(0, 0))
	p := newTestPage(t, sched, 120, 40)

	site := testSite(t)
	site.Hero.Slides = nil
	site.Events.Items = site.Events.Items[:1]

	p, _ = update(t, p, SettingsChangedMsg{Settings: config.DefaultSettings(), Site: site})
	assert.Equal(t, 0, p.Carousel(slotHero).State().ItemCount)
	assert.Equal(t, slotEvents, p.Focus(), "focus leaves the emptied hero")
	assert.False(t, p.Carousel(slotEvents).Scheduled())
}

func TestPageModel_Quit(t *testing.T) {
	sched := NewManualScheduler(time.Unix(0, 0))
	p := newTestPage(t, sched, 120, 40)

	_, cmd := update(t, p, runeKey("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPageModel_AllEmpty(t *testing.T) {
	site := &content.Site{Name: "Церква"}
	p, err := NewPage(PageConfig{
		IOStreams: iostreamstest.New().IOStreams,
		Settings:  config.DefaultSettings(),
		Site:      site,
		Width:     80,
		Height:    24,
	})
	require.NoError(t, err)
	assert.Equal(t, -1, p.Focus())

	p, _ = update(t, p, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, p.DetailOpen())
}
