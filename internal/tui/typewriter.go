package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/novezhyttia/sanctuary/internal/content"
	"github.com/novezhyttia/sanctuary/internal/iostreams"
	"github.com/novezhyttia/sanctuary/internal/typewriter"
)

// TypewriterTickMsg is delivered when the typist's step timer fires.
type TypewriterTickMsg struct {
	ID  int
	Tag int
}

// TypewriterConfig configures a TypewriterModel.
type TypewriterConfig struct {
	Section   content.TypistSection
	Pacing    typewriter.Config
	Width     int
	Scheduler Scheduler
}

// TypewriterModel renders the rotating-word hero. It follows the same
// id and tag scheme as CarouselModel for its step timer.
type TypewriterModel struct {
	id  int
	tag int

	section content.TypistSection
	typist  typewriter.Typist
	width   int

	mounted   bool
	scheduled bool
	schedule  Scheduler
}

// NewTypewriter creates a mounted typewriter. Init arms the first step.
func NewTypewriter(cfg TypewriterConfig) TypewriterModel {
	m := TypewriterModel{
		id:       nextModelID(),
		section:  cfg.Section,
		typist:   typewriter.New(cfg.Section.Static, cfg.Section.Words, cfg.Pacing),
		width:    cfg.Width,
		mounted:  true,
		schedule: cfg.Scheduler,
	}
	if m.schedule == nil {
		m.schedule = tea.Tick
	}
	m.scheduled = m.typist.Active()
	return m
}

// Init implements tea.Model.
func (m TypewriterModel) Init() tea.Cmd {
	if !m.scheduled {
		return nil
	}
	return m.tick(m.typist.InitialDelay())
}

func (m TypewriterModel) tick(d time.Duration) tea.Cmd {
	id, tag := m.id, m.tag
	return m.schedule(d, func(time.Time) tea.Msg {
		return TypewriterTickMsg{ID: id, Tag: tag}
	})
}

// restart drops any pending step and, when there is something to animate,
// arms a fresh one.
func (m *TypewriterModel) restart() tea.Cmd {
	if m.scheduled {
		m.tag++
		m.scheduled = false
	}
	if !m.mounted || !m.typist.Active() {
		return nil
	}
	m.scheduled = true
	return m.tick(m.typist.InitialDelay())
}

// Update implements tea.Model.
func (m TypewriterModel) Update(msg tea.Msg) (TypewriterModel, tea.Cmd) {
	switch msg := msg.(type) {
	case TypewriterTickMsg:
		if msg.ID != m.id || msg.Tag != m.tag || !m.scheduled || !m.mounted {
			return m, nil
		}
		return m, m.tick(m.typist.Step())
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// SetPacing applies new timings. The current word starts over.
func (m TypewriterModel) SetPacing(cfg typewriter.Config) (TypewriterModel, tea.Cmd) {
	if cfg.WithDefaults() == m.typist.Config() {
		return m, nil
	}
	m.typist = typewriter.New(m.section.Static, m.section.Words, cfg)
	cmd := m.restart()
	return m, cmd
}

// SetSection replaces the text. Animation starts over from the first word.
func (m TypewriterModel) SetSection(s content.TypistSection) (TypewriterModel, tea.Cmd) {
	m.section = s
	m.typist = typewriter.New(s.Static, s.Words, m.typist.Config())
	cmd := m.restart()
	return m, cmd
}

// Mount re-arms the step timer after Unmount.
func (m TypewriterModel) Mount() (TypewriterModel, tea.Cmd) {
	if m.mounted {
		return m, nil
	}
	m.mounted = true
	cmd := m.restart()
	return m, cmd
}

// Unmount stops the animation. Steps already in flight are dropped.
func (m TypewriterModel) Unmount() TypewriterModel {
	m.mounted = false
	if m.scheduled {
		m.tag++
		m.scheduled = false
	}
	return m
}

// SetWidth sets the width in columns.
func (m TypewriterModel) SetWidth(width int) TypewriterModel {
	m.width = width
	return m
}

// Typist returns a copy of the typing state.
func (m TypewriterModel) Typist() typewriter.Typist { return m.typist }

// Scheduled reports whether a step is pending.
func (m TypewriterModel) Scheduled() bool { return m.scheduled }

// View renders the pre-title and the static text followed by the
// partially typed word and a cursor.
func (m TypewriterModel) View() string {
	if m.section.Static == "" && !m.typist.Active() {
		return ""
	}

	var b strings.Builder
	b.WriteString(iostreams.TypewriterStaticStyle.Render(m.typist.Static()))
	if m.typist.Active() {
		b.WriteString(" ")
		b.WriteString(iostreams.TypewriterWordStyle.Render(m.typist.Text()))
		b.WriteString(iostreams.CursorStyle.Render("▌"))
	}

	block := iostreams.Stack(0,
		iostreams.PreTitleStyle.Render(m.section.PreTitle),
		b.String(),
	)
	if m.width <= 0 {
		return block
	}
	return iostreams.AlignCenter(block, m.width)
}
