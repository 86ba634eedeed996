package tui

import (
	"sort"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Scheduler arms a one-shot timer that delivers fn's message after d.
// tea.Tick is the production scheduler.
type Scheduler func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

var lastModelID atomic.Int64

// nextModelID hands out the ids that tie timer messages to the model that
// armed them.
func nextModelID() int {
	return int(lastModelID.Add(1))
}

type pendingTick struct {
	at  time.Time
	seq int
	fn  func(time.Time) tea.Msg
}

// ManualScheduler records scheduled ticks on a virtual clock instead of
// arming real timers. Headless simulation and tests drive it with Fire.
type ManualScheduler struct {
	now     time.Time
	seq     int
	pending []pendingTick
}

// NewManualScheduler returns a scheduler whose clock starts at start.
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

// Schedule is a Scheduler. The tick is registered immediately; the
// returned command produces no message.
func (s *ManualScheduler) Schedule(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	s.seq++
	s.pending = append(s.pending, pendingTick{at: s.now.Add(d), seq: s.seq, fn: fn})
	return func() tea.Msg { return nil }
}

// Pending returns how many ticks are waiting to fire.
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}

// Now returns the virtual clock.
func (s *ManualScheduler) Now() time.Time {
	return s.now
}

// Fire advances the clock to the earliest pending tick and returns its
// message. It reports false when nothing is pending.
func (s *ManualScheduler) Fire() (tea.Msg, bool) {
	if len(s.pending) == 0 {
		return nil, false
	}
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].at.Equal(s.pending[j].at) {
			return s.pending[i].seq < s.pending[j].seq
		}
		return s.pending[i].at.Before(s.pending[j].at)
	})
	next := s.pending[0]
	s.pending = s.pending[1:]
	if next.at.After(s.now) {
		s.now = next.at
	}
	return next.fn(s.now), true
}

// Drain fires every pending tick without delivering the messages.
func (s *ManualScheduler) Drain() []tea.Msg {
	var msgs []tea.Msg
	for {
		msg, ok := s.Fire()
		if !ok {
			return msgs
		}
		msgs = append(msgs, msg)
	}
}
