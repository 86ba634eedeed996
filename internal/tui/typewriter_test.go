package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novezhyttia/sanctuary/internal/content"
	"github.com/novezhyttia/sanctuary/internal/text"
	"github.com/novezhyttia/sanctuary/internal/typewriter"
)

var testTypist = content.TypistSection{
	PreTitle: "Церква «Нове Життя»",
	Static:   "Ми",
	Words:    []string{"віримо", "любимо"},
}

var fastPacing = typewriter.Config{
	TypingSpeed:   10 * time.Millisecond,
	DeletingSpeed: 5 * time.Millisecond,
	PauseTime:     100 * time.Millisecond,
}

func newTestTypewriter(sched *ManualScheduler, section content.TypistSection) TypewriterModel {
	return NewTypewriter(TypewriterConfig{
		Section:   section,
		Pacing:    fastPacing,
		Width:     60,
		Scheduler: sched.Schedule,
	})
}

func TestTypewriterModel_TypesWord(t *testing.T) {
	sched := NewManualScheduler(time.Unix(0, 0))
	m := newTestTypewriter(sched, testTypist)
	require.True(t, m.Scheduled())
	require.NotNil(t, m.Init())

	for range len([]rune("віримо")) {
		msg, ok := sched.Fire()
		require.True(t, ok)
		m, _ = m.Update(msg)
	}

	assert.Equal(t, "віримо", m.Typist().Text())
	assert.Equal(t, typewriter.Holding, m.Typist().Phase())
	assert.Contains(t, text.StripANSI(m.View()), "Ми віримо")
	assert.Contains(t, text.StripANSI(m.View()), "Нове Життя")
}

func TestTypewriterModel_NoWords(t *testing.T) {
	sched := NewManualScheduler(time.Unix(0, 0))
	m := newTestTypewriter(sched, content.TypistSection{Static: "Ласкаво просимо"})

	assert.False(t, m.Scheduled())
	assert.Nil(t, m.Init())
	assert.Contains(t, text.StripANSI(m.View()), "Ласкаво просимо")
	assert.NotContains(t, m.View(), "▌")

	assert.Empty(t, newTestTypewriter(sched, content.TypistSection{}).View())
}

func TestTypewriterModel_UnmountDropsSteps(t *testing.T) {
	sched := NewManualScheduler(time.Unix(0, 0))
	m := newTestTypewriter(sched, testTypist)
	m.Init()

	m = m.Unmount()
	msg, ok := sched.Fire()
	require.True(t, ok)

	m, cmd := m.Update(msg)
	assert.Nil(t, cmd)
	assert.Empty(t, m.Typist().Text())

	m, cmd = m.Mount()
	assert.NotNil(t, cmd)
	assert.True(t, m.Scheduled())
}

func TestTypewriterModel_SetPacingRestarts(t *testing.T) {
	sched := NewManualScheduler(time.Unix(0, 0))
	m := newTestTypewriter(sched, testTypist)
	m.Init()

	same, cmd := m.SetPacing(fastPacing)
	assert.Nil(t, cmd)
	assert.Equal(t, m.Typist(), same.Typist())

	slower := fastPacing
	slower.TypingSpeed = time.Second
	m, cmd = m.SetPacing(slower)
	require.NotNil(t, cmd)
	assert.Equal(t, time.Second, m.Typist().Config().TypingSpeed)

	stale, _ := sched.Fire()
	m, cmd = m.Update(stale)
	assert.Nil(t, cmd, "the step armed before the change is stale")
}

func TestTypewriterModel_SetPacingDefaultsUnchanged(t *testing.T) {
	sched := NewManualScheduler(time.Unix(0, 0))
	m := NewTypewriter(TypewriterConfig{
		Section:   testTypist,
		Width:     60,
		Scheduler: sched.Schedule,
	})
	m.Init()
	msg, ok := sched.Fire()
	require.True(t, ok)
	m, _ = m.Update(msg)
	typed := m.Typist().Text()
	require.NotEmpty(t, typed)

	m, cmd := m.SetPacing(typewriter.Config{})
	assert.Nil(t, cmd, "zero pacing resolves to the defaults already in use")
	assert.Equal(t, typed, m.Typist().Text(), "the current word keeps typing")

	m, cmd = m.SetPacing(typewriter.Config{PauseTime: typewriter.DefaultPauseTime})
	assert.Nil(t, cmd)
}

func TestTypewriterModel_SetSection(t *testing.T) {
	sched := NewManualScheduler(time.Unix(0, 0))
	m := newTestTypewriter(sched, testTypist)

	m, cmd := m.SetSection(content.TypistSection{Static: "Ми", Words: []string{"служимо"}})
	require.NotNil(t, cmd)
	assert.Equal(t, 0, m.Typist().WordIndex())

	m, cmd = m.SetSection(content.TypistSection{Static: "Ми"})
	assert.Nil(t, cmd)
	assert.False(t, m.Scheduled())
}
