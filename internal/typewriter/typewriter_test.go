package typewriter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	tw := New("Ми", []string{"віримо"}, Config{})

	assert.Equal(t, DefaultTypingSpeed, tw.Config().TypingSpeed)
	assert.Equal(t, DefaultDeletingSpeed, tw.Config().DeletingSpeed)
	assert.Equal(t, DefaultPauseTime, tw.Config().PauseTime)
	assert.Equal(t, DefaultTypingSpeed, tw.InitialDelay())
	assert.Equal(t, "", tw.Text())
	assert.Equal(t, Typing, tw.Phase())
}

func TestStep_FullCycle(t *testing.T) {
	cfg := Config{TypingSpeed: 10 * time.Millisecond, DeletingSpeed: 5 * time.Millisecond, PauseTime: time.Second}
	tw := New("Ми", []string{"ab", "в"}, cfg)

	assert.Equal(t, 10*time.Millisecond, tw.Step())
	assert.Equal(t, "a", tw.Text())

	assert.Equal(t, time.Second, tw.Step(), "completed word holds for PauseTime")
	assert.Equal(t, "ab", tw.Text())
	assert.Equal(t, Holding, tw.Phase())

	assert.Equal(t, 5*time.Millisecond, tw.Step())
	assert.Equal(t, "a", tw.Text())
	assert.Equal(t, Deleting, tw.Phase())

	assert.Equal(t, 10*time.Millisecond, tw.Step(), "erased word hands over to the next one")
	assert.Equal(t, "", tw.Text())
	assert.Equal(t, 1, tw.WordIndex())
	assert.Equal(t, Typing, tw.Phase())

	assert.Equal(t, time.Second, tw.Step())
	assert.Equal(t, "в", tw.Text(), "multi-byte runes are typed whole")

	tw.Step()
	assert.Equal(t, 0, tw.WordIndex(), "word index wraps")
}

func TestStep_Inactive(t *testing.T) {
	tw := New("Welcome", nil, Config{})

	assert.False(t, tw.Active())
	assert.Equal(t, time.Duration(0), tw.Step())
	assert.Equal(t, time.Duration(0), tw.InitialDelay())
	assert.Equal(t, "", tw.Text())
	assert.Equal(t, "Welcome", tw.Static())
}

func TestStep_EmptyWord(t *testing.T) {
	tw := New("", []string{"", "x"}, Config{PauseTime: time.Second})

	require.Equal(t, time.Second, tw.Step())
	assert.Equal(t, Holding, tw.Phase())

	tw.Step()
	assert.Equal(t, 1, tw.WordIndex())
}

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{Typing, "typing"},
		{Holding, "holding"},
		{Deleting, "deleting"},
		{Phase(9), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.phase.String())
	}
}
