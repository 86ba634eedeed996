package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/novezhyttia/sanctuary/internal/text"
)

func TestNewStatusBar(t *testing.T) {
	sb := NewStatusBar(80)
	assert.Equal(t, 80, sb.Width())
	assert.Empty(t, sb.Left())
	assert.Empty(t, sb.Center())
	assert.Empty(t, sb.Right())
}

func TestStatusBarModel_Setters(t *testing.T) {
	sb := NewStatusBar(80).
		SetLeft("left").
		SetCenter("center").
		SetRight("right").
		SetWidth(120)

	assert.Equal(t, "left", sb.Left())
	assert.Equal(t, "center", sb.Center())
	assert.Equal(t, "right", sb.Right())
	assert.Equal(t, 120, sb.Width())
}

func TestStatusBarModel_View(t *testing.T) {
	tests := []struct {
		name     string
		bar      StatusBarModel
		contains []string
		missing  []string
	}{
		{
			name:     "all sections",
			bar:      NewStatusBar(60).SetLeft("Події 2/4").SetCenter("▶ autoplay").SetRight("1200px"),
			contains: []string{"Події 2/4", "▶ autoplay", "1200px"},
		},
		{
			name:     "center dropped when crowded",
			bar:      NewStatusBar(24).SetLeft("Новини 1/3").SetCenter("autoplay").SetRight("640px"),
			contains: []string{"Новини 1/3", "640px"},
			missing:  []string{"autoplay"},
		},
		{
			name: "zero width",
			bar:  NewStatusBar(0).SetLeft("x"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := text.StripANSI(tt.bar.View())
			for _, s := range tt.contains {
				assert.Contains(t, view, s)
			}
			for _, s := range tt.missing {
				assert.NotContains(t, view, s)
			}
			if tt.bar.Width() > 0 {
				assert.Equal(t, tt.bar.Width(), text.CountVisibleWidth(view))
			} else {
				assert.Empty(t, view)
			}
		})
	}
}

func TestIndicators(t *testing.T) {
	assert.Equal(t, "Події 2/4", PositionIndicator("Події", 1, 3))
	assert.Equal(t, "autoplay off", AutoplayIndicator(false, false))
	assert.Equal(t, "⏸ paused", AutoplayIndicator(true, true))
	assert.Equal(t, "▶ autoplay", AutoplayIndicator(true, false))
	assert.Equal(t, "a · b", JoinIndicators("a", "", "b"))
}
