package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novezhyttia/sanctuary/internal/config"
	"github.com/novezhyttia/sanctuary/internal/content"
)

// fakeConfig captures the Watch callback so tests can fire changes.
type fakeConfig struct {
	config.Config
	onChange func(config.Settings, error)
	watchErr error
}

func (f *fakeConfig) Watch(onChange func(config.Settings, error)) error {
	f.onChange = onChange
	return f.watchErr
}

func TestWatchSettings(t *testing.T) {
	site := testSite(t)
	tests := []struct {
		name     string
		loadSite func() (*content.Site, error)
		fireErr  error
		wantErr  string
		wantSite bool
	}{
		{name: "settings only"},
		{name: "with content", loadSite: func() (*content.Site, error) { return site, nil }, wantSite: true},
		{name: "content fails", loadSite: func() (*content.Site, error) { return nil, errors.New("bad yaml") }, wantErr: "content: bad yaml"},
		{name: "settings fail", fireErr: errors.New("bad ladder"), loadSite: func() (*content.Site, error) { return site, nil }, wantErr: "bad ladder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &fakeConfig{}
			var got []tea.Msg
			require.NoError(t, WatchSettings(cfg, tt.loadSite)(func(m tea.Msg) { got = append(got, m) }))
			require.NotNil(t, cfg.onChange)

			cfg.onChange(config.DefaultSettings(), tt.fireErr)
			require.Len(t, got, 1)
			msg, ok := got[0].(SettingsChangedMsg)
			require.True(t, ok)
			if tt.wantErr != "" {
				assert.EqualError(t, msg.Err, tt.wantErr)
			} else {
				assert.NoError(t, msg.Err)
			}
			assert.Equal(t, tt.wantSite, msg.Site != nil)
		})
	}
}

func TestWatchSettings_WatchError(t *testing.T) {
	cfg := &fakeConfig{watchErr: errors.New("no file")}
	err := WatchSettings(cfg, nil)(func(tea.Msg) {})
	assert.EqualError(t, err, "no file")
}
