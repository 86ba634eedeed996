package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/novezhyttia/sanctuary/internal/config"
	"github.com/novezhyttia/sanctuary/internal/content"
)

// WatchSettings forwards every settings file change into a running program
// as a SettingsChangedMsg. When loadSite is non-nil the content is re-read
// too; a content error rejects the whole reload.
func WatchSettings(cfg config.Config, loadSite func() (*content.Site, error)) Subscription {
	return func(send func(tea.Msg)) error {
		return cfg.Watch(func(s config.Settings, err error) {
			msg := SettingsChangedMsg{Settings: s, Err: err}
			if err == nil && loadSite != nil {
				site, serr := loadSite()
				if serr != nil {
					msg.Err = fmt.Errorf("content: %w", serr)
				} else {
					msg.Site = site
				}
			}
			send(msg)
		})
	}
}
