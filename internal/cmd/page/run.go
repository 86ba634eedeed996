package page

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/novezhyttia/sanctuary/internal/config"
	"github.com/novezhyttia/sanctuary/internal/content"
	"github.com/novezhyttia/sanctuary/internal/iostreams"
	"github.com/novezhyttia/sanctuary/internal/logger"
	"github.com/novezhyttia/sanctuary/internal/tui"
)

// ProgramSettings are the terminal options shared by page and show.
type ProgramSettings struct {
	Mouse    bool
	Inline   bool
	Watch    bool
	LoadSite func() (*content.Site, error)
}

// ProgramOptions converts ps into tui program options. Watching needs a
// settings file on disk; without one the page runs on defaults.
func ProgramOptions(ctx context.Context, cfg config.Config, ps ProgramSettings) []tui.ProgramOption {
	opts := []tui.ProgramOption{
		tui.WithContext(ctx),
		tui.WithAltScreen(!ps.Inline),
		tui.WithMouse(ps.Mouse),
	}
	if ps.Watch && cfg.Loaded() {
		opts = append(opts, tui.WithSubscription(tui.WatchSettings(cfg, ps.LoadSite)))
	}
	return opts
}

// Run runs model full screen. Console logging is muted for the duration
// so log lines do not tear the frame; the log file still receives them.
func Run(ctx context.Context, ios *iostreams.IOStreams, model tea.Model, cfg config.Config, ps ProgramSettings) error {
	logger.SetInteractiveMode(true)
	defer logger.SetInteractiveMode(false)

	logger.Debug().
		Str("settings", cfg.Path()).
		Bool("watch", ps.Watch && cfg.Loaded()).
		Msg("starting program")

	_, err := tui.RunProgram(ios, model, ProgramOptions(ctx, cfg, ps)...)
	return err
}
