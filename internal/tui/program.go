// Package tui renders the home page and its carousels as bubbletea models.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/novezhyttia/sanctuary/internal/iostreams"
)

// ProgramOption configures a BubbleTea program.
type ProgramOption func(*programOptions)

// Subscription feeds messages into a running program. It is called once,
// after the program is created and before it starts.
type Subscription func(send func(tea.Msg)) error

type programOptions struct {
	ctx           context.Context
	altScreen     bool
	mouse         bool
	subscriptions []Subscription
}

func defaultProgramOptions() programOptions {
	return programOptions{}
}

// WithAltScreen enables or disables the alternate screen buffer.
func WithAltScreen(enabled bool) ProgramOption {
	return func(o *programOptions) {
		o.altScreen = enabled
	}
}

// WithMouse enables cell-motion mouse events, needed for clickable
// arrows and dots and for wheel scrolling.
func WithMouse(enabled bool) ProgramOption {
	return func(o *programOptions) {
		o.mouse = enabled
	}
}

// WithContext stops the program when ctx is cancelled.
func WithContext(ctx context.Context) ProgramOption {
	return func(o *programOptions) {
		o.ctx = ctx
	}
}

// WithSubscription registers an external message source.
func WithSubscription(sub Subscription) ProgramOption {
	return func(o *programOptions) {
		if sub != nil {
			o.subscriptions = append(o.subscriptions, sub)
		}
	}
}

// RunProgram creates and runs a BubbleTea program with the given IOStreams.
// Terminal queries are answered before the program takes over stdin.
// It returns the final model state after the program exits.
func RunProgram(ios *iostreams.IOStreams, model tea.Model, opts ...ProgramOption) (tea.Model, error) {
	cfg := defaultProgramOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	teaOpts := []tea.ProgramOption{
		tea.WithInput(ios.In),
		tea.WithOutput(ios.ErrOut),
	}

	if cfg.ctx != nil {
		teaOpts = append(teaOpts, tea.WithContext(cfg.ctx))
	}

	if cfg.altScreen {
		teaOpts = append(teaOpts, tea.WithAltScreen())
	}

	if cfg.mouse {
		teaOpts = append(teaOpts, tea.WithMouseCellMotion())
	}

	ios.PrepareTerminal()

	p := tea.NewProgram(model, teaOpts...)
	for _, sub := range cfg.subscriptions {
		if err := sub(p.Send); err != nil {
			return model, fmt.Errorf("failed to subscribe program: %w", err)
		}
	}
	return p.Run()
}
