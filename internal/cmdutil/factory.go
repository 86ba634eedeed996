package cmdutil

import (
	"github.com/novezhyttia/sanctuary/internal/config"
	"github.com/novezhyttia/sanctuary/internal/content"
	"github.com/novezhyttia/sanctuary/internal/iostreams"
)

// Factory provides shared dependencies for CLI commands.
// The struct defines what dependencies exist, while internal/cmd/factory
// wires the real implementations.
//
// Closure fields are set by the factory constructor and use lazy
// initialization internally. Commands extract only the fields they
// need into per-command Options structs.
type Factory struct {
	// Set from global flags before any command runs.
	ConfigPath  string
	ContentPath string
	Debug       bool

	// Version info (set at build time via ldflags)
	Version string
	Commit  string

	IOStreams *iostreams.IOStreams

	// Config loads settings.yaml from ConfigPath, or the default location.
	Config func() (config.Config, error)
	// Site loads page content from ContentPath, then the settings'
	// content_file, then the embedded default.
	Site func() (*content.Site, error)
	// ResolveContentPath reports which content file Site reads; empty
	// means the embedded content.
	ResolveContentPath func() (string, error)
}
