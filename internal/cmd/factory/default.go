// Package factory wires the production cmdutil.Factory.
package factory

import (
	"os"
	"sync"

	"github.com/novezhyttia/sanctuary/internal/cmdutil"
	"github.com/novezhyttia/sanctuary/internal/config"
	"github.com/novezhyttia/sanctuary/internal/content"
	"github.com/novezhyttia/sanctuary/internal/iostreams"
	"github.com/novezhyttia/sanctuary/internal/logger"
)

// New creates a fully-wired Factory with lazy-initialized dependency closures.
// Called exactly once at the CLI entry point (cmd/sanctuary).
// Tests should NOT import this package; construct &cmdutil.Factory{} directly.
func New(version, commit string) *cmdutil.Factory {
	ios := iostreams.System()
	ios.Logger = logger.Global{}

	if !ios.IsOutputTTY() || os.Getenv("NO_COLOR") != "" {
		ios.SetColorEnabled(false)
	}

	f := &cmdutil.Factory{
		Version:   version,
		Commit:    commit,
		IOStreams: ios,
	}

	// Config and Site read f.ConfigPath and f.ContentPath on first use,
	// after cobra has parsed the global flags.
	var (
		configOnce sync.Once
		cfg        config.Config
		configErr  error
	)
	f.Config = func() (config.Config, error) {
		configOnce.Do(func() {
			cfg, configErr = config.New(f.ConfigPath)
		})
		return cfg, configErr
	}

	f.ResolveContentPath = func() (string, error) {
		if f.ContentPath != "" {
			return f.ContentPath, nil
		}
		c, err := f.Config()
		if err != nil {
			return "", err
		}
		return c.ContentPath(), nil
	}

	var (
		siteOnce sync.Once
		site     *content.Site
		siteErr  error
	)
	f.Site = func() (*content.Site, error) {
		siteOnce.Do(func() {
			path, err := f.ResolveContentPath()
			if err != nil {
				siteErr = err
				return
			}
			site, siteErr = content.Load(path)
		})
		return site, siteErr
	}

	return f
}
