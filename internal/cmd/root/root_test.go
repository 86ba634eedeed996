package root

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novezhyttia/sanctuary/internal/cmdutil"
	"github.com/novezhyttia/sanctuary/internal/config"
	"github.com/novezhyttia/sanctuary/internal/iostreams/iostreamstest"
	"github.com/novezhyttia/sanctuary/internal/logger"
)

func newRoot(t *testing.T) (*cobra.Command, *cmdutil.Factory, *iostreamstest.TestIOStreams) {
	t.Helper()
	t.Setenv(config.HomeEnv, t.TempDir())
	tio := iostreamstest.New()
	f := &cmdutil.Factory{
		Version:   "1.0.0",
		IOStreams: tio.IOStreams,
		Config: func() (config.Config, error) {
			return config.NewFromString("logging:\n  file_enabled: false\n")
		},
	}
	cmd, err := NewCmdRoot(f, "1.0.0", "2026-10-18")
	require.NoError(t, err)
	cmd.SetOut(tio.OutBuf)
	cmd.SetErr(tio.ErrBuf)
	return cmd, f, tio
}

func TestNewCmdRoot(t *testing.T) {
	cmd, _, _ := newRoot(t)

	assert.Equal(t, "sanctuary", cmd.Use)
	assert.Equal(t, "1.0.0", cmd.Version)

	registered := map[string]bool{}
	for _, sub := range cmd.Commands() {
		registered[sub.Name()] = true
	}
	for _, name := range []string{"page", "show", "simulate", "breakpoints", "config", "version", "hero", "events", "news"} {
		assert.True(t, registered[name], "expected subcommand %q", name)
	}
}

func TestNewCmdRoot_GlobalFlags(t *testing.T) {
	cmd, f, tio := newRoot(t)

	for _, name := range []string{"debug", "config", "content"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "expected --%s", name)
	}
	assert.Equal(t, "D", cmd.PersistentFlags().Lookup("debug").Shorthand)

	cmd.SetArgs([]string{"-D", "--config", "/tmp/s.yaml", "--content", "/tmp/c.yaml", "version"})
	require.NoError(t, cmd.Execute())
	assert.True(t, f.Debug)
	assert.Equal(t, "/tmp/s.yaml", f.ConfigPath)
	assert.Equal(t, "/tmp/c.yaml", f.ContentPath)
	assert.Equal(t, "sanctuary version 1.0.0 (2026-10-18)\n", tio.OutBuf.String())
}

func TestNewCmdRoot_UnknownCommand(t *testing.T) {
	cmd, _, _ := newRoot(t)
	cmd.SetArgs([]string{"gallery"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestLoggingConfig(t *testing.T) {
	off := false
	got := loggingConfig(config.LoggingSettings{FileEnabled: &off, MaxSizeMB: 5, MaxAgeDays: 2, MaxBackups: 1})
	assert.Equal(t, &logger.LoggingConfig{FileEnabled: &off, MaxSizeMB: 5, MaxAgeDays: 2, MaxBackups: 1}, got)
	assert.False(t, got.IsFileEnabled())
}

func TestNewCmdRoot_BadFlagIsFlagError(t *testing.T) {
	cmd, _, _ := newRoot(t)
	cmd.SetArgs([]string{"simulate", "news", "--tick", "3"})

	err := cmd.Execute()
	require.Error(t, err)
	var flagErr *cmdutil.FlagError
	assert.ErrorAs(t, err, &flagErr)
}
