package check

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novezhyttia/sanctuary/internal/cmdutil"
	"github.com/novezhyttia/sanctuary/internal/config"
	"github.com/novezhyttia/sanctuary/internal/iostreams/iostreamstest"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func runCheck(t *testing.T, f *cmdutil.Factory, args ...string) (*iostreamstest.TestIOStreams, error) {
	t.Helper()
	tio := iostreamstest.New()
	f.IOStreams = tio.IOStreams
	cmd := NewCmdCheck(f, nil)
	cmd.SetArgs(args)
	cmd.SetOut(tio.OutBuf)
	cmd.SetErr(tio.ErrBuf)
	cmd.SilenceErrors = true
	return tio, cmd.Execute()
}

func TestNewCmdCheck_fileFlag(t *testing.T) {
	tio := iostreamstest.New()
	f := &cmdutil.Factory{IOStreams: tio.IOStreams, ConfigPath: "/etc/sanctuary.yaml"}

	var gotOpts *CheckOptions
	cmd := NewCmdCheck(f, func(_ context.Context, opts *CheckOptions) error {
		gotOpts = opts
		return nil
	})
	cmd.SetArgs([]string{"-f", "/some/path.yaml"})
	require.NoError(t, cmd.Execute())
	require.NotNil(t, gotOpts)
	assert.Equal(t, "/some/path.yaml", gotOpts.File)
	assert.Equal(t, "/etc/sanctuary.yaml", gotOpts.ConfigPath())
	assert.Empty(t, gotOpts.ContentPath())
}

func TestCheckRun_NoSettingsFile(t *testing.T) {
	t.Setenv(config.HomeEnv, t.TempDir())

	tio, err := runCheck(t, &cmdutil.Factory{})
	require.NoError(t, err)
	out := tio.ErrBuf.String()
	assert.Contains(t, out, "using defaults")
	assert.Contains(t, out, "news     autoplay every 5s, loop true, 3 ranges")
	assert.Contains(t, out, "hero     autoplay every 6s, loop true, 1 range")
	assert.Contains(t, out, "Content is valid: built-in content")
	assert.Contains(t, out, "3 hero slides, 4 events, 5 news items")
}

func TestCheckRun_ValidFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.HomeEnv, dir)
	path := writeFile(t, dir, "settings.yaml", `carousels:
  events:
    autoplay_interval: 0
    loop: false
`)

	tio, err := runCheck(t, &cmdutil.Factory{ConfigPath: path})
	require.NoError(t, err)
	out := tio.ErrBuf.String()
	assert.Contains(t, out, "Settings are valid: "+path)
	assert.Contains(t, out, "events   autoplay off, loop false")
}

func TestCheckRun_InvalidSettings(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.HomeEnv, dir)

	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "bad ladder and interval",
			body: `carousels:
  news:
    autoplay_interval: -5
    breakpoints:
      - max_width: 900
        visible: 2
      - max_width: 600
        visible: 0
`,
			want: []string{"carousels.news.autoplay_interval", "carousels.news.breakpoints"},
		},
		{
			name: "typo",
			body: "carousels:\n  news:\n    autoplay_intervall: 5s\n",
			want: []string{"autoplay_intervall"},
		},
		{
			name: "syntax",
			body: "carousels: [unclosed\n",
			want: []string{"Settings are invalid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "settings.yaml", tt.body)
			tio, err := runCheck(t, &cmdutil.Factory{}, "--file", path)
			assert.ErrorIs(t, err, cmdutil.SilentError)
			out := tio.ErrBuf.String()
			assert.Contains(t, out, "Settings are invalid")
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestCheckRun_InvalidContent(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.HomeEnv, dir)
	contentPath := writeFile(t, dir, "church.yaml", `name: Церква
news:
  items:
    - id: "1"
      title: Перша
    - id: "1"
      title: ""
`)
	settings := writeFile(t, dir, "settings.yaml", "content_file: church.yaml\n")

	tio, err := runCheck(t, &cmdutil.Factory{ConfigPath: settings})
	assert.ErrorIs(t, err, cmdutil.SilentError)
	out := tio.ErrBuf.String()
	assert.Contains(t, out, "Content is invalid: "+contentPath)
	assert.Contains(t, out, `news[1]: duplicate id "1"`)
	assert.Contains(t, out, "news[1]: missing title")
}

func TestCheckRun_ContentFlagWins(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.HomeEnv, dir)
	writeFile(t, dir, "settings.yaml", "content_file: missing.yaml\n")
	good := writeFile(t, dir, "good.yaml", "name: Церква\n")

	tio, err := runCheck(t, &cmdutil.Factory{ContentPath: good})
	require.NoError(t, err)
	assert.Contains(t, tio.ErrBuf.String(), "Content is valid: "+good)
}
