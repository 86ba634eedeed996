package cmdutil

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantJSON bool
		wantErr  bool
	}{
		{name: "empty is table", raw: ""},
		{name: "table", raw: "table"},
		{name: "json", raw: "json", wantJSON: true},
		{name: "unknown", raw: "yaml", wantErr: true},
		{name: "template", raw: "{{.Index}}", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFormat(tt.raw)
			if tt.wantErr {
				var flagErr *FlagError
				require.True(t, errors.As(err, &flagErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantJSON, f.IsJSON())
			assert.Equal(t, !tt.wantJSON, f.IsTable())
		})
	}
}

func runFormatCmd(t *testing.T, args ...string) (*FormatFlags, error) {
	t.Helper()
	cmd := &cobra.Command{
		Use:  "test",
		RunE: func(*cobra.Command, []string) error { return nil },
	}
	ff := AddFormatFlags(cmd)
	cmd.SetArgs(args)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return ff, cmd.Execute()
}

func TestAddFormatFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantJSON bool
		wantErr  string
	}{
		{name: "default", args: nil},
		{name: "json shorthand", args: []string{"--json"}, wantJSON: true},
		{name: "format json", args: []string{"--format", "json"}, wantJSON: true},
		{name: "format table", args: []string{"--format", "table"}},
		{name: "both", args: []string{"--json", "--format", "table"}, wantErr: "mutually exclusive"},
		{name: "bad format", args: []string{"--format", "xml"}, wantErr: "invalid format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ff, err := runFormatCmd(t, tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantJSON, ff.IsJSON())
		})
	}
}

func TestAddFormatFlags_PreservesExistingPreRunE(t *testing.T) {
	called := false
	cmd := &cobra.Command{
		Use:     "test",
		PreRunE: func(*cobra.Command, []string) error { called = true; return nil },
		RunE:    func(*cobra.Command, []string) error { return nil },
	}
	AddFormatFlags(cmd)
	cmd.SetArgs([]string{"--json"})
	require.NoError(t, cmd.Execute())
	assert.True(t, called)
}
