package config

import (
	"github.com/spf13/cobra"

	"github.com/novezhyttia/sanctuary/internal/cmd/config/check"
	"github.com/novezhyttia/sanctuary/internal/cmdutil"
)

// NewCmdConfig creates the config command.
func NewCmdConfig(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Settings commands",
		Long:  `Commands for inspecting and validating sanctuary settings.`,
	}

	cmd.AddCommand(check.NewCmdCheck(f, nil))

	return cmd
}
