package version

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/novezhyttia/sanctuary/internal/cmdutil"
)

// NewCmdVersion creates the "version" subcommand.
func NewCmdVersion(f *cmdutil.Factory, version, buildDate string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of sanctuary",
		Args:  cmdutil.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(f.IOStreams.Out, Format(version, buildDate))
		},
	}

	return cmd
}

// Format returns the version string for display.
func Format(version, buildDate string) string {
	version = strings.TrimPrefix(version, "v")

	var dateStr string
	if buildDate != "" {
		dateStr = fmt.Sprintf(" (%s)", buildDate)
	}

	return fmt.Sprintf("sanctuary version %s%s\n", version, dateStr)
}
