package cmdutil

import (
	"github.com/spf13/cobra"
)

// Format mode constants for --format flag parsing.
const (
	ModeDefault = ""
	ModeTable   = "table"
	ModeJSON    = "json"
)

// Format is a parsed --format flag value.
type Format struct {
	mode string
}

// ParseFormat parses a raw --format flag value. Only "", "table" and
// "json" are recognised; anything else is a FlagError.
func ParseFormat(raw string) (Format, error) {
	switch raw {
	case ModeDefault, ModeTable:
		return Format{mode: ModeTable}, nil
	case ModeJSON:
		return Format{mode: ModeJSON}, nil
	default:
		return Format{}, FlagErrorf("invalid format %q: want \"table\" or \"json\"", raw)
	}
}

// IsJSON reports whether the format is JSON output.
func (f Format) IsJSON() bool { return f.mode == ModeJSON }

// IsTable reports whether the format is the default table output.
func (f Format) IsTable() bool { return f.mode == ModeTable || f.mode == ModeDefault }

// FormatFlags holds parsed state for the --format and --json flags.
type FormatFlags struct {
	Format Format
}

// IsJSON reports whether the format is JSON output.
func (ff *FormatFlags) IsJSON() bool { return ff.Format.IsJSON() }

// AddFormatFlags registers --format and --json on the command and chains
// PreRunE validation for mutual exclusivity.
//
// The returned FormatFlags is populated during PreRunE; commands read it
// in RunE after flag parsing is complete.
func AddFormatFlags(cmd *cobra.Command) *FormatFlags {
	ff := &FormatFlags{Format: Format{mode: ModeTable}}

	cmd.Flags().String("format", "", `Output format: "table" or "json"`)
	cmd.Flags().Bool("json", false, "Output as JSON (shorthand for --format json)")

	existingPreRunE := cmd.PreRunE
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if existingPreRunE != nil {
			if err := existingPreRunE(cmd, args); err != nil {
				return err
			}
		}

		if cmd.Flags().Changed("json") && cmd.Flags().Changed("format") {
			return FlagErrorf("--format and --json are mutually exclusive")
		}
		if jsonFlag, _ := cmd.Flags().GetBool("json"); jsonFlag {
			ff.Format = Format{mode: ModeJSON}
			return nil
		}

		raw, _ := cmd.Flags().GetString("format")
		parsed, err := ParseFormat(raw)
		if err != nil {
			return err
		}
		ff.Format = parsed
		return nil
	}

	return ff
}
