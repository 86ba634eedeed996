package docs

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ManHeader is the man page preamble.
type ManHeader struct {
	Section string
	Date    *time.Time
	Manual  string
}

// DefaultManHeader is used when GenMan gets a nil header.
func DefaultManHeader() *ManHeader {
	return &ManHeader{Section: "1", Manual: "Sanctuary Manual"}
}

// GenManTree writes a man page for cmd and every visible subcommand into
// dir, named sanctuary-config-check.1 and so on.
func GenManTree(cmd *cobra.Command, dir string, header *ManHeader) error {
	if header == nil {
		header = DefaultManHeader()
	}
	name := func(c *cobra.Command) string { return fileBase(c, "-") + "." + header.Section }
	return walk(cmd, dir, name, func(c *cobra.Command, w io.Writer) error {
		return GenMan(c, header, w)
	})
}

// GenMan writes the roff man page for a single command.
func GenMan(cmd *cobra.Command, header *ManHeader, w io.Writer) error {
	if header == nil {
		header = DefaultManHeader()
	}
	_, err := w.Write(md2man.Render(manMarkdown(cmd, header)))
	return err
}

// manMarkdown builds the md2man source: a pandoc-style title block then
// NAME, SYNOPSIS and friends as level-one headings.
func manMarkdown(cmd *cobra.Command, header *ManHeader) []byte {
	cmd.InitDefaultHelpFlag()
	buf := new(bytes.Buffer)
	path := cmd.CommandPath()
	section := header.Section
	if section == "" {
		section = "1"
	}

	date := ""
	if header.Date != nil {
		date = header.Date.Format("Jan 2006")
	}
	fmt.Fprintf(buf, "%% %s(%s) %s | %s\n\n", strings.ToUpper(strings.ReplaceAll(path, " ", "-")), section, date, header.Manual)

	short := cmd.Short
	if short == "" {
		short = "manual page for " + path
	}
	fmt.Fprintf(buf, "# NAME\n%s \\- %s\n\n", path, short)

	buf.WriteString("# SYNOPSIS\n**" + path + "**")
	if cmd.NonInheritedFlags().HasAvailableFlags() {
		buf.WriteString(" [OPTIONS]")
	}
	if cmd.HasAvailableSubCommands() {
		buf.WriteString(" COMMAND")
	}
	buf.WriteString("\n\n")

	if cmd.Long != "" {
		buf.WriteString("# DESCRIPTION\n" + cmd.Long + "\n\n")
	}

	if subs := visibleCommands(cmd); len(subs) > 0 {
		buf.WriteString("# COMMANDS\n")
		for _, c := range subs {
			fmt.Fprintf(buf, "**%s**\n: %s\n\n", c.Name(), c.Short)
		}
	}

	own, inherited := cmd.NonInheritedFlags(), cmd.InheritedFlags()
	if own.HasAvailableFlags() || inherited.HasAvailableFlags() {
		buf.WriteString("# OPTIONS\n")
		manFlags(buf, own)
		manFlags(buf, inherited)
	}

	if cmd.Example != "" {
		buf.WriteString("# EXAMPLES\n```\n" + cmd.Example + "\n```\n\n")
	}

	var related []string
	if cmd.HasParent() {
		related = append(related, manRef(cmd.Parent(), section))
	}
	for _, c := range visibleCommands(cmd) {
		related = append(related, manRef(c, section))
	}
	if len(related) > 0 {
		buf.WriteString("# SEE ALSO\n" + strings.Join(related, ", ") + "\n")
	}

	return buf.Bytes()
}

func manFlags(buf *bytes.Buffer, fs *pflag.FlagSet) {
	var flags []*pflag.Flag
	fs.VisitAll(func(f *pflag.Flag) {
		if !f.Hidden {
			flags = append(flags, f)
		}
	})
	sort.Slice(flags, func(i, j int) bool { return flags[i].Name < flags[j].Name })

	for _, f := range flags {
		term := fmt.Sprintf("**--%s**", f.Name)
		if f.Shorthand != "" {
			term = fmt.Sprintf("**-%s**, **--%s**", f.Shorthand, f.Name)
		}
		if t := f.Value.Type(); t != "bool" {
			term += " <" + t + ">"
		}
		buf.WriteString(term + "\n: " + f.Usage)
		switch f.DefValue {
		case "", "false", "0", "[]":
		default:
			fmt.Fprintf(buf, " (default: %s)", f.DefValue)
		}
		buf.WriteString("\n\n")
	}
}

func manRef(cmd *cobra.Command, section string) string {
	return fmt.Sprintf("**%s(%s)**", fileBase(cmd, "-"), section)
}
