package docs

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// GenMarkdownTree writes a Markdown page for cmd and every visible
// subcommand into dir, named after the command path (sanctuary_config_check.md).
func GenMarkdownTree(cmd *cobra.Command, dir string) error {
	return walk(cmd, dir, markdownFilename, GenMarkdown)
}

// GenMarkdown writes the Markdown page for a single command.
func GenMarkdown(cmd *cobra.Command, w io.Writer) error {
	r := newReference(cmd)
	buf := new(bytes.Buffer)

	fmt.Fprintf(buf, "## %s\n\n", r.path)
	if r.short != "" {
		buf.WriteString(r.short + "\n\n")
	}

	if r.runnable || len(r.subcommands) > 0 {
		buf.WriteString("### Synopsis\n\n")
		if r.long != "" {
			buf.WriteString(r.long + "\n\n")
		}
		if r.runnable {
			buf.WriteString("```\n" + r.useLine + "\n```\n\n")
		}
	}

	if len(r.aliases) > 0 {
		quoted := make([]string, len(r.aliases))
		for i, a := range r.aliases {
			quoted[i] = "`" + a + "`"
		}
		buf.WriteString("### Aliases\n\n" + strings.Join(quoted, ", ") + "\n\n")
	}

	if r.example != "" {
		buf.WriteString("### Examples\n\n```\n" + r.example + "\n```\n\n")
	}

	if len(r.subcommands) > 0 {
		buf.WriteString("### Commands\n\n")
		for _, c := range r.subcommands {
			fmt.Fprintf(buf, "* [%s](%s) - %s\n", c.CommandPath(), markdownFilename(c), c.Short)
		}
		buf.WriteString("\n")
	}

	if r.flags != "" {
		buf.WriteString("### Options\n\n```\n" + r.flags + "```\n\n")
	}
	if r.inherited != "" {
		buf.WriteString("### Global options\n\n```\n" + r.inherited + "```\n\n")
	}

	if r.parent != nil {
		fmt.Fprintf(buf, "### See also\n\n* [%s](%s) - %s\n", r.parent.CommandPath(), markdownFilename(r.parent), r.parent.Short)
	}

	_, err := buf.WriteTo(w)
	return err
}

func markdownFilename(cmd *cobra.Command) string {
	return fileBase(cmd, "_") + ".md"
}
