// Package docs renders the sanctuary command tree as Markdown reference
// pages and man pages.
package docs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// reference is the documentation-relevant view of one command.
type reference struct {
	path        string
	short       string
	long        string
	useLine     string
	runnable    bool
	aliases     []string
	example     string
	subcommands []*cobra.Command
	flags       string
	inherited   string
	parent      *cobra.Command
}

func newReference(cmd *cobra.Command) reference {
	cmd.InitDefaultHelpFlag()
	r := reference{
		path:        cmd.CommandPath(),
		short:       cmd.Short,
		long:        cmd.Long,
		useLine:     cmd.UseLine(),
		runnable:    cmd.Runnable(),
		aliases:     cmd.Aliases,
		example:     cmd.Example,
		subcommands: visibleCommands(cmd),
		parent:      cmd.Parent(),
	}
	if fs := cmd.NonInheritedFlags(); fs.HasAvailableFlags() {
		r.flags = fs.FlagUsages()
	}
	if fs := cmd.InheritedFlags(); fs.HasAvailableFlags() {
		r.inherited = fs.FlagUsages()
	}
	return r
}

// visibleCommands returns the non-hidden subcommands sorted by name.
func visibleCommands(cmd *cobra.Command) []*cobra.Command {
	var out []*cobra.Command
	for _, c := range cmd.Commands() {
		if !c.Hidden && c.Name() != "help" && c.Name() != "completion" {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// walk writes one file per visible command in the tree rooted at cmd.
func walk(cmd *cobra.Command, dir string, name func(*cobra.Command) string, gen func(*cobra.Command, io.Writer) error) error {
	for _, c := range visibleCommands(cmd) {
		if err := walk(c, dir, name, gen); err != nil {
			return err
		}
	}

	filename := filepath.Join(dir, name(cmd))
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", filename, err)
	}
	defer f.Close()

	return gen(cmd, f)
}

func fileBase(cmd *cobra.Command, sep string) string {
	return strings.ReplaceAll(cmd.CommandPath(), " ", sep)
}
