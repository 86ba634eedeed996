package root

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/novezhyttia/sanctuary/internal/cmd/show"
	"github.com/novezhyttia/sanctuary/internal/cmdutil"
	"github.com/novezhyttia/sanctuary/internal/config"
)

// Alias defines a top-level shortcut to a subcommand with some of its
// arguments filled in, so `sanctuary news` runs `sanctuary show news`.
// Each alias creates a new command instance from the factory, overriding
// Use, Short and Args while inheriting flags and RunE.
type Alias struct {
	// Use sets the command's Use field (required)
	Use string
	// Short replaces the command's Short field
	Short string
	// Args are prepended to whatever the user passes
	Args []string
	// Command is a factory function that creates the target command
	Command func(*cmdutil.Factory) *cobra.Command
}

func showCmd(f *cmdutil.Factory) *cobra.Command { return show.NewCmdShow(f, nil) }

// topLevelAliases defines all top-level shortcuts to subcommands.
var topLevelAliases = []Alias{
	{Use: config.CarouselHero, Short: "Show the hero slider (alias for show hero)", Args: []string{config.CarouselHero}, Command: showCmd},
	{Use: config.CarouselEvents, Short: "Show upcoming events (alias for show events)", Args: []string{config.CarouselEvents}, Command: showCmd},
	{Use: config.CarouselNews, Short: "Show the latest news (alias for show news)", Args: []string{config.CarouselNews}, Command: showCmd},
}

// registerAliases adds all top-level aliases to the root command.
func registerAliases(root *cobra.Command, f *cmdutil.Factory) {
	for _, a := range topLevelAliases {
		root.AddCommand(a.build(f))
	}
}

func (a Alias) build(f *cmdutil.Factory) *cobra.Command {
	if a.Use == "" || a.Command == nil {
		panic(fmt.Sprintf("invalid alias %+v", a))
	}
	cmd := a.Command(f)
	cmd.Use = a.Use
	if a.Short != "" {
		cmd.Short = a.Short
	}
	cmd.Example = ""
	cmd.ValidArgs = nil

	run := cmd.RunE
	cmd.Args = cmdutil.NoArgs
	cmd.RunE = func(c *cobra.Command, args []string) error {
		return run(c, slices.Concat(a.Args, args))
	}
	return cmd
}
