// Package sanctuary is the CLI entry point.
package sanctuary

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/novezhyttia/sanctuary/internal/cmd/factory"
	"github.com/novezhyttia/sanctuary/internal/cmd/root"
	"github.com/novezhyttia/sanctuary/internal/cmdutil"
	"github.com/novezhyttia/sanctuary/internal/iostreams"
	"github.com/novezhyttia/sanctuary/internal/logger"
)

// Build-time variables injected via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = ""
)

const (
	exitOk    = 0
	exitError = 1
	exitUsage = 2
)

// Main is the entry point for the sanctuary CLI.
// It initializes the Factory, creates the root command, and executes it.
func Main() int {
	defer logger.CloseFileWriter()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f := factory.New(Version, Commit)
	return run(ctx, f, os.Args[1:])
}

func run(ctx context.Context, f *cmdutil.Factory, args []string) int {
	rootCmd, err := root.NewCmdRoot(f, Version, BuildDate)
	if err != nil {
		fmt.Fprintf(f.IOStreams.ErrOut, "failed to create root command: %s\n", err)
		return exitError
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(f.IOStreams.Out)
	rootCmd.SetErr(f.IOStreams.ErrOut)

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err != nil {
		return printError(f.IOStreams, cmd, err)
	}
	return exitOk
}

// printError renders err for the user and returns the exit code.
func printError(ios *iostreams.IOStreams, cmd *cobra.Command, err error) int {
	if errors.Is(err, cmdutil.SilentError) {
		return exitError
	}

	var exitErr *cmdutil.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	if errors.Is(err, context.Canceled) {
		return exitError
	}

	cs := ios.ColorScheme()
	fmt.Fprintf(ios.ErrOut, "%s %s\n", cs.FailureIcon(), err)

	var flagErr *cmdutil.FlagError
	if errors.As(err, &flagErr) {
		if cmd != nil {
			fmt.Fprintf(ios.ErrOut, "\n%s", cmd.UsageString())
		}
		return exitUsage
	}

	if cmd != nil {
		fmt.Fprintf(ios.ErrOut, "\nRun '%s --help' for more information.\n", cmd.CommandPath())
	}
	return exitError
}
