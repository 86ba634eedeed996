// gen-docs generates the sanctuary CLI reference as Markdown and man pages.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/novezhyttia/sanctuary/internal/cmd/root"
	"github.com/novezhyttia/sanctuary/internal/cmdutil"
	"github.com/novezhyttia/sanctuary/internal/docs"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("gen-docs", pflag.ContinueOnError)

	var (
		flagDocPath  string
		flagMarkdown bool
		flagManPage  bool
	)

	flags.StringVar(&flagDocPath, "doc-path", "", "Output directory for generated docs (required)")
	flags.BoolVar(&flagMarkdown, "markdown", false, "Generate Markdown documentation")
	flags.BoolVar(&flagManPage, "man-page", false, "Generate man pages")

	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n\n%s", filepath.Base(args[0]), flags.FlagUsages())
	}

	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	if flagDocPath == "" {
		return fmt.Errorf("--doc-path is required")
	}
	if !flagMarkdown && !flagManPage {
		return fmt.Errorf("at least one format must be specified (--markdown, --man-page)")
	}

	rootCmd, err := root.NewCmdRoot(&cmdutil.Factory{}, "", "")
	if err != nil {
		return fmt.Errorf("building command tree: %w", err)
	}

	if flagMarkdown {
		dir := filepath.Join(flagDocPath, "markdown")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create markdown directory: %w", err)
		}
		if err := docs.GenMarkdownTree(rootCmd, dir); err != nil {
			return fmt.Errorf("failed to generate Markdown documentation: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Generated Markdown documentation in %s\n", dir)
	}

	if flagManPage {
		dir := filepath.Join(flagDocPath, "man")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create man directory: %w", err)
		}
		if err := docs.GenManTree(rootCmd, dir, nil); err != nil {
			return fmt.Errorf("failed to generate man pages: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Generated man pages in %s\n", dir)
	}

	return nil
}
