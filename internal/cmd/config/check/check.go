package check

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/novezhyttia/sanctuary/internal/cmdutil"
	"github.com/novezhyttia/sanctuary/internal/config"
	"github.com/novezhyttia/sanctuary/internal/content"
	"github.com/novezhyttia/sanctuary/internal/iostreams"
	"github.com/novezhyttia/sanctuary/internal/logger"
)

// CheckOptions holds options for the config check command.
type CheckOptions struct {
	IOStreams *iostreams.IOStreams
	// ConfigPath and ContentPath report the global --config and
	// --content flags once they are parsed.
	ConfigPath  func() string
	ContentPath func() string

	File string
}

// NewCmdCheck creates the config check command.
func NewCmdCheck(f *cmdutil.Factory, runF func(context.Context, *CheckOptions) error) *cobra.Command {
	opts := &CheckOptions{
		IOStreams:   f.IOStreams,
		ConfigPath:  func() string { return f.ConfigPath },
		ContentPath: func() string { return f.ContentPath },
	}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate settings.yaml and the content file",
		Long: `Validates the settings file and the site content it points at.

Checks for:
  - YAML syntax and unknown keys
  - Breakpoint ladders that ascend with positive visible counts
  - Non-negative intervals, speeds and heights
  - Content items with a unique id and a title`,
		Example: `  # Validate the default settings file
  sanctuary config check

  # Validate a file before installing it
  sanctuary config check --file ./settings.yaml`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return checkRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Settings file to check (default: --config or the sanctuary home)")

	return cmd
}

func checkRun(_ context.Context, opts *CheckOptions) error {
	ios := opts.IOStreams
	cs := ios.ColorScheme()

	path := opts.File
	if path == "" && opts.ConfigPath != nil {
		path = opts.ConfigPath()
	}
	logger.Debug().Str("path", path).Msg("checking settings")

	cfg, err := config.New(path)
	if err != nil {
		fmt.Fprintf(ios.ErrOut, "%s Settings are invalid\n", cs.FailureIcon())
		printProblems(ios, err)
		return cmdutil.SilentError
	}

	if cfg.Loaded() {
		fmt.Fprintf(ios.ErrOut, "%s Settings are valid: %s\n", cs.SuccessIcon(), cfg.Path())
	} else {
		fmt.Fprintf(ios.ErrOut, "%s No settings file at %s; using defaults\n", cs.InfoIcon(), cfg.Path())
	}

	s := cfg.Settings()
	for _, name := range config.CarouselNames() {
		c := s.Carousel(name)
		autoplay := "off"
		if c.AutoplayInterval > 0 {
			autoplay = "every " + c.AutoplayInterval.String()
		}
		fmt.Fprintf(ios.ErrOut, "  %-8s autoplay %s, loop %t, %d %s\n",
			name, autoplay, c.Loop, len(c.Breakpoints)+1, pluralize("range", len(c.Breakpoints)+1))
	}

	contentPath := ""
	if opts.ContentPath != nil {
		contentPath = opts.ContentPath()
	}
	if contentPath == "" {
		contentPath = cfg.ContentPath()
	}
	label := contentPath
	if label == "" {
		label = "built-in content"
	}

	site, err := content.Load(contentPath)
	if err != nil {
		fmt.Fprintf(ios.ErrOut, "%s Content is invalid: %s\n", cs.FailureIcon(), label)
		printProblems(ios, err)
		return cmdutil.SilentError
	}

	fmt.Fprintf(ios.ErrOut, "%s Content is valid: %s\n", cs.SuccessIcon(), label)
	fmt.Fprintf(ios.ErrOut, "  %d hero slides, %d events, %d news items\n",
		len(site.Hero.Slides), len(site.Events.Items), len(site.News.Items))
	return nil
}

// printProblems lists each joined error on its own line.
func printProblems(ios *iostreams.IOStreams, err error) {
	for _, e := range flatten(err) {
		fmt.Fprintf(ios.ErrOut, "  - %s\n", e)
	}
}

// flatten unwraps single-error wrappers down to the first joined error
// and returns its parts. Anything else is returned whole.
func flatten(err error) []error {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			return joined.Unwrap()
		}
	}
	return []error{err}
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
