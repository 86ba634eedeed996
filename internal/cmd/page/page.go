package page

import (
	"context"

	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/novezhyttia/sanctuary/internal/cmdutil"
	"github.com/novezhyttia/sanctuary/internal/config"
	"github.com/novezhyttia/sanctuary/internal/content"
	"github.com/novezhyttia/sanctuary/internal/iostreams"
	"github.com/novezhyttia/sanctuary/internal/tui"
)

// PageOptions holds options for the page command.
type PageOptions struct {
	IOStreams *iostreams.IOStreams
	Config    func() (config.Config, error)
	Site      func() (*content.Site, error)
	// LoadSite re-reads content on a settings reload.
	LoadSite func() (*content.Site, error)

	NoMouse bool
	Inline  bool
	NoWatch bool
}

// NewCmdPage creates the page command.
func NewCmdPage(f *cmdutil.Factory, runF func(context.Context, *PageOptions) error) *cobra.Command {
	opts := &PageOptions{
		IOStreams: f.IOStreams,
		Config:    f.Config,
		Site:      f.Site,
		LoadSite:  ReloadSite(f),
	}

	cmd := &cobra.Command{
		Use:   "page",
		Short: "Browse the home page",
		Long: `Opens the church home page full screen: the contact bar and navigation,
the hero slider, the typewriter line, upcoming events and the latest news.

Tab moves focus between carousels, arrows page the focused one, enter opens
the first visible card. Editing settings.yaml while the page is open applies
the change immediately.`,
		Example: `  # Open the home page
  sanctuary page

  # Without the alternate screen, leaving the last frame in scrollback
  sanctuary page --inline`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return pageRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.NoMouse, "no-mouse", false, "Disable mouse clicks and wheel scrolling")
	cmd.Flags().BoolVar(&opts.Inline, "inline", false, "Render in the main screen instead of the alternate screen")
	cmd.Flags().BoolVar(&opts.NoWatch, "no-watch", false, "Do not reload settings.yaml on change")

	return cmd
}

// ReloadSite returns the content loader used on settings reloads. The
// --content flag pins the file; otherwise content_file is re-resolved so
// pointing it elsewhere takes effect.
func ReloadSite(f *cmdutil.Factory) func() (*content.Site, error) {
	return func() (*content.Site, error) {
		if f.ResolveContentPath == nil {
			return nil, nil
		}
		path, err := f.ResolveContentPath()
		if err != nil {
			return nil, err
		}
		return content.Load(path)
	}
}

func pageRun(ctx context.Context, opts *PageOptions) error {
	cfg, err := opts.Config()
	if err != nil {
		return err
	}
	site, err := opts.Site()
	if err != nil {
		return err
	}

	z := zone.New()
	defer z.Close()

	model, err := tui.NewPage(tui.PageConfig{
		IOStreams: opts.IOStreams,
		Settings:  cfg.Settings(),
		Site:      site,
		Zone:      z,
	})
	if err != nil {
		return err
	}

	return Run(ctx, opts.IOStreams, model, cfg, ProgramSettings{
		Mouse:    !opts.NoMouse,
		Inline:   opts.Inline,
		Watch:    !opts.NoWatch,
		LoadSite: opts.LoadSite,
	})
}
