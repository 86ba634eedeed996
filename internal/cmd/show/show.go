package show

import (
	"context"

	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/novezhyttia/sanctuary/internal/cmd/page"
	"github.com/novezhyttia/sanctuary/internal/cmdutil"
	"github.com/novezhyttia/sanctuary/internal/config"
	"github.com/novezhyttia/sanctuary/internal/content"
	"github.com/novezhyttia/sanctuary/internal/iostreams"
	"github.com/novezhyttia/sanctuary/internal/tui"
)

// ShowOptions holds options for the show command.
type ShowOptions struct {
	IOStreams *iostreams.IOStreams
	Config    func() (config.Config, error)
	Site      func() (*content.Site, error)
	LoadSite  func() (*content.Site, error)

	Carousel string
	NoMouse  bool
	Inline   bool
	NoWatch  bool
}

// NewCmdShow creates the show command.
func NewCmdShow(f *cmdutil.Factory, runF func(context.Context, *ShowOptions) error) *cobra.Command {
	opts := &ShowOptions{
		IOStreams: f.IOStreams,
		Config:    f.Config,
		Site:      f.Site,
		LoadSite:  page.ReloadSite(f),
	}

	cmd := &cobra.Command{
		Use:   "show <hero|events|news>",
		Short: "Show a single carousel full screen",
		Long: `Shows one carousel on its own, sized to the terminal. The breakpoint ladder
picks how many cards fit; resizing the terminal re-applies it.`,
		Example: `  # Page through the news
  sanctuary show news

  # Watch the hero slider autoplay
  sanctuary show hero`,
		Args:      cmdutil.ExactArgs(1),
		ValidArgs: config.CarouselNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmdutil.CarouselArg(args[0]); err != nil {
				return err
			}
			opts.Carousel = args[0]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return showRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.NoMouse, "no-mouse", false, "Disable mouse clicks")
	cmd.Flags().BoolVar(&opts.Inline, "inline", false, "Render in the main screen instead of the alternate screen")
	cmd.Flags().BoolVar(&opts.NoWatch, "no-watch", false, "Do not reload settings.yaml on change")

	return cmd
}

func showRun(ctx context.Context, opts *ShowOptions) error {
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

	model, err := tui.NewShow(tui.ShowConfig{
		IOStreams: opts.IOStreams,
		Name:      opts.Carousel,
		Settings:  cfg.Settings(),
		Site:      site,
		Zone:      z,
	})
	if err != nil {
		return err
	}

	return page.Run(ctx, opts.IOStreams, model, cfg, page.ProgramSettings{
		Mouse:    !opts.NoMouse,
		Inline:   opts.Inline,
		Watch:    !opts.NoWatch,
		LoadSite: opts.LoadSite,
	})
}
