package breakpoints

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/novezhyttia/sanctuary/internal/cmdutil"
	"github.com/novezhyttia/sanctuary/internal/config"
	"github.com/novezhyttia/sanctuary/internal/iostreams"
)

// BreakpointsOptions holds options for the breakpoints command.
type BreakpointsOptions struct {
	IOStreams *iostreams.IOStreams
	Config    func() (config.Config, error)
	Format    *cmdutil.FormatFlags

	// Carousel is empty for all three.
	Carousel string
	Width    int
}

// NewCmdBreakpoints creates the breakpoints command.
func NewCmdBreakpoints(f *cmdutil.Factory, runF func(context.Context, *BreakpointsOptions) error) *cobra.Command {
	opts := &BreakpointsOptions{
		IOStreams: f.IOStreams,
		Config:    f.Config,
	}

	cmd := &cobra.Command{
		Use:   "breakpoints [hero|events|news]",
		Short: "Show each carousel's breakpoint ladder",
		Long: `Prints the width ranges of each carousel's breakpoint ladder and how many
cards each range shows. The range the given terminal width falls in is
marked. Widths are CSS pixels: columns times display.pixels_per_column.`,
		Example: `  # All carousels at the current terminal width
  sanctuary breakpoints

  # Which news range a 100-column terminal lands in
  sanctuary breakpoints news --width 100`,
		Args:      cmdutil.RequiresMaxArgs(1),
		ValidArgs: config.CarouselNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := cmdutil.CarouselArg(args[0]); err != nil {
					return err
				}
				opts.Carousel = args[0]
			}
			if opts.Width < 0 {
				return cmdutil.FlagErrorf("--width must not be negative, got %d", opts.Width)
			}
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return breakpointsRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Width, "width", "w", 0, "Terminal width in columns (default: current terminal)")
	opts.Format = cmdutil.AddFormatFlags(cmd)

	return cmd
}

// Range is one rung of a carousel's ladder.
type Range struct {
	Carousel string `json:"carousel"`
	Range    string `json:"range"`
	Visible  int    `json:"visible"`
	Active   bool   `json:"active"`
}

// Ranges lists the ladder rungs of each named carousel, marking the one
// widthPx falls in.
func Ranges(s config.Settings, names []string, widthPx int) []Range {
	var out []Range
	for _, name := range names {
		ladder := s.Carousel(name).Ladder()
		active := ladder.RungFor(widthPx)
		for i, d := range ladder.Describe() {
			out = append(out, Range{
				Carousel: name,
				Range:    d.Label,
				Visible:  d.Visible,
				Active:   i == active,
			})
		}
	}
	return out
}

func breakpointsRun(_ context.Context, opts *BreakpointsOptions) error {
	ios := opts.IOStreams

	cfg, err := opts.Config()
	if err != nil {
		return err
	}
	s := cfg.Settings()

	names := config.CarouselNames()
	if opts.Carousel != "" {
		names = []string{opts.Carousel}
	}
	width := opts.Width
	if width == 0 {
		width = ios.TerminalWidth()
	}
	ranges := Ranges(s, names, s.Display.WidthPx(width))

	if opts.Format.IsJSON() {
		return cmdutil.WriteJSON(ios.Out, ranges)
	}

	cs := ios.ColorScheme()
	fmt.Fprintf(ios.ErrOut, "%d columns at %dpx per column is %dpx\n",
		width, s.Display.PixelsPerColumn, s.Display.WidthPx(width))

	tp := ios.NewTablePrinter("CAROUSEL", "RANGE", "VISIBLE", "ACTIVE")
	for _, r := range ranges {
		active := ""
		if r.Active {
			active = cs.Green("◀")
		}
		tp.AddRow(r.Carousel, r.Range, strconv.Itoa(r.Visible), active)
	}
	return tp.Render()
}
