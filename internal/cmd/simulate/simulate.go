package simulate

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/novezhyttia/sanctuary/internal/cmdutil"
	"github.com/novezhyttia/sanctuary/internal/config"
	"github.com/novezhyttia/sanctuary/internal/content"
	"github.com/novezhyttia/sanctuary/internal/iostreams"
	"github.com/novezhyttia/sanctuary/internal/tui"
)

// SimulateOptions holds options for the simulate command.
type SimulateOptions struct {
	IOStreams *iostreams.IOStreams
	Config    func() (config.Config, error)
	Site      func() (*content.Site, error)
	Format    *cmdutil.FormatFlags

	Carousel string
	Ticks    int
	Width    int
}

// NewCmdSimulate creates the simulate command.
func NewCmdSimulate(f *cmdutil.Factory, runF func(context.Context, *SimulateOptions) error) *cobra.Command {
	opts := &SimulateOptions{
		IOStreams: f.IOStreams,
		Config:    f.Config,
		Site:      f.Site,
	}

	cmd := &cobra.Command{
		Use:   "simulate <hero|events|news>",
		Short: "Print a carousel's positions over a run of autoplay ticks",
		Long: `Runs a carousel headless on a virtual clock and prints where it stands after
each autoplay tick. Nothing waits in real time, so a minute of autoplay
prints instantly. The output is safe to pipe.`,
		Example: `  # Ten ticks of the news carousel at 100 columns
  sanctuary simulate news --ticks 10 --width 100

  # Machine-readable
  sanctuary simulate events --json`,
		Args:      cmdutil.ExactArgs(1),
		ValidArgs: config.CarouselNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmdutil.CarouselArg(args[0]); err != nil {
				return err
			}
			if opts.Ticks < 0 {
				return cmdutil.FlagErrorf("--ticks must not be negative, got %d", opts.Ticks)
			}
			if opts.Width < 0 {
				return cmdutil.FlagErrorf("--width must not be negative, got %d", opts.Width)
			}
			opts.Carousel = args[0]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return simulateRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Ticks, "ticks", "n", 8, "Number of autoplay ticks to run")
	cmd.Flags().IntVarP(&opts.Width, "width", "w", 0, "Terminal width in columns (default: current terminal)")
	opts.Format = cmdutil.AddFormatFlags(cmd)

	return cmd
}

// Step is the carousel's position after one tick. Tick 0 is the
// initial state.
type Step struct {
	Tick    int      `json:"tick"`
	At      string   `json:"at"`
	Index   int      `json:"index"`
	Visible []string `json:"visible"`
}

// Result is a complete simulation.
type Result struct {
	Carousel     string `json:"carousel"`
	Width        int    `json:"width"`
	WidthPx      int    `json:"width_px"`
	ItemCount    int    `json:"item_count"`
	VisibleCount int    `json:"visible_count"`
	MaxIndex     int    `json:"max_index"`
	Interval     string `json:"interval"`
	Autoplay     bool   `json:"autoplay"`
	Steps        []Step `json:"steps"`
	// Unfired counts requested ticks that never came because autoplay
	// is off.
	Unfired int `json:"unfired,omitempty"`
}

// Simulate runs name for ticks autoplay ticks at width columns.
func Simulate(ios *iostreams.IOStreams, s config.Settings, site *content.Site, name string, width, ticks int) (Result, error) {
	heading, cards, err := site.Carousel(name)
	if err != nil {
		return Result{}, err
	}
	if width <= 0 {
		width = ios.TerminalWidth()
	}

	start := time.Unix(0, 0)
	sched := tui.NewManualScheduler(start)
	m := tui.NewCarousel(tui.CarouselConfig{
		Name:      name,
		Heading:   heading,
		Cards:     cards,
		Settings:  s.Carousel(name),
		Display:   s.Display,
		Width:     width,
		Hero:      name == config.CarouselHero,
		IOStreams: ios,
		Scheduler: sched.Schedule,
	})
	m.Init()

	st := m.State()
	res := Result{
		Carousel:     name,
		Width:        width,
		WidthPx:      s.Display.WidthPx(width),
		ItemCount:    st.ItemCount,
		VisibleCount: st.VisibleCount,
		MaxIndex:     st.MaxIndex,
		Interval:     s.Carousel(name).AutoplayInterval.String(),
		Autoplay:     st.Autoplay,
	}

	record := func(tick int) {
		var visible []string
		for _, c := range m.Visible() {
			visible = append(visible, c.Title)
		}
		res.Steps = append(res.Steps, Step{
			Tick:    tick,
			At:      sched.Now().Sub(start).String(),
			Index:   m.State().CurrentIndex,
			Visible: visible,
		})
	}

	record(0)
	for tick := 1; tick <= ticks; tick++ {
		msg, ok := sched.Fire()
		if !ok {
			res.Unfired = ticks - tick + 1
			break
		}
		m, _ = m.Update(msg)
		record(tick)
	}
	return res, nil
}

func simulateRun(_ context.Context, opts *SimulateOptions) error {
	ios := opts.IOStreams

	cfg, err := opts.Config()
	if err != nil {
		return err
	}
	site, err := opts.Site()
	if err != nil {
		return err
	}

	res, err := Simulate(ios, cfg.Settings(), site, opts.Carousel, opts.Width, opts.Ticks)
	if err != nil {
		return err
	}

	if opts.Format.IsJSON() {
		return cmdutil.WriteJSON(ios.Out, res)
	}

	cs := ios.ColorScheme()
	fmt.Fprintf(ios.ErrOut, "%s at %d columns (%dpx): %d of %d visible, %d %s\n",
		cs.Bold(res.Carousel), res.Width, res.WidthPx, res.VisibleCount, res.ItemCount,
		res.MaxIndex+1, pluralize("position", res.MaxIndex+1))
	if !res.Autoplay {
		fmt.Fprintf(ios.ErrOut, "%s autoplay is off at this width\n", cs.WarningIcon())
	} else if res.Unfired > 0 {
		fmt.Fprintf(ios.ErrOut, "%s %d ticks did not fire\n", cs.WarningIcon(), res.Unfired)
	}

	tp := ios.NewTablePrinter("TICK", "AT", "INDEX", "VISIBLE")
	for _, s := range res.Steps {
		tp.AddRow(strconv.Itoa(s.Tick), s.At, strconv.Itoa(s.Index), strings.Join(s.Visible, " | "))
	}
	return tp.Render()
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
