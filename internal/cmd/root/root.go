package root

import (
	"github.com/spf13/cobra"

	"github.com/novezhyttia/sanctuary/internal/cmd/breakpoints"
	configcmd "github.com/novezhyttia/sanctuary/internal/cmd/config"
	"github.com/novezhyttia/sanctuary/internal/cmd/page"
	"github.com/novezhyttia/sanctuary/internal/cmd/show"
	"github.com/novezhyttia/sanctuary/internal/cmd/simulate"
	versioncmd "github.com/novezhyttia/sanctuary/internal/cmd/version"
	"github.com/novezhyttia/sanctuary/internal/cmdutil"
	"github.com/novezhyttia/sanctuary/internal/config"
	"github.com/novezhyttia/sanctuary/internal/logger"
)

// NewCmdRoot creates the root command for the sanctuary CLI.
func NewCmdRoot(f *cmdutil.Factory, version, buildDate string) (*cobra.Command, error) {
	pageCmd := page.NewCmdPage(f, nil)

	cmd := &cobra.Command{
		Use:   "sanctuary",
		Short: "Browse the Нове Життя home page in the terminal",
		Long: `Sanctuary renders the church home page in the terminal: the hero slider,
upcoming events and the latest news as autoplaying carousels that adapt to
the terminal width.

Quick start:
  sanctuary                  # Open the home page
  sanctuary news             # Just the news carousel
  sanctuary breakpoints      # How many cards fit at this width
  sanctuary config check     # Validate ~/.config/sanctuary/settings.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cmdutil.NoArgs,
		Annotations: map[string]string{
			"versionInfo": versioncmd.Format(version, buildDate),
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initializeLogger(f)

			logger.Debug().
				Str("version", f.Version).
				Str("command", cmd.CommandPath()).
				Bool("debug", f.Debug).
				Msg("sanctuary starting")

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return pageCmd.RunE(cmd, args)
		},
		Version: f.Version,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&f.Debug, "debug", "D", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&f.ConfigPath, "config", "", "Settings file (default: $SANCTUARY_HOME/settings.yaml)")
	cmd.PersistentFlags().StringVar(&f.ContentPath, "content", "", "Site content file (default: content_file from settings, else built-in)")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cmdutil.FlagErrorWrap(err)
	})

	cmd.SetVersionTemplate(versioncmd.Format(version, buildDate))

	registerAliases(cmd, f)

	cmd.AddCommand(pageCmd)
	cmd.AddCommand(show.NewCmdShow(f, nil))
	cmd.AddCommand(simulate.NewCmdSimulate(f, nil))
	cmd.AddCommand(breakpoints.NewCmdBreakpoints(f, nil))
	cmd.AddCommand(configcmd.NewCmdConfig(f))
	cmd.AddCommand(versioncmd.NewCmdVersion(f, version, buildDate))

	return cmd, nil
}

// initializeLogger sets up the logger with file logging if possible.
// Falls back to console-only logging on any errors.
func initializeLogger(f *cmdutil.Factory) {
	if f.Config == nil {
		logger.Init(f.Debug)
		return
	}

	cfg, err := f.Config()
	if err != nil {
		logger.Init(f.Debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to load settings")
		return
	}

	logsDir, err := config.LogsDir()
	if err != nil {
		logger.Init(f.Debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to get logs directory")
		return
	}

	if err := logger.InitWithFile(f.Debug, logsDir, loggingConfig(cfg.Settings().Logging)); err != nil {
		logger.Init(f.Debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to initialize file writer")
	}
}

func loggingConfig(s config.LoggingSettings) *logger.LoggingConfig {
	return &logger.LoggingConfig{
		FileEnabled: s.FileEnabled,
		MaxSizeMB:   s.MaxSizeMB,
		MaxAgeDays:  s.MaxAgeDays,
		MaxBackups:  s.MaxBackups,
	}
}
