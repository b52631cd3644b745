package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/forecast/internal/buildinfo"
	"github.com/cleared-dev/forecast/internal/logging"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	dir      string
	logLevel string
	ws       *workspace
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "forecast",
		Short:   "Multi-year financial projections for small businesses",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", ".", "workspace directory")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (overrides forecast.yaml)")

	rootCmd.AddCommand(
		newInitCommand(opts),
		newProjectCommand(opts),
		newCompareCommand(opts),
		newScenarioCommand(opts),
		newMultiplierCommand(),
		newCategoriesCommand(opts),
	)

	return rootCmd
}

// setup loads the workspace and puts a logger on the command context.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	ws, err := loadWorkspace(o.dir)
	if err != nil {
		return err
	}
	o.ws = ws

	level := ws.Config.Log.Level
	if o.logLevel != "" {
		level = o.logLevel
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level, true)
	if err != nil {
		return err
	}
	cmd.SetContext(logger.WithContext(cmd.Context()))

	logger.Debug().
		Str("command", cmd.CommandPath()).
		Str("workspace", ws.Root).
		Bool("initialized", ws.Initialized).
		Msg("starting")
	return nil
}

func loggerFrom(cmd *cobra.Command) *zerolog.Logger {
	return zerolog.Ctx(cmd.Context())
}
