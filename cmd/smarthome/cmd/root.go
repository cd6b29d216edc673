package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oshokin/smart-home/internal/logger"
	"github.com/oshokin/smart-home/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// format overrides the transcript format from the configuration.
	format string
	// logLevel is the global logging threshold.
	logLevel string

	// rootCmd represents the base command.
	rootCmd = &cobra.Command{
		Use:   "smarthome",
		Short: "Walk through classic design patterns in a toy smart home.",
		Long: `Drives a simulated living-room light through Observer, Command, State,
Strategy, Mediator, Memento, Interpreter and Chain of Responsibility.

Nothing touches real hardware: every effect is an event printed to stdout.
Logs go to stderr.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level, ok := logger.ParseLogLevel(logLevel)
			if !ok {
				return fmt.Errorf("unknown log level %q", logLevel)
			}

			logger.SetLevel(level)

			return nil
		},
	}
)

// Execute runs the smarthome CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to configuration file (defaults built in)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "transcript format: text or json")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	rootCmd.AddCommand(demoCmd, scriptCmd)
}
