package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Global flag values.
var (
	verbose bool
	noColor bool
)

// rootCmd is the base command for copilot.
var rootCmd = &cobra.Command{
	Use:   "copilot",
	Short: "FIM code completion against a local inference endpoint",
	Long: `Copilot assembles a bounded context window around a cursor position in a
file, formats it as a fill-in-the-middle prompt, queries a local inference
endpoint, and prints or inserts the sanitized completion. It is the
command-line counterpart of the copilotd editor daemon.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
