// Package cli implements the modelscout command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/modelscout/internal/config"
	"github.com/crimson-sun/modelscout/internal/logging"
	"github.com/crimson-sun/modelscout/internal/output"
)

var (
	flagFormat   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:          "modelscout",
	Short:        "Recommend machine-learning models for a task description",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `Modelscout classifies a free-text task description into a task category
and recommends matching models from its catalog, grouped by resource tier.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		logging.Setup(resolveFormatName(cfg), resolveLogLevel(cfg))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "", `output format: "text" or "ndjson" (default $MODELSCOUT_OUTPUT or text)`)
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error (default $MODELSCOUT_LOG_LEVEL or info)")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resolveFormatName(cfg config.Config) string {
	if flagFormat != "" {
		return flagFormat
	}
	return cfg.Output.Format
}

func resolveLogLevel(cfg config.Config) string {
	if flagLogLevel != "" {
		return flagLogLevel
	}
	return cfg.Output.LogLevel
}

func resolveFormat(cfg config.Config) (output.Format, error) {
	return output.ParseFormat(resolveFormatName(cfg))
}
