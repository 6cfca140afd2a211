// Fieldbind-demo binds a sample settings value to terminal prompts.
//
// Usage:
//
//	fieldbind-demo run [--passes N] [--mask MASK] [--overlay DIR]
//	fieldbind-demo describe [--mask MASK] [--overlay DIR]
//
// Set FIELDBIND_LOG_LEVEL or --log-level to see engine logs on stderr.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-fieldbind/internal/logging"
)

var (
	logLevel    string
	maskFlag    string
	overlayFlag string
	logger      = zap.NewNop()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fieldbind-demo",
	Short: "Bind a sample settings struct to terminal widgets",
	Long: `Demonstrates go-fieldbind by drawing a settings struct as a series of
terminal prompts. Struct tags and optional overlay files decide which
widget each field gets.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logLevel
		if level == "" {
			level = os.Getenv(logging.LogLevelEnvVar)
		}
		l, err := logging.New(level)
		if err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides "+logging.LogLevelEnvVar)
	rootCmd.PersistentFlags().StringVar(&maskFlag, "mask", "any", "Field mask, e.g. public|serialized")
	rootCmd.PersistentFlags().StringVar(&overlayFlag, "overlay", "", "Directory of YAML/JSON overlay files")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(describeCmd)
}
