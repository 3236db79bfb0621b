// Command gpucheck verifies that a machine is ready for GPU work.
//
// It detects compatible accelerators, enumerates them, and checks their
// compute capability against a configurable minimum. Results can be
// rendered for a terminal, emitted as JSON, or saved to a local history
// for later comparison.
//
// Usage:
//
//	gpucheck [command]
//
// Commands:
//
//	devices     List detected accelerator devices
//	check       Verify compute capability against a minimum
//	doctor      Run the full environment verification
//	history     Inspect saved verification reports
//	info        Show host and device facts side by side
//
// Example:
//
//	# List devices
//	gpucheck devices
//
//	# Require at least compute capability 7.0
//	gpucheck check --min-major 7 --min-minor 0
//
//	# Full verification, saved to history
//	gpucheck doctor --save
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orneryd/gpucheck/pkg/config"
	"github.com/orneryd/gpucheck/pkg/logging"
)

var (
	cfg      config.Config
	cfgPath  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "gpucheck",
	Short: "Verify GPU availability and compute capability",
	Long: `gpucheck answers two questions about the current machine:
is a compatible GPU present, and is it capable enough for the work
you want to run on it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		return logging.Init(cfg.LogLevel, cfg.LogFilePath)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.config/gpucheck/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override configured log level (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
