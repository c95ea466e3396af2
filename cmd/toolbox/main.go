// Package main implements the toolbox CLI, a grab-bag of personal
// productivity utilities: a directory tree viewer, a yt-dlp wrapper, a
// seven-segment clock, a HK cheque amount-to-words converter, and CSV
// plotting / markdown conversion helpers.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/o0fung/toolbox/internal/config"
	"github.com/o0fung/toolbox/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Shared state built in PersistentPreRunE
	logger *zap.Logger
	cfg    *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "toolbox",
	Short: "Personal productivity utilities for the terminal",
	Long: `toolbox bundles small single-purpose terminal utilities:

  cheque   HK cheque amount wording in Chinese and English
  tree     directory tree viewer with file processors
  clock    seven-segment clock, stopwatch and countdown
  word     CSV plotting and markdown conversion
  youtube  yt-dlp download wrapper`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.toolbox/config.yaml)")

	rootCmd.AddCommand(chequeCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(clockCmd)
	rootCmd.AddCommand(wordCmd)
	rootCmd.AddCommand(youtubeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
