package cmd

import (
	"fmt"
	"os"

	"hris-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "hris-sync",
	Short: "HRIS to directory synchronization service",
	Long: `hris-sync keeps directory user accounts in line with the HR system of record.
It matches employees to accounts, computes attribute differences and applies them,
either on demand over HTTP or from the command line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// configPath is the directory holding the .env file.
var configPath string

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with debug level gives ISO8601 timestamps for CLI users
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "Directory containing the .env file")
}
