package cmd

import (
	"context"
	"fmt"

	"hris-sync/core/config"
	"hris-sync/core/logger"
	"hris-sync/feature/employee"

	"github.com/spf13/cobra"
)

var exportOut string

// exportCmd writes the read-only comparison report.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a CSV comparing HR records with directory accounts",
	Long: `Writes one row per staff employee with the HR values, the matched directory values
and the attributes a sync would change. The directory is never modified.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		loaderCfg := config.FileLoader{Path: configPath}
		cfg, err := loaderCfg.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		rows, err := employee.NewService(loaderCfg, l).ExportComparisonReport(context.Background(), exportOut)
		if err != nil {
			return err
		}

		fmt.Printf("%d rows written to %s\n", len(rows), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "comparison.csv", "Output CSV file")
	RootCmd.AddCommand(exportCmd)
}
