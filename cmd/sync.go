package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"hris-sync/core/config"
	"hris-sync/core/logger"
	"hris-sync/core/reconcile"
	"hris-sync/feature/employee"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	applySync  bool
	syncIDs    []string
	syncJSON   string
	yesConfirm bool
)

// syncCmd runs one reconciliation pass from the command line.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile HR employees with the directory",
	Long: `Matches every staff employee to a directory account and reports attribute differences.
Nothing is written unless --apply is given.

Examples:
  # Dry run over the whole population
  hris-sync sync

  # Apply changes (with interactive confirmation)
  hris-sync sync --apply

  # Apply changes for two employees only, non-interactive
  hris-sync sync --ids MTI000001,MTI000002 --yes

  # Keep the full report
  hris-sync sync --json report.json`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&applySync, "apply", false, "Write differences to the directory")
	syncCmd.Flags().StringSliceVar(&syncIDs, "ids", nil, "Reconcile only these employee ids (implies --apply)")
	syncCmd.Flags().StringVar(&syncJSON, "json", "", "Write the full report as JSON to this file")
	syncCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm directory writes (non-interactive)")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

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

	svc := employee.NewService(loaderCfg, l)
	selected := cmd.Flags().Changed("ids")

	if (applySync || selected) && !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	var report *reconcile.SyncReport
	if selected {
		report, err = svc.RunSelectedSync(ctx, syncIDs)
	} else {
		report, err = svc.RunFullSync(ctx, !applySync)
	}
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	printSyncReport(report)

	if syncJSON != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		if err := os.WriteFile(syncJSON, data, 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		l.Info("Report written", zap.String("path", syncJSON))
	}

	if report.Test {
		l.Info("Dry-run mode: No changes were made. Use --apply to write differences.")
	}
	return nil
}

// printSyncReport prints the changed records, the failures and the summary.
func printSyncReport(report *reconcile.SyncReport) {
	for _, r := range report.Results {
		if len(r.Diff) == 0 {
			continue
		}
		fmt.Printf("%s %s %s (%s)\n", actionLabel(r.Action), r.EmployeeID, r.FullName, r.AccountName)
		keys := make([]string, 0, len(r.Diff))
		for k := range r.Diff {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("    %-12s %q -> %s\n", k, r.Current[k], color.New(color.FgGreen).Sprintf("%q", r.Diff[k]))
		}
		if r.Relocated != "" {
			fmt.Printf("    %-12s %s\n", "move to", color.New(color.FgCyan).Sprint(r.Relocated))
		}
	}

	for _, f := range report.Failures {
		fmt.Printf("%s %s [%s] %s\n", color.New(color.FgRed).Sprint("FAILED "), f.EmployeeID, f.Stage, f.Error)
	}

	s := report.Summary
	fmt.Printf("\nrun %s: %d source, %d directory, %d in scope, %d exact, %d fuzzy, %d unmatched, %d changed, %d failed\n",
		report.RunID, s.SourceRecords, s.DirectoryEntries, s.InScope, s.ExactMatches, s.FuzzyMatches, s.Unmatched, s.Changed, s.Failed)
}

func actionLabel(a reconcile.ActionType) string {
	switch a {
	case reconcile.ActionTest:
		return color.New(color.FgYellow).Sprint("PENDING")
	case reconcile.ActionIDReassigned:
		return color.New(color.FgHiMagenta).Sprint("REPAIR ")
	default:
		return color.New(color.FgGreen).Sprint("UPDATED")
	}
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to write changes to the directory: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
