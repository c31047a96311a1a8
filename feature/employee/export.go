package employee

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"hris-sync/core/reconcile"
)

var exportHeader = []string{
	"employee_id",
	"full_name",
	"match",
	"account_name",
	"entry_path",
	"hris_department",
	"directory_department",
	"hris_title",
	"directory_title",
	"hris_mobile",
	"directory_mobile",
	"supervisor_id",
	"directory_manager",
	"pending",
}

// EncodeComparisonCSV renders rows as CSV with a header line.
// Pending attributes are joined with ";".
func EncodeComparisonCSV(rows []reconcile.ComparisonRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write export header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.EmployeeID,
			r.FullName,
			string(r.Match),
			r.AccountName,
			r.EntryPath,
			r.SourceDepartment,
			r.EntryDepartment,
			r.SourceTitle,
			r.EntryTitle,
			r.SourceMobile,
			r.EntryMobile,
			r.Supervisor,
			r.EntryManager,
			strings.Join(r.Pending, ";"),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write export row %s: %w", r.EmployeeID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush export: %w", err)
	}
	return buf.Bytes(), nil
}

func exportName(path string) string {
	return filepath.Base(path)
}

func trimExt(name, ext string) string {
	return strings.TrimSuffix(name, ext)
}
