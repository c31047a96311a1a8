// Package employee exposes the HRIS-to-directory reconciliation as a feature.
//
// The Service is the single entry point used by both the CLI and the HTTP handler:
//   - RunFullSync reconciles the whole staff population, optionally as a dry run
//   - RunSelectedSync applies changes for a list of employee ids
//   - ExportComparisonReport writes a read-only CSV comparison
//
// Every call reloads the configuration and rebuilds its collaborators, so a pass never
// sees settings or directory state cached by a previous one. Reports of applied passes
// and exports are archived to object storage when it is enabled; archive failures are
// logged and never fail the pass.
package employee
