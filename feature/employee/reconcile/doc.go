// Package reconcile holds the employee-specific collaborators of the reconciliation
// engine: SourceExtractor reads staff rows from the HR database and DirectoryAdapter
// maps the engine's logical attributes onto directory attributes.
package reconcile
