package reconcile

import "context"

// Source loads the authoritative employee population.
// Failures are fatal to the pass.
type Source interface {
	FetchEmployees(ctx context.Context) ([]SourceRecord, error)
}

// Directory defines the operations the engine needs from the identity directory.
type Directory interface {
	// SearchUsers returns every entry under basePath matching filter, across all result pages.
	SearchUsers(ctx context.Context, basePath, filter string, attributes []string) ([]DirectoryEntry, error)

	// ApplyAttributeChanges writes one replace per diffed attribute.
	// An empty diff must not issue a protocol call.
	ApplyAttributeChanges(ctx context.Context, entryPath string, diff AttributeDiff) error

	// RelocateEntry moves an entry under newParentPath, keeping its relative name.
	RelocateEntry(ctx context.Context, entryPath, newParentPath string) error

	// ResolvePathByEmployeeID returns the path of the entry carrying employeeID.
	ResolvePathByEmployeeID(ctx context.Context, employeeID string) (path string, found bool, err error)
}
