package reconcile

import (
	"context"
	"fmt"

	"hris-sync/core/directory"
	"hris-sync/core/reconcile"
)

// DirectoryAdapter implements reconcile.Directory over an LDAP client.
type DirectoryAdapter struct {
	client directory.Client
	schema DirectorySchema
	base   string
	filter string
}

// NewDirectoryAdapter creates an adapter for the entries under cfg.BaseDN.
func NewDirectoryAdapter(client directory.Client, cfg directory.Config) *DirectoryAdapter {
	return &DirectoryAdapter{
		client: client,
		schema: DefaultDirectorySchema(cfg.GenderAttribute),
		base:   cfg.BaseDN,
		filter: cfg.UserFilter,
	}
}

// Schema returns the attribute mapping in use.
func (a *DirectoryAdapter) Schema() DirectorySchema {
	return a.schema
}

// SearchUsers implements reconcile.Directory.
func (a *DirectoryAdapter) SearchUsers(ctx context.Context, basePath, filter string, attributes []string) ([]reconcile.DirectoryEntry, error) {
	if len(attributes) == 0 {
		attributes = a.schema.Attributes()
	}

	records, err := a.client.Search(ctx, basePath, filter, attributes)
	if err != nil {
		return nil, err
	}

	entries := make([]reconcile.DirectoryEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, a.entry(rec))
	}
	return entries, nil
}

// ApplyAttributeChanges implements reconcile.Directory.
func (a *DirectoryAdapter) ApplyAttributeChanges(ctx context.Context, entryPath string, diff reconcile.AttributeDiff) error {
	if len(diff) == 0 {
		return nil
	}

	replace := make(map[string][]string, len(diff))
	for logical, value := range diff {
		attr, ok := a.schema.attribute(logical)
		if !ok {
			return fmt.Errorf("%w: unknown attribute %s", directory.ErrModify, logical)
		}
		replace[attr] = []string{value}
	}

	return a.client.Modify(ctx, entryPath, replace)
}

// RelocateEntry implements reconcile.Directory.
func (a *DirectoryAdapter) RelocateEntry(ctx context.Context, entryPath, newParentPath string) error {
	return a.client.Move(ctx, entryPath, newParentPath)
}

// ResolvePathByEmployeeID implements reconcile.Directory.
func (a *DirectoryAdapter) ResolvePathByEmployeeID(ctx context.Context, employeeID string) (string, bool, error) {
	filter := directory.And(a.filter, directory.EqualityFilter(a.schema.EmployeeID, employeeID))

	records, err := a.client.Search(ctx, a.base, filter, []string{a.schema.EmployeeID})
	if err != nil {
		return "", false, err
	}
	if len(records) == 0 {
		return "", false, nil
	}

	// duplicate ids resolve to the smallest path, like the matcher
	best := records[0].DN()
	for _, rec := range records[1:] {
		if dn := rec.DN(); dn < best {
			best = dn
		}
	}
	return best, true, nil
}

// DepartmentContainer builds "OU=<department>,<base>" with the department escaped.
func DepartmentContainer(department, basePath string) string {
	return directory.ChildDN("OU", department, basePath)
}

func (a *DirectoryAdapter) entry(rec directory.Record) reconcile.DirectoryEntry {
	return reconcile.DirectoryEntry{
		AccountName:      rec.String(a.schema.AccountName),
		DisplayName:      rec.String(a.schema.DisplayName),
		EmployeeID:       rec.String(a.schema.EmployeeID),
		Department:       rec.String(a.schema.Department),
		Title:            rec.String(a.schema.Title),
		ManagerReference: rec.String(a.schema.Manager),
		Mobile:           rec.String(a.schema.Mobile),
		Gender:           rec.String(a.schema.Gender),
		UniquePath:       rec.DN(),
	}
}
