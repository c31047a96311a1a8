package employee

import (
	"context"
	"sync"

	"hris-sync/core/config"
	"hris-sync/core/reconcile"
	"hris-sync/core/storage"

	"go.uber.org/zap"
)

type stubSource struct {
	records []reconcile.SourceRecord
	err     error
}

func (s *stubSource) FetchEmployees(ctx context.Context) ([]reconcile.SourceRecord, error) {
	return s.records, s.err
}

type stubDirectory struct {
	entries   []reconcile.DirectoryEntry
	searchErr error

	mu        sync.Mutex
	modifies  int
	relocates int
}

func (d *stubDirectory) SearchUsers(ctx context.Context, basePath, filter string, attributes []string) ([]reconcile.DirectoryEntry, error) {
	return d.entries, d.searchErr
}

func (d *stubDirectory) ApplyAttributeChanges(ctx context.Context, entryPath string, diff reconcile.AttributeDiff) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.modifies++
	return nil
}

func (d *stubDirectory) RelocateEntry(ctx context.Context, entryPath, newParentPath string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.relocates++
	return nil
}

func (d *stubDirectory) ResolvePathByEmployeeID(ctx context.Context, employeeID string) (string, bool, error) {
	return "", false, nil
}

// countingLoader counts how often the configuration is reloaded.
type countingLoader struct {
	cfg   *config.Config
	err   error
	loads int
}

func (l *countingLoader) Load() (*config.Config, error) {
	l.loads++
	return l.cfg, l.err
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Directory.BaseDN = "OU=Staff,DC=corp,DC=example"
	cfg.Directory.UserFilter = "(objectClass=user)"
	cfg.Sync = reconcile.Config{Workers: 2, FuzzyMaxDistance: 2, CallTimeoutSeconds: 5}
	return cfg
}

func janeSource() *stubSource {
	return &stubSource{records: []reconcile.SourceRecord{{
		EmployeeID:  "MTI123456",
		FullName:    "Jane Smith",
		Department:  "Finance",
		PhoneNumber: "081234567890",
	}}}
}

func janeDirectory() *stubDirectory {
	return &stubDirectory{entries: []reconcile.DirectoryEntry{{
		AccountName: "jsmith",
		DisplayName: "Jane Smith",
		EmployeeID:  "MTI123456",
		Department:  "Engineering",
		Mobile:      "628111111111",
		UniquePath:  "CN=Jane Smith,OU=Engineering,OU=Staff,DC=corp,DC=example",
	}}}
}

func newTestService(loader config.Loader, src reconcile.Source, dir reconcile.Directory, archive *storage.Archive) *Service {
	factory := func(cfg *config.Config, logger *zap.Logger) (*Collaborators, error) {
		return &Collaborators{Source: src, Directory: dir, Archive: archive}, nil
	}
	return NewServiceWithFactory(loader, factory, zap.NewNop())
}
