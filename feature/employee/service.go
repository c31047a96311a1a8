package employee

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"hris-sync/core/config"
	"hris-sync/core/directory"
	"hris-sync/core/logger"
	"hris-sync/core/reconcile"
	"hris-sync/core/storage"
	employeereconcile "hris-sync/feature/employee/reconcile"

	"go.uber.org/zap"
)

// Archive kinds.
const (
	KindReports = "reports"
	KindExports = "exports"
)

// Collaborators are the per-pass dependencies built from a fresh configuration.
type Collaborators struct {
	Source    reconcile.Source
	Directory reconcile.Directory
	// Attributes is the attribute list requested by directory searches.
	Attributes []string
	// Archive is nil when storage is disabled.
	Archive *storage.Archive
}

// Factory builds the collaborators for one pass.
type Factory func(cfg *config.Config, logger *zap.Logger) (*Collaborators, error)

// Service exposes the reconciliation entry points.
type Service struct {
	loader  config.Loader
	factory Factory
	logger  *zap.Logger
}

// NewService creates a service wired to the real HR database, directory and storage.
func NewService(loader config.Loader, logger *zap.Logger) *Service {
	return NewServiceWithFactory(loader, DefaultFactory, logger)
}

// NewServiceWithFactory creates a service with custom collaborators.
func NewServiceWithFactory(loader config.Loader, factory Factory, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{loader: loader, factory: factory, logger: logger}
}

// DefaultFactory connects the gorm extractor, the LDAP adapter and, when enabled, the MinIO archive.
func DefaultFactory(cfg *config.Config, logger *zap.Logger) (*Collaborators, error) {
	adapter := employeereconcile.NewDirectoryAdapter(directory.NewClient(cfg.Directory), cfg.Directory)

	c := &Collaborators{
		Source:     employeereconcile.NewSourceExtractor(cfg.Database, logger),
		Directory:  adapter,
		Attributes: adapter.Schema().Attributes(),
	}

	if cfg.Storage.Enabled {
		archive, err := storage.OpenArchive(cfg.Storage)
		if err != nil {
			return nil, err
		}
		c.Archive = archive
	}

	return c, nil
}

// RunFullSync reconciles the whole staff population.
func (s *Service) RunFullSync(ctx context.Context, testOnly bool) (*reconcile.SyncReport, error) {
	return s.run(ctx, reconcile.Options{TestOnly: testOnly})
}

// RunSelectedSync reconciles only the given employees and always applies the changes.
// Ids unknown to the HR store are skipped.
func (s *Service) RunSelectedSync(ctx context.Context, employeeIDs []string) (*reconcile.SyncReport, error) {
	ids := make([]string, 0, len(employeeIDs))
	ids = append(ids, employeeIDs...)
	return s.run(ctx, reconcile.Options{EmployeeIDs: ids, Selected: true})
}

// ExportComparisonReport writes the source/directory comparison as CSV to path.
// Nothing is written to the directory.
func (s *Service) ExportComparisonReport(ctx context.Context, path string) ([]reconcile.ComparisonRow, error) {
	rows, data, archive, err := s.comparison(ctx)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write export %s: %w", path, err)
	}
	s.logger.Info("comparison report exported", zap.String("path", path), zap.Int("rows", len(rows)))

	s.archive(ctx, archive, KindExports, exportName(path), data, "text/csv")
	return rows, nil
}

// ComparisonCSV returns the comparison report as CSV bytes.
func (s *Service) ComparisonCSV(ctx context.Context) ([]byte, error) {
	_, data, _, err := s.comparison(ctx)
	return data, err
}

// ListReports returns the run ids of archived reports.
func (s *Service) ListReports(ctx context.Context) ([]string, error) {
	archive, err := s.archiveOnly()
	if err != nil {
		return nil, err
	}

	names, err := archive.List(ctx, KindReports)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(names))
	for _, name := range names {
		ids = append(ids, trimExt(name, ".json"))
	}
	return ids, nil
}

// GetReport returns an archived report.
func (s *Service) GetReport(ctx context.Context, runID string) (*reconcile.SyncReport, error) {
	archive, err := s.archiveOnly()
	if err != nil {
		return nil, err
	}

	data, err := archive.Get(ctx, KindReports, runID+".json")
	if err != nil {
		return nil, err
	}

	var report reconcile.SyncReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to decode report %s: %w", runID, err)
	}
	return &report, nil
}

func (s *Service) run(ctx context.Context, opts reconcile.Options) (*reconcile.SyncReport, error) {
	cfg, deps, err := s.prepare()
	if err != nil {
		return nil, err
	}

	report, err := reconcile.Run(ctx, s.spec(cfg, deps), opts)
	if err != nil {
		return nil, err
	}

	if !report.Test {
		if data, err := json.MarshalIndent(report, "", "  "); err != nil {
			s.logger.Error("failed to encode report", zap.Error(err))
		} else {
			s.archive(ctx, deps.Archive, KindReports, report.RunID+".json", data, "application/json")
		}
	}

	return report, nil
}

func (s *Service) comparison(ctx context.Context) ([]reconcile.ComparisonRow, []byte, *storage.Archive, error) {
	cfg, deps, err := s.prepare()
	if err != nil {
		return nil, nil, nil, err
	}

	rows, err := reconcile.Compare(ctx, s.spec(cfg, deps))
	if err != nil {
		return nil, nil, nil, err
	}

	data, err := EncodeComparisonCSV(rows)
	if err != nil {
		return nil, nil, nil, err
	}
	return rows, data, deps.Archive, nil
}

// prepare reloads the configuration; nothing is carried over from a previous pass.
func (s *Service) prepare() (*config.Config, *Collaborators, error) {
	cfg, err := s.loader.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	deps, err := s.factory(cfg, s.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize collaborators: %w", err)
	}
	return cfg, deps, nil
}

func (s *Service) archiveOnly() (*storage.Archive, error) {
	_, deps, err := s.prepare()
	if err != nil {
		return nil, err
	}
	if deps.Archive == nil {
		return nil, ErrArchiveDisabled
	}
	return deps.Archive, nil
}

func (s *Service) spec(cfg *config.Config, deps *Collaborators) *reconcile.Spec {
	return &reconcile.Spec{
		Source:     deps.Source,
		Directory:  deps.Directory,
		BasePath:   cfg.Directory.BaseDN,
		Filter:     cfg.Directory.UserFilter,
		Attributes: deps.Attributes,
		Container:  employeereconcile.DepartmentContainer,
		Config:     cfg.Sync,
		Logger:     s.logger,
	}
}

// archive uploads an artifact. Failures are logged and never fail the caller.
func (s *Service) archive(ctx context.Context, archive *storage.Archive, kind, name string, data []byte, contentType string) {
	if archive == nil {
		return
	}

	l := s.logger
	if kind == KindReports {
		l = logger.WithRun(l, trimExt(name, ".json"))
	}
	l = l.With(zap.String("kind", kind), zap.String("name", name))

	if err := archive.EnsureBucket(ctx); err != nil {
		l.Warn("archive unavailable", zap.Error(err))
		return
	}
	key, err := archive.Put(ctx, kind, name, data, contentType)
	if err != nil {
		l.Warn("failed to archive artifact", zap.Error(err))
		return
	}
	l.Info("artifact archived", zap.String("key", key))
}
