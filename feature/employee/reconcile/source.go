package reconcile

import (
	"context"
	"database/sql"
	"fmt"

	"hris-sync/core/database"
	"hris-sync/core/reconcile"
	"hris-sync/core/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Connector opens a gorm handle for one extraction.
type Connector func(ctx context.Context, cfg database.Config) (*gorm.DB, error)

// SourceExtractor implements reconcile.Source over the HR database.
type SourceExtractor struct {
	cfg     database.Config
	profile SchemaProfile
	connect Connector
	logger  *zap.Logger
}

// NewSourceExtractor creates an extractor that connects with database.Connect.
func NewSourceExtractor(cfg database.Config, logger *zap.Logger) *SourceExtractor {
	return NewSourceExtractorWithConnector(cfg, database.Connect, logger)
}

// NewSourceExtractorWithConnector creates an extractor with a custom connector.
func NewSourceExtractorWithConnector(cfg database.Config, connect Connector, logger *zap.Logger) *SourceExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SourceExtractor{
		cfg:     cfg,
		profile: DefaultProfile(cfg.Table),
		connect: connect,
		logger:  logger,
	}
}

// FetchEmployees returns every staff employee. The connection is opened for this
// call only and closed on every exit path.
func (s *SourceExtractor) FetchEmployees(ctx context.Context) ([]reconcile.SourceRecord, error) {
	db, err := s.connect(ctx, s.cfg)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			s.logger.Warn("failed to close HR connection", zap.Error(err))
		}
	}()

	table := s.profile.TableName
	rows, err := db.WithContext(ctx).
		Table(table).
		Where(clause.Neq{Column: clause.Column{Name: s.profile.column(ColGrade)}, Value: ExcludedGrade}).
		Rows()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query %s: %w", database.ErrQuery, table, err)
	}
	defer rows.Close()

	records, err := s.scan(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", database.ErrQuery, table, err)
	}

	s.logger.Debug("employees extracted", zap.String("table", table), zap.Int("count", len(records)))
	return records, nil
}

// scan reads rows dynamically so extra columns are ignored.
func (s *SourceExtractor) scan(rows *sql.Rows) ([]reconcile.SourceRecord, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	positions := make(map[string]int, len(columns))
	for i, col := range columns {
		positions[col] = i
	}
	for _, required := range []string{ColEmployeeID, ColFullName} {
		if _, ok := positions[s.profile.column(required)]; !ok {
			return nil, fmt.Errorf("missing column %s", s.profile.column(required))
		}
	}

	records := []reconcile.SourceRecord{}
	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		field := func(name string) string {
			if i, ok := positions[s.profile.column(name)]; ok {
				return utils.ToString(values[i])
			}
			return ""
		}

		records = append(records, reconcile.SourceRecord{
			EmployeeID:           field(ColEmployeeID),
			FullName:             field(ColFullName),
			Department:           field(ColDepartment),
			PositionTitle:        field(ColPosition),
			SupervisorEmployeeID: field(ColSupervisorID),
			PhoneNumber:          field(ColPhone),
			Gender:               field(ColGender),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return records, nil
}
