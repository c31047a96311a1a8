// Package database opens connections to the HR system-of-record.
//
// It wraps GORM and picks the dialect from configuration: MySQL (default), PostgreSQL,
// SQL Server, or SQLite (tests and local fixtures).
//
// # Connection scope
//
// The reconciliation engine treats the HR store connection as a scoped resource: it is
// opened right before the single extraction query and closed on every exit path. Connect
// therefore pings eagerly and keeps a tiny pool, and Close is safe on a nil handle.
//
// # Errors
//
// Connection failures wrap ErrConnection. Query and scan failures, raised by the
// extractor, wrap ErrQuery. Both are fatal to a reconciliation pass.
//
// # Usage
//
//	db, err := database.Connect(ctx, cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer database.Close(db)
package database
