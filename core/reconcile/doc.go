// Package reconcile brings directory identities in line with the HR system-of-record.
//
// A pass runs in one direction: the employee population and the directory entries are
// extracted concurrently, each employee is paired with at most one entry, the attribute
// differences of every pair are computed, and (unless the pass is a test run) the
// differences are written back. HR is authoritative; the directory is never read back
// into the source.
//
// # Matching
//
// Employees are paired on employee id first. When no entry carries the id, the display
// names are compared after normalization and the closest entry within the configured
// distance is accepted as a fuzzy match. A fuzzy match also repairs the entry's identity
// attributes (employee id and gender). Entries claimed by an exact match are never
// offered to a fuzzy one.
//
// # Failures
//
// Failing to read either population aborts the pass with ErrExtract before any write.
// Everything after that is per record: a failed modify, relocate or manager lookup is
// logged, recorded in SyncReport.Failures and the pass continues.
//
// # Usage
//
//	spec := &reconcile.Spec{
//	    Source:    source,
//	    Directory: dir,
//	    BasePath:  "DC=corp,DC=example",
//	    Filter:    "(&(objectCategory=person)(objectClass=user))",
//	    Config:    cfg.Sync,
//	    Logger:    log,
//	}
//	report, err := reconcile.Run(ctx, spec, reconcile.Options{TestOnly: true})
package reconcile
