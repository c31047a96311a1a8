// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and integrates with the Fiber web framework used by the sync trigger endpoints.
//
// # Correlation
//
// Two helpers attach correlation fields:
//   - WithRayID reads the ray id stored by the rayid middleware on a Fiber context.
//   - WithRun tags every line of a reconciliation pass with its run id, so the per-record
//     warnings and errors of one pass can be pulled out of a shared log stream.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	l := logger.WithRun(log, report.RunID)
//	l.Warn("No directory entry matched", zap.String("employee_id", id))
package logger
