// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so that storage
// interactions can be mocked in unit tests (see core/storage/mocks). Archive builds on
// Client to keep sync reports and comparison exports under a common key prefix.
//
// # Usage
//
//	archive, err := storage.OpenArchive(cfg.Storage)
//	if err := archive.EnsureBucket(ctx); err != nil { ... }
//	key, err := archive.Put(ctx, "reports", runID+".json", body, "application/json")
//
// A missing object is reported as ErrNotFound.
package storage
