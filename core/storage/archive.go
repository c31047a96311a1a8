package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/minio/minio-go/v7"
)

// Archive stores run artifacts under "<prefix>/<kind>/<name>" in one bucket.
type Archive struct {
	client Client
	bucket string
	prefix string
	region string
}

// NewArchive creates an archive over client using the bucket and prefix from cfg.
func NewArchive(client Client, cfg Config) *Archive {
	return &Archive{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
		region: cfg.Region,
	}
}

// OpenArchive connects to the configured bucket and returns an archive over it.
func OpenArchive(cfg Config) (*Archive, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return NewArchive(client, cfg), nil
}

// Key returns the object key for name within kind.
func (a *Archive) Key(kind, name string) string {
	return path.Join(a.prefix, kind, name)
}

// EnsureBucket creates the bucket when it does not exist yet.
func (a *Archive) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", a.bucket, err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{Region: a.region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
	}
	return nil
}

// Put uploads body and returns the object key.
func (a *Archive) Put(ctx context.Context, kind, name string, body []byte, contentType string) (string, error) {
	key := a.Key(kind, name)
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return key, nil
}

// Get downloads the object stored under kind and name.
func (a *Archive) Get(ctx context.Context, kind, name string) ([]byte, error) {
	key := a.Key(kind, name)
	reader, err := a.client.GetObject(ctx, a.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, a.getError(key, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, a.getError(key, err)
	}
	return data, nil
}

func (a *Archive) getError(key string, err error) error {
	if isNotFound(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return fmt.Errorf("failed to get %s: %w", key, err)
}

// List returns the object names stored under kind, sorted.
func (a *Archive) List(ctx context.Context, kind string) ([]string, error) {
	prefix := a.Key(kind, "") + "/"

	var names []string
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
		}
		names = append(names, strings.TrimPrefix(obj.Key, prefix))
	}
	sort.Strings(names)
	return names, nil
}
