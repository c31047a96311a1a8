package storage

import (
	"errors"

	"github.com/minio/minio-go/v7"
)

// ErrNotFound is returned when an archived object does not exist.
var ErrNotFound = errors.New("object not found")

func isNotFound(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
