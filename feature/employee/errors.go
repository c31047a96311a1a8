package employee

import "errors"

// ErrArchiveDisabled is returned by archive lookups when storage is not enabled.
var ErrArchiveDisabled = errors.New("report archive is disabled")
