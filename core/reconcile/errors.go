package reconcile

import "errors"

// ErrExtract marks a pass aborted because the source or directory could not be read.
var ErrExtract = errors.New("extraction failed")

// Failure stages reported in SyncFailure.Stage.
const (
	StageResolveManager = "resolve-manager"
	StageModify         = "modify"
	StageRelocate       = "relocate"
	StagePanic          = "panic"
)
