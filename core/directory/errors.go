package directory

import "errors"

var (
	// ErrBind marks failures to reach or authenticate against the directory.
	ErrBind = errors.New("directory bind failed")
	// ErrSearch marks failed search operations.
	ErrSearch = errors.New("directory search failed")
	// ErrModify marks failed attribute modifications.
	ErrModify = errors.New("directory modify failed")
	// ErrRelocate marks failed entry moves.
	ErrRelocate = errors.New("directory relocate failed")
)
