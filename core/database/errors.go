package database

import "errors"

var (
	// ErrConnection marks failures to open or ping the HR store.
	ErrConnection = errors.New("hr store connection failed")
	// ErrQuery marks failures while querying or scanning the HR store.
	ErrQuery = errors.New("hr store query failed")
)
