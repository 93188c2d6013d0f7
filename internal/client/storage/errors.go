package storage

import "errors"

// Common client storage errors
var (
	// ErrDuplicateRecord indicates an insert with an id that already exists
	ErrDuplicateRecord = errors.New("record already exists")

	// ErrRecordNotFound indicates that a measurement record was not found
	ErrRecordNotFound = errors.New("record not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
