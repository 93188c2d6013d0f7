package storage

import "errors"

// Common storage errors
var (
	// ErrMeasurementNotFound indicates that a measurement was not found
	ErrMeasurementNotFound = errors.New("measurement not found")
)
