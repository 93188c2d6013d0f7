package storage

import (
	"context"

	"github.com/kinetrack/kinetrack/internal/models"
)

// MeasurementStorage defines the interface for measurement persistence.
type MeasurementStorage interface {
	// Upsert stores a measurement keyed by its client-generated id. A
	// repeated upload of the same id updates the payload in place and
	// returns the original backend id, so client retries never create
	// duplicates. Reports whether a new row was created.
	Upsert(ctx context.Context, m *models.StoredMeasurement) (backendID string, created bool, err error)

	// Get retrieves a measurement by its client-generated id.
	// Returns ErrMeasurementNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (*models.StoredMeasurement, error)

	// ListByUser returns a user's measurements, newest first.
	ListByUser(ctx context.Context, userID string) ([]*models.StoredMeasurement, error)
}
