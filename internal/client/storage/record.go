package storage

import (
	"context"
	"time"

	"github.com/kinetrack/kinetrack/internal/models"
)

//go:generate moq -out recordstore_mock.go . RecordStore

// RecordStore is the durable, queryable source of truth for measurement
// records and their sync status. The sync queue is only a derived index;
// every question about record state is answered here.
type RecordStore interface {
	// Insert persists a new record with status=pending and a zero retry
	// counter. Returns ErrDuplicateRecord if the id already exists.
	Insert(ctx context.Context, record *models.MeasurementRecord) error

	// Get retrieves a record by id.
	// Returns ErrRecordNotFound if the record doesn't exist.
	Get(ctx context.Context, id string) (*models.MeasurementRecord, error)

	// ListByUser returns a user's records ordered by createdAt descending.
	ListByUser(ctx context.Context, userID string) ([]*models.MeasurementRecord, error)

	// WatchByUser streams a fresh ListByUser snapshot after every store
	// mutation. The channel closes when ctx is cancelled.
	WatchByUser(ctx context.Context, userID string) (<-chan []*models.MeasurementRecord, error)

	// ListPending returns pending records, oldest first.
	ListPending(ctx context.Context) ([]*models.MeasurementRecord, error)

	// WatchPending streams a fresh ListPending snapshot after every store
	// mutation. Primary feed for the sync queue's self-healing rescan.
	WatchPending(ctx context.Context) (<-chan []*models.MeasurementRecord, error)

	// ListFailed returns all failed records regardless of retry count,
	// oldest first. Used by the explicit user-retry path.
	ListFailed(ctx context.Context) ([]*models.MeasurementRecord, error)

	// GetRetryable returns failed records with retry count below
	// maxRetries, oldest first.
	GetRetryable(ctx context.Context, maxRetries int) ([]*models.MeasurementRecord, error)

	// UpdateStatus sets the sync status and bumps updatedAt. Idempotent.
	// Returns ErrRecordNotFound if the record doesn't exist.
	UpdateStatus(ctx context.Context, id string, status models.SyncStatus) error

	// IncrementRetryAndMarkFailed atomically increments the retry counter
	// and sets status=failed, returning the new counter value. A missing
	// id is a benign no-op (the record may have been pruned concurrently)
	// and reports 0 with no error.
	IncrementRetryAndMarkFailed(ctx context.Context, id string) (int, error)

	// MarkSynced sets status=synced.
	MarkSynced(ctx context.Context, id string) error

	// ResetForRetry puts a failed record back on the pending path with a
	// zero retry counter. Only explicit user-initiated retry goes through
	// here; the counter never decreases otherwise.
	ResetForRetry(ctx context.Context, id string) error

	// RecoverInFlight resets records stuck in syncing back to pending and
	// returns how many were recovered. Crash-recovery path: a record left
	// in syncing means the process died mid-flight.
	RecoverInFlight(ctx context.Context) (int, error)

	// CountByStatus returns the number of records per sync status.
	CountByStatus(ctx context.Context) (map[models.SyncStatus]int, error)

	// PruneSynced deletes synced records with createdAt older than the
	// retention window and returns the number deleted. Never touches
	// pending, syncing or failed records regardless of age.
	PruneSynced(ctx context.Context, retention time.Duration) (int, error)
}
