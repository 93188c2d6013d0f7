package storage

import "context"

//go:generate moq -out syncqueue_mock.go . SyncQueue

// SyncQueue is the persisted FIFO of record ids awaiting transmission.
// It survives process restarts but is strictly a cache: the RecordStore
// stays the source of truth, and a lost or diverged queue self-heals via
// Rebuild.
type SyncQueue interface {
	// Enqueue appends id unless it is already queued. Set semantics on the
	// identifier, FIFO on order.
	Enqueue(ctx context.Context, id string) error

	// PeekBatch returns up to maxSize ids in FIFO order without removing
	// them. Removal happens only after a confirmed outcome, so a crash
	// mid-flight cannot lose work.
	PeekBatch(ctx context.Context, maxSize int) ([]string, error)

	// Remove drops a specific id from the queue. Unknown ids are a no-op.
	Remove(ctx context.Context, id string) error

	// Len returns the number of queued ids.
	Len(ctx context.Context) (int, error)

	// Rebuild clears the queue and repopulates it in the given order.
	// This is the crash-recovery path.
	Rebuild(ctx context.Context, ids []string) error
}
