package boltdb

import (
	"context"

	"github.com/kinetrack/kinetrack/internal/models"
)

// watch runs query after every store mutation and pushes the fresh
// snapshot. An initial snapshot is delivered before the first change.
// The output channel closes when ctx is cancelled.
func (s *Storage) watch(ctx context.Context, query func() ([]*models.MeasurementRecord, error)) (<-chan []*models.MeasurementRecord, error) {
	// Register before the first query so a mutation racing with subscribe
	// is never missed, and a broken query fails at subscribe time.
	id, pokes := s.addWatcher()

	snapshot, err := query()
	if err != nil {
		s.removeWatcher(id)
		return nil, err
	}
	out := make(chan []*models.MeasurementRecord, 1)

	go func() {
		defer s.removeWatcher(id)
		defer close(out)

		select {
		case out <- snapshot:
		case <-ctx.Done():
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-pokes:
			}

			snapshot, err := query()
			if err != nil {
				// Storage closed underneath us; nothing more to stream.
				return
			}

			select {
			case out <- snapshot:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// WatchByUser streams a fresh ListByUser snapshot after every mutation
func (s *Storage) WatchByUser(ctx context.Context, userID string) (<-chan []*models.MeasurementRecord, error) {
	return s.watch(ctx, func() ([]*models.MeasurementRecord, error) {
		return s.ListByUser(ctx, userID)
	})
}

// WatchPending streams a fresh ListPending snapshot after every mutation
func (s *Storage) WatchPending(ctx context.Context) (<-chan []*models.MeasurementRecord, error) {
	return s.watch(ctx, func() ([]*models.MeasurementRecord, error) {
		return s.ListPending(ctx)
	})
}
