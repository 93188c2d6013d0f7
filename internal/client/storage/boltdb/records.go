package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.etcd.io/bbolt"

	"github.com/kinetrack/kinetrack/internal/client/storage"
	"github.com/kinetrack/kinetrack/internal/models"
)

// Insert persists a new record with status=pending and a zero retry counter
func (s *Storage) Insert(ctx context.Context, record *models.MeasurementRecord) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRecords)
		if bucket == nil {
			return fmt.Errorf("records bucket not found")
		}

		key := []byte(record.ID)
		if bucket.Get(key) != nil {
			return storage.ErrDuplicateRecord
		}

		// Insert always lands on the pending path regardless of what the
		// caller filled in.
		stored := record.Clone()
		stored.SyncStatus = models.SyncStatusPending
		stored.SyncRetryCount = 0

		data, err := json.Marshal(stored)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}

		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.notifyWatchers()
	return nil
}

// Get retrieves a record by ID
func (s *Storage) Get(ctx context.Context, id string) (*models.MeasurementRecord, error) {
	var record *models.MeasurementRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRecords)
		if bucket == nil {
			return fmt.Errorf("records bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrRecordNotFound
		}

		record = &models.MeasurementRecord{}
		if err := json.Unmarshal(data, record); err != nil {
			return fmt.Errorf("failed to unmarshal record: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return record, nil
}

// listWhere returns all records matching the filter, unordered.
func (s *Storage) listWhere(filter func(*models.MeasurementRecord) bool) ([]*models.MeasurementRecord, error) {
	var records []*models.MeasurementRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRecords)
		if bucket == nil {
			return fmt.Errorf("records bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			record := &models.MeasurementRecord{}
			if err := json.Unmarshal(v, record); err != nil {
				return fmt.Errorf("failed to unmarshal record: %w", err)
			}

			if filter(record) {
				records = append(records, record)
			}

			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return records, nil
}

func sortOldestFirst(records []*models.MeasurementRecord) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
}

// ListByUser returns a user's records ordered by createdAt descending
func (s *Storage) ListByUser(ctx context.Context, userID string) ([]*models.MeasurementRecord, error) {
	records, err := s.listWhere(func(r *models.MeasurementRecord) bool {
		return r.UserID == userID
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

// ListPending returns pending records, oldest first
func (s *Storage) ListPending(ctx context.Context) ([]*models.MeasurementRecord, error) {
	records, err := s.listWhere(func(r *models.MeasurementRecord) bool {
		return r.SyncStatus == models.SyncStatusPending
	})
	if err != nil {
		return nil, err
	}

	sortOldestFirst(records)
	return records, nil
}

// ListFailed returns all failed records regardless of retry count, oldest first
func (s *Storage) ListFailed(ctx context.Context) ([]*models.MeasurementRecord, error) {
	records, err := s.listWhere(func(r *models.MeasurementRecord) bool {
		return r.SyncStatus == models.SyncStatusFailed
	})
	if err != nil {
		return nil, err
	}

	sortOldestFirst(records)
	return records, nil
}

// GetRetryable returns failed records with retry count below maxRetries, oldest first
func (s *Storage) GetRetryable(ctx context.Context, maxRetries int) ([]*models.MeasurementRecord, error) {
	records, err := s.listWhere(func(r *models.MeasurementRecord) bool {
		return r.SyncStatus == models.SyncStatusFailed && r.SyncRetryCount < maxRetries
	})
	if err != nil {
		return nil, err
	}

	sortOldestFirst(records)
	return records, nil
}

// mutateRecord loads the record, applies fn, and stores the result.
// Returns storage.ErrRecordNotFound if the id doesn't exist.
func (s *Storage) mutateRecord(id string, fn func(*models.MeasurementRecord)) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRecords)
		if bucket == nil {
			return fmt.Errorf("records bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrRecordNotFound
		}

		record := &models.MeasurementRecord{}
		if err := json.Unmarshal(data, record); err != nil {
			return fmt.Errorf("failed to unmarshal record: %w", err)
		}

		fn(record)
		record.UpdatedAt = time.Now().UTC()

		updated, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}

		if err := bucket.Put([]byte(id), updated); err != nil {
			return fmt.Errorf("failed to update record: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.notifyWatchers()
	return nil
}

// UpdateStatus sets the sync status and bumps updatedAt
func (s *Storage) UpdateStatus(ctx context.Context, id string, status models.SyncStatus) error {
	return s.mutateRecord(id, func(r *models.MeasurementRecord) {
		r.SyncStatus = status
	})
}

// IncrementRetryAndMarkFailed atomically increments the retry counter and
// sets status=failed. A missing id is a benign no-op: the record may have
// been pruned while its push was in flight.
func (s *Storage) IncrementRetryAndMarkFailed(ctx context.Context, id string) (int, error) {
	var count int

	err := s.mutateRecord(id, func(r *models.MeasurementRecord) {
		r.SyncRetryCount++
		r.SyncStatus = models.SyncStatusFailed
		count = r.SyncRetryCount
	})
	if err == storage.ErrRecordNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return count, nil
}

// MarkSynced sets status=synced
func (s *Storage) MarkSynced(ctx context.Context, id string) error {
	return s.UpdateStatus(ctx, id, models.SyncStatusSynced)
}

// ResetForRetry puts a failed record back on the pending path with a zero
// retry counter. Explicit user-retry path only.
func (s *Storage) ResetForRetry(ctx context.Context, id string) error {
	return s.mutateRecord(id, func(r *models.MeasurementRecord) {
		r.SyncStatus = models.SyncStatusPending
		r.SyncRetryCount = 0
	})
}

// RecoverInFlight resets records stuck in syncing back to pending.
// A record left in syncing means the process died mid-flight; the push
// either never happened or is safe to repeat (upsert by id).
func (s *Storage) RecoverInFlight(ctx context.Context) (int, error) {
	var recovered int

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRecords)
		if bucket == nil {
			return fmt.Errorf("records bucket not found")
		}

		cursor := bucket.Cursor()
		for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
			record := &models.MeasurementRecord{}
			if err := json.Unmarshal(v, record); err != nil {
				return fmt.Errorf("failed to unmarshal record: %w", err)
			}

			if record.SyncStatus != models.SyncStatusSyncing {
				continue
			}

			record.SyncStatus = models.SyncStatusPending
			record.UpdatedAt = time.Now().UTC()

			updated, err := json.Marshal(record)
			if err != nil {
				return fmt.Errorf("failed to marshal record: %w", err)
			}

			if err := bucket.Put(k, updated); err != nil {
				return fmt.Errorf("failed to update record: %w", err)
			}

			recovered++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	if recovered > 0 {
		s.notifyWatchers()
	}
	return recovered, nil
}

// CountByStatus returns the number of records per sync status
func (s *Storage) CountByStatus(ctx context.Context) (map[models.SyncStatus]int, error) {
	counts := make(map[models.SyncStatus]int)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRecords)
		if bucket == nil {
			return fmt.Errorf("records bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			record := &models.MeasurementRecord{}
			if err := json.Unmarshal(v, record); err != nil {
				return fmt.Errorf("failed to unmarshal record: %w", err)
			}

			counts[record.SyncStatus]++
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return counts, nil
}

// PruneSynced deletes synced records older than the retention window.
// Pending, syncing and failed records are never pruned regardless of age.
func (s *Storage) PruneSynced(ctx context.Context, retention time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-retention)
	var deleted int

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRecords)
		if bucket == nil {
			return fmt.Errorf("records bucket not found")
		}

		// Collect first, delete after: deleting while iterating a bolt
		// cursor skips keys.
		var stale [][]byte
		err := bucket.ForEach(func(k, v []byte) error {
			record := &models.MeasurementRecord{}
			if err := json.Unmarshal(v, record); err != nil {
				return fmt.Errorf("failed to unmarshal record: %w", err)
			}

			if record.SyncStatus == models.SyncStatusSynced && record.CreatedAt.Before(cutoff) {
				key := make([]byte, len(k))
				copy(key, k)
				stale = append(stale, key)
			}

			return nil
		})
		if err != nil {
			return err
		}

		for _, key := range stale {
			if err := bucket.Delete(key); err != nil {
				return fmt.Errorf("failed to delete record: %w", err)
			}
			deleted++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		s.notifyWatchers()
	}
	return deleted, nil
}
