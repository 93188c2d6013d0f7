package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
)

// The queue is stored as two buckets: queue_order maps a monotonically
// increasing sequence number to a record id (FIFO order), queue_index
// maps a record id back to its sequence key (set semantics, O(1) Remove).

func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

// Enqueue appends id unless it is already queued
func (s *Storage) Enqueue(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		order := tx.Bucket(bucketQueueOrder)
		index := tx.Bucket(bucketQueueIndex)
		if order == nil || index == nil {
			return fmt.Errorf("queue buckets not found")
		}

		// Already queued: keep its original position.
		if index.Get([]byte(id)) != nil {
			return nil
		}

		seq, err := order.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate queue sequence: %w", err)
		}

		key := seqKey(seq)
		if err := order.Put(key, []byte(id)); err != nil {
			return fmt.Errorf("failed to enqueue id: %w", err)
		}
		if err := index.Put([]byte(id), key); err != nil {
			return fmt.Errorf("failed to index queued id: %w", err)
		}

		return nil
	})
}

// PeekBatch returns up to maxSize ids in FIFO order without removing them
func (s *Storage) PeekBatch(ctx context.Context, maxSize int) ([]string, error) {
	if maxSize <= 0 {
		return nil, nil
	}

	var ids []string

	err := s.db.View(func(tx *bbolt.Tx) error {
		order := tx.Bucket(bucketQueueOrder)
		if order == nil {
			return fmt.Errorf("queue buckets not found")
		}

		cursor := order.Cursor()
		for k, v := cursor.First(); k != nil && len(ids) < maxSize; k, v = cursor.Next() {
			ids = append(ids, string(v))
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return ids, nil
}

// Remove drops a specific id from the queue. Unknown ids are a no-op.
func (s *Storage) Remove(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		order := tx.Bucket(bucketQueueOrder)
		index := tx.Bucket(bucketQueueIndex)
		if order == nil || index == nil {
			return fmt.Errorf("queue buckets not found")
		}

		key := index.Get([]byte(id))
		if key == nil {
			return nil
		}

		if err := order.Delete(key); err != nil {
			return fmt.Errorf("failed to remove queued id: %w", err)
		}
		if err := index.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to remove queue index: %w", err)
		}

		return nil
	})
}

// Len returns the number of queued ids
func (s *Storage) Len(ctx context.Context) (int, error) {
	var count int

	err := s.db.View(func(tx *bbolt.Tx) error {
		index := tx.Bucket(bucketQueueIndex)
		if index == nil {
			return fmt.Errorf("queue buckets not found")
		}

		count = index.Stats().KeyN
		return nil
	})

	if err != nil {
		return 0, err
	}

	return count, nil
}

// Rebuild clears the queue and repopulates it in the given order
func (s *Storage) Rebuild(ctx context.Context, ids []string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketQueueOrder); err != nil {
			return fmt.Errorf("failed to clear queue order: %w", err)
		}
		if err := tx.DeleteBucket(bucketQueueIndex); err != nil {
			return fmt.Errorf("failed to clear queue index: %w", err)
		}

		order, err := tx.CreateBucket(bucketQueueOrder)
		if err != nil {
			return fmt.Errorf("failed to recreate queue order: %w", err)
		}
		index, err := tx.CreateBucket(bucketQueueIndex)
		if err != nil {
			return fmt.Errorf("failed to recreate queue index: %w", err)
		}

		for _, id := range ids {
			// Duplicate ids collapse to their first position.
			if index.Get([]byte(id)) != nil {
				continue
			}

			seq, err := order.NextSequence()
			if err != nil {
				return fmt.Errorf("failed to allocate queue sequence: %w", err)
			}

			key := seqKey(seq)
			if err := order.Put(key, []byte(id)); err != nil {
				return fmt.Errorf("failed to enqueue id: %w", err)
			}
			if err := index.Put([]byte(id), key); err != nil {
				return fmt.Errorf("failed to index queued id: %w", err)
			}
		}

		return nil
	})
}
