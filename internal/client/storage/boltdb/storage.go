package boltdb

import (
	"context"
	"fmt"
	"sync"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketRecords    = []byte("records")
	bucketQueueOrder = []byte("queue_order")
	bucketQueueIndex = []byte("queue_index")
)

// Storage is the BoltDB-backed client storage. It hosts both the record
// store and the sync queue so they share a single database file, and it
// implements change notification for the watch queries: every mutation
// pokes the registered watchers, which re-query and push a fresh snapshot.
type Storage struct {
	db *bbolt.DB

	watchMu     sync.Mutex
	watchers    map[int]chan struct{}
	nextWatchID int
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{
		db:       db,
		watchers: make(map[int]chan struct{}),
	}

	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets creates the required buckets if they don't exist yet
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketRecords); err != nil {
			return fmt.Errorf("failed to create records bucket: %w", err)
		}

		if _, err := tx.CreateBucketIfNotExists(bucketQueueOrder); err != nil {
			return fmt.Errorf("failed to create queue order bucket: %w", err)
		}

		if _, err := tx.CreateBucketIfNotExists(bucketQueueIndex); err != nil {
			return fmt.Errorf("failed to create queue index bucket: %w", err)
		}

		return nil
	})
}

// addWatcher registers a change-notification channel. The channel has a
// buffer of one; notifyWatchers never blocks on slow consumers.
func (s *Storage) addWatcher() (int, chan struct{}) {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()

	id := s.nextWatchID
	s.nextWatchID++

	ch := make(chan struct{}, 1)
	s.watchers[id] = ch
	return id, ch
}

// removeWatcher unregisters a change-notification channel.
func (s *Storage) removeWatcher(id int) {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()
	delete(s.watchers, id)
}

// notifyWatchers pokes every registered watcher. Coalesces: a watcher
// that already has a pending poke is not poked again.
func (s *Storage) notifyWatchers() {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()

	for _, ch := range s.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
