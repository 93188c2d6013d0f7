package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinetrack/kinetrack/internal/client/storage"
	"github.com/kinetrack/kinetrack/internal/models"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "kinetrack-test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func testRecord(id, userID string, createdAt time.Time) *models.MeasurementRecord {
	return &models.MeasurementRecord{
		ID:         id,
		UserID:     userID,
		Type:       models.TypeROMMeasurement,
		Data:       map[string]any{"joint": "knee", "angle": 90.0},
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
		SyncStatus: models.SyncStatusPending,
	}
}

func TestInsertAndGet(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	rec := testRecord("m1", "u1", time.Now().UTC())
	require.NoError(t, s.Insert(ctx, rec))

	got, err := s.Get(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "m1", got.ID)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, models.SyncStatusPending, got.SyncStatus)
	assert.Equal(t, 0, got.SyncRetryCount)
}

func TestInsert_DuplicateID(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	rec := testRecord("m1", "u1", time.Now().UTC())
	require.NoError(t, s.Insert(ctx, rec))

	err := s.Insert(ctx, rec)
	assert.ErrorIs(t, err, storage.ErrDuplicateRecord)
}

func TestInsert_ForcesPendingStatus(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	rec := testRecord("m1", "u1", time.Now().UTC())
	rec.SyncStatus = models.SyncStatusSynced
	rec.SyncRetryCount = 7
	require.NoError(t, s.Insert(ctx, rec))

	got, err := s.Get(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusPending, got.SyncStatus)
	assert.Equal(t, 0, got.SyncRetryCount)
}

func TestGet_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestListByUser_NewestFirst(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	base := time.Now().UTC()

	require.NoError(t, s.Insert(ctx, testRecord("m1", "u1", base.Add(-2*time.Hour))))
	require.NoError(t, s.Insert(ctx, testRecord("m2", "u1", base.Add(-1*time.Hour))))
	require.NoError(t, s.Insert(ctx, testRecord("m3", "u2", base)))

	records, err := s.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "m2", records[0].ID)
	assert.Equal(t, "m1", records[1].ID)
}

func TestListPending_OldestFirst(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	base := time.Now().UTC()

	require.NoError(t, s.Insert(ctx, testRecord("m1", "u1", base.Add(-1*time.Hour))))
	require.NoError(t, s.Insert(ctx, testRecord("m2", "u1", base.Add(-2*time.Hour))))
	require.NoError(t, s.Insert(ctx, testRecord("m3", "u1", base)))
	require.NoError(t, s.MarkSynced(ctx, "m1"))

	records, err := s.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "m2", records[0].ID)
	assert.Equal(t, "m3", records[1].ID)
}

func TestUpdateStatus(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	rec := testRecord("m1", "u1", time.Now().UTC())
	require.NoError(t, s.Insert(ctx, rec))

	require.NoError(t, s.UpdateStatus(ctx, "m1", models.SyncStatusSyncing))

	got, err := s.Get(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusSyncing, got.SyncStatus)
	assert.True(t, got.UpdatedAt.After(rec.UpdatedAt) || got.UpdatedAt.Equal(rec.UpdatedAt))
}

func TestUpdateStatus_NotFound(t *testing.T) {
	s := newTestStorage(t)

	err := s.UpdateStatus(context.Background(), "missing", models.SyncStatusSyncing)
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestIncrementRetryAndMarkFailed(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, testRecord("m1", "u1", time.Now().UTC())))

	count, err := s.IncrementRetryAndMarkFailed(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = s.IncrementRetryAndMarkFailed(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	got, err := s.Get(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusFailed, got.SyncStatus)
	assert.Equal(t, 2, got.SyncRetryCount)
}

func TestIncrementRetryAndMarkFailed_MissingIsNoop(t *testing.T) {
	s := newTestStorage(t)

	// Record pruned while its push was in flight: benign no-op.
	count, err := s.IncrementRetryAndMarkFailed(context.Background(), "pruned")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestResetForRetry(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, testRecord("m1", "u1", time.Now().UTC())))
	for i := 0; i < 3; i++ {
		_, err := s.IncrementRetryAndMarkFailed(ctx, "m1")
		require.NoError(t, err)
	}

	require.NoError(t, s.ResetForRetry(ctx, "m1"))

	got, err := s.Get(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusPending, got.SyncStatus)
	assert.Equal(t, 0, got.SyncRetryCount)
}

func TestGetRetryable(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	base := time.Now().UTC()

	require.NoError(t, s.Insert(ctx, testRecord("m1", "u1", base.Add(-3*time.Hour))))
	require.NoError(t, s.Insert(ctx, testRecord("m2", "u1", base.Add(-2*time.Hour))))
	require.NoError(t, s.Insert(ctx, testRecord("m3", "u1", base.Add(-1*time.Hour))))

	// m1 fails once, m2 fails three times (exhausted), m3 stays pending.
	_, err := s.IncrementRetryAndMarkFailed(ctx, "m1")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = s.IncrementRetryAndMarkFailed(ctx, "m2")
		require.NoError(t, err)
	}

	retryable, err := s.GetRetryable(ctx, 3)
	require.NoError(t, err)
	require.Len(t, retryable, 1)
	assert.Equal(t, "m1", retryable[0].ID)
}

func TestRecoverInFlight(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	base := time.Now().UTC()

	require.NoError(t, s.Insert(ctx, testRecord("m1", "u1", base)))
	require.NoError(t, s.Insert(ctx, testRecord("m2", "u1", base)))
	require.NoError(t, s.Insert(ctx, testRecord("m3", "u1", base)))
	require.NoError(t, s.UpdateStatus(ctx, "m1", models.SyncStatusSyncing))
	require.NoError(t, s.UpdateStatus(ctx, "m2", models.SyncStatusSyncing))
	require.NoError(t, s.UpdateStatus(ctx, "m2", models.SyncStatusSynced))

	recovered, err := s.RecoverInFlight(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)

	got, err := s.Get(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusPending, got.SyncStatus)

	// Synced records stay synced.
	got, err = s.Get(ctx, "m2")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusSynced, got.SyncStatus)
}

func TestCountByStatus(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	base := time.Now().UTC()

	require.NoError(t, s.Insert(ctx, testRecord("m1", "u1", base)))
	require.NoError(t, s.Insert(ctx, testRecord("m2", "u1", base)))
	require.NoError(t, s.Insert(ctx, testRecord("m3", "u1", base)))
	require.NoError(t, s.MarkSynced(ctx, "m1"))
	_, err := s.IncrementRetryAndMarkFailed(ctx, "m2")
	require.NoError(t, err)

	counts, err := s.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[models.SyncStatusPending])
	assert.Equal(t, 1, counts[models.SyncStatusSynced])
	assert.Equal(t, 1, counts[models.SyncStatusFailed])
}

func TestPruneSynced(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	now := time.Now().UTC()

	// Old synced record: prunable.
	require.NoError(t, s.Insert(ctx, testRecord("old-synced", "u1", now.Add(-40*24*time.Hour))))
	require.NoError(t, s.MarkSynced(ctx, "old-synced"))

	// Recent synced record: kept.
	require.NoError(t, s.Insert(ctx, testRecord("new-synced", "u1", now.Add(-1*24*time.Hour))))
	require.NoError(t, s.MarkSynced(ctx, "new-synced"))

	// Old pending and failed records: never pruned regardless of age.
	require.NoError(t, s.Insert(ctx, testRecord("old-pending", "u1", now.Add(-90*24*time.Hour))))
	require.NoError(t, s.Insert(ctx, testRecord("old-failed", "u1", now.Add(-90*24*time.Hour))))
	_, err := s.IncrementRetryAndMarkFailed(ctx, "old-failed")
	require.NoError(t, err)

	deleted, err := s.PruneSynced(ctx, 30*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = s.Get(ctx, "old-synced")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)

	for _, id := range []string{"new-synced", "old-pending", "old-failed"} {
		_, err = s.Get(ctx, id)
		assert.NoError(t, err, id)
	}
}

func TestStorage_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "kinetrack-test.db")

	s, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Insert(ctx, testRecord("m1", "u1", time.Now().UTC())))
	require.NoError(t, s.Enqueue(ctx, "m1"))
	require.NoError(t, s.Close())

	s, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer func() { require.NoError(t, s.Close()) }()

	got, err := s.Get(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "m1", got.ID)

	ids, err := s.PeekBatch(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"m1"}, ids)
}
