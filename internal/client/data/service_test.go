package data

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinetrack/kinetrack/internal/client/storage"
	"github.com/kinetrack/kinetrack/internal/models"
)

type schedulerStub struct {
	calls atomic.Int64
}

func (s *schedulerStub) SyncPendingItems() { s.calls.Add(1) }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_InsertMeasurement(t *testing.T) {
	mockStore := &storage.RecordStoreMock{
		InsertFunc: func(ctx context.Context, record *models.MeasurementRecord) error {
			return nil
		},
	}
	mockQueue := &storage.SyncQueueMock{
		EnqueueFunc: func(ctx context.Context, id string) error {
			return nil
		},
	}
	scheduler := &schedulerStub{}

	svc := NewService(mockStore, mockQueue, scheduler, testLogger())

	record, err := svc.InsertMeasurement(context.Background(), "user-1", models.TypePoseAnalysis, map[string]any{"angle": 45.0})
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "user-1", record.UserID)
	assert.Equal(t, models.SyncStatusPending, record.SyncStatus)

	require.Len(t, mockStore.InsertCalls(), 1)
	require.Len(t, mockQueue.EnqueueCalls(), 1)
	assert.Equal(t, record.ID, mockQueue.EnqueueCalls()[0].ID)
	assert.Equal(t, int64(1), scheduler.calls.Load())
}

func TestService_InsertMeasurement_Validation(t *testing.T) {
	svc := NewService(&storage.RecordStoreMock{}, &storage.SyncQueueMock{}, &schedulerStub{}, testLogger())

	_, err := svc.InsertMeasurement(context.Background(), "", models.TypePoseAnalysis, nil)
	assert.ErrorIs(t, err, ErrEmptyUserID)

	_, err = svc.InsertMeasurement(context.Background(), "user-1", "", nil)
	assert.ErrorIs(t, err, ErrEmptyType)
}

func TestService_InsertMeasurement_StoreError(t *testing.T) {
	storeErr := errors.New("disk full")
	mockStore := &storage.RecordStoreMock{
		InsertFunc: func(ctx context.Context, record *models.MeasurementRecord) error {
			return storeErr
		},
	}
	mockQueue := &storage.SyncQueueMock{}
	scheduler := &schedulerStub{}

	svc := NewService(mockStore, mockQueue, scheduler, testLogger())

	_, err := svc.InsertMeasurement(context.Background(), "user-1", models.TypePoseAnalysis, nil)
	assert.ErrorIs(t, err, storeErr)

	// No enqueue and no sync trigger for a record that never landed.
	assert.Empty(t, mockQueue.EnqueueCalls())
	assert.Zero(t, scheduler.calls.Load())
}

func TestService_InsertMeasurement_EnqueueFailureIsTolerated(t *testing.T) {
	mockStore := &storage.RecordStoreMock{
		InsertFunc: func(ctx context.Context, record *models.MeasurementRecord) error {
			return nil
		},
	}
	mockQueue := &storage.SyncQueueMock{
		EnqueueFunc: func(ctx context.Context, id string) error {
			return errors.New("queue bucket missing")
		},
	}
	scheduler := &schedulerStub{}

	svc := NewService(mockStore, mockQueue, scheduler, testLogger())

	record, err := svc.InsertMeasurement(context.Background(), "user-1", models.TypeROMMeasurement, nil)
	require.NoError(t, err)
	assert.NotNil(t, record)
	assert.Equal(t, int64(1), scheduler.calls.Load())
}

func TestService_ListMeasurements(t *testing.T) {
	want := []*models.MeasurementRecord{
		models.NewRecord("user-1", models.TypePoseAnalysis, nil),
	}
	mockStore := &storage.RecordStoreMock{
		ListByUserFunc: func(ctx context.Context, userID string) ([]*models.MeasurementRecord, error) {
			assert.Equal(t, "user-1", userID)
			return want, nil
		},
	}

	svc := NewService(mockStore, &storage.SyncQueueMock{}, &schedulerStub{}, testLogger())

	got, err := svc.ListMeasurements(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.ListMeasurements(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyUserID)
}

func TestService_WatchMeasurements(t *testing.T) {
	ch := make(chan []*models.MeasurementRecord)
	mockStore := &storage.RecordStoreMock{
		WatchByUserFunc: func(ctx context.Context, userID string) (<-chan []*models.MeasurementRecord, error) {
			return ch, nil
		},
	}

	svc := NewService(mockStore, &storage.SyncQueueMock{}, &schedulerStub{}, testLogger())

	got, err := svc.WatchMeasurements(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotNil(t, got)

	_, err = svc.WatchMeasurements(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyUserID)
}
