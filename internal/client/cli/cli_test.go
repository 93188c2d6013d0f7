package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinetrack/kinetrack/internal/client/api"
	"github.com/kinetrack/kinetrack/internal/client/data"
	"github.com/kinetrack/kinetrack/internal/client/storage"
	"github.com/kinetrack/kinetrack/internal/client/sync"
	"github.com/kinetrack/kinetrack/internal/models"
)

type schedulerStub struct{}

func (schedulerStub) SyncPendingItems() {}

type connStub struct{ online bool }

func (c connStub) IsOnline() bool { return c.online }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApp(t *testing.T, store *storage.RecordStoreMock, queue *storage.SyncQueueMock) (*App, *bytes.Buffer) {
	t.Helper()

	dataService := data.NewService(store, queue, schedulerStub{}, testLogger())
	engine := sync.NewEngine(store, queue, &api.ClientAPIMock{}, connStub{}, sync.Config{}, testLogger())

	out := &bytes.Buffer{}
	return NewApp(dataService, engine, "user-1", out), out
}

func TestRunAdd_ArgValidation(t *testing.T) {
	app, _ := newTestApp(t, &storage.RecordStoreMock{}, &storage.SyncQueueMock{})

	err := app.RunAdd(context.Background(), []string{"pose_analysis"})
	assert.Error(t, err)

	err = app.RunAdd(context.Background(), []string{"pose_analysis", "not json"})
	assert.Error(t, err)
}

func TestRunAdd_Success(t *testing.T) {
	store := &storage.RecordStoreMock{
		InsertFunc: func(ctx context.Context, record *models.MeasurementRecord) error {
			return nil
		},
	}
	queue := &storage.SyncQueueMock{
		EnqueueFunc: func(ctx context.Context, id string) error {
			return nil
		},
	}
	app, out := newTestApp(t, store, queue)

	err := app.RunAdd(context.Background(), []string{"pose_analysis", `{"angle": 42.5}`})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Recorded measurement")
	require.Len(t, store.InsertCalls(), 1)
	assert.Equal(t, "pose_analysis", store.InsertCalls()[0].Record.Type)
}

func TestRunList_Empty(t *testing.T) {
	store := &storage.RecordStoreMock{
		ListByUserFunc: func(ctx context.Context, userID string) ([]*models.MeasurementRecord, error) {
			return nil, nil
		},
	}
	app, out := newTestApp(t, store, &storage.SyncQueueMock{})

	require.NoError(t, app.RunList(context.Background()))
	assert.Contains(t, out.String(), "No measurements recorded.")
}

func TestRunList_PrintsRecords(t *testing.T) {
	record := models.NewRecord("user-1", models.TypeROMMeasurement, map[string]any{"rom": 120.0})
	store := &storage.RecordStoreMock{
		ListByUserFunc: func(ctx context.Context, userID string) ([]*models.MeasurementRecord, error) {
			return []*models.MeasurementRecord{record}, nil
		},
	}
	app, out := newTestApp(t, store, &storage.SyncQueueMock{})

	require.NoError(t, app.RunList(context.Background()))
	assert.Contains(t, out.String(), record.ID)
	assert.Contains(t, out.String(), "rom_measurement")
	assert.Contains(t, out.String(), "pending")
}

func TestRunStatus(t *testing.T) {
	app, out := newTestApp(t, &storage.RecordStoreMock{}, &storage.SyncQueueMock{})

	require.NoError(t, app.RunStatus(context.Background()))
	assert.Contains(t, out.String(), "Status:   idle")
	assert.Contains(t, out.String(), "Online:   false")
}
