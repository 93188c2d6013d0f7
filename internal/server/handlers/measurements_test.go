package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinetrack/kinetrack/internal/models"
	"github.com/kinetrack/kinetrack/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError, // Only show errors in tests
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

// mockMeasurementStorage is an in-memory MeasurementStorage for tests.
type mockMeasurementStorage struct {
	stored    map[string]*models.StoredMeasurement
	upsertErr error
	listErr   error
	upserts   []string
}

func newMockStorage() *mockMeasurementStorage {
	return &mockMeasurementStorage{stored: make(map[string]*models.StoredMeasurement)}
}

func (m *mockMeasurementStorage) Upsert(ctx context.Context, sm *models.StoredMeasurement) (string, bool, error) {
	if m.upsertErr != nil {
		return "", false, m.upsertErr
	}
	m.upserts = append(m.upserts, sm.ID)

	if existing, ok := m.stored[sm.ID]; ok {
		existing.JSONData = sm.JSONData
		existing.UpdatedAt = sm.UpdatedAt
		return existing.BackendID, false, nil
	}

	stored := *sm
	stored.BackendID = "backend-" + sm.ID
	m.stored[sm.ID] = &stored
	return stored.BackendID, true, nil
}

func (m *mockMeasurementStorage) Get(ctx context.Context, id string) (*models.StoredMeasurement, error) {
	sm, ok := m.stored[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return sm, nil
}

func (m *mockMeasurementStorage) ListByUser(ctx context.Context, userID string) ([]*models.StoredMeasurement, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*models.StoredMeasurement
	for _, sm := range m.stored {
		if sm.UserID == userID {
			out = append(out, sm)
		}
	}
	return out, nil
}

func testUpload(id string) api.MeasurementUpload {
	now := time.Now().UTC()
	return api.MeasurementUpload{
		ID:        id,
		UserID:    "user123",
		Type:      "pose_analysis",
		JSONData:  map[string]any{"angle": 42.5},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func authedRequest(method, path string, body []byte) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	ctx := context.WithValue(req.Context(), UserIDKey, "user123")
	return req.WithContext(ctx)
}

func TestMeasurementsHandler_Unauthorized(t *testing.T) {
	handler := NewMeasurementsHandler(setupTestLogger(), newMockStorage())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/measurements", nil)
	// No user_id in context

	w := httptest.NewRecorder()
	handler.HandleMeasurements(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeasurementsHandler_MethodNotAllowed(t *testing.T) {
	handler := NewMeasurementsHandler(setupTestLogger(), newMockStorage())

	req := authedRequest(http.MethodDelete, "/api/v1/measurements", nil)

	w := httptest.NewRecorder()
	handler.HandleMeasurements(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestMeasurementsHandler_Push_Success(t *testing.T) {
	storage := newMockStorage()
	handler := NewMeasurementsHandler(setupTestLogger(), storage)

	body, err := json.Marshal(testUpload("rec-1"))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.HandleMeasurements(w, authedRequest(http.MethodPost, "/api/v1/measurements", body))

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.PushResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "rec-1", resp.ID)
	assert.Equal(t, "backend-rec-1", resp.BackendID)

	stored := storage.stored["rec-1"]
	require.NotNil(t, stored)
	assert.Equal(t, "user123", stored.UserID)
	assert.JSONEq(t, `{"angle":42.5}`, stored.JSONData)
}

func TestMeasurementsHandler_Push_RetryKeepsBackendID(t *testing.T) {
	storage := newMockStorage()
	handler := NewMeasurementsHandler(setupTestLogger(), storage)

	body, err := json.Marshal(testUpload("rec-1"))
	require.NoError(t, err)

	first := httptest.NewRecorder()
	handler.HandleMeasurements(first, authedRequest(http.MethodPost, "/api/v1/measurements", body))
	second := httptest.NewRecorder()
	handler.HandleMeasurements(second, authedRequest(http.MethodPost, "/api/v1/measurements", body))

	var firstResp, secondResp api.PushResponse
	require.NoError(t, json.NewDecoder(first.Body).Decode(&firstResp))
	require.NoError(t, json.NewDecoder(second.Body).Decode(&secondResp))

	assert.True(t, secondResp.Success)
	assert.Equal(t, firstResp.BackendID, secondResp.BackendID)
	assert.Len(t, storage.stored, 1)
}

func TestMeasurementsHandler_Push_InvalidBody(t *testing.T) {
	handler := NewMeasurementsHandler(setupTestLogger(), newMockStorage())

	w := httptest.NewRecorder()
	handler.HandleMeasurements(w, authedRequest(http.MethodPost, "/api/v1/measurements", []byte("not json")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeasurementsHandler_Push_UserMismatch(t *testing.T) {
	storage := newMockStorage()
	handler := NewMeasurementsHandler(setupTestLogger(), storage)

	upload := testUpload("rec-1")
	upload.UserID = "someone-else"
	body, err := json.Marshal(upload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.HandleMeasurements(w, authedRequest(http.MethodPost, "/api/v1/measurements", body))

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.PushResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "user id does not match token", resp.ErrorMessage)
	assert.Empty(t, storage.stored)
}

func TestMeasurementsHandler_Push_StorageError(t *testing.T) {
	storage := newMockStorage()
	storage.upsertErr = errors.New("disk full")
	handler := NewMeasurementsHandler(setupTestLogger(), storage)

	body, err := json.Marshal(testUpload("rec-1"))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.HandleMeasurements(w, authedRequest(http.MethodPost, "/api/v1/measurements", body))

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.PushResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "storage error", resp.ErrorMessage)
}

func TestMeasurementsHandler_Batch_Success(t *testing.T) {
	storage := newMockStorage()
	handler := NewMeasurementsHandler(setupTestLogger(), storage)

	uploads := []api.MeasurementUpload{testUpload("rec-1"), testUpload("rec-2")}
	body, err := json.Marshal(uploads)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.HandleBatch(w, authedRequest(http.MethodPost, "/api/v1/measurements/batch", body))

	require.Equal(t, http.StatusOK, w.Code)

	var resps []api.PushResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resps))
	require.Len(t, resps, 2)

	assert.Equal(t, "rec-1", resps[0].ID)
	assert.True(t, resps[0].Success)
	assert.Equal(t, "rec-2", resps[1].ID)
	assert.True(t, resps[1].Success)
}

func TestMeasurementsHandler_Batch_MixedValidity(t *testing.T) {
	storage := newMockStorage()
	handler := NewMeasurementsHandler(setupTestLogger(), storage)

	bad := testUpload("rec-2")
	bad.Type = ""

	uploads := []api.MeasurementUpload{testUpload("rec-1"), bad, testUpload("rec-3")}
	body, err := json.Marshal(uploads)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.HandleBatch(w, authedRequest(http.MethodPost, "/api/v1/measurements/batch", body))

	require.Equal(t, http.StatusOK, w.Code)

	var resps []api.PushResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resps))
	require.Len(t, resps, 3)

	// One bad record never aborts the batch.
	assert.True(t, resps[0].Success)
	assert.False(t, resps[1].Success)
	assert.Equal(t, "missing type", resps[1].ErrorMessage)
	assert.True(t, resps[2].Success)

	assert.Len(t, storage.stored, 2)
}

func TestMeasurementsHandler_Batch_Empty(t *testing.T) {
	handler := NewMeasurementsHandler(setupTestLogger(), newMockStorage())

	w := httptest.NewRecorder()
	handler.HandleBatch(w, authedRequest(http.MethodPost, "/api/v1/measurements/batch", []byte("[]")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeasurementsHandler_Batch_TooLarge(t *testing.T) {
	handler := NewMeasurementsHandler(setupTestLogger(), newMockStorage())

	uploads := make([]api.MeasurementUpload, maxBatchSize+1)
	for i := range uploads {
		uploads[i] = testUpload(fmt.Sprintf("rec-%d", i))
	}
	body, err := json.Marshal(uploads)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.HandleBatch(w, authedRequest(http.MethodPost, "/api/v1/measurements/batch", body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeasurementsHandler_List(t *testing.T) {
	storage := newMockStorage()
	handler := NewMeasurementsHandler(setupTestLogger(), storage)

	body, err := json.Marshal(testUpload("rec-1"))
	require.NoError(t, err)
	w := httptest.NewRecorder()
	handler.HandleMeasurements(w, authedRequest(http.MethodPost, "/api/v1/measurements", body))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.HandleMeasurements(w, authedRequest(http.MethodGet, "/api/v1/measurements", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got []*models.StoredMeasurement
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "rec-1", got[0].ID)
}

func TestValidateUpload(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name   string
		mutate func(*api.MeasurementUpload)
		want   string
	}{
		{name: "valid", mutate: func(u *api.MeasurementUpload) {}, want: ""},
		{name: "missing id", mutate: func(u *api.MeasurementUpload) { u.ID = "" }, want: "missing id"},
		{name: "missing type", mutate: func(u *api.MeasurementUpload) { u.Type = "" }, want: "missing type"},
		{name: "user mismatch", mutate: func(u *api.MeasurementUpload) { u.UserID = "other" }, want: "user id does not match token"},
		{name: "blank user is accepted", mutate: func(u *api.MeasurementUpload) { u.UserID = "" }, want: ""},
		{name: "zero created_at", mutate: func(u *api.MeasurementUpload) { u.CreatedAt = time.Time{} }, want: "missing created_at"},
		{name: "future created_at", mutate: func(u *api.MeasurementUpload) { u.CreatedAt = now.Add(2 * time.Hour) }, want: "created_at is in the future"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upload := testUpload("rec-1")
			tt.mutate(&upload)
			assert.Equal(t, tt.want, validateUpload("user123", &upload))
		})
	}
}
