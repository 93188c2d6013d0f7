package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/kinetrack/kinetrack/internal/models"
	"github.com/kinetrack/kinetrack/pkg/api"
)

// maxBatchSize caps a single batch upload.
const maxBatchSize = 100

// MeasurementStorage is the slice of storage this handler needs.
type MeasurementStorage interface {
	Upsert(ctx context.Context, m *models.StoredMeasurement) (string, bool, error)
	ListByUser(ctx context.Context, userID string) ([]*models.StoredMeasurement, error)
}

// MeasurementsHandler handles measurement upload requests.
type MeasurementsHandler struct {
	logger  *slog.Logger
	storage MeasurementStorage
}

// NewMeasurementsHandler creates a new measurements handler.
func NewMeasurementsHandler(logger *slog.Logger, storage MeasurementStorage) *MeasurementsHandler {
	return &MeasurementsHandler{
		logger:  logger,
		storage: storage,
	}
}

// HandleMeasurements handles POST (upload) and GET (list) on
// /api/v1/measurements.
func (h *MeasurementsHandler) HandleMeasurements(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.logger.Error("User ID not found in context")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodPost:
		h.handlePush(w, r, userID)
	case http.MethodGet:
		h.handleList(w, r, userID)
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

// HandleBatch handles POST /api/v1/measurements/batch. The response is
// one PushResponse per uploaded record; per-record failures travel in
// the body with HTTP 200, only malformed requests get an error status.
func (h *MeasurementsHandler) HandleBatch(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.logger.Error("User ID not found in context")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var uploads []api.MeasurementUpload
	if err := json.NewDecoder(r.Body).Decode(&uploads); err != nil {
		h.logger.Warn("Invalid batch body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(uploads) == 0 {
		writeError(w, http.StatusBadRequest, "empty batch")
		return
	}
	if len(uploads) > maxBatchSize {
		writeError(w, http.StatusBadRequest, "batch too large")
		return
	}

	h.logger.Info("Batch upload", "user_id", userID, "count", len(uploads))

	resps := make([]api.PushResponse, 0, len(uploads))
	for i := range uploads {
		resps = append(resps, h.storeOne(r.Context(), userID, &uploads[i]))
	}

	writeJSON(w, h.logger, http.StatusOK, resps)
}

// handlePush stores a single uploaded measurement.
func (h *MeasurementsHandler) handlePush(w http.ResponseWriter, r *http.Request, userID string) {
	var upload api.MeasurementUpload
	if err := json.NewDecoder(r.Body).Decode(&upload); err != nil {
		h.logger.Warn("Invalid measurement body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp := h.storeOne(r.Context(), userID, &upload)
	writeJSON(w, h.logger, http.StatusOK, resp)
}

// handleList returns the user's stored measurements, newest first.
func (h *MeasurementsHandler) handleList(w http.ResponseWriter, r *http.Request, userID string) {
	measurements, err := h.storage.ListByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list measurements", "error", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, measurements)
}

// storeOne validates one upload and upserts it, producing the per-record
// response. Validation failures never abort the surrounding batch.
func (h *MeasurementsHandler) storeOne(ctx context.Context, userID string, upload *api.MeasurementUpload) api.PushResponse {
	if msg := validateUpload(userID, upload); msg != "" {
		h.logger.Warn("Rejected measurement", "record_id", upload.ID, "reason", msg)
		return api.PushResponse{ID: upload.ID, ErrorMessage: msg}
	}

	jsonData, err := json.Marshal(upload.JSONData)
	if err != nil {
		return api.PushResponse{ID: upload.ID, ErrorMessage: "invalid json_data"}
	}

	backendID, created, err := h.storage.Upsert(ctx, &models.StoredMeasurement{
		ID:        upload.ID,
		UserID:    userID,
		Type:      upload.Type,
		JSONData:  string(jsonData),
		CreatedAt: upload.CreatedAt,
		UpdatedAt: upload.UpdatedAt,
	})
	if err != nil {
		h.logger.Error("Failed to store measurement", "error", err, "record_id", upload.ID)
		return api.PushResponse{ID: upload.ID, ErrorMessage: "storage error"}
	}

	h.logger.Debug("Measurement stored", "record_id", upload.ID, "backend_id", backendID, "created", created)

	return api.PushResponse{
		ID:        upload.ID,
		BackendID: backendID,
		Success:   true,
	}
}

// validateUpload returns a rejection message, or "" if the upload is
// acceptable for the authenticated user.
func validateUpload(userID string, upload *api.MeasurementUpload) string {
	switch {
	case upload.ID == "":
		return "missing id"
	case upload.Type == "":
		return "missing type"
	case upload.UserID != "" && upload.UserID != userID:
		return "user id does not match token"
	case upload.CreatedAt.IsZero():
		return "missing created_at"
	case upload.CreatedAt.After(time.Now().Add(time.Hour)):
		return "created_at is in the future"
	default:
		return ""
	}
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: message})
}
