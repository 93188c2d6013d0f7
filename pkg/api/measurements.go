package api

import "time"

// MeasurementUpload is one measurement record as it travels to the backend.
// The id is generated on the client and stable across retries, so the
// backend upserts by id instead of creating duplicates.
type MeasurementUpload struct {
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	JSONData  map[string]any `json:"json_data"`
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Type      string         `json:"type"`
}

// PushResponse is the backend's per-record result. The batch endpoint
// returns a JSON array of these, same order and length as the request.
type PushResponse struct {
	ID           string `json:"id"`
	BackendID    string `json:"backend_id,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
	Success      bool   `json:"success"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of a non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}
