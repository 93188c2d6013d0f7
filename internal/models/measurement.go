package models

import "time"

// StoredMeasurement is the backend's durable form of an uploaded
// measurement. The client-generated ID stays the dedupe key across
// retries; BackendID is assigned on first insert and never changes.
type StoredMeasurement struct {
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	ReceivedAt time.Time `json:"received_at"`
	ID         string    `json:"id"`
	BackendID  string    `json:"backend_id"`
	UserID     string    `json:"user_id"`
	Type       string    `json:"type"`
	JSONData   string    `json:"json_data"`
}
