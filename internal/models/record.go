package models

import (
	"time"

	"github.com/google/uuid"
)

// SyncStatus describes where a measurement record is in its upload
// lifecycle. Legal transitions:
//
//	pending → syncing → {synced | failed}
//	failed  → syncing (automatic retry)
//	failed  → pending (explicit user retry)
//
// synced is terminal except for pruning.
type SyncStatus string

const (
	SyncStatusPending SyncStatus = "pending"
	SyncStatusSyncing SyncStatus = "syncing"
	SyncStatusSynced  SyncStatus = "synced"
	SyncStatusFailed  SyncStatus = "failed"
)

// Valid reports whether s is one of the known statuses.
func (s SyncStatus) Valid() bool {
	switch s {
	case SyncStatusPending, SyncStatusSyncing, SyncStatusSynced, SyncStatusFailed:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status change is legal.
func (s SyncStatus) CanTransitionTo(next SyncStatus) bool {
	switch s {
	case SyncStatusPending:
		return next == SyncStatusSyncing
	case SyncStatusSyncing:
		return next == SyncStatusSynced || next == SyncStatusFailed
	case SyncStatusFailed:
		return next == SyncStatusSyncing || next == SyncStatusPending
	default:
		return false
	}
}

// Measurement type discriminators
const (
	TypePoseAnalysis   = "pose_analysis"
	TypeROMMeasurement = "rom_measurement"
)

// MeasurementRecord is a locally captured measurement awaiting upload.
// The sync core never interprets Data; it is an opaque payload produced
// by the measurement pipeline. ID is immutable once created and never
// regenerated across retries, which is what makes the backend upsert
// idempotent.
type MeasurementRecord struct {
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	Data           map[string]any `json:"data"`
	ID             string         `json:"id"`
	UserID         string         `json:"user_id"`
	Type           string         `json:"type"`
	SyncStatus     SyncStatus     `json:"sync_status"`
	SyncRetryCount int            `json:"sync_retry_count"`
}

// NewRecord creates a pending record with a fresh UUID and a zero retry
// counter. Timestamps are UTC.
func NewRecord(userID, measurementType string, data map[string]any) *MeasurementRecord {
	now := time.Now().UTC()
	return &MeasurementRecord{
		ID:         uuid.New().String(),
		UserID:     userID,
		Type:       measurementType,
		Data:       data,
		CreatedAt:  now,
		UpdatedAt:  now,
		SyncStatus: SyncStatusPending,
	}
}

// Clone creates a deep copy of the record.
func (r *MeasurementRecord) Clone() *MeasurementRecord {
	data := make(map[string]any, len(r.Data))
	for k, v := range r.Data {
		data[k] = v
	}

	clone := *r
	clone.Data = data
	return &clone
}
