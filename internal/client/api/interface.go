package api

import (
	"context"

	"github.com/kinetrack/kinetrack/internal/models"
)

//go:generate moq -out client_mock.go . ClientAPI

// PushOutcome is the per-record result of a push. Transport and server
// failures are reported here, not as Go errors: a failed push is a normal
// domain outcome the sync engine acts on, not an exceptional condition.
type PushOutcome struct {
	RecordID     string
	BackendID    string
	ErrorKind    ErrorKind
	ErrorMessage string
	Success      bool
}

// ClientAPI is the remote measurement service as seen by the client.
type ClientAPI interface {
	// Push uploads a single record. The outcome always carries the
	// record's id so callers can correlate without positional bookkeeping.
	Push(ctx context.Context, record *models.MeasurementRecord) PushOutcome

	// PushBatch uploads up to a batch of records and returns one outcome
	// per input record, in input order. A batch-level transport failure
	// yields a uniform failed outcome for every record.
	PushBatch(ctx context.Context, records []*models.MeasurementRecord) []PushOutcome

	// Health probes the server's health endpoint. Used by the
	// connectivity monitor, so it must be cheap and unauthenticated.
	Health(ctx context.Context) error
}
