package sync

import "time"

// Status is the engine's coarse lifecycle phase for the UI surface.
type Status string

const (
	// StatusIdle means no pass has run yet or there is nothing to do.
	StatusIdle Status = "idle"
	// StatusSyncing means a pass is currently in flight.
	StatusSyncing Status = "syncing"
	// StatusSuccess means the last pass completed without failures.
	StatusSuccess Status = "success"
	// StatusError means the last pass left failed records behind.
	StatusError Status = "error"
)

// SyncState is a snapshot of the engine for display. It is recomputed
// from the record store after every pass, never updated incrementally,
// so it cannot drift from the durable truth.
type SyncState struct {
	LastSyncAttempt time.Time
	LastError       string
	Status          Status
	PendingCount    int
	FailedCount     int
	IsOnline        bool
}
