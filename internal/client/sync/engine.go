// Package sync reconciles locally stored measurement records with the
// backend. The record store is the source of truth, the queue is a
// derived work list, and every pass recomputes its public state from the
// store so nothing can drift after a crash.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	stdsync "sync"
	"sync/atomic"
	"time"

	"github.com/kinetrack/kinetrack/internal/client/api"
	"github.com/kinetrack/kinetrack/internal/client/storage"
	"github.com/kinetrack/kinetrack/internal/models"
)

const (
	defaultBatchSize  = 25
	defaultMaxRetries = 3
	defaultRetention  = 30 * 24 * time.Hour
	defaultDebounce   = time.Second
)

// ConnectivitySource answers whether the backend is currently reachable.
type ConnectivitySource interface {
	IsOnline() bool
}

// Config tunes the engine.
type Config struct {
	// BatchSize is the maximum number of records pushed per request.
	BatchSize int
	// MaxRetries is the attempt limit after which a record is abandoned:
	// it stays failed in the store but leaves the automatic retry path.
	MaxRetries int
	// Retention is how long synced records are kept before pruning.
	Retention time.Duration
	// Debounce is how long SyncPendingItems waits for further triggers
	// before starting a pass.
	Debounce time.Duration
}

func (c Config) withDefaults() Config {
	if c.BatchSize <= 0 {
		c.BatchSize = defaultBatchSize
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = defaultMaxRetries
	}
	if c.Retention <= 0 {
		c.Retention = defaultRetention
	}
	if c.Debounce <= 0 {
		c.Debounce = defaultDebounce
	}
	return c
}

// Engine drives sync passes. At most one pass runs at a time; triggers
// arriving during a pass or within the debounce window coalesce.
type Engine struct {
	store  storage.RecordStore
	queue  storage.SyncQueue
	client api.ClientAPI
	conn   ConnectivitySource
	logger *slog.Logger
	cfg    Config

	inFlight atomic.Bool

	mu            stdsync.Mutex
	state         SyncState
	subs          map[int]chan SyncState
	nextID        int
	debounceTimer *time.Timer
}

// NewEngine wires the engine to its collaborators.
func NewEngine(
	store storage.RecordStore,
	queue storage.SyncQueue,
	client api.ClientAPI,
	conn ConnectivitySource,
	cfg Config,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		store:  store,
		queue:  queue,
		client: client,
		conn:   conn,
		cfg:    cfg.withDefaults(),
		logger: logger,
		subs:   make(map[int]chan SyncState),
		state:  SyncState{Status: StatusIdle},
	}
}

// Bootstrap runs the crash-recovery sequence: records stuck in syncing go
// back to pending, then the queue is rebuilt from the store so that every
// pending and still-retryable failed record is queued exactly once.
func (e *Engine) Bootstrap(ctx context.Context) error {
	recovered, err := e.store.RecoverInFlight(ctx)
	if err != nil {
		return fmt.Errorf("recover in-flight records: %w", err)
	}
	if recovered > 0 {
		e.logger.Info("recovered in-flight records", "count", recovered)
	}

	pending, err := e.store.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("list pending records: %w", err)
	}
	retryable, err := e.store.GetRetryable(ctx, e.cfg.MaxRetries)
	if err != nil {
		return fmt.Errorf("list retryable records: %w", err)
	}

	ids := make([]string, 0, len(pending)+len(retryable))
	for _, record := range pending {
		ids = append(ids, record.ID)
	}
	for _, record := range retryable {
		ids = append(ids, record.ID)
	}

	if err := e.queue.Rebuild(ctx, ids); err != nil {
		return fmt.Errorf("rebuild sync queue: %w", err)
	}
	e.logger.Info("sync queue rebuilt", "queued", len(ids))

	return e.refreshState(ctx, "")
}

// SyncPendingItems schedules a sync pass after the debounce window. Calls
// arriving inside the window reset it, so a burst of inserts produces one
// pass.
func (e *Engine) SyncPendingItems() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.debounceTimer != nil {
		e.debounceTimer.Reset(e.cfg.Debounce)
		return
	}

	e.debounceTimer = time.AfterFunc(e.cfg.Debounce, func() {
		e.mu.Lock()
		e.debounceTimer = nil
		e.mu.Unlock()

		if err := e.runPass(context.Background()); err != nil {
			e.logger.Error("sync pass failed", "error", err)
		}
	})
}

// ForceSyncNow runs a pass immediately, bypassing the debounce window.
// Any pending debounced trigger is absorbed into this pass.
func (e *Engine) ForceSyncNow(ctx context.Context) error {
	e.mu.Lock()
	if e.debounceTimer != nil {
		e.debounceTimer.Stop()
		e.debounceTimer = nil
	}
	e.mu.Unlock()

	return e.runPass(ctx)
}

// RetryFailedItems puts every failed record back on the pending path with
// a fresh retry budget and runs a pass. This is the only way a record
// past the retry limit re-enters automatic syncing.
func (e *Engine) RetryFailedItems(ctx context.Context) error {
	failed, err := e.store.ListFailed(ctx)
	if err != nil {
		return fmt.Errorf("list failed records: %w", err)
	}
	if len(failed) == 0 {
		return nil
	}

	for _, record := range failed {
		if err := e.store.ResetForRetry(ctx, record.ID); err != nil {
			return fmt.Errorf("reset record %s for retry: %w", record.ID, err)
		}
		if err := e.queue.Enqueue(ctx, record.ID); err != nil {
			return fmt.Errorf("enqueue record %s: %w", record.ID, err)
		}
	}
	e.logger.Info("failed records reset for retry", "count", len(failed))

	return e.ForceSyncNow(ctx)
}

// PruneSynced deletes synced records older than the retention window.
func (e *Engine) PruneSynced(ctx context.Context) (int, error) {
	pruned, err := e.store.PruneSynced(ctx, e.cfg.Retention)
	if err != nil {
		return 0, fmt.Errorf("prune synced records: %w", err)
	}
	if pruned > 0 {
		e.logger.Info("pruned synced records", "count", pruned)
	}
	return pruned, nil
}

// Stop cancels any pending debounced trigger. A pass already in flight
// runs to completion.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.debounceTimer != nil {
		e.debounceTimer.Stop()
		e.debounceTimer = nil
	}
}

// State returns the last published state snapshot.
func (e *Engine) State() SyncState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// SubscribeState returns a channel receiving state snapshots and a cancel
// function. The channel is buffered and drops stale snapshots.
func (e *Engine) SubscribeState() (<-chan SyncState, func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	ch := make(chan SyncState, 1)
	e.subs[id] = ch

	cancel := func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, ok := e.subs[id]; ok {
			delete(e.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

func (e *Engine) publish(state SyncState) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = state
	for _, ch := range e.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- state:
		default:
		}
	}
}

// runPass executes one full sync pass. Offline is a true no-op: no
// network calls and no record mutations. Concurrent triggers coalesce
// into the pass already running.
func (e *Engine) runPass(ctx context.Context) error {
	if !e.conn.IsOnline() {
		e.logger.Debug("sync skipped, offline")
		return e.refreshState(ctx, "")
	}

	if !e.inFlight.CompareAndSwap(false, true) {
		e.logger.Debug("sync pass already in flight")
		return nil
	}
	defer e.inFlight.Store(false)

	started := time.Now().UTC()
	snapshot := e.State()
	snapshot.Status = StatusSyncing
	snapshot.LastSyncAttempt = started
	snapshot.IsOnline = true
	e.publish(snapshot)
	e.logger.Info("sync pass started")

	lastErr, passErr := e.drainQueue(ctx)
	if passErr != nil {
		// Publish whatever the store says before surfacing the error.
		_ = e.refreshState(ctx, passErr.Error())
		return passErr
	}

	return e.refreshState(ctx, lastErr)
}

// drainQueue works through the queue in batches until nothing attemptable
// remains. Failed-but-retryable records stay queued for a later pass, so
// each record is attempted at most once per pass to guarantee the loop
// terminates.
func (e *Engine) drainQueue(ctx context.Context) (string, error) {
	attempted := make(map[string]struct{})
	var lastErr string

	for {
		batch, err := e.nextBatch(ctx, attempted)
		if err != nil {
			return lastErr, err
		}
		if len(batch) == 0 {
			return lastErr, nil
		}

		for _, record := range batch {
			attempted[record.ID] = struct{}{}
			if err := e.store.UpdateStatus(ctx, record.ID, models.SyncStatusSyncing); err != nil {
				return lastErr, fmt.Errorf("mark record %s syncing: %w", record.ID, err)
			}
		}

		outcomes := e.client.PushBatch(ctx, batch)

		allFailed := true
		for _, outcome := range outcomes {
			if outcome.Success {
				allFailed = false
				if err := e.applySuccess(ctx, outcome); err != nil {
					return lastErr, err
				}
				continue
			}
			lastErr = outcome.ErrorMessage
			if err := e.applyFailure(ctx, outcome); err != nil {
				return lastErr, err
			}
		}

		// A fully failed batch almost always means the link dropped.
		// Stop instead of grinding through the rest of the queue.
		if allFailed && len(outcomes) > 0 {
			e.logger.Warn("sync pass stopped, entire batch failed", "size", len(outcomes))
			return lastErr, nil
		}
	}
}

// nextBatch peeks past already-attempted ids and loads the records. Queue
// entries whose record is gone or already synced are dropped in place;
// that is the self-healing path for a diverged queue.
func (e *Engine) nextBatch(ctx context.Context, attempted map[string]struct{}) ([]*models.MeasurementRecord, error) {
	ids, err := e.queue.PeekBatch(ctx, e.cfg.BatchSize+len(attempted))
	if err != nil {
		return nil, fmt.Errorf("peek sync queue: %w", err)
	}

	batch := make([]*models.MeasurementRecord, 0, e.cfg.BatchSize)
	for _, id := range ids {
		if len(batch) == e.cfg.BatchSize {
			break
		}
		if _, done := attempted[id]; done {
			continue
		}

		record, err := e.store.Get(ctx, id)
		if errors.Is(err, storage.ErrRecordNotFound) {
			attempted[id] = struct{}{}
			if err := e.queue.Remove(ctx, id); err != nil {
				return nil, fmt.Errorf("remove stale queue entry %s: %w", id, err)
			}
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load record %s: %w", id, err)
		}

		if record.SyncStatus == models.SyncStatusSynced {
			attempted[id] = struct{}{}
			if err := e.queue.Remove(ctx, id); err != nil {
				return nil, fmt.Errorf("remove synced queue entry %s: %w", id, err)
			}
			continue
		}

		batch = append(batch, record)
	}

	return batch, nil
}

func (e *Engine) applySuccess(ctx context.Context, outcome api.PushOutcome) error {
	if err := e.store.MarkSynced(ctx, outcome.RecordID); err != nil {
		return fmt.Errorf("mark record %s synced: %w", outcome.RecordID, err)
	}
	if err := e.queue.Remove(ctx, outcome.RecordID); err != nil {
		return fmt.Errorf("dequeue record %s: %w", outcome.RecordID, err)
	}
	return nil
}

func (e *Engine) applyFailure(ctx context.Context, outcome api.PushOutcome) error {
	count, err := e.store.IncrementRetryAndMarkFailed(ctx, outcome.RecordID)
	if err != nil {
		return fmt.Errorf("mark record %s failed: %w", outcome.RecordID, err)
	}

	e.logger.Warn("record push failed",
		"record_id", outcome.RecordID,
		"retry_count", count,
		"kind", outcome.ErrorKind,
		"error", outcome.ErrorMessage,
	)

	// count == 0 means the record vanished mid-flight; either way the
	// queue entry is dead. Records under the limit stay queued for the
	// next pass.
	if count == 0 || count >= e.cfg.MaxRetries {
		if count >= e.cfg.MaxRetries {
			e.logger.Warn("record abandoned after retry limit", "record_id", outcome.RecordID, "retries", count)
		}
		if err := e.queue.Remove(ctx, outcome.RecordID); err != nil {
			return fmt.Errorf("dequeue record %s: %w", outcome.RecordID, err)
		}
	}
	return nil
}

// refreshState recomputes the public snapshot from the record store and
// publishes it.
func (e *Engine) refreshState(ctx context.Context, lastErr string) error {
	counts, err := e.store.CountByStatus(ctx)
	if err != nil {
		return fmt.Errorf("count records by status: %w", err)
	}

	e.mu.Lock()
	lastAttempt := e.state.LastSyncAttempt
	e.mu.Unlock()

	status := StatusSuccess
	switch {
	case lastErr != "" || counts[models.SyncStatusFailed] > 0:
		status = StatusError
	case lastAttempt.IsZero():
		status = StatusIdle
	}

	e.publish(SyncState{
		Status:          status,
		LastSyncAttempt: lastAttempt,
		LastError:       lastErr,
		PendingCount:    counts[models.SyncStatusPending],
		FailedCount:     counts[models.SyncStatusFailed],
		IsOnline:        e.conn.IsOnline(),
	})
	return nil
}
