// Package data is the capture-side entry point: it persists new
// measurements locally and nudges the sync engine. Capture never waits
// on the network; a measurement is accepted the moment it hits local
// storage.
package data

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kinetrack/kinetrack/internal/client/storage"
	"github.com/kinetrack/kinetrack/internal/models"
)

var (
	ErrEmptyUserID = errors.New("user id is empty")
	ErrEmptyType   = errors.New("measurement type is empty")
)

// Scheduler requests a sync pass without blocking.
type Scheduler interface {
	SyncPendingItems()
}

// Service records measurements and exposes local reads.
type Service struct {
	store     storage.RecordStore
	queue     storage.SyncQueue
	scheduler Scheduler
	logger    *slog.Logger
}

// NewService wires the capture service.
func NewService(store storage.RecordStore, queue storage.SyncQueue, scheduler Scheduler, logger *slog.Logger) *Service {
	return &Service{
		store:     store,
		queue:     queue,
		scheduler: scheduler,
		logger:    logger,
	}
}

// InsertMeasurement stores a new measurement, queues it for upload and
// schedules a sync pass. The returned record carries the generated id.
func (s *Service) InsertMeasurement(ctx context.Context, userID, measurementType string, data map[string]any) (*models.MeasurementRecord, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	if measurementType == "" {
		return nil, ErrEmptyType
	}

	record := models.NewRecord(userID, measurementType, data)

	if err := s.store.Insert(ctx, record); err != nil {
		return nil, fmt.Errorf("insert measurement: %w", err)
	}
	if err := s.queue.Enqueue(ctx, record.ID); err != nil {
		// The record is durable; the queue will self-heal on the next
		// bootstrap. Log and carry on.
		s.logger.Warn("enqueue after insert failed", "record_id", record.ID, "error", err)
	}

	s.scheduler.SyncPendingItems()
	s.logger.Debug("measurement recorded", "record_id", record.ID, "type", measurementType)

	return record, nil
}

// ListMeasurements returns the user's records, newest first.
func (s *Service) ListMeasurements(ctx context.Context, userID string) ([]*models.MeasurementRecord, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	records, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	return records, nil
}

// WatchMeasurements streams the user's record list after every change.
func (s *Service) WatchMeasurements(ctx context.Context, userID string) (<-chan []*models.MeasurementRecord, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	ch, err := s.store.WatchByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("watch measurements: %w", err)
	}
	return ch, nil
}
