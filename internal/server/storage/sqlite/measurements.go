package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kinetrack/kinetrack/internal/models"
	"github.com/kinetrack/kinetrack/internal/server/storage"
)

// Upsert stores a measurement keyed by its client-generated id. Retried
// uploads of the same id refresh the payload and keep the original
// backend id, so the operation is idempotent from the client's view.
func (s *Storage) Upsert(ctx context.Context, m *models.StoredMeasurement) (string, bool, error) {
	existing, err := s.Get(ctx, m.ID)
	if err != nil && !errors.Is(err, storage.ErrMeasurementNotFound) {
		return "", false, fmt.Errorf("failed to check existing measurement: %w", err)
	}

	now := time.Now().UTC()

	if existing != nil {
		query := `
			UPDATE measurements
			SET type = ?, json_data = ?, updated_at = ?, received_at = ?
			WHERE id = ?
		`

		_, err := s.db.ExecContext(ctx, query,
			m.Type,
			m.JSONData,
			m.UpdatedAt.Unix(),
			now.Unix(),
			m.ID,
		)
		if err != nil {
			return "", false, fmt.Errorf("failed to update measurement: %w", err)
		}

		return existing.BackendID, false, nil
	}

	backendID := uuid.New().String()

	query := `
		INSERT INTO measurements (
			id, backend_id, user_id, type, json_data,
			created_at, updated_at, received_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		m.ID,
		backendID,
		m.UserID,
		m.Type,
		m.JSONData,
		m.CreatedAt.Unix(),
		m.UpdatedAt.Unix(),
		now.Unix(),
	)
	if err != nil {
		return "", false, fmt.Errorf("failed to insert measurement: %w", err)
	}

	return backendID, true, nil
}

// Get retrieves a measurement by its client-generated id.
func (s *Storage) Get(ctx context.Context, id string) (*models.StoredMeasurement, error) {
	query := `
		SELECT id, backend_id, user_id, type, json_data,
		       created_at, updated_at, received_at
		FROM measurements
		WHERE id = ?
	`

	m, err := scanMeasurement(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrMeasurementNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get measurement: %w", err)
	}

	return m, nil
}

// ListByUser returns a user's measurements, newest first.
func (s *Storage) ListByUser(ctx context.Context, userID string) ([]*models.StoredMeasurement, error) {
	query := `
		SELECT id, backend_id, user_id, type, json_data,
		       created_at, updated_at, received_at
		FROM measurements
		WHERE user_id = ?
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query measurements: %w", err)
	}
	defer rows.Close()

	var measurements []*models.StoredMeasurement
	for rows.Next() {
		m, err := scanMeasurement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan measurement: %w", err)
		}
		measurements = append(measurements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate measurements: %w", err)
	}

	return measurements, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanMeasurement(row scanner) (*models.StoredMeasurement, error) {
	var (
		m          models.StoredMeasurement
		createdAt  int64
		updatedAt  int64
		receivedAt int64
	)

	err := row.Scan(
		&m.ID,
		&m.BackendID,
		&m.UserID,
		&m.Type,
		&m.JSONData,
		&createdAt,
		&updatedAt,
		&receivedAt,
	)
	if err != nil {
		return nil, err
	}

	m.CreatedAt = time.Unix(createdAt, 0).UTC()
	m.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	m.ReceivedAt = time.Unix(receivedAt, 0).UTC()

	return &m, nil
}
