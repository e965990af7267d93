package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// GenerationMetric records the outcome of a single plan generation.
type GenerationMetric struct {
	UserID      string
	DurationMS  int64
	SlotsTotal  int
	SlotsFilled int
	Timestamp   time.Time
}

// Store handles persistence of metrics to SQLite.
type Store struct {
	db *sql.DB
}

// NewStore initializes the Store with an existing database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Record saves a metric to the database.
func (s *Store) Record(m GenerationMetric) error {
	ts := m.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	query, args, err := sq.Insert("generation_metrics").
		Columns("user_id", "duration_ms", "slots_total", "slots_filled", "created_at").
		Values(m.UserID, m.DurationMS, m.SlotsTotal, m.SlotsFilled, ts).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build metric insert: %w", err)
	}

	if _, err := s.db.ExecContext(context.Background(), query, args...); err != nil {
		return fmt.Errorf("failed to record generation metric: %w", err)
	}
	return nil
}

// Cleanup removes records older than the specified number of days and
// returns how many were deleted.
func (s *Store) Cleanup(olderThanDays int) (int64, error) {
	threshold := time.Now().UTC().AddDate(0, 0, -olderThanDays)

	query, args, err := sq.Delete("generation_metrics").
		Where(sq.Lt{"created_at": threshold}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build cleanup delete: %w", err)
	}

	res, err := s.db.ExecContext(context.Background(), query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up metrics: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected, nil
}
