package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// Repository is a database-backed repository for user preferences.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{db: d}
}

// Save inserts or updates the preferences for a user.
func (r *Repository) Save(ctx context.Context, userID string, prefs Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	query, args, err := sq.Insert("user_preferences").
		Columns("user_id", "data", "updated_at").
		Values(userID, string(data), time.Now().UTC()).
		Suffix("ON CONFLICT(user_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save preferences for user %s: %w", userID, err)
	}
	return nil
}

// Get retrieves the preferences for a user. Returns (nil, nil) when no
// preferences exist; callers decide whether that is fatal.
func (r *Repository) Get(ctx context.Context, userID string) (*Preferences, error) {
	query, args, err := sq.Select("data").
		From("user_preferences").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var data string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No preferences stored
		}
		return nil, fmt.Errorf("failed to get preferences for user %s: %w", userID, err)
	}

	var prefs Preferences
	if err := json.Unmarshal([]byte(data), &prefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preferences JSON: %w", err)
	}
	return &prefs, nil
}
