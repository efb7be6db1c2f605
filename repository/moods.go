package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/bobbygriffin/neuroflow/models"
)

// RecentMoodLimit caps how many entries ListRecent returns.
const RecentMoodLimit = 10

// MoodRepository handles database operations for mood entries. The moods
// table is append-only in the authenticated mode; rows are never updated or
// deleted there.
type MoodRepository struct {
	db *sql.DB
}

// NewMoodRepository creates the repository and the moods table if needed
func NewMoodRepository(db *sql.DB) (*MoodRepository, error) {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS moods (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		mood TEXT NOT NULL,
		created TEXT NOT NULL
	);`

	_, err := db.Exec(createTableSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to create moods table: %w", err)
	}

	return &MoodRepository{db: db}, nil
}

// Record inserts a mood entry for the given user dated today. The date is
// stored at day granularity (YYYY-MM-DD), matching the original schema.
func (r *MoodRepository) Record(ctx context.Context, userID int, mood string) error {
	created := time.Now().Format("2006-01-02")
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO moods (user_id, mood, created) VALUES (?, ?, ?)",
		userID, mood, created,
	)
	if err != nil {
		return fmt.Errorf("failed to record mood: %w", err)
	}
	return nil
}

// ListRecent returns the user's most recent entries, newest first, keyed by
// entry id. Ordering is created desc then id desc so same-day entries come
// back newest-inserted first. An empty map means the user has no entries.
func (r *MoodRepository) ListRecent(ctx context.Context, userID int) (map[int]models.MoodView, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, mood, created FROM moods WHERE user_id = ? ORDER BY created DESC, id DESC LIMIT ?",
		userID, RecentMoodLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list moods: %w", err)
	}
	defer rows.Close()

	results := map[int]models.MoodView{}
	for rows.Next() {
		var id int
		var view models.MoodView
		if err := rows.Scan(&id, &view.Mood, &view.Created); err != nil {
			return nil, err
		}
		results[id] = view
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// LatestGlobal returns the single most recent mood row regardless of owner.
// Legacy mode only.
func (r *MoodRepository) LatestGlobal(ctx context.Context) (map[int]models.LegacyMoodView, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, user_id, mood, created FROM moods ORDER BY created DESC LIMIT 1",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest mood: %w", err)
	}
	defer rows.Close()

	results := map[int]models.LegacyMoodView{}
	for rows.Next() {
		var id int
		var view models.LegacyMoodView
		if err := rows.Scan(&id, &view.UserID, &view.Mood, &view.Created); err != nil {
			return nil, err
		}
		results[id] = view
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// OverwriteGlobal replaces the mood value on every row, which in the legacy
// single-row table amounts to updating the one record. Legacy mode only.
func (r *MoodRepository) OverwriteGlobal(ctx context.Context, mood string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE moods SET mood = ?", mood)
	if err != nil {
		return fmt.Errorf("failed to overwrite mood: %w", err)
	}
	return nil
}
