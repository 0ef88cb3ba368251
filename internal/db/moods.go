package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MoodCycleRepository handles mood-cycle database operations.
type MoodCycleRepository struct {
	pool *pgxpool.Pool
}

// Create inserts a completed mood cycle.
func (r *MoodCycleRepository) Create(ctx context.Context, cycle *MoodCycle) error {
	query := `
		INSERT INTO mood_cycles (id, session_id, user_id, mood, text_label, text_score, speech_label, speech_score, ambiguous, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING created_at
	`
	if cycle.ID == uuid.Nil {
		cycle.ID = uuid.New()
	}
	err := r.pool.QueryRow(ctx, query,
		cycle.ID,
		cycle.SessionID,
		cycle.UserID,
		cycle.Mood,
		cycle.TextLabel,
		cycle.TextScore,
		cycle.SpeechLabel,
		cycle.SpeechScore,
		cycle.Ambiguous,
	).Scan(&cycle.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting mood cycle: %w", err)
	}
	return nil
}

// ListByUser returns a user's most recent mood cycles, newest first.
func (r *MoodCycleRepository) ListByUser(ctx context.Context, userID string, limit int) ([]MoodCycle, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, session_id, user_id, mood, text_label, text_score, speech_label, speech_score, ambiguous, created_at
		FROM mood_cycles
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying mood cycles: %w", err)
	}
	defer rows.Close()

	var cycles []MoodCycle
	for rows.Next() {
		var c MoodCycle
		if err := rows.Scan(
			&c.ID,
			&c.SessionID,
			&c.UserID,
			&c.Mood,
			&c.TextLabel,
			&c.TextScore,
			&c.SpeechLabel,
			&c.SpeechScore,
			&c.Ambiguous,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning mood cycle: %w", err)
		}
		cycles = append(cycles, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mood cycles: %w", err)
	}
	return cycles, nil
}
