package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/cofounder-match/internal/types"
)

const matchColumns = `id, user_id, matched_user_id, score, COALESCE(explanation, ''), status, created_at, updated_at`

func scanMatch(row pgx.Row) (*Match, error) {
	var m Match
	err := row.Scan(&m.ID, &m.UserID, &m.MatchedUserID, &m.Score, &m.Explanation,
		&m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveMatch upserts a match from user to matched user. Re-generating
// recommendations refreshes score and explanation but preserves the status a
// user has already set on the pair.
func (db *DB) SaveMatch(ctx context.Context, userID, matchedUserID uuid.UUID, score float64, explanation string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO matches (user_id, matched_user_id, score, explanation, status)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id, matched_user_id)
		 DO UPDATE SET score = $3, explanation = $4, updated_at = NOW()
		 RETURNING id`,
		userID, matchedUserID, score, explanation, types.MatchStatusPending,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save match: %w", err)
	}
	return id, nil
}

// GetMatch retrieves a match by ID, or nil when not found
func (db *DB) GetMatch(ctx context.Context, matchID uuid.UUID) (*Match, error) {
	m, err := scanMatch(db.pool.QueryRow(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE id = $1`, matchID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return m, nil
}

// ListMatchesForUser retrieves a user's matches, best score first
func (db *DB) ListMatchesForUser(ctx context.Context, userID uuid.UUID) ([]Match, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+matchColumns+` FROM matches
		 WHERE user_id = $1
		 ORDER BY score DESC, matched_user_id ASC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, *m)
	}
	return matches, nil
}

// UpdateMatchStatus transitions a match to a new status
func (db *DB) UpdateMatchStatus(ctx context.Context, matchID uuid.UUID, status string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE matches SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, matchID,
	)
	if err != nil {
		return fmt.Errorf("failed to update match status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("match not found: %s", matchID)
	}
	return nil
}

// ListRejectedUserIDs returns the ids of users the given user has rejected,
// or been rejected by. Callers use this to build the exclusion set before
// asking the engine for recommendations.
func (db *DB) ListRejectedUserIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT CASE WHEN user_id = $1 THEN matched_user_id ELSE user_id END
		 FROM matches
		 WHERE (user_id = $1 OR matched_user_id = $1) AND status = $2`,
		userID, types.MatchStatusRejected)
	if err != nil {
		return nil, fmt.Errorf("failed to list rejected users: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan rejected user id: %w", err)
		}
		ids = append(ids, id.String())
	}
	return ids, nil
}
