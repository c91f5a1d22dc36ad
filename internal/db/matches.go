package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-matcher/internal/types"
)

// MatchResult is a stored scoring run between one resume and one job
// description. Overall is duplicated out of the score JSON for querying.
type MatchResult struct {
	ID        uuid.UUID         `json:"id"`
	UserID    *uuid.UUID        `json:"user_id,omitempty"`
	ResumeID  uuid.UUID         `json:"resume_id"`
	JobID     uuid.UUID         `json:"job_id"`
	Overall   float64           `json:"overall"`
	Score     *types.MatchScore `json:"score"`
	CreatedAt time.Time         `json:"created_at"`
}

// SaveMatch stores a match result and returns its ID.
func (db *DB) SaveMatch(ctx context.Context, userID *uuid.UUID, resumeID, jobID uuid.UUID, score *types.MatchScore) (uuid.UUID, error) {
	scoreJSON, err := json.Marshal(score)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal match score: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO match_results (user_id, resume_id, job_id, overall, score)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		userID, resumeID, jobID, score.Overall, scoreJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save match result: %w", err)
	}
	return id, nil
}

// GetMatch retrieves a stored match result by ID, or nil when it does not
// exist.
func (db *DB) GetMatch(ctx context.Context, id uuid.UUID) (*MatchResult, error) {
	var match MatchResult
	var scoreJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, resume_id, job_id, overall, score, created_at
		 FROM match_results WHERE id = $1`,
		id,
	).Scan(&match.ID, &match.UserID, &match.ResumeID, &match.JobID, &match.Overall, &scoreJSON, &match.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match result: %w", err)
	}

	if err := json.Unmarshal(scoreJSON, &match.Score); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match score: %w", err)
	}
	return &match, nil
}

// ListMatchesForResume retrieves match results for a resume, newest first.
func (db *DB) ListMatchesForResume(ctx context.Context, resumeID uuid.UUID, limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, resume_id, job_id, overall, score, created_at
		 FROM match_results WHERE resume_id = $1 ORDER BY created_at DESC LIMIT $2`,
		resumeID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list match results: %w", err)
	}
	defer rows.Close()

	var matches []MatchResult
	for rows.Next() {
		var match MatchResult
		var scoreJSON []byte
		if err := rows.Scan(&match.ID, &match.UserID, &match.ResumeID, &match.JobID, &match.Overall, &scoreJSON, &match.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match result: %w", err)
		}
		if err := json.Unmarshal(scoreJSON, &match.Score); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match score: %w", err)
		}
		matches = append(matches, match)
	}
	return matches, nil
}
