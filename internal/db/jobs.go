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

// JobDescription is a stored job description: its source (URL or filename,
// if any), raw text and parsed requirement record.
type JobDescription struct {
	ID        uuid.UUID        `json:"id"`
	UserID    *uuid.UUID       `json:"user_id,omitempty"`
	Source    string           `json:"source,omitempty"`
	RawText   string           `json:"raw_text"`
	Record    *types.JobRecord `json:"record"`
	CreatedAt time.Time        `json:"created_at"`
}

// SaveJob stores a parsed job description and returns its ID.
func (db *DB) SaveJob(ctx context.Context, userID *uuid.UUID, source, rawText string, record *types.JobRecord) (uuid.UUID, error) {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal job record: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO job_descriptions (user_id, source, raw_text, record)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, source, rawText, recordJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save job description: %w", err)
	}
	return id, nil
}

// GetJob retrieves a stored job description by ID, or nil when it does not
// exist.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*JobDescription, error) {
	var job JobDescription
	var recordJSON []byte
	var source *string
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, source, raw_text, record, created_at
		 FROM job_descriptions WHERE id = $1`,
		id,
	).Scan(&job.ID, &job.UserID, &source, &job.RawText, &recordJSON, &job.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job description: %w", err)
	}

	if source != nil {
		job.Source = *source
	}
	if err := json.Unmarshal(recordJSON, &job.Record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job record: %w", err)
	}
	return &job, nil
}
