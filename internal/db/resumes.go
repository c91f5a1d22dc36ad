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

// Resume is a stored resume: the raw text it was parsed from plus the parsed
// record as JSON.
type Resume struct {
	ID        uuid.UUID           `json:"id"`
	UserID    *uuid.UUID          `json:"user_id,omitempty"`
	Filename  string              `json:"filename"`
	RawText   string              `json:"raw_text"`
	Record    *types.ResumeRecord `json:"record"`
	CreatedAt time.Time           `json:"created_at"`
}

// SaveResume stores a parsed resume and returns its ID. A nil userID stores
// the resume unowned.
func (db *DB) SaveResume(ctx context.Context, userID *uuid.UUID, filename, rawText string, record *types.ResumeRecord) (uuid.UUID, error) {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume record: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, filename, raw_text, record)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, filename, rawText, recordJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves a stored resume by ID, or nil when it does not exist.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*Resume, error) {
	var resume Resume
	var recordJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, filename, raw_text, record, created_at
		 FROM resumes WHERE id = $1`,
		id,
	).Scan(&resume.ID, &resume.UserID, &resume.Filename, &resume.RawText, &recordJSON, &resume.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	if err := json.Unmarshal(recordJSON, &resume.Record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume record: %w", err)
	}
	return &resume, nil
}

// ListResumes retrieves the most recent resumes for a user.
func (db *DB) ListResumes(ctx context.Context, userID uuid.UUID, limit int) ([]Resume, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, filename, raw_text, record, created_at
		 FROM resumes WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []Resume
	for rows.Next() {
		var resume Resume
		var recordJSON []byte
		if err := rows.Scan(&resume.ID, &resume.UserID, &resume.Filename, &resume.RawText, &recordJSON, &resume.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		if err := json.Unmarshal(recordJSON, &resume.Record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal resume record: %w", err)
		}
		resumes = append(resumes, resume)
	}
	return resumes, nil
}
