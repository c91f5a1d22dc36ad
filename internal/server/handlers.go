package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/schemas"
)

// maxUploadBytes bounds resume uploads. PDF and DOCX resumes are rarely over
// a megabyte; 10 MB leaves generous headroom.
const maxUploadBytes = 10 << 20

// ResumeResponse is returned by resume upload and retrieval.
type ResumeResponse struct {
	ID       uuid.UUID           `json:"id"`
	Filename string              `json:"filename"`
	Record   any                 `json:"record"`
	Metadata *ingestion.Metadata `json:"metadata,omitempty"`
}

// CreateJobRequest represents the request body for POST /jobs.
// Exactly one of text or url must be set.
type CreateJobRequest struct {
	Text   string `json:"text,omitempty"`
	URL    string `json:"url,omitempty"`
	Source string `json:"source,omitempty"`
}

// JobResponse is returned by job creation and retrieval.
type JobResponse struct {
	ID       uuid.UUID           `json:"id"`
	Source   string              `json:"source,omitempty"`
	Record   any                 `json:"record"`
	Metadata *ingestion.Metadata `json:"metadata,omitempty"`
}

// MatchRequest represents the request body for POST /match.
type MatchRequest struct {
	ResumeID uuid.UUID `json:"resume_id"`
	JobID    uuid.UUID `json:"job_id"`
}

// MatchResponse is returned by match computation and retrieval.
type MatchResponse struct {
	ID       uuid.UUID `json:"id"`
	ResumeID uuid.UUID `json:"resume_id"`
	JobID    uuid.UUID `json:"job_id"`
	Score    any       `json:"score"`
}

// handleUploadResume accepts a multipart resume upload, extracts and cleans
// its text, parses it into a record and stores it.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing 'file' form field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read upload: "+err.Error())
		return
	}

	text, err := ingestion.ExtractDocumentText(header.Filename, data)
	if err != nil {
		s.errorResponse(w, ingestStatus(err), err.Error())
		return
	}
	cleaned := ingestion.CleanText(text)

	record, err := s.resumeParser.Parse(r.Context(), cleaned)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to parse resume: "+err.Error())
		return
	}
	if err := schemas.ValidateResumeRecord(record); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Parsed resume failed validation: "+err.Error())
		return
	}

	id, err := s.store.SaveResume(r.Context(), nil, header.Filename, cleaned, record)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save resume: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, ResumeResponse{
		ID:       id,
		Filename: header.Filename,
		Record:   record,
		Metadata: ingestion.NewMetadata(cleaned, header.Filename),
	})
}

// handleGetResume returns a stored resume by ID.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	resume, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if resume == nil {
		notFound := &ErrResourceNotFound{Resource: "resume", ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ResumeResponse{
		ID:       resume.ID,
		Filename: resume.Filename,
		Record:   resume.Record,
	})
}

// handleCreateJob parses a job description from inline text or a URL and
// stores the resulting requirement record.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if (req.Text == "") == (req.URL == "") {
		s.errorResponse(w, http.StatusBadRequest, "Exactly one of text or url is required")
		return
	}

	var cleaned string
	var meta *ingestion.Metadata
	if req.URL != "" {
		var err error
		cleaned, meta, err = ingestion.IngestFromURL(r.Context(), req.URL)
		if err != nil {
			s.errorResponse(w, ingestStatus(err), err.Error())
			return
		}
		if req.Source == "" {
			req.Source = req.URL
		}
	} else {
		cleaned = ingestion.CleanText(req.Text)
		meta = ingestion.NewMetadata(cleaned, req.Source)
	}

	record, err := s.jobParser.Parse(r.Context(), cleaned)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to parse job description: "+err.Error())
		return
	}
	if err := schemas.ValidateJobRecord(record); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Parsed job failed validation: "+err.Error())
		return
	}

	id, err := s.store.SaveJob(r.Context(), nil, req.Source, cleaned, record)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save job description: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, JobResponse{
		ID:       id,
		Source:   req.Source,
		Record:   record,
		Metadata: meta,
	})
}

// handleGetJob returns a stored job description by ID.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	job, err := s.store.GetJob(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if job == nil {
		notFound := &ErrResourceNotFound{Resource: "job description", ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, JobResponse{
		ID:     job.ID,
		Source: job.Source,
		Record: job.Record,
	})
}

// handleCreateMatch scores a stored resume against a stored job description
// and persists the result.
func (s *Server) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.ResumeID == uuid.Nil || req.JobID == uuid.Nil {
		s.errorResponse(w, http.StatusBadRequest, "Both resume_id and job_id are required")
		return
	}

	resume, err := s.store.GetResume(r.Context(), req.ResumeID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if resume == nil {
		notFound := &ErrResourceNotFound{Resource: "resume", ID: req.ResumeID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	job, err := s.store.GetJob(r.Context(), req.JobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if job == nil {
		notFound := &ErrResourceNotFound{Resource: "job description", ID: req.JobID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	score := s.engine.ComputeMatch(resume.Record, job.Record)
	if err := schemas.ValidateMatchScore(score); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Computed score failed validation: "+err.Error())
		return
	}

	id, err := s.store.SaveMatch(r.Context(), nil, req.ResumeID, req.JobID, score)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save match result: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, MatchResponse{
		ID:       id,
		ResumeID: req.ResumeID,
		JobID:    req.JobID,
		Score:    score,
	})
}

// handleGetMatch returns a stored match result by ID.
func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	match, err := s.store.GetMatch(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if match == nil {
		notFound := &ErrResourceNotFound{Resource: "match result", ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, MatchResponse{
		ID:       match.ID,
		ResumeID: match.ResumeID,
		JobID:    match.JobID,
		Score:    match.Score,
	})
}

// handleListResumeMatches returns the stored match results for one resume,
// newest first.
func (s *Server) handleListResumeMatches(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	matches, err := s.store.ListMatchesForResume(r.Context(), id, 0)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	responses := make([]MatchResponse, 0, len(matches))
	for _, match := range matches {
		responses = append(responses, MatchResponse{
			ID:       match.ID,
			ResumeID: match.ResumeID,
			JobID:    match.JobID,
			Score:    match.Score,
		})
	}
	s.jsonResponse(w, http.StatusOK, responses)
}

// pathID parses the {id} path segment as a UUID, writing a 400 on failure.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid id: must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

// ingestStatus maps ingestion failures to HTTP status codes. Bad input
// documents are the client's fault; unreachable job URLs are the upstream's.
func ingestStatus(err error) int {
	var unsupported *ingestion.UnsupportedFormatError
	switch {
	case errors.As(err, &unsupported), errors.Is(err, ingestion.ErrEmptyDocument):
		return http.StatusBadRequest
	case errors.Is(err, ingestion.ErrHTTPRequestFailed):
		return http.StatusBadGateway
	default:
		return http.StatusUnprocessableEntity
	}
}
