package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/aggregate"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
)

// fakeStore is an in-memory Store for handler tests.
type fakeStore struct {
	users   map[uuid.UUID]*db.User
	emails  map[string]uuid.UUID
	resumes map[uuid.UUID]*db.Resume
	jobs    map[uuid.UUID]*db.JobDescription
	matches map[uuid.UUID]*db.MatchResult
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   make(map[uuid.UUID]*db.User),
		emails:  make(map[string]uuid.UUID),
		resumes: make(map[uuid.UUID]*db.Resume),
		jobs:    make(map[uuid.UUID]*db.JobDescription),
		matches: make(map[uuid.UUID]*db.MatchResult),
	}
}

func (f *fakeStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.emails[email]
	return ok, nil
}

func (f *fakeStore) CreateUser(_ context.Context, name, email string) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()
	f.users[id] = &db.User{ID: id, Name: name, Email: email, CreatedAt: now, UpdatedAt: now}
	f.emails[email] = id
	return id, nil
}

func (f *fakeStore) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	user, ok := f.users[userID]
	if !ok {
		return assert.AnError
	}
	user.PasswordHash = passwordHash
	return nil
}

func (f *fakeStore) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	return f.users[userID], nil
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	id, ok := f.emails[email]
	if !ok {
		return nil, nil
	}
	return f.users[id], nil
}

func (f *fakeStore) SaveResume(_ context.Context, userID *uuid.UUID, filename, rawText string, record *types.ResumeRecord) (uuid.UUID, error) {
	id := uuid.New()
	f.resumes[id] = &db.Resume{ID: id, UserID: userID, Filename: filename, RawText: rawText, Record: record, CreatedAt: time.Now()}
	return id, nil
}

func (f *fakeStore) GetResume(_ context.Context, id uuid.UUID) (*db.Resume, error) {
	return f.resumes[id], nil
}

func (f *fakeStore) SaveJob(_ context.Context, userID *uuid.UUID, source, rawText string, record *types.JobRecord) (uuid.UUID, error) {
	id := uuid.New()
	f.jobs[id] = &db.JobDescription{ID: id, UserID: userID, Source: source, RawText: rawText, Record: record, CreatedAt: time.Now()}
	return id, nil
}

func (f *fakeStore) GetJob(_ context.Context, id uuid.UUID) (*db.JobDescription, error) {
	return f.jobs[id], nil
}

func (f *fakeStore) SaveMatch(_ context.Context, userID *uuid.UUID, resumeID, jobID uuid.UUID, score *types.MatchScore) (uuid.UUID, error) {
	id := uuid.New()
	f.matches[id] = &db.MatchResult{ID: id, UserID: userID, ResumeID: resumeID, JobID: jobID, Overall: score.Overall, Score: score, CreatedAt: time.Now()}
	return id, nil
}

func (f *fakeStore) GetMatch(_ context.Context, id uuid.UUID) (*db.MatchResult, error) {
	return f.matches[id], nil
}

func (f *fakeStore) ListMatchesForResume(_ context.Context, resumeID uuid.UUID, _ int) ([]db.MatchResult, error) {
	var results []db.MatchResult
	for _, match := range f.matches {
		if match.ResumeID == resumeID {
			results = append(results, *match)
		}
	}
	return results, nil
}

// newTestServer builds a Server over a fakeStore without a database or
// listening socket. Requests go through the mux returned by routes().
func newTestServer(t *testing.T) (*Server, *fakeStore) {
	t.Helper()

	resumeParser, err := aggregate.NewResumeParser(aggregate.ResumeOptions{})
	require.NoError(t, err)
	jobParser, err := aggregate.NewJobParser(aggregate.JobOptions{})
	require.NoError(t, err)

	store := newFakeStore()
	jwtService := NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
	userService := NewUserService(store, &config.PasswordConfig{BcryptCost: 10})

	s := &Server{
		store:        store,
		resumeParser: resumeParser,
		jobParser:    jobParser,
		engine:       matching.NewEngine(matching.DefaultPolicy()),
		jwtService:   jwtService,
		userService:  userService,
		authHandler:  NewAuthHandler(userService, jwtService),
	}
	return s, store
}

func multipartResume(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

const testResumeText = `John Doe
Email: john.doe@example.com

Skills: Python, Docker

Languages: English
`

const testJobText = `Requirements:
- Strong Python and AWS background
- English required
`

func TestHandleHealth(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleUploadResume(t *testing.T) {
	s, store := newTestServer(t)

	body, contentType := multipartResume(t, "resume.txt", testResumeText)
	req := httptest.NewRequest("POST", "/resumes", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		ID       uuid.UUID           `json:"id"`
		Filename string              `json:"filename"`
		Record   *types.ResumeRecord `json:"record"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "resume.txt", resp.Filename)
	assert.Equal(t, "john.doe@example.com", resp.Record.Email)
	assert.Contains(t, resp.Record.Skills, "Python")

	stored, err := store.GetResume(context.Background(), resp.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "john.doe@example.com", stored.Record.Email)
}

func TestHandleUploadResume_MissingFile(t *testing.T) {
	s, _ := newTestServer(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("name", "nope"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/resumes", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUploadResume_UnsupportedFormat(t *testing.T) {
	s, _ := newTestServer(t)

	body, contentType := multipartResume(t, "resume.odt", "some text")
	req := httptest.NewRequest("POST", "/resumes", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetResume_NotFound(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest("GET", "/resumes/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetResume_InvalidID(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest("GET", "/resumes/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCreateJob_FromText(t *testing.T) {
	s, _ := newTestServer(t)

	payload, err := json.Marshal(CreateJobRequest{Text: testJobText, Source: "inline"})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/jobs", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		ID     uuid.UUID        `json:"id"`
		Record *types.JobRecord `json:"record"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Record.Skills, "Python")
	assert.Contains(t, resp.Record.Skills, "AWS")
	assert.Contains(t, resp.Record.Languages, "English")
}

func TestHandleCreateJob_TextAndURLExclusive(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"both set", `{"text": "some text", "url": "https://example.com/job"}`},
		{"neither set", `{}`},
	}

	s, _ := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/jobs", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			s.routes().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleCreateMatch(t *testing.T) {
	s, store := newTestServer(t)

	resumeID, err := store.SaveResume(context.Background(), nil, "resume.txt", "", &types.ResumeRecord{
		Skills:    []string{"Python", "Docker"},
		Languages: []string{"English"},
	})
	require.NoError(t, err)
	jobID, err := store.SaveJob(context.Background(), nil, "", "", &types.JobRecord{
		Skills:         []string{"Python", "AWS", "Docker"},
		Certifications: []string{},
		Education:      []string{},
		Experience:     []string{},
		Languages:      []string{"English"},
	})
	require.NoError(t, err)

	payload, err := json.Marshal(MatchRequest{ResumeID: resumeID, JobID: jobID})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/match", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		ID    uuid.UUID         `json:"id"`
		Score *types.MatchScore `json:"score"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 71.67, resp.Score.Overall, 0.01)
	assert.Contains(t, resp.Score.Feedback["Skills"], "AWS")

	// The match is retrievable afterwards.
	getReq := httptest.NewRequest("GET", "/match/"+resp.ID.String(), nil)
	getRec := httptest.NewRecorder()
	s.routes().ServeHTTP(getRec, getReq)
	assert.Equal(t, http.StatusOK, getRec.Code)
}

func TestHandleCreateMatch_UnknownResume(t *testing.T) {
	s, store := newTestServer(t)

	jobID, err := store.SaveJob(context.Background(), nil, "", "", &types.JobRecord{})
	require.NoError(t, err)

	payload, err := json.Marshal(MatchRequest{ResumeID: uuid.New(), JobID: jobID})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/match", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleListResumeMatches(t *testing.T) {
	s, store := newTestServer(t)

	resumeID, err := store.SaveResume(context.Background(), nil, "resume.txt", "", &types.ResumeRecord{})
	require.NoError(t, err)
	jobID, err := store.SaveJob(context.Background(), nil, "", "", &types.JobRecord{})
	require.NoError(t, err)
	_, err = store.SaveMatch(context.Background(), nil, resumeID, jobID, &types.MatchScore{
		Overall:     85.0,
		FieldScores: map[string]float64{},
		Feedback:    map[string]string{},
	})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/resumes/"+resumeID.String()+"/matches", nil)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, jobID, resp[0].JobID)
}

func TestUpdatePassword_RequiresAuth(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest("PUT", "/auth/password", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
