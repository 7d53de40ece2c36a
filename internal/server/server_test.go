package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-fitment/internal/fitment"
	"github.com/jonathan/resume-fitment/internal/matching"
	"github.com/jonathan/resume-fitment/internal/pipeline"
	"github.com/jonathan/resume-fitment/internal/publicdata"
	"github.com/jonathan/resume-fitment/internal/store"
)

const uploadDocument = `Jane Doe
jane.doe@example.com
555-123-4567
San Francisco, CA

EXPERIENCE
Senior Software Engineer 2019 - Present
Acme Corp
• Built microservices in Go

EDUCATION
Bachelor of Science in Computer Science
State University
2015 - 2019

SKILLS
Python, Go, Docker, PostgreSQL`

func newTestServer(t *testing.T) (*Server, *store.MemoryStore) {
	t.Helper()
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	mem := store.NewMemoryStore()
	s, err := New(Config{
		Store:     mem,
		Assembler: pipeline.New(),
		Engine:    matching.NewEngine(matching.DefaultWeights()),
		Dossier:   &fitment.DossierBuilder{Provider: publicdata.NewFakeProvider()},
	})
	require.NoError(t, err)
	return s, mem
}

func multipartUpload(t *testing.T, filename, content string) (*bytes.Buffer, string) {
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

func uploadResume(t *testing.T, handler http.Handler) resumeResponse {
	t.Helper()
	body, contentType := multipartUpload(t, "resume.txt", uploadDocument)
	req := httptest.NewRequest(http.MethodPost, "/resumes", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp resumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestUploadResume_ParsesAndStores(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.Handler()

	resp := uploadResume(t, handler)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "Jane Doe", resp.Resume.PersonalInfo.Name)
	assert.Contains(t, resp.Resume.Skills, "Go")
	assert.Empty(t, resp.Warnings)
}

func TestUploadResume_EmptyDocumentWarnsAndUsesTemplate(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.Handler()

	body, contentType := multipartUpload(t, "blank.txt", "")
	req := httptest.NewRequest(http.MethodPost, "/resumes", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp resumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Warnings)
	assert.Contains(t, resp.Warnings[0], "template data")
	assert.NotEmpty(t, resp.Resume.Skills)
}

func TestUploadResume_UnsupportedFileType(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.Handler()

	body, contentType := multipartUpload(t, "resume.png", "binary junk")
	req := httptest.NewRequest(http.MethodPost, "/resumes", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported file type")
}

func TestUploadResume_MissingFileField(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.Handler()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("other", "value"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/resumes", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "file")
}

func TestGetResume_NotFound(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.Handler()

	req := httptest.NewRequest(http.MethodGet, "/resumes/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetResume_InvalidID(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.Handler()

	req := httptest.NewRequest(http.MethodGet, "/resumes/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePersonalInfo_ReplacesSection(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.Handler()
	created := uploadResume(t, handler)

	payload := `{"name": "Janet Doe", "email": "janet@example.com", "phone": "555-000-1111", "location": "Austin, TX"}`
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/resumes/%s/personal-info", created.ID), bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp resumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Janet Doe", resp.Resume.PersonalInfo.Name)
	// Other sections survive a section edit.
	assert.Contains(t, resp.Resume.Skills, "Go")
}

func TestUpdatePersonalInfo_RejectsInvalidEmail(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.Handler()
	created := uploadResume(t, handler)

	payload := `{"name": "Janet Doe", "email": "not-an-email"}`
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/resumes/%s/personal-info", created.ID), bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation failed")
}

func TestUpdateSkills_NormalizesList(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.Handler()
	created := uploadResume(t, handler)

	payload := `{"skills": ["go", "Go", "terraform"]}`
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/resumes/%s/skills", created.ID), bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp resumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Go", "Terraform"}, resp.Resume.Skills)
}

func TestUpdateResume_ReplacesWholeDocument(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.Handler()
	created := uploadResume(t, handler)

	created.Resume.PersonalInfo.Name = "Replacement Name"
	body, err := json.Marshal(created.Resume)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/resumes/"+created.ID.String(), bytes.NewBuffer(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp resumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Replacement Name", resp.Resume.PersonalInfo.Name)
}

func TestListResumes_ReturnsUploaded(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.Handler()
	uploadResume(t, handler)
	uploadResume(t, handler)

	req := httptest.NewRequest(http.MethodGet, "/resumes", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []resumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestGetMatches_ScoresCatalog(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.Handler()
	created := uploadResume(t, handler)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/resumes/%s/matches", created.ID), nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var matches []struct {
		Job struct {
			ID string `json:"id"`
		} `json:"job"`
		FitPercentage int `json:"fitPercentage"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
	require.NotEmpty(t, matches)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].FitPercentage, matches[i].FitPercentage)
	}
	for _, m := range matches {
		assert.GreaterOrEqual(t, m.FitPercentage, 0)
		assert.LessOrEqual(t, m.FitPercentage, 100)
	}
}

func TestGetDossier_BuildsProfile(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.Handler()
	created := uploadResume(t, handler)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/resumes/%s/dossier", created.ID), nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var dossier struct {
		Summary      string   `json:"summary"`
		FitmentScore int      `json:"fitmentScore"`
		KeyStrengths []string `json:"keyStrengths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dossier))
	assert.Contains(t, dossier.Summary, "Jane Doe")
	assert.NotEmpty(t, dossier.KeyStrengths)
}

func TestListJobs_ReturnsCatalog(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.Handler()

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var jobs []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &jobs))
	assert.NotEmpty(t, jobs)
}

func TestHealth_OK(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.Handler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestNew_RequiresCollaborators(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestCORS_PreflightAllowed(t *testing.T) {
	s, _ := newTestServer(t)
	handler := s.Handler()

	req := httptest.NewRequest(http.MethodOptions, "/resumes", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
