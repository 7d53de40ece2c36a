package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-fitment/internal/store"
	"github.com/jonathan/resume-fitment/internal/types"
)

// maxUploadBytes bounds resume uploads; documents are small, anything
// larger is abuse.
const maxUploadBytes = 10 << 20

var validate = validator.New()

// resumeResponse is the API shape of a stored resume.
type resumeResponse struct {
	ID        uuid.UUID          `json:"id"`
	Resume    types.ParsedResume `json:"resume"`
	CreatedAt string             `json:"createdAt"`
	UpdatedAt string             `json:"updatedAt"`
	Warnings  []string           `json:"warnings,omitempty"`
}

func toResumeResponse(record *store.Record, warnings []string) resumeResponse {
	return resumeResponse{
		ID:        record.ID,
		Resume:    record.Resume,
		CreatedAt: record.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: record.UpdatedAt.UTC().Format(time.RFC3339),
		Warnings:  warnings,
	}
}

// handleUploadResume accepts a multipart upload, runs the assembly
// pipeline, and persists the result. A document the pipeline cannot make
// sense of still succeeds, with warnings describing the degradation.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing 'file' form field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read upload: "+err.Error())
		return
	}

	result, err := s.assembler.Assemble(r.Context(), header.Filename, data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	record, err := s.store.Create(r.Context(), result.Resume, result.RawText)
	if err != nil {
		log.Printf("Error storing resume: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to store resume")
		return
	}

	s.jsonResponse(w, http.StatusCreated, toResumeResponse(record, result.Notices))
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.List(r.Context())
	if err != nil {
		log.Printf("Error listing resumes: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list resumes")
		return
	}

	responses := make([]resumeResponse, 0, len(records))
	for i := range records {
		responses = append(responses, toResumeResponse(&records[i], nil))
	}
	s.jsonResponse(w, http.StatusOK, responses)
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	record, ok := s.loadResume(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, toResumeResponse(record, nil))
}

// handleUpdateResume replaces the whole document.
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.resumeID(w, r)
	if !ok {
		return
	}

	var resume types.ParsedResume
	if err := json.NewDecoder(r.Body).Decode(&resume); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	resume.NormalizeSkills()

	record, err := s.store.Update(r.Context(), id, &resume)
	if err != nil {
		s.storeError(w, err, "failed to update resume")
		return
	}
	s.jsonResponse(w, http.StatusOK, toResumeResponse(record, nil))
}

// personalInfoPayload mirrors types.PersonalInfo with request validation.
type personalInfoPayload struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	Location string `json:"location" validate:"omitempty,max=200"`
}

func (s *Server) handleUpdatePersonalInfo(w http.ResponseWriter, r *http.Request) {
	var payload personalInfoPayload
	s.updateSection(w, r, &payload, func(resume *types.ParsedResume) {
		resume.PersonalInfo = types.PersonalInfo{
			Name:     payload.Name,
			Email:    payload.Email,
			Phone:    payload.Phone,
			Location: payload.Location,
		}
	})
}

type skillsPayload struct {
	Skills []string `json:"skills" validate:"required,dive,min=1,max=100"`
}

func (s *Server) handleUpdateSkills(w http.ResponseWriter, r *http.Request) {
	var payload skillsPayload
	s.updateSection(w, r, &payload, func(resume *types.ParsedResume) {
		resume.Skills = payload.Skills
		resume.NormalizeSkills()
	})
}

type educationPayload struct {
	Education []types.Education `json:"education" validate:"required,dive"`
}

func (s *Server) handleUpdateEducation(w http.ResponseWriter, r *http.Request) {
	var payload educationPayload
	s.updateSection(w, r, &payload, func(resume *types.ParsedResume) {
		resume.Education = payload.Education
	})
}

type experiencePayload struct {
	Experience []types.Experience `json:"experience" validate:"required,dive"`
}

func (s *Server) handleUpdateExperience(w http.ResponseWriter, r *http.Request) {
	var payload experiencePayload
	s.updateSection(w, r, &payload, func(resume *types.ParsedResume) {
		resume.Experience = payload.Experience
	})
}

type certificationsPayload struct {
	Certifications []types.Certification `json:"certifications" validate:"required,dive"`
}

func (s *Server) handleUpdateCertifications(w http.ResponseWriter, r *http.Request) {
	var payload certificationsPayload
	s.updateSection(w, r, &payload, func(resume *types.ParsedResume) {
		resume.Certifications = payload.Certifications
	})
}

// updateSection decodes and validates a section payload, applies it to the
// stored document, and re-persists.
func (s *Server) updateSection(w http.ResponseWriter, r *http.Request, payload any, apply func(*types.ParsedResume)) {
	id, ok := s.resumeID(w, r)
	if !ok {
		return
	}

	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := validate.Struct(payload); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	record, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.storeError(w, err, "failed to load resume")
		return
	}

	resume := record.Resume
	apply(&resume)

	updated, err := s.store.Update(r.Context(), id, &resume)
	if err != nil {
		s.storeError(w, err, "failed to update resume")
		return
	}
	s.jsonResponse(w, http.StatusOK, toResumeResponse(updated, nil))
}

// resumeID parses the {id} path value, writing a 400 on failure.
func (s *Server) resumeID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume id")
		return uuid.Nil, false
	}
	return id, true
}

// loadResume fetches the record for the {id} path value, writing the error
// response on failure.
func (s *Server) loadResume(w http.ResponseWriter, r *http.Request) (*store.Record, bool) {
	id, ok := s.resumeID(w, r)
	if !ok {
		return nil, false
	}
	record, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.storeError(w, err, "failed to load resume")
		return nil, false
	}
	return record, true
}

func (s *Server) storeError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, store.ErrNotFound) {
		s.errorResponse(w, http.StatusNotFound, "resume not found")
		return
	}
	log.Printf("Store error: %v", err)
	s.errorResponse(w, http.StatusInternalServerError, fallback)
}

// validationMessage flattens validator output into one readable line.
func validationMessage(err error) string {
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return "invalid request payload"
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Sprintf("validation failed on field %q (%s)", fe.Field(), fe.Tag())
	}
	return "validation failed"
}
