package server

import (
	"log"
	"net/http"

	"github.com/jonathan/resume-fitment/internal/catalog"
)

// handleListJobs returns the static job catalog.
func (s *Server) handleListJobs(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, catalog.Listings())
}

// handleGetMatches scores the stored resume against every catalog listing.
// Matches are recomputed on each call, never persisted.
func (s *Server) handleGetMatches(w http.ResponseWriter, r *http.Request) {
	record, ok := s.loadResume(w, r)
	if !ok {
		return
	}

	matches, err := s.engine.MatchAll(r.Context(), &record.Resume, catalog.Listings())
	if err != nil {
		log.Printf("Error matching resume %s: %v", record.ID, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to compute matches")
		return
	}
	s.jsonResponse(w, http.StatusOK, matches)
}

// handleGetDossier builds the aggregated candidate dossier from the stored
// resume and a fresh match run.
func (s *Server) handleGetDossier(w http.ResponseWriter, r *http.Request) {
	record, ok := s.loadResume(w, r)
	if !ok {
		return
	}

	matches, err := s.engine.MatchAll(r.Context(), &record.Resume, catalog.Listings())
	if err != nil {
		log.Printf("Error matching resume %s: %v", record.ID, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to compute matches")
		return
	}

	dossier, err := s.dossier.Build(r.Context(), &record.Resume, matches)
	if err != nil {
		log.Printf("Error building dossier for %s: %v", record.ID, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to build dossier")
		return
	}
	s.jsonResponse(w, http.StatusOK, dossier)
}
