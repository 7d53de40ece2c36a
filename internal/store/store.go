// Package store persists parsed resumes keyed by UUID. Two implementations
// exist: a PostgreSQL store used in production and an in-memory store for
// tests and for running without a database.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-fitment/internal/types"
)

// ErrNotFound is returned when no resume exists under the requested ID.
var ErrNotFound = errors.New("resume not found")

// Record is a stored resume plus the raw document text it was parsed from.
// The raw text is kept so LLM enhancement can be re-run after edits.
type Record struct {
	ID        uuid.UUID          `json:"id"`
	Resume    types.ParsedResume `json:"resume"`
	RawText   string             `json:"rawText"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// Store is the persistence boundary for resumes.
type Store interface {
	// Create persists a new resume and returns the stored record with its
	// assigned ID and timestamps.
	Create(ctx context.Context, resume *types.ParsedResume, rawText string) (*Record, error)
	// Get returns the record under id, or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*Record, error)
	// Update replaces the resume document under id, or ErrNotFound.
	Update(ctx context.Context, id uuid.UUID, resume *types.ParsedResume) (*Record, error)
	// List returns every stored record, newest first.
	List(ctx context.Context) ([]Record, error)
	// Ping reports whether the backing storage is reachable.
	Ping(ctx context.Context) error
	// Close releases any held resources.
	Close()
}
