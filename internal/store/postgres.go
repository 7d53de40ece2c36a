package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-fitment/internal/types"
)

// resumesSchema creates the backing table. JSONB for the parsed document,
// plain text for the raw extraction.
const resumesSchema = `
CREATE TABLE IF NOT EXISTS resumes (
	id UUID PRIMARY KEY,
	document JSONB NOT NULL,
	raw_text TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// PostgresStore persists resumes in PostgreSQL through a pgx pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres opens a connection pool, verifies it, and ensures the
// resumes table exists.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, resumesSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ensure resumes table: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Create(ctx context.Context, resume *types.ParsedResume, rawText string) (*Record, error) {
	doc, err := json.Marshal(resume)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume: %w", err)
	}

	record := &Record{ID: uuid.New(), Resume: *resume, RawText: rawText}
	err = s.pool.QueryRow(ctx,
		`INSERT INTO resumes (id, document, raw_text)
		 VALUES ($1, $2, $3)
		 RETURNING created_at, updated_at`,
		record.ID, doc, rawText,
	).Scan(&record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return record, nil
}

func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	record := &Record{ID: id}
	var doc []byte
	err := s.pool.QueryRow(ctx,
		`SELECT document, raw_text, created_at, updated_at FROM resumes WHERE id = $1`,
		id,
	).Scan(&doc, &record.RawText, &record.CreatedAt, &record.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	if err := json.Unmarshal(doc, &record.Resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume %s: %w", id, err)
	}
	return record, nil
}

func (s *PostgresStore) Update(ctx context.Context, id uuid.UUID, resume *types.ParsedResume) (*Record, error) {
	doc, err := json.Marshal(resume)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume: %w", err)
	}

	record := &Record{ID: id, Resume: *resume}
	err = s.pool.QueryRow(ctx,
		`UPDATE resumes SET document = $1, updated_at = NOW()
		 WHERE id = $2
		 RETURNING raw_text, created_at, updated_at`,
		doc, id,
	).Scan(&record.RawText, &record.CreatedAt, &record.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update resume: %w", err)
	}
	return record, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]Record, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, document, raw_text, created_at, updated_at
		 FROM resumes ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		var doc []byte
		if err := rows.Scan(&record.ID, &doc, &record.RawText, &record.CreatedAt, &record.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume row: %w", err)
		}
		if err := json.Unmarshal(doc, &record.Resume); err != nil {
			return nil, fmt.Errorf("failed to unmarshal resume %s: %w", record.ID, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resumes: %w", err)
	}
	return records, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
