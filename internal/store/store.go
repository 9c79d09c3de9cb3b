// Package store provides PostgreSQL persistence for resume snapshots.
package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-renderer/internal/types"
)

//go:embed schema.sql
var schemaSQL string

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Migrate applies the embedded schema. Statements are idempotent.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Resume is a stored resume record
type Resume struct {
	ID        uuid.UUID         `json:"id"`
	Title     string            `json:"title"`
	Content   *types.ResumeData `json:"content"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// ResumeSummary is a lightweight view of a resume for listing
type ResumeSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateResume stores a new resume snapshot and returns its ID
func (s *Store) CreateResume(ctx context.Context, title string, content *types.ResumeData) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(content)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO resumes (title, content)
		 VALUES ($1, $2)
		 RETURNING id`,
		title, jsonBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return id, nil
}

// SaveResume replaces the snapshot for an existing resume
func (s *Store) SaveResume(ctx context.Context, id uuid.UUID, title string, content *types.ResumeData) error {
	jsonBytes, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}

	result, err := s.pool.Exec(ctx,
		`UPDATE resumes SET title = $1, content = $2, updated_at = NOW() WHERE id = $3`,
		title, jsonBytes, id,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", id)
	}
	return nil
}

// GetResume retrieves a resume by ID. Returns nil when no row exists.
func (s *Store) GetResume(ctx context.Context, id uuid.UUID) (*Resume, error) {
	var (
		resume       Resume
		contentBytes []byte
	)
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, content, created_at, updated_at FROM resumes WHERE id = $1`,
		id,
	).Scan(&resume.ID, &resume.Title, &contentBytes, &resume.CreatedAt, &resume.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	var content types.ResumeData
	if err := json.Unmarshal(contentBytes, &content); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume %s: %w", id, err)
	}
	resume.Content = &content

	return &resume, nil
}

// ListResumes retrieves recent resumes, newest first
func (s *Store) ListResumes(ctx context.Context, limit int) ([]ResumeSummary, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, title, updated_at FROM resumes ORDER BY updated_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var summaries []ResumeSummary
	for rows.Next() {
		var r ResumeSummary
		if err := rows.Scan(&r.ID, &r.Title, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		summaries = append(summaries, r)
	}
	return summaries, nil
}

// DeleteResume deletes a resume and its export records (via cascade)
func (s *Store) DeleteResume(ctx context.Context, id uuid.UUID) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", id)
	}
	return nil
}

// RecordExport logs a completed export for a resume
func (s *Store) RecordExport(ctx context.Context, resumeID uuid.UUID, templateID, engine string, byteSize int) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO exports (resume_id, template_id, engine, byte_size)
		 VALUES ($1, $2, $3, $4)`,
		resumeID, templateID, engine, byteSize,
	)
	if err != nil {
		return fmt.Errorf("failed to record export: %w", err)
	}
	return nil
}
