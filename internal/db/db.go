// Package db provides PostgreSQL storage for tailoring runs and their output sections.
package db

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonathan/resume-profiles/internal/types"
)

//go:embed schema.sql
var schemaSQL string

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate creates the run and artifact tables if they do not exist
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// CreateRun records a new tailoring run and returns its ID.
// requested is the raw profile identifier, resolved the profile actually used.
func (db *DB) CreateRun(ctx context.Context, requested, resolved, dataDir string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO profile_runs (requested_profile, profile, data_dir, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		requested, resolved, dataDir, StatusRunning,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a run as finished with the given status
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE profile_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// SaveArtifact stores one output section as JSON keyed by its YAML field names
func (db *DB) SaveArtifact(ctx context.Context, runID uuid.UUID, section string, content any) error {
	jsonBytes, err := types.MarshalJSONDocument(content)
	if err != nil {
		return fmt.Errorf("failed to marshal artifact %s: %w", section, err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO profile_artifacts (run_id, section, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (run_id, section) DO UPDATE SET content = $3, created_at = NOW()`,
		runID, section, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save artifact %s: %w", section, err)
	}
	return nil
}

// SaveTailoredResume stores the combined document and every standalone section
func (db *DB) SaveTailoredResume(ctx context.Context, runID uuid.UUID, resume *types.TailoredResume) error {
	if err := db.SaveArtifact(ctx, runID, ArtifactCombined, resume); err != nil {
		return err
	}
	for _, section := range resume.Sections() {
		if err := db.SaveArtifact(ctx, runID, section.Key, section.Value); err != nil {
			return err
		}
	}
	return nil
}

// GetArtifact retrieves an artifact by run ID and section.
// It returns nil without error when the artifact does not exist.
func (db *DB) GetArtifact(ctx context.Context, runID uuid.UUID, section string) ([]byte, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM profile_artifacts WHERE run_id = $1 AND section = $2`,
		runID, section,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artifact %s: %w", section, err)
	}
	return content, nil
}

// ListArtifactSections returns the sections stored for a run in name order
func (db *DB) ListArtifactSections(ctx context.Context, runID uuid.UUID) ([]string, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT section FROM profile_artifacts WHERE run_id = $1 ORDER BY section`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	defer rows.Close()

	var sections []string
	for rows.Next() {
		var section string
		if err := rows.Scan(&section); err != nil {
			return nil, fmt.Errorf("failed to scan artifact: %w", err)
		}
		sections = append(sections, section)
	}
	return sections, rows.Err()
}

// GetRun retrieves a run by ID, or nil when it does not exist
func (db *DB) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var run Run
	err := db.pool.QueryRow(ctx,
		`SELECT id, requested_profile, profile, data_dir, status, created_at, completed_at
		 FROM profile_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.RequestedProfile, &run.Profile, &run.DataDir, &run.Status, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// ListRuns retrieves the most recent runs
func (db *DB) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, requested_profile, profile, data_dir, status, created_at, completed_at
		 FROM profile_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.RequestedProfile, &run.Profile, &run.DataDir, &run.Status, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// DeleteRun removes a run and, by cascade, its artifacts
func (db *DB) DeleteRun(ctx context.Context, runID uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM profile_runs WHERE id = $1`, runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	return nil
}
