// Package posting implements the Posting repository using PostgreSQL,
// including the posting's required-skill set.
package posting

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/skillsync/skillsync-backend/internal/adapter/postgres"
	"github.com/skillsync/skillsync-backend/internal/domain"
)

// Repo provides posting persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new posting repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const postingColumns = `id, recruiter_id, title, description, type, deadline, created_at, updated_at`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getByIDSQL = `
SELECT ` + postingColumns + `
FROM postings
WHERE id = $1`

// GetByID returns a posting by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Posting, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, id)
	p, err := scanPosting(row)
	if err != nil {
		return nil, postgres.MapError(err, "posting", id)
	}

	return p, nil
}

const listIDsByRecruiterSQL = `SELECT id FROM postings WHERE recruiter_id = $1`

// ListIDsByRecruiter returns the ids of all postings owned by a recruiter.
// Used by the account-deletion cascade.
func (r *Repo) ListIDsByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listIDsByRecruiterSQL, recruiterID)
	if err != nil {
		return nil, fmt.Errorf("list posting ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("list posting ids: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posting ids: %w", err)
	}

	return ids, nil
}

const listRequirementsSQL = `
SELECT posting_id, skill_name, weight
FROM posting_requirements
WHERE posting_id = $1
ORDER BY skill_name`

// ListRequirements returns the posting's required skills ordered by name.
// Returns an empty slice (not nil) when the posting has no requirements.
func (r *Repo) ListRequirements(ctx context.Context, postingID uuid.UUID) ([]domain.PostingRequirement, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listRequirementsSQL, postingID)
	if err != nil {
		return nil, fmt.Errorf("list requirements: %w", err)
	}
	defer rows.Close()

	result := []domain.PostingRequirement{}
	for rows.Next() {
		var req domain.PostingRequirement
		if err := rows.Scan(&req.PostingID, &req.SkillName, &req.Weight); err != nil {
			return nil, fmt.Errorf("list requirements: %w", err)
		}
		result = append(result, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list requirements: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO postings (recruiter_id, title, description, type, deadline)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + postingColumns

// Create inserts a new posting and returns the persisted row.
// Requirements are written separately via ReplaceRequirements.
func (r *Repo) Create(ctx context.Context, p *domain.Posting) (*domain.Posting, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		p.RecruiterID, p.Title, p.Description, p.Type, p.Deadline)

	created, err := scanPosting(row)
	if err != nil {
		return nil, postgres.MapError(err, "posting", p.RecruiterID)
	}

	return created, nil
}

const deleteRequirementsSQL = `DELETE FROM posting_requirements WHERE posting_id = $1`

const insertRequirementSQL = `
INSERT INTO posting_requirements (posting_id, skill_name, weight)
VALUES ($1, $2, $3)`

// ReplaceRequirements swaps the posting's entire requirement set. Must run
// inside the caller's transaction together with the staleness flag-set so
// the cache invariant holds.
func (r *Repo) ReplaceRequirements(ctx context.Context, postingID uuid.UUID, reqs []domain.PostingRequirement) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteRequirementsSQL, postingID); err != nil {
		return postgres.MapError(err, "posting_requirement", postingID)
	}

	batch := &pgx.Batch{}
	for _, req := range reqs {
		batch.Queue(insertRequirementSQL, postingID, req.SkillName, req.Weight)
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	for range reqs {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "posting_requirement", postingID)
		}
	}

	return nil
}

const deleteRequirementsByPostingsSQL = `DELETE FROM posting_requirements WHERE posting_id = ANY($1::uuid[])`

const deleteByRecruiterSQL = `DELETE FROM postings WHERE recruiter_id = $1`

// DeleteByRecruiter removes a recruiter's postings and their requirement
// rows. Part of the explicit account-deletion cascade; the caller deletes
// dependent scores/applications/notifications first.
func (r *Repo) DeleteByRecruiter(ctx context.Context, recruiterID uuid.UUID, postingIDs []uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if len(postingIDs) > 0 {
		if _, err := querier.Exec(ctx, deleteRequirementsByPostingsSQL, postingIDs); err != nil {
			return postgres.MapError(err, "posting_requirement", recruiterID)
		}
	}

	if _, err := querier.Exec(ctx, deleteByRecruiterSQL, recruiterID); err != nil {
		return postgres.MapError(err, "posting", recruiterID)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanPosting(row pgx.Row) (*domain.Posting, error) {
	var p domain.Posting
	err := row.Scan(&p.ID, &p.RecruiterID, &p.Title, &p.Description, &p.Type,
		&p.Deadline, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
