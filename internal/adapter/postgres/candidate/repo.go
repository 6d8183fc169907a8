// Package candidate implements the CandidateProfile repository using
// PostgreSQL, including the candidate's skill set.
package candidate

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/skillsync/skillsync-backend/internal/adapter/postgres"
	"github.com/skillsync/skillsync-backend/internal/domain"
)

// Repo provides candidate profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new candidate repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const profileColumns = `id, user_id, location, created_at, updated_at`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getByIDSQL = `
SELECT ` + profileColumns + `
FROM candidate_profiles
WHERE id = $1`

const getByUserIDSQL = `
SELECT ` + profileColumns + `
FROM candidate_profiles
WHERE user_id = $1`

// GetByID returns a candidate profile by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CandidateProfile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, id)
	p, err := scanProfile(row)
	if err != nil {
		return nil, postgres.MapError(err, "candidate_profile", id)
	}

	return p, nil
}

// GetByUserID returns the candidate profile for a user.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.CandidateProfile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByUserIDSQL, userID)
	p, err := scanProfile(row)
	if err != nil {
		return nil, postgres.MapError(err, "candidate_profile", userID)
	}

	return p, nil
}

const listSkillsSQL = `
SELECT candidate_id, skill_name, proficiency
FROM candidate_skills
WHERE candidate_id = $1
ORDER BY skill_name`

// ListSkills returns the candidate's skills ordered by name.
// Returns an empty slice (not nil) when no skills are on file.
func (r *Repo) ListSkills(ctx context.Context, candidateID uuid.UUID) ([]domain.CandidateSkill, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSkillsSQL, candidateID)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	result := []domain.CandidateSkill{}
	for rows.Next() {
		var s domain.CandidateSkill
		if err := rows.Scan(&s.CandidateID, &s.SkillName, &s.Proficiency); err != nil {
			return nil, fmt.Errorf("list skills: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO candidate_profiles (user_id, location)
VALUES ($1, $2)
RETURNING ` + profileColumns

// Create inserts a candidate profile for a user.
// Returns domain.ErrAlreadyExists if the user already has one.
func (r *Repo) Create(ctx context.Context, p *domain.CandidateProfile) (*domain.CandidateProfile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL, p.UserID, p.Location)
	created, err := scanProfile(row)
	if err != nil {
		return nil, postgres.MapError(err, "candidate_profile", p.UserID)
	}

	return created, nil
}

const deleteSkillsSQL = `DELETE FROM candidate_skills WHERE candidate_id = $1`

const insertSkillSQL = `
INSERT INTO candidate_skills (candidate_id, skill_name, proficiency)
VALUES ($1, $2, $3)`

// ReplaceSkills swaps the candidate's entire skill set. Must run inside the
// caller's transaction together with the staleness flag-set so the cache
// invariant holds.
func (r *Repo) ReplaceSkills(ctx context.Context, candidateID uuid.UUID, skills []domain.CandidateSkill) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteSkillsSQL, candidateID); err != nil {
		return postgres.MapError(err, "candidate_skill", candidateID)
	}

	batch := &pgx.Batch{}
	for _, s := range skills {
		batch.Queue(insertSkillSQL, candidateID, s.SkillName, s.Proficiency)
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	for range skills {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "candidate_skill", candidateID)
		}
	}

	return nil
}

const deleteProfileSQL = `DELETE FROM candidate_profiles WHERE id = $1`

// Delete removes a candidate profile and its skills. Part of the explicit
// account-deletion cascade; the caller deletes dependent rows first.
func (r *Repo) Delete(ctx context.Context, candidateID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteSkillsSQL, candidateID); err != nil {
		return postgres.MapError(err, "candidate_skill", candidateID)
	}
	if _, err := querier.Exec(ctx, deleteProfileSQL, candidateID); err != nil {
		return postgres.MapError(err, "candidate_profile", candidateID)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanProfile(row pgx.Row) (*domain.CandidateProfile, error) {
	var p domain.CandidateProfile
	err := row.Scan(&p.ID, &p.UserID, &p.Location, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
