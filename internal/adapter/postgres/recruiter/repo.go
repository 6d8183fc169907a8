// Package recruiter implements the RecruiterProfile repository using PostgreSQL.
package recruiter

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/skillsync/skillsync-backend/internal/adapter/postgres"
	"github.com/skillsync/skillsync-backend/internal/domain"
)

// Repo provides recruiter profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new recruiter repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const profileColumns = `id, user_id, company_name, created_at, updated_at`

const getByIDSQL = `
SELECT ` + profileColumns + `
FROM recruiter_profiles
WHERE id = $1`

const getByUserIDSQL = `
SELECT ` + profileColumns + `
FROM recruiter_profiles
WHERE user_id = $1`

// GetByID returns a recruiter profile by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RecruiterProfile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, id)
	p, err := scanProfile(row)
	if err != nil {
		return nil, postgres.MapError(err, "recruiter_profile", id)
	}

	return p, nil
}

// GetByUserID returns the recruiter profile for a user.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.RecruiterProfile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByUserIDSQL, userID)
	p, err := scanProfile(row)
	if err != nil {
		return nil, postgres.MapError(err, "recruiter_profile", userID)
	}

	return p, nil
}

const createSQL = `
INSERT INTO recruiter_profiles (user_id, company_name)
VALUES ($1, $2)
RETURNING ` + profileColumns

// Create inserts a recruiter profile for a user.
// Returns domain.ErrAlreadyExists if the user already has one.
func (r *Repo) Create(ctx context.Context, p *domain.RecruiterProfile) (*domain.RecruiterProfile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL, p.UserID, p.CompanyName)
	created, err := scanProfile(row)
	if err != nil {
		return nil, postgres.MapError(err, "recruiter_profile", p.UserID)
	}

	return created, nil
}

const deleteProfileSQL = `DELETE FROM recruiter_profiles WHERE id = $1`

// Delete removes a recruiter profile. Part of the explicit account-deletion
// cascade; the caller deletes the recruiter's postings first.
func (r *Repo) Delete(ctx context.Context, recruiterID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteProfileSQL, recruiterID); err != nil {
		return postgres.MapError(err, "recruiter_profile", recruiterID)
	}

	return nil
}

func scanProfile(row pgx.Row) (*domain.RecruiterProfile, error) {
	var p domain.RecruiterProfile
	err := row.Scan(&p.ID, &p.UserID, &p.CompanyName, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
