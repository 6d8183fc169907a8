// Package application implements the Application repository using PostgreSQL.
//
// The UNIQUE (candidate_id, posting_id) constraint is the serialization
// point for concurrent applies: no in-process locking, the second writer
// fails with a unique violation mapped to domain.ErrAlreadyExists.
package application

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/skillsync/skillsync-backend/internal/adapter/postgres"
	"github.com/skillsync/skillsync-backend/internal/domain"
)

// Repo provides application persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new application repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const appColumns = `id, candidate_id, posting_id, withdrawn, applied_at`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getByPairSQL = `
SELECT ` + appColumns + `
FROM applications
WHERE candidate_id = $1 AND posting_id = $2`

// GetByPair returns the application row for a pair, withdrawn or not.
// Returns domain.ErrNotFound when the candidate never applied.
func (r *Repo) GetByPair(ctx context.Context, candidateID, postingID uuid.UUID) (*domain.Application, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByPairSQL, candidateID, postingID)
	app, err := scanApplication(row)
	if err != nil {
		return nil, postgres.MapError(err, "application", candidateID)
	}

	return app, nil
}

// ListActiveByCandidate returns the candidate's non-withdrawn applications,
// newest first.
func (r *Repo) ListActiveByCandidate(ctx context.Context, candidateID uuid.UUID) ([]domain.Application, error) {
	return r.listActive(ctx, sq.Eq{"candidate_id": candidateID})
}

// ListActiveByPosting returns the posting's non-withdrawn applications,
// newest first.
func (r *Repo) ListActiveByPosting(ctx context.Context, postingID uuid.UUID) ([]domain.Application, error) {
	return r.listActive(ctx, sq.Eq{"posting_id": postingID})
}

func (r *Repo) listActive(ctx context.Context, cond sq.Eq) ([]domain.Application, error) {
	query := builder.
		Select("id", "candidate_id", "posting_id", "withdrawn", "applied_at").
		From("applications").
		Where(cond).
		Where(sq.Eq{"withdrawn": false}).
		OrderBy("applied_at DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list applications: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	return scanApplications(rows)
}

// GetStatusesByPosting returns the {applied, withdrawn} projection per
// candidate for a posting, limited to the given candidate ids.
func (r *Repo) GetStatusesByPosting(ctx context.Context, postingID uuid.UUID, candidateIDs []uuid.UUID) (map[uuid.UUID]domain.ApplicationStatus, error) {
	if len(candidateIDs) == 0 {
		return map[uuid.UUID]domain.ApplicationStatus{}, nil
	}

	query := builder.
		Select("candidate_id", "withdrawn").
		From("applications").
		Where(sq.Eq{"posting_id": postingID, "candidate_id": candidateIDs})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build statuses by posting: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("statuses by posting: %w", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]domain.ApplicationStatus)
	for rows.Next() {
		var (
			candidateID uuid.UUID
			withdrawn   bool
		)
		if err := rows.Scan(&candidateID, &withdrawn); err != nil {
			return nil, fmt.Errorf("statuses by posting: %w", err)
		}
		result[candidateID] = domain.ApplicationStatus{Applied: !withdrawn, Withdrawn: withdrawn}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("statuses by posting: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO applications (candidate_id, posting_id, applied_at)
VALUES ($1, $2, $3)
RETURNING ` + appColumns

// Create inserts a fresh application row.
// Returns domain.ErrAlreadyExists when a row for the pair already exists,
// including one a concurrent writer just committed.
func (r *Repo) Create(ctx context.Context, candidateID, postingID uuid.UUID, appliedAt time.Time) (*domain.Application, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL, candidateID, postingID, appliedAt)
	app, err := scanApplication(row)
	if err != nil {
		return nil, postgres.MapError(err, "application", candidateID)
	}

	return app, nil
}

const reactivateSQL = `
UPDATE applications
SET withdrawn = false, applied_at = $3
WHERE candidate_id = $1 AND posting_id = $2 AND withdrawn
RETURNING ` + appColumns

// Reactivate flips a withdrawn application back to applied and refreshes
// applied_at. Returns domain.ErrNotFound when no withdrawn row exists:
// either the pair never applied, or a concurrent writer re-applied first.
func (r *Repo) Reactivate(ctx context.Context, candidateID, postingID uuid.UUID, appliedAt time.Time) (*domain.Application, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, reactivateSQL, candidateID, postingID, appliedAt)
	app, err := scanApplication(row)
	if err != nil {
		return nil, postgres.MapError(err, "application", candidateID)
	}

	return app, nil
}

const withdrawSQL = `
UPDATE applications
SET withdrawn = true
WHERE candidate_id = $1 AND posting_id = $2 AND NOT withdrawn
RETURNING ` + appColumns

// Withdraw marks an active application withdrawn. The row and the cached
// score stay in place. Returns domain.ErrNotFound when no active row exists.
func (r *Repo) Withdraw(ctx context.Context, candidateID, postingID uuid.UUID) (*domain.Application, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, withdrawSQL, candidateID, postingID)
	app, err := scanApplication(row)
	if err != nil {
		return nil, postgres.MapError(err, "application", candidateID)
	}

	return app, nil
}

const deleteByCandidateSQL = `DELETE FROM applications WHERE candidate_id = $1`

const deleteByPostingsSQL = `DELETE FROM applications WHERE posting_id = ANY($1::uuid[])`

// DeleteByCandidate removes all applications referencing a candidate.
// Part of the explicit account-deletion cascade.
func (r *Repo) DeleteByCandidate(ctx context.Context, candidateID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteByCandidateSQL, candidateID); err != nil {
		return postgres.MapError(err, "application", candidateID)
	}

	return nil
}

// DeleteByPostings removes all applications referencing any of the given
// postings. Part of the explicit account-deletion cascade.
func (r *Repo) DeleteByPostings(ctx context.Context, postingIDs []uuid.UUID) error {
	if len(postingIDs) == 0 {
		return nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteByPostingsSQL, postingIDs); err != nil {
		return postgres.MapError(err, "application", uuid.Nil)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var app domain.Application
	err := row.Scan(&app.ID, &app.CandidateID, &app.PostingID, &app.Withdrawn, &app.AppliedAt)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func scanApplications(rows pgx.Rows) ([]domain.Application, error) {
	var result []domain.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Application{}
	}

	return result, nil
}
