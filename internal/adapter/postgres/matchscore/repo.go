// Package matchscore implements the MatchScore repository using PostgreSQL.
// One row per (candidate, posting) pair; staleness is a flag flipped in bulk
// when either side's skill set changes, never a delete.
package matchscore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/skillsync/skillsync-backend/internal/adapter/postgres"
	"github.com/skillsync/skillsync-backend/internal/domain"
)

// Repo provides match score persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new match score repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const scoreColumns = `candidate_id, posting_id, score, breakdown, gaps, projected_score, is_stale, calculated_at`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getByPairSQL = `
SELECT ` + scoreColumns + `
FROM match_scores
WHERE candidate_id = $1 AND posting_id = $2`

// GetByPair returns the cached score for one (candidate, posting) pair.
// Returns domain.ErrNotFound when no score has ever been calculated.
func (r *Repo) GetByPair(ctx context.Context, candidateID, postingID uuid.UUID) (*domain.MatchScore, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByPairSQL, candidateID, postingID)
	ms, err := scanScore(row)
	if err != nil {
		return nil, postgres.MapError(err, "match_score", candidateID)
	}

	return ms, nil
}

// ListFreshByPosting returns all non-stale scores for a posting, ordered by
// score descending with deterministic tie-breaking (calculated_at, then
// candidate id). Stale rows are excluded, not recomputed.
func (r *Repo) ListFreshByPosting(ctx context.Context, postingID uuid.UUID) ([]domain.MatchScore, error) {
	query := builder.
		Select("candidate_id", "posting_id", "score", "breakdown", "gaps", "projected_score", "is_stale", "calculated_at").
		From("match_scores").
		Where(sq.Eq{"posting_id": postingID, "is_stale": false}).
		OrderBy("score DESC", "calculated_at ASC", "candidate_id ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list fresh scores: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list fresh scores: %w", err)
	}
	defer rows.Close()

	return scanScores(rows)
}

// GetScoresByCandidate returns score-by-posting for a candidate, limited to
// the given posting ids. Used to decorate application listings.
func (r *Repo) GetScoresByCandidate(ctx context.Context, candidateID uuid.UUID, postingIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	if len(postingIDs) == 0 {
		return map[uuid.UUID]int{}, nil
	}

	query := builder.
		Select("posting_id", "score").
		From("match_scores").
		Where(sq.Eq{"candidate_id": candidateID, "posting_id": postingIDs})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build scores by candidate: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("scores by candidate: %w", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			postingID uuid.UUID
			score     int
		)
		if err := rows.Scan(&postingID, &score); err != nil {
			return nil, fmt.Errorf("scores by candidate: %w", err)
		}
		result[postingID] = score
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scores by candidate: %w", err)
	}

	return result, nil
}

// GetScoresByPosting returns score-by-candidate for a posting, limited to
// the given candidate ids. Used to decorate applicant listings.
func (r *Repo) GetScoresByPosting(ctx context.Context, postingID uuid.UUID, candidateIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	if len(candidateIDs) == 0 {
		return map[uuid.UUID]int{}, nil
	}

	query := builder.
		Select("candidate_id", "score").
		From("match_scores").
		Where(sq.Eq{"posting_id": postingID, "candidate_id": candidateIDs})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build scores by posting: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("scores by posting: %w", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			candidateID uuid.UUID
			score       int
		)
		if err := rows.Scan(&candidateID, &score); err != nil {
			return nil, fmt.Errorf("scores by posting: %w", err)
		}
		result[candidateID] = score
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scores by posting: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const upsertSQL = `
INSERT INTO match_scores (candidate_id, posting_id, score, breakdown, gaps, projected_score, is_stale, calculated_at)
VALUES ($1, $2, $3, $4, $5, $6, false, $7)
ON CONFLICT (candidate_id, posting_id) DO UPDATE SET
    score = EXCLUDED.score,
    breakdown = EXCLUDED.breakdown,
    gaps = EXCLUDED.gaps,
    projected_score = EXCLUDED.projected_score,
    is_stale = false,
    calculated_at = EXCLUDED.calculated_at
RETURNING ` + scoreColumns

// Upsert inserts or refreshes the score row for a pair and clears the stale
// flag. CalculatedAt is taken from the given score.
func (r *Repo) Upsert(ctx context.Context, score *domain.MatchScore) (*domain.MatchScore, error) {
	breakdown, err := json.Marshal(score.Breakdown)
	if err != nil {
		return nil, fmt.Errorf("marshal breakdown: %w", err)
	}
	gaps, err := json.Marshal(score.Gaps)
	if err != nil {
		return nil, fmt.Errorf("marshal gaps: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, upsertSQL,
		score.CandidateID, score.PostingID, score.Score,
		breakdown, gaps, score.ProjectedScore, score.CalculatedAt,
	)

	saved, err := scanScore(row)
	if err != nil {
		return nil, postgres.MapError(err, "match_score", score.CandidateID)
	}

	return saved, nil
}

const markStaleByCandidateSQL = `UPDATE match_scores SET is_stale = true WHERE candidate_id = $1 AND NOT is_stale`

const markStaleByPostingSQL = `UPDATE match_scores SET is_stale = true WHERE posting_id = $1 AND NOT is_stale`

// MarkStaleByCandidate flags every score referencing the candidate as stale.
// Returns the number of rows flipped.
func (r *Repo) MarkStaleByCandidate(ctx context.Context, candidateID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, markStaleByCandidateSQL, candidateID)
	if err != nil {
		return 0, postgres.MapError(err, "match_score", candidateID)
	}

	return int(tag.RowsAffected()), nil
}

// MarkStaleByPosting flags every score referencing the posting as stale.
// Returns the number of rows flipped.
func (r *Repo) MarkStaleByPosting(ctx context.Context, postingID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, markStaleByPostingSQL, postingID)
	if err != nil {
		return 0, postgres.MapError(err, "match_score", postingID)
	}

	return int(tag.RowsAffected()), nil
}

const deleteByCandidateSQL = `DELETE FROM match_scores WHERE candidate_id = $1`

const deleteByPostingsSQL = `DELETE FROM match_scores WHERE posting_id = ANY($1::uuid[])`

// DeleteByCandidate removes all scores referencing a candidate.
// Part of the explicit account-deletion cascade.
func (r *Repo) DeleteByCandidate(ctx context.Context, candidateID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteByCandidateSQL, candidateID); err != nil {
		return postgres.MapError(err, "match_score", candidateID)
	}

	return nil
}

// DeleteByPostings removes all scores referencing any of the given postings.
// Part of the explicit account-deletion cascade.
func (r *Repo) DeleteByPostings(ctx context.Context, postingIDs []uuid.UUID) error {
	if len(postingIDs) == 0 {
		return nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteByPostingsSQL, postingIDs); err != nil {
		return postgres.MapError(err, "match_score", uuid.Nil)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanScore(row pgx.Row) (*domain.MatchScore, error) {
	var (
		ms            domain.MatchScore
		breakdownJSON []byte
		gapsJSON      []byte
		calculatedAt  time.Time
	)

	err := row.Scan(&ms.CandidateID, &ms.PostingID, &ms.Score,
		&breakdownJSON, &gapsJSON, &ms.ProjectedScore, &ms.IsStale, &calculatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(breakdownJSON, &ms.Breakdown); err != nil {
		return nil, fmt.Errorf("unmarshal breakdown: %w", err)
	}
	if err := json.Unmarshal(gapsJSON, &ms.Gaps); err != nil {
		return nil, fmt.Errorf("unmarshal gaps: %w", err)
	}
	ms.CalculatedAt = calculatedAt

	return &ms, nil
}

func scanScores(rows pgx.Rows) ([]domain.MatchScore, error) {
	var result []domain.MatchScore
	for rows.Next() {
		ms, err := scanScore(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *ms)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.MatchScore{}
	}

	return result, nil
}
