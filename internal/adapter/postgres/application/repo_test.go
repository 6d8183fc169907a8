package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillsync/skillsync-backend/internal/adapter/postgres/application"
	"github.com/skillsync/skillsync-backend/internal/adapter/postgres/testhelper"
	"github.com/skillsync/skillsync-backend/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*application.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return application.New(pool), pool
}

func seedPair(t *testing.T, pool *pgxpool.Pool) (candidateID, postingID uuid.UUID) {
	t.Helper()
	candidate := testhelper.SeedCandidate(t, pool)
	recruiter := testhelper.SeedRecruiter(t, pool)
	posting := testhelper.SeedPosting(t, pool, recruiter.ID)
	return candidate.ID, posting.ID
}

func appliedAt() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	candidateID, postingID := seedPair(t, pool)

	now := appliedAt()
	got, err := repo.Create(ctx, candidateID, postingID, now)
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if got.ID == uuid.Nil {
		t.Error("expected generated id")
	}
	if got.CandidateID != candidateID || got.PostingID != postingID {
		t.Errorf("pair mismatch: %+v", got)
	}
	if got.Withdrawn {
		t.Error("new application must not be withdrawn")
	}
	if !got.AppliedAt.Equal(now) {
		t.Errorf("AppliedAt = %s, want %s", got.AppliedAt, now)
	}
}

func TestRepo_Create_DuplicatePair(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	candidateID, postingID := seedPair(t, pool)

	if _, err := repo.Create(ctx, candidateID, postingID, appliedAt()); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	_, err := repo.Create(ctx, candidateID, postingID, appliedAt())
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRepo_Withdraw_ThenReactivate_SameRow(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	candidateID, postingID := seedPair(t, pool)

	created, err := repo.Create(ctx, candidateID, postingID, appliedAt())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	withdrawn, err := repo.Withdraw(ctx, candidateID, postingID)
	if err != nil {
		t.Fatalf("Withdraw: %v", err)
	}
	if !withdrawn.Withdrawn {
		t.Error("expected withdrawn flag set")
	}

	later := appliedAt()
	reactivated, err := repo.Reactivate(ctx, candidateID, postingID, later)
	if err != nil {
		t.Fatalf("Reactivate: %v", err)
	}
	if reactivated.Withdrawn {
		t.Error("reactivated application must not be withdrawn")
	}
	if reactivated.ID != created.ID {
		t.Errorf("reactivation must reuse the row: got id %s, want %s", reactivated.ID, created.ID)
	}
	if !reactivated.AppliedAt.Equal(later) {
		t.Errorf("AppliedAt = %s, want refreshed %s", reactivated.AppliedAt, later)
	}

	var count int
	if err := pool.QueryRow(ctx,
		`SELECT count(*) FROM applications WHERE candidate_id = $1 AND posting_id = $2`,
		candidateID, postingID).Scan(&count); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 row for the pair, got %d", count)
	}
}

func TestRepo_Withdraw_NoActiveRow(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	candidateID, postingID := seedPair(t, pool)

	_, err := repo.Withdraw(ctx, candidateID, postingID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_Withdraw_AlreadyWithdrawn(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	candidateID, postingID := seedPair(t, pool)

	if _, err := repo.Create(ctx, candidateID, postingID, appliedAt()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Withdraw(ctx, candidateID, postingID); err != nil {
		t.Fatalf("Withdraw: %v", err)
	}

	_, err := repo.Withdraw(ctx, candidateID, postingID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for repeated withdraw, got %v", err)
	}
}

func TestRepo_Reactivate_NoWithdrawnRow(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	candidateID, postingID := seedPair(t, pool)

	// Never applied.
	_, err := repo.Reactivate(ctx, candidateID, postingID, appliedAt())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Active, not withdrawn.
	if _, err := repo.Create(ctx, candidateID, postingID, appliedAt()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err = repo.Reactivate(ctx, candidateID, postingID, appliedAt())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for active row, got %v", err)
	}
}

func TestRepo_GetByPair_ReturnsWithdrawnRow(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	candidateID, postingID := seedPair(t, pool)

	if _, err := repo.Create(ctx, candidateID, postingID, appliedAt()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Withdraw(ctx, candidateID, postingID); err != nil {
		t.Fatalf("Withdraw: %v", err)
	}

	got, err := repo.GetByPair(ctx, candidateID, postingID)
	if err != nil {
		t.Fatalf("GetByPair: %v", err)
	}
	if !got.Withdrawn {
		t.Error("GetByPair must return the withdrawn row, not ErrNotFound")
	}
}

func TestRepo_ListActiveByCandidate_ExcludesWithdrawn(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	candidate := testhelper.SeedCandidate(t, pool)
	recruiter := testhelper.SeedRecruiter(t, pool)
	p1 := testhelper.SeedPosting(t, pool, recruiter.ID)
	p2 := testhelper.SeedPosting(t, pool, recruiter.ID)

	if _, err := repo.Create(ctx, candidate.ID, p1.ID, appliedAt()); err != nil {
		t.Fatalf("Create p1: %v", err)
	}
	if _, err := repo.Create(ctx, candidate.ID, p2.ID, appliedAt()); err != nil {
		t.Fatalf("Create p2: %v", err)
	}
	if _, err := repo.Withdraw(ctx, candidate.ID, p1.ID); err != nil {
		t.Fatalf("Withdraw p1: %v", err)
	}

	got, err := repo.ListActiveByCandidate(ctx, candidate.ID)
	if err != nil {
		t.Fatalf("ListActiveByCandidate: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 active application, got %d", len(got))
	}
	if got[0].PostingID != p2.ID {
		t.Errorf("PostingID = %s, want %s", got[0].PostingID, p2.ID)
	}
}

func TestRepo_ListActiveByPosting_Empty(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	recruiter := testhelper.SeedRecruiter(t, pool)
	posting := testhelper.SeedPosting(t, pool, recruiter.ID)

	got, err := repo.ListActiveByPosting(ctx, posting.ID)
	if err != nil {
		t.Fatalf("ListActiveByPosting: %v", err)
	}
	if got == nil {
		t.Fatal("result should not be nil (empty result should return empty slice)")
	}
	if len(got) != 0 {
		t.Errorf("expected 0 applications, got %d", len(got))
	}
}

func TestRepo_GetStatusesByPosting(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	recruiter := testhelper.SeedRecruiter(t, pool)
	posting := testhelper.SeedPosting(t, pool, recruiter.ID)
	applied := testhelper.SeedCandidate(t, pool)
	withdrew := testhelper.SeedCandidate(t, pool)
	never := testhelper.SeedCandidate(t, pool)

	if _, err := repo.Create(ctx, applied.ID, posting.ID, appliedAt()); err != nil {
		t.Fatalf("Create applied: %v", err)
	}
	if _, err := repo.Create(ctx, withdrew.ID, posting.ID, appliedAt()); err != nil {
		t.Fatalf("Create withdrew: %v", err)
	}
	if _, err := repo.Withdraw(ctx, withdrew.ID, posting.ID); err != nil {
		t.Fatalf("Withdraw: %v", err)
	}

	got, err := repo.GetStatusesByPosting(ctx, posting.ID, []uuid.UUID{applied.ID, withdrew.ID, never.ID})
	if err != nil {
		t.Fatalf("GetStatusesByPosting: %v", err)
	}

	if s := got[applied.ID]; !s.Applied || s.Withdrawn {
		t.Errorf("applied candidate status = %+v", s)
	}
	if s := got[withdrew.ID]; s.Applied || !s.Withdrawn {
		t.Errorf("withdrawn candidate status = %+v", s)
	}
	// A candidate who never applied has no entry; the zero value reads
	// as neither applied nor withdrawn.
	if s, ok := got[never.ID]; ok && (s.Applied || s.Withdrawn) {
		t.Errorf("never-applied candidate status = %+v", s)
	}
}
