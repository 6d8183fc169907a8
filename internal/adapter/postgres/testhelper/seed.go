package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillsync/skillsync-backend/internal/domain"
)

// SeedCandidate inserts a candidate user plus profile and returns the profile.
func SeedCandidate(t *testing.T, pool *pgxpool.Pool) *domain.CandidateProfile {
	t.Helper()
	ctx := context.Background()

	userID := seedUser(t, pool, domain.UserRoleCandidate)

	var p domain.CandidateProfile
	err := pool.QueryRow(ctx, `
		INSERT INTO candidate_profiles (user_id)
		VALUES ($1)
		RETURNING id, user_id, created_at, updated_at`, userID).
		Scan(&p.ID, &p.UserID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed candidate profile: %v", err)
	}

	return &p
}

// SeedRecruiter inserts a recruiter user plus profile and returns the profile.
func SeedRecruiter(t *testing.T, pool *pgxpool.Pool) *domain.RecruiterProfile {
	t.Helper()
	ctx := context.Background()

	userID := seedUser(t, pool, domain.UserRoleRecruiter)

	var p domain.RecruiterProfile
	err := pool.QueryRow(ctx, `
		INSERT INTO recruiter_profiles (user_id, company_name)
		VALUES ($1, 'Test Corp')
		RETURNING id, user_id, company_name, created_at, updated_at`, userID).
		Scan(&p.ID, &p.UserID, &p.CompanyName, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed recruiter profile: %v", err)
	}

	return &p
}

// SeedPosting inserts a posting owned by the given recruiter with a deadline
// one month out and returns it.
func SeedPosting(t *testing.T, pool *pgxpool.Pool, recruiterID uuid.UUID) *domain.Posting {
	t.Helper()
	ctx := context.Background()

	deadline := time.Now().UTC().AddDate(0, 1, 0).Truncate(time.Microsecond)

	var p domain.Posting
	err := pool.QueryRow(ctx, `
		INSERT INTO postings (recruiter_id, title, type, deadline)
		VALUES ($1, 'Backend Engineer', 'INTERNSHIP', $2)
		RETURNING id, recruiter_id, title, description, type, deadline, created_at, updated_at`,
		recruiterID, deadline).
		Scan(&p.ID, &p.RecruiterID, &p.Title, &p.Description, &p.Type, &p.Deadline, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed posting: %v", err)
	}

	return &p
}

func seedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	email := fmt.Sprintf("%s@test.local", uuid.NewString())

	var id uuid.UUID
	err := pool.QueryRow(ctx, `
		INSERT INTO users (email, name, role, password_hash)
		VALUES ($1, 'Test User', $2, 'x')
		RETURNING id`, email, role).
		Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: seed user: %v", err)
	}

	return id
}
