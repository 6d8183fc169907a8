package profile

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/domain"
	"github.com/skillsync/skillsync-backend/pkg/ctxutil"
)

var (
	_ candidateRepo = &candidateRepoMock{}
	_ scoreRepo     = &scoreRepoMock{}
	_ txManager     = &txManagerMock{}
)

type candidateRepoMock struct {
	GetByUserIDFunc   func(ctx context.Context, userID uuid.UUID) (*domain.CandidateProfile, error)
	ListSkillsFunc    func(ctx context.Context, candidateID uuid.UUID) ([]domain.CandidateSkill, error)
	ReplaceSkillsFunc func(ctx context.Context, candidateID uuid.UUID, skills []domain.CandidateSkill) error
}

func (m *candidateRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.CandidateProfile, error) {
	return m.GetByUserIDFunc(ctx, userID)
}

func (m *candidateRepoMock) ListSkills(ctx context.Context, candidateID uuid.UUID) ([]domain.CandidateSkill, error) {
	return m.ListSkillsFunc(ctx, candidateID)
}

func (m *candidateRepoMock) ReplaceSkills(ctx context.Context, candidateID uuid.UUID, skills []domain.CandidateSkill) error {
	return m.ReplaceSkillsFunc(ctx, candidateID, skills)
}

type scoreRepoMock struct {
	MarkStaleByCandidateFunc func(ctx context.Context, candidateID uuid.UUID) (int, error)

	markStaleCalls int
}

func (m *scoreRepoMock) MarkStaleByCandidate(ctx context.Context, candidateID uuid.UUID) (int, error) {
	m.markStaleCalls++
	return m.MarkStaleByCandidateFunc(ctx, candidateID)
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.RunInTxFunc(ctx, fn)
}

func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func newTestService(candidates *candidateRepoMock, scores *scoreRepoMock, tx *txManagerMock) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(logger, candidates, scores, tx)
}

func authedCtx() context.Context {
	return ctxutil.WithUserID(context.Background(), uuid.New())
}

func TestReplaceSkills_NormalizesAndStalesScores(t *testing.T) {
	t.Parallel()

	candidateID := uuid.New()

	var written []domain.CandidateSkill
	candidates := &candidateRepoMock{
		GetByUserIDFunc: func(ctx context.Context, userID uuid.UUID) (*domain.CandidateProfile, error) {
			return &domain.CandidateProfile{ID: candidateID, UserID: userID}, nil
		},
		ReplaceSkillsFunc: func(ctx context.Context, cid uuid.UUID, skills []domain.CandidateSkill) error {
			written = skills
			return nil
		},
		ListSkillsFunc: func(ctx context.Context, cid uuid.UUID) ([]domain.CandidateSkill, error) {
			return written, nil
		},
	}
	scores := &scoreRepoMock{
		MarkStaleByCandidateFunc: func(ctx context.Context, cid uuid.UUID) (int, error) {
			if cid != candidateID {
				t.Errorf("staled candidate %s, want %s", cid, candidateID)
			}
			return 3, nil
		},
	}

	svc := newTestService(candidates, scores, passthroughTx())
	updated, err := svc.ReplaceSkills(authedCtx(), ReplaceSkillsInput{
		Skills: []SkillInput{
			{SkillName: "  Python ", Proficiency: 4},
			{SkillName: "Node.JS", Proficiency: 3},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(updated) != 2 {
		t.Fatalf("len(updated) = %d, want 2", len(updated))
	}
	if written[0].SkillName != "python" || written[1].SkillName != "node.js" {
		t.Errorf("stored names = %q, %q, want normalized", written[0].SkillName, written[1].SkillName)
	}
	if scores.markStaleCalls != 1 {
		t.Errorf("MarkStaleByCandidate called %d times, want 1", scores.markStaleCalls)
	}
}

func TestReplaceSkills_EmptySetAllowed(t *testing.T) {
	t.Parallel()

	candidateID := uuid.New()
	candidates := &candidateRepoMock{
		GetByUserIDFunc: func(ctx context.Context, userID uuid.UUID) (*domain.CandidateProfile, error) {
			return &domain.CandidateProfile{ID: candidateID, UserID: userID}, nil
		},
		ReplaceSkillsFunc: func(ctx context.Context, cid uuid.UUID, skills []domain.CandidateSkill) error {
			if len(skills) != 0 {
				t.Errorf("len(skills) = %d, want 0", len(skills))
			}
			return nil
		},
		ListSkillsFunc: func(ctx context.Context, cid uuid.UUID) ([]domain.CandidateSkill, error) {
			return nil, nil
		},
	}
	scores := &scoreRepoMock{
		MarkStaleByCandidateFunc: func(ctx context.Context, cid uuid.UUID) (int, error) {
			return 0, nil
		},
	}

	svc := newTestService(candidates, scores, passthroughTx())
	if _, err := svc.ReplaceSkills(authedCtx(), ReplaceSkillsInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Clearing the skill set still invalidates cached scores.
	if scores.markStaleCalls != 1 {
		t.Errorf("MarkStaleByCandidate called %d times, want 1", scores.markStaleCalls)
	}
}

func TestReplaceSkills_DuplicateAfterNormalization(t *testing.T) {
	t.Parallel()

	svc := newTestService(&candidateRepoMock{}, &scoreRepoMock{}, passthroughTx())
	_, err := svc.ReplaceSkills(authedCtx(), ReplaceSkillsInput{
		Skills: []SkillInput{
			{SkillName: "Python", Proficiency: 4},
			{SkillName: "  python ", Proficiency: 2},
		},
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestReplaceSkills_ProficiencyOutOfRange(t *testing.T) {
	t.Parallel()

	svc := newTestService(&candidateRepoMock{}, &scoreRepoMock{}, passthroughTx())

	for _, p := range []int{0, 6, -1} {
		_, err := svc.ReplaceSkills(authedCtx(), ReplaceSkillsInput{
			Skills: []SkillInput{{SkillName: "go", Proficiency: p}},
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("proficiency %d: expected ErrValidation, got %v", p, err)
		}
	}
}

func TestReplaceSkills_TxFailureStalesNothing(t *testing.T) {
	t.Parallel()

	candidates := &candidateRepoMock{
		GetByUserIDFunc: func(ctx context.Context, userID uuid.UUID) (*domain.CandidateProfile, error) {
			return &domain.CandidateProfile{ID: uuid.New(), UserID: userID}, nil
		},
		ReplaceSkillsFunc: func(ctx context.Context, cid uuid.UUID, skills []domain.CandidateSkill) error {
			return errors.New("write failed")
		},
	}
	scores := &scoreRepoMock{}

	svc := newTestService(candidates, scores, passthroughTx())
	_, err := svc.ReplaceSkills(authedCtx(), ReplaceSkillsInput{
		Skills: []SkillInput{{SkillName: "go", Proficiency: 3}},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if scores.markStaleCalls != 0 {
		t.Errorf("MarkStaleByCandidate called %d times after failed write, want 0", scores.markStaleCalls)
	}
}
