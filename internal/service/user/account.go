package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/domain"
	"github.com/skillsync/skillsync-backend/pkg/ctxutil"
)

// Me returns the calling user's account.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return u, nil
}

// DeleteAccount removes the calling user's account and, transactionally,
// every row that references it: for candidates the scores, applications,
// skills and profile; for recruiters the postings and everything hanging
// off them. Dependent rows go first so no reference is ever dangling.
func (s *Service) DeleteAccount(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		switch u.Role {
		case domain.UserRoleCandidate:
			if err := s.deleteCandidateData(ctx, userID); err != nil {
				return err
			}
		case domain.UserRoleRecruiter:
			if err := s.deleteRecruiterData(ctx, userID); err != nil {
				return err
			}
		}

		if err := s.notifications.DeleteByUser(ctx, userID); err != nil {
			return fmt.Errorf("delete notifications: %w", err)
		}
		if err := s.users.Delete(ctx, userID); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "account deleted",
		slog.String("user_id", userID.String()),
		slog.String("role", u.Role.String()),
	)

	return nil
}

func (s *Service) deleteCandidateData(ctx context.Context, userID uuid.UUID) error {
	candidate, err := s.candidates.GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get candidate: %w", err)
	}

	if err := s.scores.DeleteByCandidate(ctx, candidate.ID); err != nil {
		return fmt.Errorf("delete scores: %w", err)
	}
	if err := s.applications.DeleteByCandidate(ctx, candidate.ID); err != nil {
		return fmt.Errorf("delete applications: %w", err)
	}
	if err := s.candidates.Delete(ctx, candidate.ID); err != nil {
		return fmt.Errorf("delete candidate profile: %w", err)
	}

	return nil
}

func (s *Service) deleteRecruiterData(ctx context.Context, userID uuid.UUID) error {
	recruiter, err := s.recruiters.GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get recruiter: %w", err)
	}

	postingIDs, err := s.postings.ListIDsByRecruiter(ctx, recruiter.ID)
	if err != nil {
		return fmt.Errorf("list postings: %w", err)
	}

	if err := s.scores.DeleteByPostings(ctx, postingIDs); err != nil {
		return fmt.Errorf("delete scores: %w", err)
	}
	if err := s.applications.DeleteByPostings(ctx, postingIDs); err != nil {
		return fmt.Errorf("delete applications: %w", err)
	}
	if err := s.notifications.DeleteByPostings(ctx, postingIDs); err != nil {
		return fmt.Errorf("delete posting notifications: %w", err)
	}
	if err := s.postings.DeleteByRecruiter(ctx, recruiter.ID, postingIDs); err != nil {
		return fmt.Errorf("delete postings: %w", err)
	}
	if err := s.recruiters.Delete(ctx, recruiter.ID); err != nil {
		return fmt.Errorf("delete recruiter profile: %w", err)
	}

	return nil
}
