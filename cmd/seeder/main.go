// Command seeder populates the database with demo accounts for local
// development: one recruiter with an open posting and two candidates with
// skill profiles. It is intended to be run once against a fresh database,
// not as part of the main server.
//
// All demo accounts use the password "password123".
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/skillsync/skillsync-backend/internal/adapter/postgres"
	candidaterepo "github.com/skillsync/skillsync-backend/internal/adapter/postgres/candidate"
	postingrepo "github.com/skillsync/skillsync-backend/internal/adapter/postgres/posting"
	recruiterrepo "github.com/skillsync/skillsync-backend/internal/adapter/postgres/recruiter"
	userrepo "github.com/skillsync/skillsync-backend/internal/adapter/postgres/user"
	"github.com/skillsync/skillsync-backend/internal/app"
	"github.com/skillsync/skillsync-backend/internal/auth"
	"github.com/skillsync/skillsync-backend/internal/config"
	"github.com/skillsync/skillsync-backend/internal/domain"
)

const demoPassword = "password123"

type demoCandidate struct {
	email  string
	name   string
	skills []domain.CandidateSkill
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	candidates := candidaterepo.New(pool)
	recruiters := recruiterrepo.New(pool)
	postings := postingrepo.New(pool)

	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	hash, err := hasher.Hash(demoPassword)
	if err != nil {
		logger.Error("hash demo password", slog.String("error", err.Error()))
		os.Exit(1)
	}

	recruiterUser, err := users.Create(ctx, &domain.User{
		Email:        "recruiter@demo.local",
		Name:         "Demo Recruiter",
		Role:         domain.UserRoleRecruiter,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			logger.Info("demo data already seeded, nothing to do")
			return
		}
		logger.Error("create recruiter user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	recruiter, err := recruiters.Create(ctx, &domain.RecruiterProfile{
		UserID:      recruiterUser.ID,
		CompanyName: "Demo Corp",
	})
	if err != nil {
		logger.Error("create recruiter profile", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posting, err := postings.Create(ctx, &domain.Posting{
		RecruiterID: recruiter.ID,
		Title:       "Backend Engineer",
		Type:        domain.PostingTypeInternship,
		Deadline:    time.Now().AddDate(0, 1, 0),
	})
	if err != nil {
		logger.Error("create posting", slog.String("error", err.Error()))
		os.Exit(1)
	}

	reqs := []domain.PostingRequirement{
		{SkillName: "python", Weight: 5},
		{SkillName: "sql", Weight: 3},
		{SkillName: "node.js", Weight: 4},
	}
	if err := postings.ReplaceRequirements(ctx, posting.ID, reqs); err != nil {
		logger.Error("set posting requirements", slog.String("error", err.Error()))
		os.Exit(1)
	}

	demos := []demoCandidate{
		{
			email: "alice@demo.local",
			name:  "Alice Demo",
			skills: []domain.CandidateSkill{
				{SkillName: "python", Proficiency: 5},
				{SkillName: "sql", Proficiency: 4},
				{SkillName: "node.js", Proficiency: 4},
			},
		},
		{
			email: "bob@demo.local",
			name:  "Bob Demo",
			skills: []domain.CandidateSkill{
				{SkillName: "python", Proficiency: 4},
				{SkillName: "sql", Proficiency: 3},
			},
		},
	}

	for _, d := range demos {
		u, err := users.Create(ctx, &domain.User{
			Email:        d.email,
			Name:         d.name,
			Role:         domain.UserRoleCandidate,
			PasswordHash: hash,
		})
		if err != nil {
			logger.Error("create candidate user", slog.String("email", d.email), slog.String("error", err.Error()))
			os.Exit(1)
		}

		profile, err := candidates.Create(ctx, &domain.CandidateProfile{UserID: u.ID})
		if err != nil {
			logger.Error("create candidate profile", slog.String("email", d.email), slog.String("error", err.Error()))
			os.Exit(1)
		}

		if err := candidates.ReplaceSkills(ctx, profile.ID, d.skills); err != nil {
			logger.Error("set candidate skills", slog.String("email", d.email), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("demo data seeded",
		slog.String("posting_id", posting.ID.String()),
		slog.Int("candidates", len(demos)),
	)
}
