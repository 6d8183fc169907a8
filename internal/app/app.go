// Package app wires configuration, storage, services and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/skillsync/skillsync-backend/internal/adapter/postgres"
	applicationrepo "github.com/skillsync/skillsync-backend/internal/adapter/postgres/application"
	candidaterepo "github.com/skillsync/skillsync-backend/internal/adapter/postgres/candidate"
	matchscorerepo "github.com/skillsync/skillsync-backend/internal/adapter/postgres/matchscore"
	notificationrepo "github.com/skillsync/skillsync-backend/internal/adapter/postgres/notification"
	postingrepo "github.com/skillsync/skillsync-backend/internal/adapter/postgres/posting"
	recruiterrepo "github.com/skillsync/skillsync-backend/internal/adapter/postgres/recruiter"
	userrepo "github.com/skillsync/skillsync-backend/internal/adapter/postgres/user"
	"github.com/skillsync/skillsync-backend/internal/adapter/scoring"
	"github.com/skillsync/skillsync-backend/internal/auth"
	"github.com/skillsync/skillsync-backend/internal/config"
	"github.com/skillsync/skillsync-backend/internal/domain"
	applicationsvc "github.com/skillsync/skillsync-backend/internal/service/application"
	authsvc "github.com/skillsync/skillsync-backend/internal/service/auth"
	invitationsvc "github.com/skillsync/skillsync-backend/internal/service/invitation"
	notificationsvc "github.com/skillsync/skillsync-backend/internal/service/notification"
	postingsvc "github.com/skillsync/skillsync-backend/internal/service/posting"
	profilesvc "github.com/skillsync/skillsync-backend/internal/service/profile"
	rankingsvc "github.com/skillsync/skillsync-backend/internal/service/ranking"
	scoresvc "github.com/skillsync/skillsync-backend/internal/service/score"
	usersvc "github.com/skillsync/skillsync-backend/internal/service/user"
	"github.com/skillsync/skillsync-backend/internal/transport/middleware"
	"github.com/skillsync/skillsync-backend/internal/transport/rest"
)

const rateLimitPerMinute = 300

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and handlers, and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	candidates := candidaterepo.New(pool)
	recruiters := recruiterrepo.New(pool)
	postings := postingrepo.New(pool)
	scores := matchscorerepo.New(pool)
	applications := applicationrepo.New(pool)
	notifications := notificationrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	clock := domain.SystemClock{}

	var scorer scoring.Scorer
	if cfg.Scoring.BaseURL != "" {
		scorer = scoring.NewClient(cfg.Scoring.BaseURL, cfg.Scoring.Timeout, logger)
	} else {
		scorer = scoring.NewLocal()
	}

	authService := authsvc.NewService(logger, users, candidates, recruiters, txManager, hasher, jwtManager)
	userService := usersvc.NewService(logger, users, candidates, recruiters, postings, scores, applications, notifications, txManager)
	profileService := profilesvc.NewService(logger, candidates, scores, txManager)
	postingService := postingsvc.NewService(logger, recruiters, postings, scores, txManager, clock)
	scoreService := scoresvc.NewService(logger, candidates, postings, scores, scorer, clock)
	applicationService := applicationsvc.NewService(logger, candidates, recruiters, postings, applications, scores, clock, cfg.Match.ScoreThreshold)
	invitationService := invitationsvc.NewService(logger, candidates, recruiters, postings, notifications, applications, txManager, clock, cfg.Match.InviteMessageMax)
	rankingService := rankingsvc.NewService(logger, postings, scores, applications)
	notificationService := notificationsvc.NewService(logger, notifications)

	handlers := rest.Handlers{
		Health:        rest.NewHealthHandler(pool, BuildVersion()),
		Auth:          rest.NewAuthHandler(authService, logger),
		Users:         rest.NewUserHandler(userService, logger),
		Profile:       rest.NewProfileHandler(profileService, logger),
		Postings:      rest.NewPostingHandler(postingService, logger),
		Scores:        rest.NewScoreHandler(scoreService, logger),
		Applications:  rest.NewApplicationHandler(applicationService, logger),
		Rankings:      rest.NewRankingHandler(rankingService, logger),
		Notifications: rest.NewNotificationHandler(invitationService, notificationService, logger),
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Logger(logger),
		limiter.Limit(rateLimitPerMinute),
		middleware.Auth(jwtManager),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      rest.NewRouter(handlers, chain),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
