package rest

import (
	"net/http"

	"github.com/skillsync/skillsync-backend/internal/transport/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health        *HealthHandler
	Auth          *AuthHandler
	Users         *UserHandler
	Profile       *ProfileHandler
	Postings      *PostingHandler
	Scores        *ScoreHandler
	Applications  *ApplicationHandler
	Rankings      *RankingHandler
	Notifications *NotificationHandler
}

// NewRouter mounts all routes behind the given middleware chain. The chain
// is built by the caller so the wiring (request id, recovery, CORS,
// logging, rate limiting, auth) lives in one place.
func NewRouter(h Handlers, chain middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)

	mux.HandleFunc("GET /users/me", h.Users.Me)
	mux.HandleFunc("DELETE /users/me", h.Users.DeleteAccount)

	mux.HandleFunc("GET /profile/skills", h.Profile.GetSkills)
	mux.HandleFunc("PUT /profile/skills", h.Profile.ReplaceSkills)

	mux.HandleFunc("POST /postings", h.Postings.Create)
	mux.HandleFunc("GET /postings/{postingId}", h.Postings.Get)
	mux.HandleFunc("PUT /postings/{postingId}/requirements", h.Postings.ReplaceRequirements)

	mux.HandleFunc("POST /scores/check/{postingId}", h.Scores.Check)

	mux.HandleFunc("GET /applications/mine", h.Applications.ListMine)
	mux.HandleFunc("GET /applications/posting/{postingId}", h.Applications.ListApplicants)
	mux.HandleFunc("POST /applications/{postingId}", h.Applications.Apply)
	mux.HandleFunc("DELETE /applications/{postingId}", h.Applications.Withdraw)

	mux.HandleFunc("GET /rankings/{postingId}", h.Rankings.Get)

	mux.HandleFunc("GET /notifications/mine", h.Notifications.ListMine)
	mux.HandleFunc("POST /notifications/notify/{candidateId}/{postingId}", h.Notifications.Invite)
	mux.HandleFunc("PUT /notifications/{id}/accept", h.Notifications.Accept)
	mux.HandleFunc("PUT /notifications/{id}/reject", h.Notifications.Reject)
	mux.HandleFunc("PUT /notifications/{id}/read", h.Notifications.MarkRead)

	return chain(mux)
}
