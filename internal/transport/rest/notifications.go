package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/domain"
	"github.com/skillsync/skillsync-backend/internal/service/invitation"
	"github.com/skillsync/skillsync-backend/internal/service/notification"
	"github.com/skillsync/skillsync-backend/internal/transport/middleware"
)

// invitationService defines the minimal interface needed by NotificationHandler.
type invitationService interface {
	Invite(ctx context.Context, input invitation.InviteInput) (*domain.Notification, error)
	Respond(ctx context.Context, input invitation.RespondInput) (*domain.Notification, error)
}

// notificationService defines the minimal interface needed by NotificationHandler.
type notificationService interface {
	ListMine(ctx context.Context) (*notification.Feed, error)
	MarkRead(ctx context.Context, notificationID uuid.UUID) error
}

// NotificationHandler serves notification and invitation REST endpoints.
type NotificationHandler struct {
	invites invitationService
	feed    notificationService
	log     *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(invites invitationService, feed notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		invites: invites,
		feed:    feed,
		log:     logger.With("handler", "notifications"),
	}
}

type inviteRequest struct {
	Message string `json:"message"`
}

type notificationResponse struct {
	ID          string    `json:"id"`
	PostingID   *string   `json:"postingId,omitempty"`
	Type        string    `json:"type"`
	Message     string    `json:"message"`
	ActionTaken string    `json:"actionTaken"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"createdAt"`
}

type feedResponse struct {
	Notifications []notificationResponse `json:"notifications"`
	Unread        int                    `json:"unread"`
}

// Invite handles POST /notifications/notify/{candidateId}/{postingId}.
func (h *NotificationHandler) Invite(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context(), domain.UserRoleRecruiter); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	candidateID, err := pathUUID(r, "candidateId")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	postingID, err := pathUUID(r, "postingId")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req inviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.invites.Invite(r.Context(), invitation.InviteInput{
		CandidateID: candidateID,
		PostingID:   postingID,
		Message:     req.Message,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toNotificationResponse(created))
}

// Accept handles PUT /notifications/{id}/accept.
func (h *NotificationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, invitation.DecisionAccept)
}

// Reject handles PUT /notifications/{id}/reject.
func (h *NotificationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, invitation.DecisionReject)
}

func (h *NotificationHandler) respond(w http.ResponseWriter, r *http.Request, decision invitation.Decision) {
	if err := middleware.RequireRole(r.Context(), domain.UserRoleCandidate); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	updated, err := h.invites.Respond(r.Context(), invitation.RespondInput{
		NotificationID: id,
		Decision:       decision,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toNotificationResponse(updated))
}

// ListMine handles GET /notifications/mine.
func (h *NotificationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	feed, err := h.feed.ListMine(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := feedResponse{
		Notifications: make([]notificationResponse, 0, len(feed.Notifications)),
		Unread:        feed.Unread,
	}
	for i := range feed.Notifications {
		resp.Notifications = append(resp.Notifications, toNotificationResponse(&feed.Notifications[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

// MarkRead handles PUT /notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.feed.MarkRead(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toNotificationResponse(n *domain.Notification) notificationResponse {
	resp := notificationResponse{
		ID:          n.ID.String(),
		Type:        n.Type.String(),
		Message:     n.Message,
		ActionTaken: n.ActionTaken.String(),
		Read:        n.Read,
		CreatedAt:   n.CreatedAt,
	}
	if n.PostingID != nil {
		s := n.PostingID.String()
		resp.PostingID = &s
	}
	return resp
}
