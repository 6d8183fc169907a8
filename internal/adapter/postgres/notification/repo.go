// Package notification implements the Notification repository using
// PostgreSQL. Invitations are notifications of type INVITE.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/skillsync/skillsync-backend/internal/adapter/postgres"
	"github.com/skillsync/skillsync-backend/internal/domain"
)

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const notifColumns = `id, user_id, posting_id, type, message, action_taken, read, created_at`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getByIDSQL = `
SELECT ` + notifColumns + `
FROM notifications
WHERE id = $1`

// GetByID returns a notification by primary key, regardless of owner.
// Ownership is the service layer's call to make (it distinguishes 404 from 403).
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, id)
	n, err := scanNotification(row)
	if err != nil {
		return nil, postgres.MapError(err, "notification", id)
	}

	return n, nil
}

const findInviteSQL = `
SELECT ` + notifColumns + `
FROM notifications
WHERE user_id = $1 AND posting_id = $2 AND type = 'INVITE'
LIMIT 1`

// FindInvite returns the INVITE notification for a (user, posting) pair if
// one exists, in any action state. Returns domain.ErrNotFound otherwise.
// The at-most-one-invite rule is enforced by callers checking this first.
func (r *Repo) FindInvite(ctx context.Context, userID, postingID uuid.UUID) (*domain.Notification, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, findInviteSQL, userID, postingID)
	n, err := scanNotification(row)
	if err != nil {
		return nil, postgres.MapError(err, "notification", userID)
	}

	return n, nil
}

const listByUserSQL = `
SELECT ` + notifColumns + `
FROM notifications
WHERE user_id = $1
ORDER BY created_at DESC`

// ListByUser returns all notifications for a user, newest first, plus the
// unread count. Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Notification, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	result, err := scanNotifications(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}

	unread := 0
	for i := range result {
		if !result[i].Read {
			unread++
		}
	}

	return result, unread, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO notifications (user_id, posting_id, type, message, action_taken, read)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + notifColumns

// Create inserts a new notification and returns the persisted row.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		n.UserID, n.PostingID, n.Type, n.Message, n.ActionTaken, n.Read)

	created, err := scanNotification(row)
	if err != nil {
		return nil, postgres.MapError(err, "notification", n.UserID)
	}

	return created, nil
}

const markReadSQL = `UPDATE notifications SET read = true WHERE id = $1`

// MarkRead flags a notification as read. Idempotent.
func (r *Repo) MarkRead(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, markReadSQL, id)
	if err != nil {
		return postgres.MapError(err, "notification", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

const setActionSQL = `
UPDATE notifications
SET action_taken = $2, read = true
WHERE id = $1 AND action_taken = 'NONE'`

// SetAction records the candidate's decision on an invitation and marks it
// read. The WHERE action_taken = 'NONE' guard makes the transition
// exactly-once even under concurrent responses: the loser sees
// domain.ErrConflict.
func (r *Repo) SetAction(ctx context.Context, id uuid.UUID, action domain.InviteAction) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setActionSQL, id, action)
	if err != nil {
		return postgres.MapError(err, "notification", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrConflict)
	}

	return nil
}

const deleteByUserSQL = `DELETE FROM notifications WHERE user_id = $1`

const deleteByPostingsSQL = `DELETE FROM notifications WHERE posting_id = ANY($1::uuid[])`

// DeleteByUser removes all notifications addressed to a user.
// Part of the explicit account-deletion cascade.
func (r *Repo) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteByUserSQL, userID); err != nil {
		return postgres.MapError(err, "notification", userID)
	}

	return nil
}

// DeleteByPostings removes all notifications referencing any of the given
// postings. Part of the explicit account-deletion cascade.
func (r *Repo) DeleteByPostings(ctx context.Context, postingIDs []uuid.UUID) error {
	if len(postingIDs) == 0 {
		return nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteByPostingsSQL, postingIDs); err != nil {
		return postgres.MapError(err, "notification", uuid.Nil)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var n domain.Notification
	err := row.Scan(&n.ID, &n.UserID, &n.PostingID, &n.Type, &n.Message,
		&n.ActionTaken, &n.Read, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func scanNotifications(rows pgx.Rows) ([]domain.Notification, error) {
	var result []domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Notification{}
	}

	return result, nil
}
