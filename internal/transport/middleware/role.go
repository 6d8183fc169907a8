package middleware

import (
	"context"

	"github.com/skillsync/skillsync-backend/internal/domain"
	"github.com/skillsync/skillsync-backend/pkg/ctxutil"
)

// RequireRole returns domain.ErrForbidden if the context user does not
// carry the given role. Use inside REST handlers, not as HTTP middleware.
func RequireRole(ctx context.Context, role domain.UserRole) error {
	got, ok := ctxutil.UserRoleFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if got != role.String() {
		return domain.ErrForbidden
	}
	return nil
}
