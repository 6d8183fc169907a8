package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/domain"
	"github.com/skillsync/skillsync-backend/pkg/ctxutil"
)

type tokenValidatorMock struct {
	ValidateAccessTokenFunc func(token string) (uuid.UUID, string, error)
}

func (m *tokenValidatorMock) ValidateAccessToken(token string) (uuid.UUID, string, error) {
	return m.ValidateAccessTokenFunc(token)
}

func TestAuth_ValidToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	validator := &tokenValidatorMock{
		ValidateAccessTokenFunc: func(token string) (uuid.UUID, string, error) {
			if token != "good-token" {
				t.Errorf("token = %q, want good-token", token)
			}
			return userID, "CANDIDATE", nil
		},
	}

	var gotID uuid.UUID
	var gotRole string
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = ctxutil.UserIDFromCtx(r.Context())
		gotRole, _ = ctxutil.UserRoleFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotID != userID {
		t.Errorf("user id = %s, want %s", gotID, userID)
	}
	if gotRole != "CANDIDATE" {
		t.Errorf("role = %q, want CANDIDATE", gotRole)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	t.Parallel()

	validator := &tokenValidatorMock{
		ValidateAccessTokenFunc: func(token string) (uuid.UUID, string, error) {
			return uuid.Nil, "", errors.New("bad token")
		},
	}

	called := false
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if called {
		t.Error("handler must not run on invalid token")
	}
}

func TestAuth_NoTokenPassesAnonymous(t *testing.T) {
	t.Parallel()

	validator := &tokenValidatorMock{
		ValidateAccessTokenFunc: func(token string) (uuid.UUID, string, error) {
			t.Fatal("validator must not be called without a token")
			return uuid.Nil, "", nil
		},
	}

	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
			t.Error("anonymous request must carry no user id")
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestAuth_MalformedHeaderIsAnonymous(t *testing.T) {
	t.Parallel()

	validator := &tokenValidatorMock{
		ValidateAccessTokenFunc: func(token string) (uuid.UUID, string, error) {
			t.Fatal("validator must not be called for a non-Bearer header")
			return uuid.Nil, "", nil
		},
	}

	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	candidateCtx := ctxutil.WithUserRole(context.Background(), "CANDIDATE")

	if err := RequireRole(candidateCtx, domain.UserRoleCandidate); err != nil {
		t.Errorf("matching role: unexpected error %v", err)
	}
	if err := RequireRole(candidateCtx, domain.UserRoleRecruiter); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("wrong role: expected ErrForbidden, got %v", err)
	}
	if err := RequireRole(context.Background(), domain.UserRoleCandidate); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("no role: expected ErrUnauthorized, got %v", err)
	}
}
