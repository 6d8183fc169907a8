package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/skillsync/skillsync-backend/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_Score_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calculate-score" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}

		var req scoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.CandidateSkills) != 1 || req.CandidateSkills[0].SkillName != "python" {
			t.Errorf("unexpected candidate skills: %+v", req.CandidateSkills)
		}
		if len(req.PostingRequirements) != 2 {
			t.Errorf("unexpected requirements: %+v", req.PostingRequirements)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"score": 48,
			"breakdown": [],
			"gaps": [{"skillName": "node.js", "currentProficiency": 0, "requiredWeight": 4}]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, newTestLogger())
	result, err := c.Score(context.Background(),
		[]domain.CandidateSkill{{SkillName: "python", Proficiency: 4}},
		[]domain.PostingRequirement{
			{SkillName: "python", Weight: 5},
			{SkillName: "node.js", Weight: 4},
		},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score != 48 {
		t.Errorf("Score = %d, want 48", result.Score)
	}
	if len(result.Gaps) != 1 || result.Gaps[0].SkillName != "node.js" {
		t.Errorf("Gaps = %+v", result.Gaps)
	}
}

func TestClient_Score_BackendError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, newTestLogger())
	_, err := c.Score(context.Background(), nil, nil)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestClient_Score_ConnectionRefused(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, time.Second, newTestLogger())
	_, err := c.Score(context.Background(), nil, nil)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestClient_Score_NoRetry(t *testing.T) {
	t.Parallel()

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, newTestLogger())
	_, err := c.Score(context.Background(), nil, nil)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if calls != 1 {
		t.Errorf("backend called %d times, want exactly 1", calls)
	}
}

func TestClient_Score_MalformedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, newTestLogger())
	_, err := c.Score(context.Background(), nil, nil)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestClient_Score_OutOfRangeScore(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"score": 250}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, newTestLogger())
	_, err := c.Score(context.Background(), nil, nil)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
