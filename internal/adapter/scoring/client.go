package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/skillsync/skillsync-backend/internal/domain"
)

// Client calls a remote scoring backend over HTTP.
//
// There is no retry policy: a timeout or non-success response surfaces as
// domain.ErrUnavailable and the caller decides whether to try again. The
// score cache never persists anything on a failed call.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for the scoring backend at baseURL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "scoring"),
	}
}

type scoreRequest struct {
	CandidateSkills     []skillPayload `json:"candidateSkills"`
	PostingRequirements []reqPayload   `json:"postingRequirements"`
}

type skillPayload struct {
	SkillName   string `json:"skillName"`
	Proficiency int    `json:"proficiency"`
}

type reqPayload struct {
	SkillName string `json:"skillName"`
	Weight    int    `json:"weight"`
}

// Score sends the candidate's skills and the posting's requirements to the
// scoring backend and returns its result.
func (c *Client) Score(ctx context.Context, skills []domain.CandidateSkill, reqs []domain.PostingRequirement) (*Result, error) {
	payload := scoreRequest{
		CandidateSkills:     make([]skillPayload, 0, len(skills)),
		PostingRequirements: make([]reqPayload, 0, len(reqs)),
	}
	for _, s := range skills {
		payload.CandidateSkills = append(payload.CandidateSkills, skillPayload{
			SkillName:   s.SkillName,
			Proficiency: s.Proficiency,
		})
	}
	for _, r := range reqs {
		payload.PostingRequirements = append(payload.PostingRequirements, reqPayload{
			SkillName: r.SkillName,
			Weight:    r.Weight,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("scoring: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/calculate-score", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("scoring: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.DebugContext(ctx, "scoring request",
		slog.Int("skills", len(skills)),
		slog.Int("requirements", len(reqs)),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "scoring request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("scoring: request failed: %w", domain.ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.ErrorContext(ctx, "scoring backend error", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("scoring: unexpected status %d: %w", resp.StatusCode, domain.ErrUnavailable)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("scoring: read body: %w", domain.ErrUnavailable)
	}

	var result Result
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("scoring: decode json: %w", domain.ErrUnavailable)
	}

	if result.Score < 0 || result.Score > 100 {
		return nil, fmt.Errorf("scoring: score %d out of range: %w", result.Score, domain.ErrUnavailable)
	}

	return &result, nil
}
