// Package prep is the HTTP+JSON client for the prep platform API the
// practice core consumes: interview templates, transcript scoring and the
// aggregate stats counters.
package prep

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"placement-prep-backend/internal/practice"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		baseURL:    baseURL,
	}
}

// FetchInterviews loads the template list in server order.
func (c *Client) FetchInterviews(ctx context.Context) ([]practice.Template, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/mock-interviews", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var templates []practice.Template
	if err := json.Unmarshal(body, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse interview list: %w", err)
	}
	return templates, nil
}

type practiceRequest struct {
	UserResponses []string `json:"user_responses"`
}

// SubmitPractice sends the full ordered transcript for scoring.
func (c *Client) SubmitPractice(ctx context.Context, templateID string, responses []string) (*practice.Result, error) {
	reqBody, err := json.Marshal(practiceRequest{UserResponses: responses})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transcript: %w", err)
	}

	endpoint := c.baseURL + "/mock-interview/practice?interview_id=" + url.QueryEscape(templateID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var result practice.Result
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse scoring response: %w", err)
	}
	return &result, nil
}

// Stats mirrors the /stats payload. The practice core never writes these;
// the backend increments them as a side effect of successful submissions.
type Stats struct {
	TotalResumeAnalyses   int64 `json:"total_resume_analyses"`
	TotalQuizAttempts     int64 `json:"total_quiz_attempts"`
	TotalQuizzes          int64 `json:"total_quizzes"`
	TotalRoadmaps         int64 `json:"total_roadmaps"`
	TotalInterviews       int64 `json:"total_interviews"`
	TotalPracticeAttempts int64 `json:"total_practice_attempts"`
}

func (c *Client) FetchStats(ctx context.Context) (*Stats, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/stats", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var stats Stats
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, fmt.Errorf("failed to parse stats: %w", err)
	}
	return &stats, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
