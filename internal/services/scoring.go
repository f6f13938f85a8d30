package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// ScoringService grades a full interview transcript with an OpenAI-compatible
// chat API. Without an API key it falls back to a deterministic heuristic so
// the practice flow keeps working in development.
type ScoringService struct {
	httpClient *http.Client
	apiKey     string
	apiURL     string
	model      string
}

func NewScoringService(apiKey, apiURL, model string) *ScoringService {
	return &ScoringService{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		apiKey:     apiKey,
		apiURL:     apiURL,
		model:      model,
	}
}

func (s *ScoringService) IsAvailable() bool {
	return s.apiKey != ""
}

type TranscriptScore struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const scoringSystemPrompt = `You are an experienced interviewer evaluating a mock interview for a student preparing for placements. You receive the role, the questions asked and the candidate's answers in order. You must respond with ONLY valid JSON (no markdown, no code fences, no explanations) in the following format:

{"score": 75, "feedback": "2-4 sentences of concrete, encouraging feedback"}

Rules:
- "score" is an integer from 0 to 100 judging overall answer quality for the role
- Reward specificity, structure and relevant experience; penalize vague or off-topic answers
- "feedback" must mention at least one strength and one concrete improvement
- Return ONLY the JSON object, nothing else`

// ScoreTranscript grades the ordered question/answer transcript for a role.
func (s *ScoringService) ScoreTranscript(role string, questions, responses []string) (*TranscriptScore, error) {
	if !s.IsAvailable() {
		return s.fallbackScore(responses), nil
	}

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Role: %s\n\n", role)
	for i, q := range questions {
		answer := ""
		if i < len(responses) {
			answer = responses[i]
		}
		fmt.Fprintf(&prompt, "Q%d: %s\nA%d: %s\n\n", i+1, q, i+1, answer)
	}

	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: scoringSystemPrompt},
			{Role: "user", Content: prompt.String()},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", s.apiURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
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

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	if chatResp.Error != nil {
		return nil, fmt.Errorf("API error: %s", chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from AI")
	}

	content := cleanJSONContent(chatResp.Choices[0].Message.Content)

	var score TranscriptScore
	if err := json.Unmarshal([]byte(content), &score); err != nil {
		// The model ignored the JSON contract; keep the session alive
		// with the heuristic rather than failing the submission.
		log.Printf("scoring: AI returned invalid JSON, using fallback: %v", err)
		return s.fallbackScore(responses), nil
	}

	if score.Score < 0 {
		score.Score = 0
	}
	if score.Score > 100 {
		score.Score = 100
	}
	if strings.TrimSpace(score.Feedback) == "" {
		score.Feedback = "Good effort. Add more concrete examples and structure your answers around situation, action and result."
	}
	return &score, nil
}

// fallbackScore rewards answer length up to a cap, mirroring the graceful
// degradation the platform uses elsewhere when the AI is unavailable.
func (s *ScoringService) fallbackScore(responses []string) *TranscriptScore {
	if len(responses) == 0 {
		return &TranscriptScore{Score: 0, Feedback: "No responses were submitted."}
	}

	total := 0
	for _, r := range responses {
		words := len(strings.Fields(r))
		per := 40 + words
		if per > 85 {
			per = 85
		}
		total += per
	}

	return &TranscriptScore{
		Score:    total / len(responses),
		Feedback: "Solid practice run. Your answers carry real content; next time add measurable outcomes and tie each story back to the role you are interviewing for.",
	}
}

func cleanJSONContent(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	}
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	if strings.HasSuffix(content, "```") {
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}
