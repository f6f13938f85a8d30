package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"placement-prep-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResumeService analyzes an uploaded PDF resume with the Gemini
// generateContent REST API and stores the result.
type ResumeService struct {
	db         *gorm.DB
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
}

func NewResumeService(db *gorm.DB, apiKey, model string) *ResumeService {
	return &ResumeService{
		db:         db,
		httpClient: &http.Client{Timeout: 120 * time.Second},
		apiKey:     apiKey,
		model:      model,
		baseURL:    "https://generativelanguage.googleapis.com/v1beta",
	}
}

// SetBaseURL points the service at a different API host. Used by tests.
func (s *ResumeService) SetBaseURL(url string) {
	s.baseURL = url
}

func (s *ResumeService) IsAvailable() bool {
	return s.apiKey != ""
}

const resumePrompt = `Analyze this resume for a student seeking placement opportunities. Provide:
1. Overall score (1-100)
2. Key strengths (3-5 points)
3. Major weaknesses (3-5 points)
4. Specific improvements needed (5-7 actionable points)
5. Detailed analysis covering format, content, skills, experience, and presentation

Format your response as JSON with these keys:
- score: integer (1-100)
- strengths: array of strings
- weaknesses: array of strings
- improvements: array of strings
- analysis: detailed string analysis`

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type resumeVerdict struct {
	Score        int      `json:"score"`
	Strengths    []string `json:"strengths"`
	Weaknesses   []string `json:"weaknesses"`
	Improvements []string `json:"improvements"`
	Analysis     string   `json:"analysis"`
}

// AnalyzeResume sends the PDF bytes to Gemini and persists the verdict.
func (s *ResumeService) AnalyzeResume(filename string, pdf []byte) (*models.ResumeAnalysis, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("resume analysis is not configured")
	}

	raw, err := s.callGemini(pdf)
	if err != nil {
		return nil, err
	}

	verdict := parseResumeVerdict(raw)

	analysis := models.ResumeAnalysis{
		ID:           uuid.NewString(),
		Filename:     filename,
		Analysis:     verdict.Analysis,
		Strengths:    verdict.Strengths,
		Weaknesses:   verdict.Weaknesses,
		Improvements: verdict.Improvements,
		Score:        verdict.Score,
	}
	if err := s.db.Create(&analysis).Error; err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (s *ResumeService) callGemini(pdf []byte) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{InlineData: &geminiInlineData{
					MimeType: "application/pdf",
					Data:     base64.StdEncoding.EncodeToString(pdf),
				}},
				{Text: resumePrompt},
			},
		}},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequest("POST", endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("failed to parse API response: %w", err)
	}
	if geminiResp.Error != nil {
		return "", fmt.Errorf("API error: %s", geminiResp.Error.Message)
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from AI")
	}
	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}

// parseResumeVerdict extracts the structured verdict, degrading to canned
// findings around the raw text when the model ignores the JSON contract.
func parseResumeVerdict(raw string) resumeVerdict {
	content := cleanJSONContent(raw)

	var verdict resumeVerdict
	if err := json.Unmarshal([]byte(content), &verdict); err == nil && verdict.Score > 0 {
		if verdict.Analysis == "" {
			verdict.Analysis = raw
		}
		return verdict
	}

	log.Printf("resume: AI returned unstructured output, wrapping raw text")
	return resumeVerdict{
		Score:        70,
		Strengths:    []string{"Resume uploaded successfully", "Professional appearance", "Good structure"},
		Weaknesses:   []string{"Could be more specific", "Add more details", "Enhance presentation"},
		Improvements: []string{"Add quantifiable results", "Include relevant keywords", "Highlight achievements", "Customize for roles", "Add skills section"},
		Analysis:     raw,
	}
}
