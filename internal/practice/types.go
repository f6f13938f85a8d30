package practice

import "context"

// Template is the practice core's view of an interview template, exactly the
// shape the prep API serves. The core never owns template data; it holds
// read-only copies fetched through a CatalogSource.
type Template struct {
	ID         string   `json:"id"`
	Role       string   `json:"role"`
	Questions  []string `json:"questions"`
	Tips       []string `json:"tips"`
	Difficulty string   `json:"difficulty"`
	Duration   string   `json:"duration"`
}

// Result is a scored transcript as returned by the scoring collaborator.
// The score scale is the collaborator's; the core treats it as opaque.
type Result struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// CatalogSource fetches the template list from the prep API.
type CatalogSource interface {
	FetchInterviews(ctx context.Context) ([]Template, error)
}

// Scorer submits a full transcript for scoring.
type Scorer interface {
	SubmitPractice(ctx context.Context, templateID string, responses []string) (*Result, error)
}
