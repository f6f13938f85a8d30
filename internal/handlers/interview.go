package handlers

import (
	"log"
	"net/http"

	"placement-prep-backend/internal/metrics"
	"placement-prep-backend/internal/models"
	"placement-prep-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InterviewHandler serves the scoring collaborator side of the mock
// interview flow: the template list and the transcript scoring endpoint.
type InterviewHandler struct {
	templates *services.TemplateService
	scoring   *services.ScoringService
	stats     *services.StatsService
}

func NewInterviewHandler(templates *services.TemplateService, scoring *services.ScoringService, stats *services.StatsService) *InterviewHandler {
	return &InterviewHandler{templates: templates, scoring: scoring, stats: stats}
}

// ListInterviews godoc
// @Summary      List interview templates
// @Description  All mock interview templates in catalog order
// @Tags         interviews
// @Produce      json
// @Success      200 {array} services.TemplateResponse
// @Router       /api/mock-interviews [get]
func (h *InterviewHandler) ListInterviews(c *gin.Context) {
	templates, err := h.templates.ListTemplates()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, templates)
}

type PracticeRequest struct {
	UserResponses []string `json:"user_responses" binding:"required"`
}

type PracticeResponse struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// SubmitPractice godoc
// @Summary      Score a mock interview transcript
// @Description  Accepts the full ordered response list for a template and returns score and feedback
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        interview_id query string true "Template ID"
// @Param        request body PracticeRequest true "Ordered responses"
// @Success      200 {object} PracticeResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/mock-interview/practice [post]
func (h *InterviewHandler) SubmitPractice(c *gin.Context) {
	templateID := c.Query("interview_id")
	if templateID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "interview_id is required"})
		return
	}

	var req PracticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	template, err := h.templates.GetTemplate(templateID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	if len(req.UserResponses) != len(template.Questions) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "response count must match question count"})
		return
	}

	score, err := h.scoring.ScoreTranscript(template.Role, template.Questions, req.UserResponses)
	if err != nil {
		metrics.PracticeSubmissions.WithLabelValues("failed").Inc()
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}

	// The attempt row is the stats side effect of a successful scoring.
	attempt := &models.PracticeAttempt{
		ID:            uuid.NewString(),
		TemplateID:    template.ID,
		Role:          template.Role,
		ResponseCount: len(req.UserResponses),
		Score:         score.Score,
		Feedback:      score.Feedback,
	}
	if err := h.stats.RecordPracticeAttempt(attempt); err != nil {
		log.Printf("interview: failed to record practice attempt: %v", err)
	}
	metrics.PracticeSubmissions.WithLabelValues("scored").Inc()

	c.JSON(http.StatusOK, PracticeResponse{Score: score.Score, Feedback: score.Feedback})
}
