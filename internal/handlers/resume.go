package handlers

import (
	"io"
	"net/http"
	"strings"

	"placement-prep-backend/internal/metrics"
	"placement-prep-backend/internal/services"

	"github.com/gin-gonic/gin"
)

const maxResumeSize = 10 << 20 // 10 MiB

type ResumeHandler struct {
	resumes *services.ResumeService
}

func NewResumeHandler(resumes *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumes: resumes}
}

// AnalyzeResume godoc
// @Summary      Analyze an uploaded resume
// @Description  Accepts a PDF and returns AI feedback with a score
// @Tags         resume
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "PDF resume"
// @Success      200 {object} models.ResumeAnalysis
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/analyze-resume [post]
func (h *ResumeHandler) AnalyzeResume(c *gin.Context) {
	if !h.resumes.IsAvailable() {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Gemini API key not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file is required"})
		return
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Only PDF files are supported"})
		return
	}
	if fileHeader.Size > maxResumeSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	defer file.Close()

	pdf, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	analysis, err := h.resumes.AnalyzeResume(fileHeader.Filename, pdf)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Error analyzing resume: " + err.Error()})
		return
	}
	metrics.ResumeAnalyses.Inc()

	c.JSON(http.StatusOK, analysis)
}
