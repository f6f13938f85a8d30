package handlers

import (
	"net/http"
	"strconv"

	"placement-prep-backend/internal/metrics"
	"placement-prep-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizzes *services.QuizService
}

func NewQuizHandler(quizzes *services.QuizService) *QuizHandler {
	return &QuizHandler{quizzes: quizzes}
}

// ListQuizzes godoc
// @Summary      List all quizzes
// @Tags         quizzes
// @Produce      json
// @Success      200 {array} models.Quiz
// @Router       /api/quizzes [get]
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.quizzes.ListQuizzes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

// GetRandomQuiz godoc
// @Summary      Get a random quiz question
// @Tags         quizzes
// @Produce      json
// @Success      200 {object} models.Quiz
// @Failure      404 {object} ErrorResponse
// @Router       /api/quiz/random [get]
func (h *QuizHandler) GetRandomQuiz(c *gin.Context) {
	quiz, err := h.quizzes.GetRandomQuiz()
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// SubmitAttempt godoc
// @Summary      Submit a quiz answer
// @Tags         quizzes
// @Produce      json
// @Param        quiz_id query string true "Quiz ID"
// @Param        user_answer query int true "0-based option index"
// @Success      200 {object} models.QuizAttempt
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/quiz/attempt [post]
func (h *QuizHandler) SubmitAttempt(c *gin.Context) {
	quizID := c.Query("quiz_id")
	if quizID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "quiz_id is required"})
		return
	}

	userAnswer, err := strconv.Atoi(c.Query("user_answer"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "user_answer must be an integer"})
		return
	}

	attempt, err := h.quizzes.SubmitAttempt(quizID, userAnswer)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	metrics.QuizAttempts.Inc()

	c.JSON(http.StatusOK, attempt)
}
