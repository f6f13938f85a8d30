package handlers

import (
	"net/http"

	"placement-prep-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the authenticated CRUD surface for interview
// templates and quizzes.
type AdminHandler struct {
	templates *services.TemplateService
	quizzes   *services.QuizService
}

func NewAdminHandler(templates *services.TemplateService, quizzes *services.QuizService) *AdminHandler {
	return &AdminHandler{templates: templates, quizzes: quizzes}
}

// CreateTemplate godoc
// @Summary      Create an interview template
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.TemplateInput true "Template"
// @Success      201 {object} services.TemplateResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/admin/interviews [post]
func (h *AdminHandler) CreateTemplate(c *gin.Context) {
	var input services.TemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	template, err := h.templates.CreateTemplate(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, template)
}

// UpdateTemplate godoc
// @Summary      Replace an interview template
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Template ID"
// @Param        request body services.TemplateInput true "Template"
// @Success      200 {object} services.TemplateResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/interviews/{id} [put]
func (h *AdminHandler) UpdateTemplate(c *gin.Context) {
	var input services.TemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	template, err := h.templates.UpdateTemplate(c.Param("id"), input)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, template)
}

// DeleteTemplate godoc
// @Summary      Delete an interview template
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Template ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/interviews/{id} [delete]
func (h *AdminHandler) DeleteTemplate(c *gin.Context) {
	if err := h.templates.DeleteTemplate(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "template deleted"})
}

// CreateQuiz godoc
// @Summary      Create a quiz question
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.QuizInput true "Quiz"
// @Success      201 {object} models.Quiz
// @Failure      400 {object} ErrorResponse
// @Router       /api/admin/quizzes [post]
func (h *AdminHandler) CreateQuiz(c *gin.Context) {
	var input services.QuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	quiz, err := h.quizzes.CreateQuiz(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, quiz)
}

// DeleteQuiz godoc
// @Summary      Delete a quiz question
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Quiz ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/quizzes/{id} [delete]
func (h *AdminHandler) DeleteQuiz(c *gin.Context) {
	if err := h.quizzes.DeleteQuiz(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "quiz deleted"})
}
