package handlers

import (
	"errors"
	"net/http"

	"placement-prep-backend/internal/metrics"
	"placement-prep-backend/internal/practice"
	"placement-prep-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

// PracticeHandler drives the interview practice state machine over HTTP.
// Each session id maps to one controller; all state lives in memory and
// dies with the process.
type PracticeHandler struct {
	catalog *practice.Catalog
	manager *practice.Manager
	hub     *ws.Hub
}

func NewPracticeHandler(catalog *practice.Catalog, manager *practice.Manager, hub *ws.Hub) *PracticeHandler {
	return &PracticeHandler{catalog: catalog, manager: manager, hub: hub}
}

// ensureCatalog lazily loads the template list so the selection view works
// even when the boot-time load raced the server coming up.
func (h *PracticeHandler) ensureCatalog(c *gin.Context) error {
	if len(h.catalog.List()) > 0 {
		return nil
	}
	return h.catalog.Load(c.Request.Context())
}

// ListCatalog godoc
// @Summary      List practice catalog
// @Description  Interview templates available for a practice session
// @Tags         practice
// @Produce      json
// @Success      200 {array} practice.Template
// @Router       /api/practice/catalog [get]
func (h *PracticeHandler) ListCatalog(c *gin.Context) {
	if err := h.ensureCatalog(c); err != nil {
		// Catalog unavailability is not fatal: the client renders an
		// empty selection screen.
		c.JSON(http.StatusOK, []practice.Template{})
		return
	}
	c.JSON(http.StatusOK, h.catalog.List())
}

type StartSessionRequest struct {
	InterviewID string `json:"interview_id" binding:"required"`
}

type SessionResponse struct {
	SessionID string             `json:"session_id"`
	State     practice.StateView `json:"state"`
}

// StartSession godoc
// @Summary      Start a practice session
// @Description  Creates a session for a template and serves the first question
// @Tags         practice
// @Accept       json
// @Produce      json
// @Param        request body StartSessionRequest true "Template to practice"
// @Success      201 {object} SessionResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/practice/sessions [post]
func (h *PracticeHandler) StartSession(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.ensureCatalog(c); err != nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
		return
	}

	template, err := h.catalog.Get(req.InterviewID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	var id string
	var controller *practice.Controller
	id, controller = h.manager.Create(func(view practice.StateView) {
		// id is assigned before Start fires the first notification.
		h.hub.Broadcast(id, ws.WSMessage{Type: "state", Data: view})
	})

	if err := controller.Start(template); err != nil {
		h.manager.Remove(id)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	metrics.PracticeSessionsStarted.Inc()

	c.JSON(http.StatusCreated, SessionResponse{SessionID: id, State: controller.View()})
}

// GetSession godoc
// @Summary      Get practice session state
// @Tags         practice
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} SessionResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/practice/sessions/{id} [get]
func (h *PracticeHandler) GetSession(c *gin.Context) {
	controller, err := h.manager.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, SessionResponse{SessionID: c.Param("id"), State: controller.View()})
}

type DraftRequest struct {
	Text string `json:"text"`
}

// UpdateDraft godoc
// @Summary      Replace the current draft
// @Tags         practice
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body DraftRequest true "Draft text"
// @Success      200 {object} SessionResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/practice/sessions/{id}/draft [put]
func (h *PracticeHandler) UpdateDraft(c *gin.Context) {
	controller, err := h.manager.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	var req DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := controller.SetDraft(req.Text); err != nil {
		c.JSON(practiceErrorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, SessionResponse{SessionID: c.Param("id"), State: controller.View()})
}

type AnswerRequest struct {
	Text *string `json:"text"`
}

// SubmitAnswer godoc
// @Summary      Commit the current answer
// @Description  Commits the draft and advances; the last answer triggers scoring and returns 202
// @Tags         practice
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body AnswerRequest false "Optional draft replacement"
// @Success      200 {object} SessionResponse
// @Success      202 {object} SessionResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /api/practice/sessions/{id}/answer [post]
func (h *PracticeHandler) SubmitAnswer(c *gin.Context) {
	controller, err := h.manager.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	var req AnswerRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}

	if req.Text != nil {
		if err := controller.SetDraft(*req.Text); err != nil {
			c.JSON(practiceErrorStatus(err), ErrorResponse{Error: err.Error()})
			return
		}
	}

	if err := controller.SubmitCurrentAnswer(); err != nil {
		c.JSON(practiceErrorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	view := controller.View()
	status := http.StatusOK
	if view.Mode == practice.ModeSubmitting {
		// Scoring resolves asynchronously; poll or watch the websocket.
		status = http.StatusAccepted
	}
	c.JSON(status, SessionResponse{SessionID: c.Param("id"), State: view})
}

// GetResult godoc
// @Summary      Get the rendered result view
// @Tags         practice
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} practice.ResultView
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/practice/sessions/{id}/result [get]
func (h *PracticeHandler) GetResult(c *gin.Context) {
	controller, err := h.manager.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	view, err := practice.NewPresenter(controller).Render()
	if err != nil {
		c.JSON(http.StatusConflict, ErrorResponse{Error: "session has no result yet"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// Retry godoc
// @Summary      Practice the same template again
// @Tags         practice
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} SessionResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/practice/sessions/{id}/retry [post]
func (h *PracticeHandler) Retry(c *gin.Context) {
	controller, err := h.manager.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	if err := controller.Retry(); err != nil {
		c.JSON(practiceErrorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, SessionResponse{SessionID: c.Param("id"), State: controller.View()})
}

// Reselect godoc
// @Summary      Return to role selection
// @Description  Discards the session and result; the session slot survives for a new start
// @Tags         practice
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} SessionResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/practice/sessions/{id}/reselect [post]
func (h *PracticeHandler) Reselect(c *gin.Context) {
	controller, err := h.manager.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	controller.Reselect()
	c.JSON(http.StatusOK, SessionResponse{SessionID: c.Param("id"), State: controller.View()})
}

// CancelSession godoc
// @Summary      Cancel and forget a practice session
// @Tags         practice
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} MessageResponse
// @Router       /api/practice/sessions/{id} [delete]
func (h *PracticeHandler) CancelSession(c *gin.Context) {
	h.manager.Remove(c.Param("id"))
	c.JSON(http.StatusOK, MessageResponse{Message: "session cancelled"})
}

// practiceErrorStatus maps the practice error taxonomy onto HTTP statuses.
// Validation stays on the question (422), gating conflicts are 409.
func practiceErrorStatus(err error) int {
	switch {
	case errors.Is(err, practice.ErrEmptyResponse):
		return http.StatusUnprocessableEntity
	case errors.Is(err, practice.ErrSubmissionInFlight),
		errors.Is(err, practice.ErrNoActiveSession),
		errors.Is(err, practice.ErrSessionActive):
		return http.StatusConflict
	case errors.Is(err, practice.ErrUnknownTemplate):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
