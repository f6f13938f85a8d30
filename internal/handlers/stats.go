package handlers

import (
	"net/http"

	"placement-prep-backend/internal/models"
	"placement-prep-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatsHandler struct {
	stats *services.StatsService
	db    *gorm.DB
}

func NewStatsHandler(stats *services.StatsService, db *gorm.DB) *StatsHandler {
	return &StatsHandler{stats: stats, db: db}
}

// GetStats godoc
// @Summary      Platform counters
// @Tags         stats
// @Produce      json
// @Success      200 {object} services.PlatformStats
// @Router       /api/stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.stats.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

type StatusCheckRequest struct {
	ClientName string `json:"client_name" binding:"required"`
}

// CreateStatusCheck godoc
// @Summary      Record a status check
// @Tags         stats
// @Accept       json
// @Produce      json
// @Param        request body StatusCheckRequest true "Client name"
// @Success      201 {object} models.StatusCheck
// @Failure      400 {object} ErrorResponse
// @Router       /api/status [post]
func (h *StatsHandler) CreateStatusCheck(c *gin.Context) {
	var req StatusCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	check := models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: req.ClientName,
	}
	if err := h.db.Create(&check).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, check)
}

// ListStatusChecks godoc
// @Summary      List status checks
// @Tags         stats
// @Produce      json
// @Success      200 {array} models.StatusCheck
// @Router       /api/status [get]
func (h *StatsHandler) ListStatusChecks(c *gin.Context) {
	var checks []models.StatusCheck
	if err := h.db.Order("created_at DESC").Limit(1000).Find(&checks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, checks)
}
