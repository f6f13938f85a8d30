package handlers

import (
	"net/http"

	"placement-prep-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type RoadmapHandler struct {
	roadmaps *services.RoadmapService
}

func NewRoadmapHandler(roadmaps *services.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{roadmaps: roadmaps}
}

// ListRoadmaps godoc
// @Summary      List career roadmaps
// @Tags         roadmaps
// @Produce      json
// @Success      200 {array} models.CareerRoadmap
// @Router       /api/roadmaps [get]
func (h *RoadmapHandler) ListRoadmaps(c *gin.Context) {
	roadmaps, err := h.roadmaps.ListRoadmaps()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, roadmaps)
}

// GetRoadmap godoc
// @Summary      Get roadmap details
// @Tags         roadmaps
// @Produce      json
// @Param        id path string true "Roadmap ID"
// @Success      200 {object} models.CareerRoadmap
// @Failure      404 {object} ErrorResponse
// @Router       /api/roadmap/{id} [get]
func (h *RoadmapHandler) GetRoadmap(c *gin.Context) {
	roadmap, err := h.roadmaps.GetRoadmap(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, roadmap)
}
