package services

import (
	"errors"

	"placement-prep-backend/internal/models"

	"gorm.io/gorm"
)

type RoadmapService struct {
	db *gorm.DB
}

func NewRoadmapService(db *gorm.DB) *RoadmapService {
	return &RoadmapService{db: db}
}

func (s *RoadmapService) ListRoadmaps() ([]models.CareerRoadmap, error) {
	var roadmaps []models.CareerRoadmap
	if err := s.db.Order("created_at ASC").Find(&roadmaps).Error; err != nil {
		return nil, err
	}
	return roadmaps, nil
}

func (s *RoadmapService) GetRoadmap(id string) (*models.CareerRoadmap, error) {
	var roadmap models.CareerRoadmap
	if err := s.db.First(&roadmap, "id = ?", id).Error; err != nil {
		return nil, errors.New("roadmap not found")
	}
	return &roadmap, nil
}
