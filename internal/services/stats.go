package services

import (
	"placement-prep-backend/internal/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type PlatformStats struct {
	TotalResumeAnalyses   int64 `json:"total_resume_analyses"`
	TotalQuizAttempts     int64 `json:"total_quiz_attempts"`
	TotalQuizzes          int64 `json:"total_quizzes"`
	TotalRoadmaps         int64 `json:"total_roadmaps"`
	TotalInterviews       int64 `json:"total_interviews"`
	TotalPracticeAttempts int64 `json:"total_practice_attempts"`
}

// GetStats aggregates the platform counters. Practice attempt rows are the
// only counter the interview flow feeds, and only the practice endpoint
// writes them.
func (s *StatsService) GetStats() (*PlatformStats, error) {
	stats := &PlatformStats{}

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.ResumeAnalysis{}, &stats.TotalResumeAnalyses},
		{&models.QuizAttempt{}, &stats.TotalQuizAttempts},
		{&models.Quiz{}, &stats.TotalQuizzes},
		{&models.CareerRoadmap{}, &stats.TotalRoadmaps},
		{&models.InterviewTemplate{}, &stats.TotalInterviews},
		{&models.PracticeAttempt{}, &stats.TotalPracticeAttempts},
	}
	for _, c := range counts {
		if err := s.db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return stats, nil
}

// RecordPracticeAttempt persists one scored transcript for the counters.
func (s *StatsService) RecordPracticeAttempt(attempt *models.PracticeAttempt) error {
	return s.db.Create(attempt).Error
}
