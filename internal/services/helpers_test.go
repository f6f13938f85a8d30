package services

import (
	"fmt"
	"testing"
	"time"

	"placement-prep-backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.Admin{},
		&models.InterviewTemplate{},
		&models.TemplateQuestion{},
		&models.TemplateTip{},
		&models.PracticeAttempt{},
		&models.Quiz{},
		&models.QuizAttempt{},
		&models.CareerRoadmap{},
		&models.ResumeAnalysis{},
		&models.StatusCheck{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}
