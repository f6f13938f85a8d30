package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"placement-prep-backend/internal/models"
	"placement-prep-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
		&models.InterviewTemplate{},
		&models.TemplateQuestion{},
		&models.TemplateTip{},
		&models.PracticeAttempt{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newInterviewRouter(t *testing.T) (*gin.Engine, *services.TemplateService, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	templates := services.NewTemplateService(db)
	// No API key: scoring uses the deterministic heuristic.
	scoring := services.NewScoringService("", "", "")
	stats := services.NewStatsService(db)
	h := NewInterviewHandler(templates, scoring, stats)

	r := gin.New()
	r.GET("/api/mock-interviews", h.ListInterviews)
	r.POST("/api/mock-interview/practice", h.SubmitPractice)
	return r, templates, db
}

func TestListInterviews(t *testing.T) {
	r, templates, _ := newInterviewRouter(t)

	_, err := templates.CreateTemplate(services.TemplateInput{
		Role:      "Software Engineer",
		Questions: []string{"q1", "q2"},
		Tips:      []string{"tip"},
	})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/api/mock-interviews", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Software Engineer")
}

func TestSubmitPracticeScoresAndRecords(t *testing.T) {
	r, templates, db := newInterviewRouter(t)

	created, err := templates.CreateTemplate(services.TemplateInput{
		Role:      "Software Engineer",
		Questions: []string{"q1", "q2"},
	})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/mock-interview/practice?interview_id="+created.ID, PracticeRequest{
		UserResponses: []string{"a detailed first answer", "a detailed second answer"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "score")

	var count int64
	require.NoError(t, db.Model(&models.PracticeAttempt{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSubmitPracticeValidation(t *testing.T) {
	r, templates, _ := newInterviewRouter(t)

	created, err := templates.CreateTemplate(services.TemplateInput{
		Role:      "SE",
		Questions: []string{"q1", "q2"},
	})
	require.NoError(t, err)

	// Missing interview_id.
	w := doJSON(t, r, http.MethodPost, "/api/mock-interview/practice", PracticeRequest{UserResponses: []string{"a"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown template.
	w = doJSON(t, r, http.MethodPost, "/api/mock-interview/practice?interview_id=missing", PracticeRequest{UserResponses: []string{"a", "b"}})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Response count mismatch.
	w = doJSON(t, r, http.MethodPost, "/api/mock-interview/practice?interview_id="+created.ID, PracticeRequest{UserResponses: []string{"only one"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
