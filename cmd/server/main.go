package main

import (
	"context"
	"log"
	"strconv"
	"time"

	"placement-prep-backend/internal/config"
	"placement-prep-backend/internal/database"
	"placement-prep-backend/internal/handlers"
	"placement-prep-backend/internal/middleware"
	"placement-prep-backend/internal/practice"
	"placement-prep-backend/internal/prep"
	"placement-prep-backend/internal/services"
	"placement-prep-backend/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @title           Placement Prep API
// @version         1.0
// @description     Student placement prep platform: mock interview practice, quizzes, roadmaps and resume analysis
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)
	database.Seed(db)

	hub := ws.NewHub()

	authService := services.NewAuthService(db, cfg.JWTSecret)
	templateService := services.NewTemplateService(db)
	scoringService := services.NewScoringService(cfg.LLMAPIKey, cfg.LLMAPIURL, cfg.LLMModel)
	quizService := services.NewQuizService(db)
	roadmapService := services.NewRoadmapService(db)
	resumeService := services.NewResumeService(db, cfg.GeminiAPIKey, cfg.GeminiModel)
	statsService := services.NewStatsService(db)

	// The practice core talks to the prep API over HTTP, even when that
	// API is this same process.
	prepClient := prep.NewClient(cfg.PrepAPIURL)
	catalog := practice.NewCatalog(prepClient)

	ttlMin, _ := strconv.Atoi(cfg.SessionTTLMinutes)
	if ttlMin <= 0 {
		ttlMin = 60
	}
	manager := practice.NewManager(prepClient, time.Duration(ttlMin)*time.Minute)
	stop := make(chan struct{})
	defer close(stop)
	manager.StartSweeper(5*time.Minute, stop)

	authHandler := handlers.NewAuthHandler(authService)
	interviewHandler := handlers.NewInterviewHandler(templateService, scoringService, statsService)
	practiceHandler := handlers.NewPracticeHandler(catalog, manager, hub)
	quizHandler := handlers.NewQuizHandler(quizService)
	roadmapHandler := handlers.NewRoadmapHandler(roadmapService)
	resumeHandler := handlers.NewResumeHandler(resumeService)
	statsHandler := handlers.NewStatsHandler(statsService, db)
	adminHandler := handlers.NewAdminHandler(templateService, quizService)
	wsHandler := handlers.NewWSHandler(hub, manager)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ws/practice/:id", wsHandler.HandleWebSocket)

	api := r.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{"message": "AI-Powered Student Placement Prep Platform"})
		})

		api.GET("/mock-interviews", interviewHandler.ListInterviews)
		api.POST("/mock-interview/practice", interviewHandler.SubmitPractice)

		practiceGroup := api.Group("/practice")
		{
			practiceGroup.GET("/catalog", practiceHandler.ListCatalog)
			practiceGroup.POST("/sessions", practiceHandler.StartSession)
			practiceGroup.GET("/sessions/:id", practiceHandler.GetSession)
			practiceGroup.PUT("/sessions/:id/draft", practiceHandler.UpdateDraft)
			practiceGroup.POST("/sessions/:id/answer", practiceHandler.SubmitAnswer)
			practiceGroup.GET("/sessions/:id/result", practiceHandler.GetResult)
			practiceGroup.POST("/sessions/:id/retry", practiceHandler.Retry)
			practiceGroup.POST("/sessions/:id/reselect", practiceHandler.Reselect)
			practiceGroup.DELETE("/sessions/:id", practiceHandler.CancelSession)
		}

		api.GET("/quizzes", quizHandler.ListQuizzes)
		api.GET("/quiz/random", quizHandler.GetRandomQuiz)
		api.POST("/quiz/attempt", quizHandler.SubmitAttempt)

		api.GET("/roadmaps", roadmapHandler.ListRoadmaps)
		api.GET("/roadmap/:id", roadmapHandler.GetRoadmap)

		api.POST("/analyze-resume", resumeHandler.AnalyzeResume)

		api.GET("/stats", statsHandler.GetStats)
		api.POST("/status", statsHandler.CreateStatusCheck)
		api.GET("/status", statsHandler.ListStatusChecks)

		admin := api.Group("/admin")
		{
			admin.POST("/auth/register", authHandler.Register)
			admin.POST("/auth/login", authHandler.Login)

			protected := admin.Group("")
			protected.Use(middleware.JWTAuth(authService))
			{
				protected.POST("/interviews", adminHandler.CreateTemplate)
				protected.PUT("/interviews/:id", adminHandler.UpdateTemplate)
				protected.DELETE("/interviews/:id", adminHandler.DeleteTemplate)
				protected.POST("/quizzes", adminHandler.CreateQuiz)
				protected.DELETE("/quizzes/:id", adminHandler.DeleteQuiz)
			}
		}
	}

	// Warm the catalog once the server is accepting requests; a failed
	// load falls back to the lazy load on first use.
	go func() {
		time.Sleep(time.Second)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := catalog.Load(ctx); err != nil {
			log.Printf("catalog warm-up failed: %v", err)
		}
	}()

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
