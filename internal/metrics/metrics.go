package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PracticeSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prep_practice_submissions_total",
		Help: "Scored mock-interview transcripts by outcome.",
	}, []string{"outcome"})

	PracticeSessionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "prep_practice_sessions_started_total",
		Help: "Practice sessions started.",
	})

	QuizAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "prep_quiz_attempts_total",
		Help: "Quiz answers submitted.",
	})

	ResumeAnalyses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "prep_resume_analyses_total",
		Help: "Resumes analyzed.",
	})
)
