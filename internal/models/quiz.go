package models

import "time"

type Quiz struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Question string `gorm:"type:text;not null" json:"question"`
	// Options render in stored order; CorrectAnswer is a 0-based index
	// into them.
	Options       []string  `gorm:"serializer:json;type:text" json:"options"`
	CorrectAnswer int       `gorm:"not null" json:"correct_answer"`
	Explanation   string    `gorm:"type:text" json:"explanation"`
	Category      string    `gorm:"size:100" json:"category"`
	Difficulty    string    `gorm:"size:20" json:"difficulty"`
	CreatedAt     time.Time `json:"created_at"`
}

type QuizAttempt struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	QuizID     string    `gorm:"size:36;not null;index" json:"quiz_id"`
	UserAnswer int       `gorm:"not null" json:"user_answer"`
	IsCorrect  bool      `gorm:"not null" json:"is_correct"`
	CreatedAt  time.Time `json:"timestamp"`
}
