package models

import "time"

// PracticeAttempt records one scored mock-interview transcript. Rows are
// written by the practice endpoint as a side effect of successful scoring;
// nothing else mutates them. They feed the /stats counters.
type PracticeAttempt struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	TemplateID    string    `gorm:"size:36;not null;index" json:"template_id"`
	Role          string    `gorm:"size:255;not null" json:"role"`
	ResponseCount int       `gorm:"not null" json:"response_count"`
	Score         int       `gorm:"not null" json:"score"`
	Feedback      string    `gorm:"type:text" json:"feedback"`
	CreatedAt     time.Time `json:"created_at"`
}
