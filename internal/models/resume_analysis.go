package models

import "time"

type ResumeAnalysis struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Filename     string    `gorm:"size:255;not null" json:"filename"`
	Analysis     string    `gorm:"type:text" json:"analysis"`
	Strengths    []string  `gorm:"serializer:json;type:text" json:"strengths"`
	Weaknesses   []string  `gorm:"serializer:json;type:text" json:"weaknesses"`
	Improvements []string  `gorm:"serializer:json;type:text" json:"improvements"`
	Score        int       `gorm:"not null" json:"score"`
	CreatedAt    time.Time `json:"timestamp"`
}
