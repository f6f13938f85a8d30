package models

import "time"

type CareerRoadmap struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Role        string    `gorm:"size:255;not null" json:"role"`
	Description string    `gorm:"type:text" json:"description"`
	RoadmapURL  string    `gorm:"size:500" json:"roadmap_url"`
	Skills      []string  `gorm:"serializer:json;type:text" json:"skills"`
	Timeline    string    `gorm:"size:50" json:"timeline"`
	Difficulty  string    `gorm:"size:20" json:"difficulty"`
	CreatedAt   time.Time `json:"created_at"`
}
