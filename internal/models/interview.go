package models

import "time"

// InterviewTemplate is a role-specific, ordered list of interview questions
// plus presentation metadata. Templates are immutable from the practice
// core's point of view; only the admin surface mutates them.
type InterviewTemplate struct {
	ID        string             `gorm:"primaryKey;size:36" json:"id"`
	Role      string             `gorm:"size:255;not null" json:"role"`
	Questions []TemplateQuestion `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	Tips      []TemplateTip      `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"tips,omitempty"`
	// One of DifficultyEasy, DifficultyIntermediate, DifficultyAdvanced.
	Difficulty string    `gorm:"size:20;not null" json:"difficulty"`
	Duration   string    `gorm:"size:50" json:"duration"`
	OrderNum   int       `gorm:"not null;default:0" json:"order_num"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type TemplateQuestion struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	TemplateID string `gorm:"size:36;not null;index" json:"template_id"`
	Text       string `gorm:"type:text;not null" json:"text"`
	OrderNum   int    `gorm:"not null" json:"order_num"`
}

type TemplateTip struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	TemplateID string `gorm:"size:36;not null;index" json:"template_id"`
	Text       string `gorm:"type:text;not null" json:"text"`
	OrderNum   int    `gorm:"not null" json:"order_num"`
}

const (
	DifficultyEasy         = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)
