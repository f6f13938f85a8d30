package models

import "time"

type StatusCheck struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	ClientName string    `gorm:"size:255;not null" json:"client_name"`
	CreatedAt  time.Time `json:"timestamp"`
}
