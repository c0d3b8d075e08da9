package model

import (
	uuid "github.com/satori/go.uuid"
)

// Activity ... Append-only log row written by the mutation endpoints
type Activity struct {
	BaseModel
	UserID       uuid.UUID `gorm:"type:VARCHAR(36);not null;index:idx_activities_user_id" json:"userId"`
	ActivityType string    `gorm:"not null" json:"type"`
	Description  string    `json:"description"`
	Amount       float64   `json:"amount"`
	Status       string    `json:"status"`
}
