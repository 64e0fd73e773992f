package models

import (
	"time"
)

// Skill is a single technology or competency, unique by name
// (case-insensitively, enforced at the service layer).
type Skill struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Category  string    `gorm:"type:varchar(255);not null;index" json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
