package models

import (
	"time"
)

// Experience is a work-history entry. Description holds the bullet points
// newline-joined; the DTO layer exposes them as an array.
type Experience struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Company     string     `gorm:"type:varchar(255);not null" json:"company"`
	Location    string     `gorm:"type:varchar(255)" json:"location,omitempty"`
	StartDate   time.Time  `gorm:"not null;index" json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	IsCurrent   bool       `gorm:"not null;default:false" json:"is_current"`
	Description string     `gorm:"type:text;not null" json:"-"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
