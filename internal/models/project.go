package models

import (
	"time"
)

// Project is a portfolio entry that owns exactly one uploaded image.
//
// IsDeleted is a plain flag rather than gorm.DeletedAt: soft-delete
// filtering must be an explicit repository parameter, visible at every
// call site, not a schema-level hook.
type Project struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	ImageURL     string    `gorm:"type:varchar(512);not null" json:"image_url"`
	Tags         string    `gorm:"type:text" json:"-"`
	GithubLink   string    `gorm:"type:varchar(512)" json:"github_link,omitempty"`
	LiveDemoLink string    `gorm:"type:varchar(512)" json:"live_demo_link,omitempty"`
	IsDeleted    bool      `gorm:"not null;default:false;index" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
