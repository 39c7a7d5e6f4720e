package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a community post with one stored image.
type Post struct {
	ID           string    `json:"post_id" gorm:"type:char(36);primaryKey"`
	Title        string    `json:"title" gorm:"size:255;not null"`
	Organization string    `json:"organization" gorm:"size:255;not null;index"`
	Description  string    `json:"description" gorm:"type:text"`
	ImageURL     string    `json:"image_url" gorm:"size:512"`
	ImageKey     string    `json:"image_key" gorm:"size:255"`
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
}

// BeforeCreate sets the ID before creating the record.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
