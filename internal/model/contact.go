package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmergencyContact is a person or service the public can reach during a flood.
type EmergencyContact struct {
	ID        string    `json:"contact_id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Role      string    `json:"role" gorm:"size:255"`
	Phone     string    `json:"phone" gorm:"size:50"`
	Email     string    `json:"email" gorm:"size:255"`
	Region    string    `json:"region" gorm:"size:255;index"`
	Active    bool      `json:"is_active" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
}

// BeforeCreate sets the ID before creating the record.
func (c *EmergencyContact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// TableName returns the table name.
func (EmergencyContact) TableName() string {
	return "emergency_contacts"
}
