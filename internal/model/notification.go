package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Severity grades a flood notification.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// SeverityOrder lists severities from most to least severe.
var SeverityOrder = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// Rank returns 4 for critical down to 1 for low, and 0 for anything else.
func (s Severity) Rank() int {
	for i, v := range SeverityOrder {
		if s == v {
			return len(SeverityOrder) - i
		}
	}
	return 0
}

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool {
	return s.Rank() > 0
}

// Notification is a flood or hazard alert.
type Notification struct {
	ID              string    `json:"notification_id" gorm:"type:char(36);primaryKey"`
	Title           string    `json:"title" gorm:"size:255;not null"`
	Message         string    `json:"message" gorm:"type:text"`
	Severity        Severity  `json:"severity" gorm:"type:varchar(20);not null;index"`
	AffectedRegions []string  `json:"affected_regions" gorm:"type:json;serializer:json"`
	Active          bool      `json:"is_active" gorm:"index"`
	CreatedBy       string    `json:"created_by" gorm:"size:36"`
	CreatedAt       time.Time `json:"created_at" gorm:"index"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
}

// BeforeCreate sets the ID before creating the record.
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
