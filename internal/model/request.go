package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestStatus represents the lifecycle state of a citizen request.
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusResolved   RequestStatus = "resolved"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

// RequestStatuses lists every valid status.
var RequestStatuses = []RequestStatus{
	RequestStatusPending,
	RequestStatusInProgress,
	RequestStatusResolved,
	RequestStatusCancelled,
}

// Valid reports whether s is one of RequestStatuses.
func (s RequestStatus) Valid() bool {
	for _, v := range RequestStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Request is a citizen assistance request.
type Request struct {
	ID         string        `json:"request_id" gorm:"type:char(36);primaryKey"`
	UserEmail  string        `json:"user_email" gorm:"size:255;not null;index"`
	UserName   string        `json:"user_name" gorm:"size:255"`
	Type       string        `json:"req_type" gorm:"size:100"`
	Details    string        `json:"req_details" gorm:"type:text"`
	Region     string        `json:"req_region" gorm:"size:255;index"`
	Status     RequestStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	AssignedTo string        `json:"assigned_to,omitempty" gorm:"size:36"`
	Notes      []RequestNote `json:"admin_notes" gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time     `json:"created_at" gorm:"index"`
	UpdatedAt  time.Time     `json:"updated_at" gorm:"autoUpdateTime:false"`
}

// BeforeCreate sets the ID before creating the record.
func (r *Request) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// RequestNote is an admin note on a request. Notes are append-only.
type RequestNote struct {
	ID        string    `json:"note_id" gorm:"type:char(36);primaryKey"`
	RequestID string    `json:"-" gorm:"type:char(36);not null;index"`
	Note      string    `json:"note" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate sets the ID before creating the record.
func (n *RequestNote) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
