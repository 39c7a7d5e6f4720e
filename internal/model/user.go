package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the access role of a user account. The set is open; these are the roles the API acts on.
type Role string

const (
	RoleUser   Role = "user"
	RoleAdmin  Role = "admin"
	RoleExpert Role = "expert"
)

// User represents a registered account.
type User struct {
	ID           string    `json:"user_id" gorm:"type:char(36);primaryKey"`
	Username     string    `json:"username" gorm:"size:100;not null;uniqueIndex"`
	FullName     string    `json:"full_name" gorm:"size:255"`
	Email        string    `json:"email" gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role      `json:"role" gorm:"type:varchar(20);not null;index"`
	Active       bool      `json:"is_active"`
	AvatarURL    string    `json:"avatar_url,omitempty" gorm:"size:512"`
	AvatarKey    string    `json:"avatar_key,omitempty" gorm:"size:255"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
}

// BeforeCreate sets the ID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// DisplayName returns the full name, falling back to the username.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}
