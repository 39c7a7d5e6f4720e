package repository

import (
	"gorm.io/gorm"

	"floodwatch/internal/model"
)

// NotificationRepository defines flood notification persistence operations.
type NotificationRepository interface {
	CRUD[model.Notification]
}

// NewNotificationRepository creates a new notification repository.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return NewTable[model.Notification](db)
}

// AnnouncementRepository defines announcement persistence operations.
type AnnouncementRepository interface {
	CRUD[model.Announcement]
}

// NewAnnouncementRepository creates a new announcement repository.
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return NewTable[model.Announcement](db)
}

// ContactRepository defines emergency contact persistence operations.
type ContactRepository interface {
	CRUD[model.EmergencyContact]
}

// NewContactRepository creates a new emergency contact repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return NewTable[model.EmergencyContact](db)
}
