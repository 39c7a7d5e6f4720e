package repository

import (
	"gorm.io/gorm"

	"floodwatch/internal/model"
)

// PostRepository defines post persistence operations.
type PostRepository interface {
	CRUD[model.Post]
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return NewTable[model.Post](db)
}
