package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"floodwatch/internal/model"
)

// UserRepository defines persistence operations.
type UserRepository interface {
	CRUD[model.User]
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	// FindByEmailOrUsername treats login as an email when it contains "@".
	FindByEmailOrUsername(ctx context.Context, login string) (*model.User, error)
}

type userRepository struct {
	*Table[model.User]
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{Table: NewTable[model.User](db)}
}

// FindByEmail compares email case-sensitively.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.First(ctx, Query{Filters: []Filter{Eq("email", email)}})
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.First(ctx, Query{Filters: []Filter{Eq("username", username)}})
}

func (r *userRepository) FindByEmailOrUsername(ctx context.Context, login string) (*model.User, error) {
	if strings.Contains(login, "@") {
		return r.FindByEmail(ctx, login)
	}
	return r.FindByUsername(ctx, login)
}
