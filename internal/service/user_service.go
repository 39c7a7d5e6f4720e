package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"floodwatch/internal/auth"
	apperr "floodwatch/internal/errors"
	"floodwatch/internal/logger"
	"floodwatch/internal/model"
	"floodwatch/internal/objectstore"
	"floodwatch/internal/repository"
)

const (
	minPasswordLen = 8
	avatarPrefix   = "avatars"
)

// ProfileUpdate lists the profile fields to change. Nil fields are left as they are.
// Role and Active are honoured only for admin updates.
type ProfileUpdate struct {
	Email    *string
	FullName *string
	Username *string
	Role     *model.Role
	Active   *bool
	Avatar   *objectstore.Upload
}

// UserFilter narrows a user listing.
type UserFilter struct {
	Search string
	Role   model.Role
	Limit  int
}

// UserService exposes user profile and account administration.
type UserService interface {
	Get(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context, f UserFilter) ([]model.User, error)
	ListAdmins(ctx context.Context) ([]model.User, error)
	// UpdateProfile is the self-service path: email, full name and avatar only.
	UpdateProfile(ctx context.Context, id string, in ProfileUpdate) (*model.User, error)
	AdminUpdateProfile(ctx context.Context, id string, in ProfileUpdate) (*model.User, error)
	ResetPassword(ctx context.Context, id, newPassword string) error
	// Delete refuses admin accounts.
	Delete(ctx context.Context, id string) error
}

type userService struct {
	repo  repository.UserRepository
	store objectstore.Store
	now   Clock
}

// NewUserService builds a UserService with repository and object store.
func NewUserService(repo repository.UserRepository, store objectstore.Store, clock Clock) UserService {
	if clock == nil {
		clock = systemClock
	}
	return &userService{repo: repo, store: store, now: clock}
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	return load(user, err, "user")
}

func (s *userService) List(ctx context.Context, f UserFilter) ([]model.User, error) {
	q := repository.Query{
		Orders: []repository.Order{repository.Desc("created_at")},
		Limit:  clampLimit(f.Limit),
	}
	if f.Role != "" {
		q = q.Where(repository.Eq("role", f.Role))
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		q = q.Where(repository.AnyContains(search, "full_name", "email", "username"))
	}
	return s.repo.List(ctx, q)
}

func (s *userService) ListAdmins(ctx context.Context) ([]model.User, error) {
	return s.List(ctx, UserFilter{Role: model.RoleAdmin, Limit: maxListLimit})
}

func (s *userService) UpdateProfile(ctx context.Context, id string, in ProfileUpdate) (*model.User, error) {
	in.Username, in.Role, in.Active = nil, nil, nil
	return s.update(ctx, id, in)
}

func (s *userService) AdminUpdateProfile(ctx context.Context, id string, in ProfileUpdate) (*model.User, error) {
	return s.update(ctx, id, in)
}

func (s *userService) update(ctx context.Context, id string, in ProfileUpdate) (*model.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var columns []string
	if in.Email != nil {
		email, err := requiredText("email", *in.Email)
		if err != nil {
			return nil, err
		}
		if email != user.Email {
			if err := s.ensureFree(ctx, s.repo.FindByEmail, email, "email already in use by another account"); err != nil {
				return nil, err
			}
			user.Email = email
			columns = append(columns, "email")
		}
	}
	if in.Username != nil {
		username, err := requiredText("username", *in.Username)
		if err != nil {
			return nil, err
		}
		if username != user.Username {
			if err := s.ensureFree(ctx, s.repo.FindByUsername, username, "username already taken"); err != nil {
				return nil, err
			}
			user.Username = username
			columns = append(columns, "username")
		}
	}
	if in.FullName != nil {
		user.FullName = strings.TrimSpace(*in.FullName)
		columns = append(columns, "full_name")
	}
	if in.Role != nil {
		if *in.Role == "" {
			return nil, apperr.BadRequest("role is required")
		}
		user.Role = *in.Role
		columns = append(columns, "role")
	}
	if in.Active != nil {
		user.Active = *in.Active
		columns = append(columns, "active")
	}

	oldKey := user.AvatarKey
	var newKey string
	if in.Avatar != nil {
		newKey = objectstore.NewKey(avatarPrefix, in.Avatar.Ext)
		url, err := s.store.Put(ctx, newKey, in.Avatar.ContentType, in.Avatar.Reader())
		if err != nil {
			return nil, fmt.Errorf("upload avatar: %w", err)
		}
		user.AvatarURL, user.AvatarKey = url, newKey
		columns = append(columns, "avatar_url", "avatar_key")
	}

	if len(columns) == 0 {
		return user, nil
	}
	user.UpdatedAt = s.now()
	columns = append(columns, "updated_at")

	if err := s.repo.Update(ctx, user, columns...); err != nil {
		if newKey != "" {
			_ = s.store.Delete(ctx, newKey)
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Conflict("email or username already in use")
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	if newKey != "" && oldKey != "" {
		if err := s.store.Delete(ctx, oldKey); err != nil {
			logger.Warn("failed to delete replaced avatar", "key", oldKey, "error", err)
		}
	}
	return user, nil
}

func (s *userService) ensureFree(ctx context.Context, find func(context.Context, string) (*model.User, error), value, msg string) error {
	_, err := find(ctx, value)
	switch {
	case err == nil:
		return apperr.Conflict(msg)
	case errors.Is(err, repository.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("check uniqueness: %w", err)
	}
}

func (s *userService) ResetPassword(ctx context.Context, id, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return apperr.BadRequest(fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}
	user, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, user, "password_hash", "updated_at"); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	return nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	user, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == model.RoleAdmin {
		return apperr.Forbidden("cannot delete an admin account")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if user.AvatarKey != "" {
		if err := s.store.Delete(ctx, user.AvatarKey); err != nil {
			logger.Warn("failed to delete avatar of removed user", "key", user.AvatarKey, "error", err)
		}
	}
	return nil
}
