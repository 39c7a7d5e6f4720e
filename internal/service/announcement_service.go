package service

import (
	"context"
	"fmt"

	"floodwatch/internal/model"
	"floodwatch/internal/repository"
)

// AnnouncementUpdate lists the fields to change. Nil fields are left as they are.
type AnnouncementUpdate struct {
	Title   *string
	Content *string
	Active  *bool
}

// AnnouncementService manages admin announcements.
type AnnouncementService interface {
	Create(ctx context.Context, title, content string, active *bool) (*model.Announcement, error)
	Get(ctx context.Context, id string) (*model.Announcement, error)
	// List returns announcements newest first.
	List(ctx context.Context, activeOnly bool) ([]model.Announcement, error)
	Update(ctx context.Context, id string, in AnnouncementUpdate) (*model.Announcement, error)
	Delete(ctx context.Context, id string) error
}

type announcementService struct {
	repo repository.AnnouncementRepository
	now  Clock
}

// NewAnnouncementService creates a new announcement service.
func NewAnnouncementService(repo repository.AnnouncementRepository, clock Clock) AnnouncementService {
	if clock == nil {
		clock = systemClock
	}
	return &announcementService{repo: repo, now: clock}
}

func (s *announcementService) Create(ctx context.Context, title, content string, active *bool) (*model.Announcement, error) {
	title, err := requiredText("title", title)
	if err != nil {
		return nil, err
	}
	content, err = requiredText("content", content)
	if err != nil {
		return nil, err
	}
	now := s.now()
	a := &model.Announcement{
		Title:     title,
		Content:   content,
		Active:    active == nil || *active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create announcement: %w", err)
	}
	return a, nil
}

func (s *announcementService) Get(ctx context.Context, id string) (*model.Announcement, error) {
	a, err := s.repo.FindByID(ctx, id)
	return load(a, err, "announcement")
}

func (s *announcementService) List(ctx context.Context, activeOnly bool) ([]model.Announcement, error) {
	q := repository.Query{
		Orders: []repository.Order{repository.Desc("created_at")},
		Limit:  maxListLimit,
	}
	if activeOnly {
		q = q.Where(repository.Eq("active", true))
	}
	return s.repo.List(ctx, q)
}

func (s *announcementService) Update(ctx context.Context, id string, in AnnouncementUpdate) (*model.Announcement, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	columns := []string{"updated_at"}
	if in.Title != nil {
		if a.Title, err = requiredText("title", *in.Title); err != nil {
			return nil, err
		}
		columns = append(columns, "title")
	}
	if in.Content != nil {
		if a.Content, err = requiredText("content", *in.Content); err != nil {
			return nil, err
		}
		columns = append(columns, "content")
	}
	if in.Active != nil {
		a.Active = *in.Active
		columns = append(columns, "active")
	}
	a.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, a, columns...); err != nil {
		return nil, fmt.Errorf("update announcement: %w", err)
	}
	return a, nil
}

func (s *announcementService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}
	return nil
}
