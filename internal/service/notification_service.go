package service

import (
	"context"
	"fmt"
	"strings"

	apperr "floodwatch/internal/errors"
	"floodwatch/internal/model"
	"floodwatch/internal/repository"
)

// NotificationInput carries a new flood notification. Active defaults to true.
type NotificationInput struct {
	Title           string
	Message         string
	Severity        model.Severity
	AffectedRegions []string
	Active          *bool
	CreatedBy       string
}

// NotificationUpdate lists the fields to change. Nil fields are left as they are.
type NotificationUpdate struct {
	Title           *string
	Message         *string
	Severity        *model.Severity
	AffectedRegions *[]string
	Active          *bool
}

// NotificationFilter narrows a notification listing.
type NotificationFilter struct {
	ActiveOnly bool
	Region     string
	Severity   model.Severity
	Limit      int
}

// NotificationService manages flood notifications.
type NotificationService interface {
	Create(ctx context.Context, in NotificationInput) (*model.Notification, error)
	Get(ctx context.Context, id string) (*model.Notification, error)
	// List returns the newest first.
	List(ctx context.Context, f NotificationFilter) ([]model.Notification, error)
	// ListPublic returns active notifications, most severe first and newest first within a severity.
	ListPublic(ctx context.Context, f NotificationFilter) ([]model.Notification, error)
	Update(ctx context.Context, id string, in NotificationUpdate) (*model.Notification, error)
	Delete(ctx context.Context, id string) error
}

type notificationService struct {
	repo repository.NotificationRepository
	now  Clock
}

// NewNotificationService creates a new notification service.
func NewNotificationService(repo repository.NotificationRepository, clock Clock) NotificationService {
	if clock == nil {
		clock = systemClock
	}
	return &notificationService{repo: repo, now: clock}
}

func (s *notificationService) Create(ctx context.Context, in NotificationInput) (*model.Notification, error) {
	title, err := requiredText("title", in.Title)
	if err != nil {
		return nil, err
	}
	message, err := requiredText("message", in.Message)
	if err != nil {
		return nil, err
	}
	if !in.Severity.Valid() {
		return nil, apperr.BadRequest("invalid severity")
	}

	now := s.now()
	n := &model.Notification{
		Title:           title,
		Message:         message,
		Severity:        in.Severity,
		AffectedRegions: cleanRegions(in.AffectedRegions),
		Active:          in.Active == nil || *in.Active,
		CreatedBy:       in.CreatedBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return n, nil
}

func (s *notificationService) Get(ctx context.Context, id string) (*model.Notification, error) {
	n, err := s.repo.FindByID(ctx, id)
	return load(n, err, "notification")
}

func (s *notificationService) List(ctx context.Context, f NotificationFilter) ([]model.Notification, error) {
	q, err := f.query()
	if err != nil {
		return nil, err
	}
	q.Orders = []repository.Order{repository.Desc("created_at")}
	return s.repo.List(ctx, q)
}

func (s *notificationService) ListPublic(ctx context.Context, f NotificationFilter) ([]model.Notification, error) {
	f.ActiveOnly = true
	q, err := f.query()
	if err != nil {
		return nil, err
	}
	ranking := make([]string, len(model.SeverityOrder))
	for i, sev := range model.SeverityOrder {
		ranking[i] = string(sev)
	}
	q.Orders = []repository.Order{
		repository.Ranked("severity", ranking...),
		repository.Desc("created_at"),
	}
	return s.repo.List(ctx, q)
}

func (f NotificationFilter) query() (repository.Query, error) {
	q := repository.Query{Limit: clampLimit(f.Limit)}
	if f.ActiveOnly {
		q = q.Where(repository.Eq("active", true))
	}
	if f.Severity != "" {
		if !f.Severity.Valid() {
			return q, apperr.BadRequest("invalid severity")
		}
		q = q.Where(repository.Eq("severity", f.Severity))
	}
	if region := strings.TrimSpace(f.Region); region != "" {
		q = q.Where(repository.Has("affected_regions", region))
	}
	return q, nil
}

func (s *notificationService) Update(ctx context.Context, id string, in NotificationUpdate) (*model.Notification, error) {
	n, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	columns := []string{"updated_at"}
	if in.Title != nil {
		if n.Title, err = requiredText("title", *in.Title); err != nil {
			return nil, err
		}
		columns = append(columns, "title")
	}
	if in.Message != nil {
		if n.Message, err = requiredText("message", *in.Message); err != nil {
			return nil, err
		}
		columns = append(columns, "message")
	}
	if in.Severity != nil {
		if !in.Severity.Valid() {
			return nil, apperr.BadRequest("invalid severity")
		}
		n.Severity = *in.Severity
		columns = append(columns, "severity")
	}
	if in.AffectedRegions != nil {
		n.AffectedRegions = cleanRegions(*in.AffectedRegions)
		columns = append(columns, "affected_regions")
	}
	if in.Active != nil {
		n.Active = *in.Active
		columns = append(columns, "active")
	}

	n.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, n, columns...); err != nil {
		return nil, fmt.Errorf("update notification: %w", err)
	}
	return n, nil
}

func (s *notificationService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}

// cleanRegions trims names, drops blanks and duplicates, and never returns nil.
func cleanRegions(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, r := range in {
		r = strings.TrimSpace(r)
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}
