package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperr "floodwatch/internal/errors"
	"floodwatch/internal/model"
	"floodwatch/internal/repository"
)

// RequestInput carries a citizen assistance request. All fields are required.
type RequestInput struct {
	UserEmail string
	UserName  string
	Type      string
	Details   string
	Region    string
}

// RequestFilter narrows a request listing. Region and Search match substrings, case-insensitively.
type RequestFilter struct {
	Status model.RequestStatus
	Region string
	Search string
	Limit  int
}

// RequestService manages citizen requests and their admin notes.
type RequestService interface {
	Submit(ctx context.Context, in RequestInput) (*model.Request, error)
	ListForUser(ctx context.Context, email string) ([]model.Request, error)
	List(ctx context.Context, f RequestFilter) ([]model.Request, error)
	Get(ctx context.Context, id string) (*model.Request, error)
	// UpdateStatus sets status and, when note is not empty, appends it as an admin note.
	UpdateStatus(ctx context.Context, id string, status model.RequestStatus, note string) (*model.Request, error)
	// Assign sets the assignee, who must be an expert. An empty assigneeID clears it.
	Assign(ctx context.Context, id, assigneeID string) (*model.Request, error)
	AddNote(ctx context.Context, id, note string) (*model.RequestNote, error)
}

type requestService struct {
	repo  repository.RequestRepository
	users repository.UserRepository
	now   Clock
}

// NewRequestService creates a new request service.
func NewRequestService(repo repository.RequestRepository, users repository.UserRepository, clock Clock) RequestService {
	if clock == nil {
		clock = systemClock
	}
	return &requestService{repo: repo, users: users, now: clock}
}

func (s *requestService) Submit(ctx context.Context, in RequestInput) (*model.Request, error) {
	fields := []struct {
		name string
		v    *string
	}{
		{"user_email", &in.UserEmail},
		{"user_name", &in.UserName},
		{"req_type", &in.Type},
		{"req_details", &in.Details},
		{"req_region", &in.Region},
	}
	for _, f := range fields {
		v, err := requiredText(f.name, *f.v)
		if err != nil {
			return nil, err
		}
		*f.v = v
	}

	now := s.now()
	req := &model.Request{
		UserEmail: in.UserEmail,
		UserName:  in.UserName,
		Type:      in.Type,
		Details:   in.Details,
		Region:    in.Region,
		Status:    model.RequestStatusPending,
		Notes:     []model.RequestNote{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return req, nil
}

func (s *requestService) ListForUser(ctx context.Context, email string) ([]model.Request, error) {
	email, err := requiredText("email", email)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, repository.Query{
		Filters: []repository.Filter{repository.Eq("user_email", email)},
		Orders:  []repository.Order{repository.Desc("created_at")},
	})
}

func (s *requestService) List(ctx context.Context, f RequestFilter) ([]model.Request, error) {
	q := repository.Query{
		Orders: []repository.Order{repository.Desc("created_at")},
		Limit:  clampLimit(f.Limit),
	}
	if f.Status != "" {
		if !f.Status.Valid() {
			return nil, apperr.BadRequest("invalid status")
		}
		q = q.Where(repository.Eq("status", f.Status))
	}
	if region := strings.TrimSpace(f.Region); region != "" {
		q = q.Where(repository.Contains("region", region))
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		q = q.Where(repository.AnyContains(search, "user_name", "details", "region"))
	}
	return s.repo.List(ctx, q)
}

func (s *requestService) Get(ctx context.Context, id string) (*model.Request, error) {
	req, err := s.repo.FindByID(ctx, id)
	return load(req, err, "request")
}

func (s *requestService) UpdateStatus(ctx context.Context, id string, status model.RequestStatus, note string) (*model.Request, error) {
	if !status.Valid() {
		return nil, apperr.BadRequest("invalid status")
	}
	req, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Status = status
	req.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, req, "status", "updated_at"); err != nil {
		return nil, fmt.Errorf("update request status: %w", err)
	}
	if note = strings.TrimSpace(note); note != "" {
		if _, err := s.appendNote(ctx, id, note); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

func (s *requestService) Assign(ctx context.Context, id, assigneeID string) (*model.Request, error) {
	assigneeID = strings.TrimSpace(assigneeID)
	if assigneeID != "" {
		assignee, err := s.users.FindByID(ctx, assigneeID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.BadRequest("assignee not found")
		}
		if err != nil {
			return nil, fmt.Errorf("load assignee: %w", err)
		}
		if assignee.Role != model.RoleExpert {
			return nil, apperr.BadRequest("assignee must be an expert")
		}
	}

	req, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	req.AssignedTo = assigneeID
	req.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, req, "assigned_to", "updated_at"); err != nil {
		return nil, fmt.Errorf("assign request: %w", err)
	}
	return req, nil
}

func (s *requestService) AddNote(ctx context.Context, id, note string) (*model.RequestNote, error) {
	note, err := requiredText("note", note)
	if err != nil {
		return nil, err
	}
	return s.appendNote(ctx, id, note)
}

func (s *requestService) appendNote(ctx context.Context, id, text string) (*model.RequestNote, error) {
	note := &model.RequestNote{RequestID: id, Note: text, CreatedAt: s.now()}
	if err := s.repo.AppendNote(ctx, note); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("request not found")
		}
		return nil, fmt.Errorf("append note: %w", err)
	}
	return note, nil
}
