package service

import (
	"context"
	"fmt"
	"strings"

	"floodwatch/internal/model"
	"floodwatch/internal/repository"
)

// ContactInput carries a new emergency contact. Name is required; Active defaults to true.
type ContactInput struct {
	Name   string
	Role   string
	Phone  string
	Email  string
	Region string
	Active *bool
}

// ContactUpdate lists the fields to change. Nil fields are left as they are;
// an empty string clears an optional field.
type ContactUpdate struct {
	Name   *string
	Role   *string
	Phone  *string
	Email  *string
	Region *string
	Active *bool
}

// ContactService manages emergency contacts.
type ContactService interface {
	Create(ctx context.Context, in ContactInput) (*model.EmergencyContact, error)
	Get(ctx context.Context, id string) (*model.EmergencyContact, error)
	// List returns contacts ordered by region then name. region matches exactly when set.
	List(ctx context.Context, region string, activeOnly bool) ([]model.EmergencyContact, error)
	Update(ctx context.Context, id string, in ContactUpdate) (*model.EmergencyContact, error)
	Delete(ctx context.Context, id string) error
}

type contactService struct {
	repo repository.ContactRepository
	now  Clock
}

// NewContactService creates a new contact service.
func NewContactService(repo repository.ContactRepository, clock Clock) ContactService {
	if clock == nil {
		clock = systemClock
	}
	return &contactService{repo: repo, now: clock}
}

func (s *contactService) Create(ctx context.Context, in ContactInput) (*model.EmergencyContact, error) {
	name, err := requiredText("name", in.Name)
	if err != nil {
		return nil, err
	}
	now := s.now()
	c := &model.EmergencyContact{
		Name:      name,
		Role:      strings.TrimSpace(in.Role),
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
		Region:    strings.TrimSpace(in.Region),
		Active:    in.Active == nil || *in.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return c, nil
}

func (s *contactService) Get(ctx context.Context, id string) (*model.EmergencyContact, error) {
	c, err := s.repo.FindByID(ctx, id)
	return load(c, err, "contact")
}

func (s *contactService) List(ctx context.Context, region string, activeOnly bool) ([]model.EmergencyContact, error) {
	q := repository.Query{
		Orders: []repository.Order{repository.Asc("region"), repository.Asc("name")},
		Limit:  maxListLimit,
	}
	if activeOnly {
		q = q.Where(repository.Eq("active", true))
	}
	if region = strings.TrimSpace(region); region != "" {
		q = q.Where(repository.Eq("region", region))
	}
	return s.repo.List(ctx, q)
}

func (s *contactService) Update(ctx context.Context, id string, in ContactUpdate) (*model.EmergencyContact, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	columns := []string{"updated_at"}
	if in.Name != nil {
		if c.Name, err = requiredText("name", *in.Name); err != nil {
			return nil, err
		}
		columns = append(columns, "name")
	}
	optional := []struct {
		column string
		src    *string
		dst    *string
	}{
		{"role", in.Role, &c.Role},
		{"phone", in.Phone, &c.Phone},
		{"email", in.Email, &c.Email},
		{"region", in.Region, &c.Region},
	}
	for _, f := range optional {
		if f.src != nil {
			*f.dst = strings.TrimSpace(*f.src)
			columns = append(columns, f.column)
		}
	}
	if in.Active != nil {
		c.Active = *in.Active
		columns = append(columns, "active")
	}
	c.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, c, columns...); err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}
	return c, nil
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
