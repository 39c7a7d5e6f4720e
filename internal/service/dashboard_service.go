package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"floodwatch/internal/model"
	"floodwatch/internal/repository"
)

// DashboardStats holds one count per tracked table.
type DashboardStats struct {
	TotalUsers          int64                         `json:"total_users"`
	TotalPosts          int64                         `json:"total_posts"`
	TotalRequests       int64                         `json:"total_requests"`
	ActiveNotifications int64                         `json:"active_notifications"`
	ActiveAnnouncements int64                         `json:"active_announcements"`
	EmergencyContacts   int64                         `json:"emergency_contacts"`
	RequestsByStatus    map[model.RequestStatus]int64 `json:"requests_by_status"`
	// ResolutionRate is resolved requests over all requests, four decimal places.
	ResolutionRate decimal.Decimal `json:"resolution_rate"`
}

// Dashboard is a stats snapshot and the time it was taken.
type Dashboard struct {
	Stats       DashboardStats `json:"dashboard_stats"`
	LastUpdated time.Time      `json:"last_updated"`
}

// DashboardService aggregates counts for the admin dashboard. Nothing is cached.
type DashboardService interface {
	GetStats(ctx context.Context) (*Dashboard, error)
}

// DashboardRepositories are the tables the dashboard counts.
type DashboardRepositories struct {
	Users         repository.UserRepository
	Posts         repository.PostRepository
	Requests      repository.RequestRepository
	Notifications repository.NotificationRepository
	Announcements repository.AnnouncementRepository
	Contacts      repository.ContactRepository
}

type dashboardService struct {
	repos DashboardRepositories
	now   Clock
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(repos DashboardRepositories, clock Clock) DashboardService {
	if clock == nil {
		clock = systemClock
	}
	return &dashboardService{repos: repos, now: clock}
}

type counter interface {
	Count(ctx context.Context, q repository.Query) (int64, error)
}

func (s *dashboardService) GetStats(ctx context.Context) (*Dashboard, error) {
	active := repository.Query{Filters: []repository.Filter{repository.Eq("active", true)}}
	stats := DashboardStats{RequestsByStatus: make(map[model.RequestStatus]int64, len(model.RequestStatuses))}

	counts := []struct {
		name string
		repo counter
		q    repository.Query
		dst  *int64
	}{
		{"users", s.repos.Users, repository.Query{}, &stats.TotalUsers},
		{"posts", s.repos.Posts, repository.Query{}, &stats.TotalPosts},
		{"requests", s.repos.Requests, repository.Query{}, &stats.TotalRequests},
		{"notifications", s.repos.Notifications, active, &stats.ActiveNotifications},
		{"announcements", s.repos.Announcements, active, &stats.ActiveAnnouncements},
		{"contacts", s.repos.Contacts, repository.Query{}, &stats.EmergencyContacts},
	}
	for _, c := range counts {
		n, err := c.repo.Count(ctx, c.q)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", c.name, err)
		}
		*c.dst = n
	}

	for _, status := range model.RequestStatuses {
		n, err := s.repos.Requests.Count(ctx, repository.Query{
			Filters: []repository.Filter{repository.Eq("status", status)},
		})
		if err != nil {
			return nil, fmt.Errorf("count %s requests: %w", status, err)
		}
		stats.RequestsByStatus[status] = n
	}

	stats.ResolutionRate = decimal.Zero
	if stats.TotalRequests > 0 {
		resolved := decimal.NewFromInt(stats.RequestsByStatus[model.RequestStatusResolved])
		stats.ResolutionRate = resolved.DivRound(decimal.NewFromInt(stats.TotalRequests), 4)
	}

	return &Dashboard{Stats: stats, LastUpdated: s.now()}, nil
}
