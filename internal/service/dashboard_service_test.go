package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"floodwatch/internal/model"
	"floodwatch/internal/repository"
)

type dashboardMocks struct {
	users         *MockUserRepository
	posts         *MockPostRepository
	requests      *MockRequestRepository
	notifications *MockNotificationRepository
	announcements *MockAnnouncementRepository
	contacts      *MockContactRepository
}

func newDashboardMocks() dashboardMocks {
	return dashboardMocks{
		users:         new(MockUserRepository),
		posts:         new(MockPostRepository),
		requests:      new(MockRequestRepository),
		notifications: new(MockNotificationRepository),
		announcements: new(MockAnnouncementRepository),
		contacts:      new(MockContactRepository),
	}
}

func (m dashboardMocks) service() DashboardService {
	now := t0
	return NewDashboardService(DashboardRepositories{
		Users:         m.users,
		Posts:         m.posts,
		Requests:      m.requests,
		Notifications: m.notifications,
		Announcements: m.announcements,
		Contacts:      m.contacts,
	}, fixedClock(&now))
}

func statusQuery(status model.RequestStatus) interface{} {
	return mock.MatchedBy(func(q repository.Query) bool {
		return len(q.Filters) == 1 && q.Filters[0].Columns[0] == "status" && q.Filters[0].Value == status
	})
}

func TestDashboardService_GetStats(t *testing.T) {
	t.Run("counts and resolution rate", func(t *testing.T) {
		m := newDashboardMocks()
		all := repository.Query{}
		active := mock.MatchedBy(func(q repository.Query) bool {
			return len(q.Filters) == 1 && q.Filters[0].Columns[0] == "active" && q.Filters[0].Value == true
		})
		m.users.On("Count", mock.Anything, all).Return(int64(12), nil)
		m.posts.On("Count", mock.Anything, all).Return(int64(4), nil)
		m.requests.On("Count", mock.Anything, all).Return(int64(3), nil)
		m.requests.On("Count", mock.Anything, statusQuery(model.RequestStatusPending)).Return(int64(1), nil)
		m.requests.On("Count", mock.Anything, statusQuery(model.RequestStatusInProgress)).Return(int64(0), nil)
		m.requests.On("Count", mock.Anything, statusQuery(model.RequestStatusResolved)).Return(int64(2), nil)
		m.requests.On("Count", mock.Anything, statusQuery(model.RequestStatusCancelled)).Return(int64(0), nil)
		m.notifications.On("Count", mock.Anything, active).Return(int64(2), nil)
		m.announcements.On("Count", mock.Anything, active).Return(int64(1), nil)
		m.contacts.On("Count", mock.Anything, all).Return(int64(7), nil)

		d, err := m.service().GetStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(12), d.Stats.TotalUsers)
		assert.Equal(t, int64(4), d.Stats.TotalPosts)
		assert.Equal(t, int64(3), d.Stats.TotalRequests)
		assert.Equal(t, int64(2), d.Stats.ActiveNotifications)
		assert.Equal(t, int64(1), d.Stats.ActiveAnnouncements)
		assert.Equal(t, int64(7), d.Stats.EmergencyContacts)
		assert.Equal(t, int64(2), d.Stats.RequestsByStatus[model.RequestStatusResolved])
		assert.Equal(t, "0.6667", d.Stats.ResolutionRate.String())
		assert.Equal(t, t0, d.LastUpdated)
	})

	t.Run("no requests yields zero rate", func(t *testing.T) {
		m := newDashboardMocks()
		for _, r := range []interface{ On(string, ...interface{}) *mock.Call }{
			m.users, m.posts, m.requests, m.notifications, m.announcements, m.contacts,
		} {
			r.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)
		}

		d, err := m.service().GetStats(context.Background())
		require.NoError(t, err)
		assert.True(t, d.Stats.ResolutionRate.IsZero())
		assert.Len(t, d.Stats.RequestsByStatus, len(model.RequestStatuses))
	})

	t.Run("count failure", func(t *testing.T) {
		m := newDashboardMocks()
		m.users.On("Count", mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

		_, err := m.service().GetStats(context.Background())
		assert.ErrorIs(t, err, assert.AnError)
	})
}
