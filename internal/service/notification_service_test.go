package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperr "floodwatch/internal/errors"
	"floodwatch/internal/model"
	"floodwatch/internal/repository"
)

func TestNotificationService_Create(t *testing.T) {
	tests := []struct {
		name    string
		in      NotificationInput
		wantErr error
	}{
		{
			name: "valid",
			in: NotificationInput{
				Title: "River rising", Message: "Move to high ground",
				Severity: model.SeverityHigh, AffectedRegions: []string{" Sylhet", "Sylhet", "", "Sunamganj"},
			},
		},
		{name: "missing title", in: NotificationInput{Message: "m", Severity: model.SeverityLow}, wantErr: apperr.ErrBadRequest},
		{name: "missing message", in: NotificationInput{Title: "t", Severity: model.SeverityLow}, wantErr: apperr.ErrBadRequest},
		{name: "unknown severity", in: NotificationInput{Title: "t", Message: "m", Severity: "extreme"}, wantErr: apperr.ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockNotificationRepository)
			svc := NewNotificationService(repo, nil)
			if tt.wantErr == nil {
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Notification")).Return(nil)
			}

			n, err := svc.Create(context.Background(), tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.True(t, n.Active)
			assert.Equal(t, []string{"Sylhet", "Sunamganj"}, n.AffectedRegions)
		})
	}
}

func TestNotificationService_ListPublic(t *testing.T) {
	t.Run("ranked by severity then recency", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		svc := NewNotificationService(repo, nil)
		repo.On("List", mock.Anything, mock.MatchedBy(func(q repository.Query) bool {
			if len(q.Orders) != 2 || len(q.Filters) != 2 {
				return false
			}
			return q.Filters[0].Op == repository.OpEq && q.Filters[0].Value == true &&
				q.Filters[1].Op == repository.OpHas && q.Filters[1].Value == "Sylhet" &&
				q.Orders[0].Column == "severity" &&
				assert.ObjectsAreEqual([]string{"critical", "high", "medium", "low"}, q.Orders[0].Rank) &&
				q.Orders[1].Column == "created_at" && q.Orders[1].Desc
		})).Return([]model.Notification{}, nil)

		_, err := svc.ListPublic(context.Background(), NotificationFilter{Region: " Sylhet "})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("unknown severity filter", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		svc := NewNotificationService(repo, nil)

		_, err := svc.ListPublic(context.Background(), NotificationFilter{Severity: "extreme"})
		assert.ErrorIs(t, err, apperr.ErrBadRequest)
		repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}

func TestNotificationService_List(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewNotificationService(repo, nil)
	repo.On("List", mock.Anything, mock.MatchedBy(func(q repository.Query) bool {
		return len(q.Filters) == 0 && len(q.Orders) == 1 && q.Orders[0].Column == "created_at" && q.Orders[0].Desc
	})).Return([]model.Notification{{ID: "n-1"}, {ID: "n-2"}}, nil)

	list, err := svc.List(context.Background(), NotificationFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestNotificationService_Update(t *testing.T) {
	t.Run("writes only the given fields", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		now := t0
		svc := NewNotificationService(repo, fixedClock(&now))
		repo.On("FindByID", mock.Anything, "n-1").Return(&model.Notification{
			ID: "n-1", Title: "t", Severity: model.SeverityLow, Active: true,
		}, nil)
		repo.On("Update", mock.Anything, mock.Anything,
			[]string{"updated_at", "severity", "affected_regions", "active"}).Return(nil)

		critical := model.SeverityCritical
		regions := []string{"Sylhet"}
		n, err := svc.Update(context.Background(), "n-1", NotificationUpdate{
			Severity:        &critical,
			AffectedRegions: &regions,
			Active:          boolPtr(false),
		})
		require.NoError(t, err)
		assert.Equal(t, model.SeverityCritical, n.Severity)
		assert.False(t, n.Active)
		assert.Equal(t, "t", n.Title)
		assert.Equal(t, t0, n.UpdatedAt)
		repo.AssertExpectations(t)
	})

	t.Run("blank title", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		svc := NewNotificationService(repo, nil)
		repo.On("FindByID", mock.Anything, "n-1").Return(&model.Notification{ID: "n-1"}, nil)

		_, err := svc.Update(context.Background(), "n-1", NotificationUpdate{Title: strPtr(" ")})
		assert.ErrorIs(t, err, apperr.ErrBadRequest)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestNotificationService_Delete(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewNotificationService(repo, nil)
	repo.On("FindByID", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)
	repo.On("FindByID", mock.Anything, "n-1").Return(&model.Notification{ID: "n-1"}, nil)
	repo.On("Delete", mock.Anything, "n-1").Return(nil)

	assert.ErrorIs(t, svc.Delete(context.Background(), "ghost"), apperr.ErrNotFound)
	assert.NoError(t, svc.Delete(context.Background(), "n-1"))
	repo.AssertNumberOfCalls(t, "Delete", 1)
}
