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

func TestAnnouncementService(t *testing.T) {
	t.Run("create defaults to active", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		svc := NewAnnouncementService(repo, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		a, err := svc.Create(context.Background(), "Shelter open", "School on Main St", nil)
		require.NoError(t, err)
		assert.True(t, a.Active)

		a, err = svc.Create(context.Background(), "Draft", "Later", boolPtr(false))
		require.NoError(t, err)
		assert.False(t, a.Active)
	})

	t.Run("create requires content", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		svc := NewAnnouncementService(repo, nil)

		_, err := svc.Create(context.Background(), "Title", "", nil)
		assert.ErrorIs(t, err, apperr.ErrBadRequest)
	})

	t.Run("list active only", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		svc := NewAnnouncementService(repo, nil)
		repo.On("List", mock.Anything, mock.MatchedBy(func(q repository.Query) bool {
			return len(q.Filters) == 1 && q.Filters[0].Value == true && q.Orders[0].Desc
		})).Return([]model.Announcement{{ID: "a-1"}}, nil)

		list, err := svc.List(context.Background(), true)
		require.NoError(t, err)
		assert.Len(t, list, 1)
		repo.AssertExpectations(t)
	})

	t.Run("update deactivates", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		now := t0
		svc := NewAnnouncementService(repo, fixedClock(&now))
		repo.On("FindByID", mock.Anything, "a-1").Return(&model.Announcement{ID: "a-1", Active: true}, nil)
		repo.On("Update", mock.Anything, mock.Anything, []string{"updated_at", "active"}).Return(nil)

		a, err := svc.Update(context.Background(), "a-1", AnnouncementUpdate{Active: boolPtr(false)})
		require.NoError(t, err)
		assert.False(t, a.Active)
		assert.Equal(t, t0, a.UpdatedAt)
		repo.AssertExpectations(t)
	})

	t.Run("delete missing", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		svc := NewAnnouncementService(repo, nil)
		repo.On("FindByID", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

		assert.ErrorIs(t, svc.Delete(context.Background(), "ghost"), apperr.ErrNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestContactService(t *testing.T) {
	t.Run("create trims fields", func(t *testing.T) {
		repo := new(MockContactRepository)
		svc := NewContactService(repo, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		c, err := svc.Create(context.Background(), ContactInput{Name: " Fire Service ", Phone: " 999 ", Region: "Dhaka"})
		require.NoError(t, err)
		assert.Equal(t, "Fire Service", c.Name)
		assert.Equal(t, "999", c.Phone)
		assert.True(t, c.Active)
	})

	t.Run("create requires name", func(t *testing.T) {
		repo := new(MockContactRepository)
		svc := NewContactService(repo, nil)

		_, err := svc.Create(context.Background(), ContactInput{Phone: "999"})
		assert.ErrorIs(t, err, apperr.ErrBadRequest)
	})

	t.Run("list orders by region then name", func(t *testing.T) {
		repo := new(MockContactRepository)
		svc := NewContactService(repo, nil)
		repo.On("List", mock.Anything, mock.MatchedBy(func(q repository.Query) bool {
			return len(q.Orders) == 2 &&
				q.Orders[0].Column == "region" && !q.Orders[0].Desc && q.Orders[1].Column == "name" &&
				len(q.Filters) == 2 && q.Filters[1].Value == "Dhaka"
		})).Return([]model.EmergencyContact{}, nil)

		_, err := svc.List(context.Background(), "Dhaka", true)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("update clears optional field", func(t *testing.T) {
		repo := new(MockContactRepository)
		svc := NewContactService(repo, nil)
		repo.On("FindByID", mock.Anything, "c-1").Return(&model.EmergencyContact{ID: "c-1", Name: "n", Email: "x@example.com"}, nil)
		repo.On("Update", mock.Anything, mock.Anything, []string{"updated_at", "email"}).Return(nil)

		c, err := svc.Update(context.Background(), "c-1", ContactUpdate{Email: strPtr("")})
		require.NoError(t, err)
		assert.Empty(t, c.Email)
		assert.Equal(t, "n", c.Name)
		repo.AssertExpectations(t)
	})

	t.Run("update rejects blank name", func(t *testing.T) {
		repo := new(MockContactRepository)
		svc := NewContactService(repo, nil)
		repo.On("FindByID", mock.Anything, "c-1").Return(&model.EmergencyContact{ID: "c-1", Name: "n"}, nil)

		_, err := svc.Update(context.Background(), "c-1", ContactUpdate{Name: strPtr("")})
		assert.ErrorIs(t, err, apperr.ErrBadRequest)
	})

	t.Run("delete missing", func(t *testing.T) {
		repo := new(MockContactRepository)
		svc := NewContactService(repo, nil)
		repo.On("FindByID", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

		assert.ErrorIs(t, svc.Delete(context.Background(), "ghost"), apperr.ErrNotFound)
	})
}
