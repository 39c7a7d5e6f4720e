package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"floodwatch/internal/model"
	"floodwatch/internal/repository"
)

// mockCRUD is a testify mock of repository.CRUD[T].
type mockCRUD[T any] struct {
	mock.Mock
}

func (m *mockCRUD[T]) Create(ctx context.Context, v *T) error {
	return m.MethodCalled("Create", ctx, v).Error(0)
}

func (m *mockCRUD[T]) Update(ctx context.Context, v *T, columns ...string) error {
	return m.MethodCalled("Update", ctx, v, columns).Error(0)
}

func (m *mockCRUD[T]) Delete(ctx context.Context, id string) error {
	return m.MethodCalled("Delete", ctx, id).Error(0)
}

func (m *mockCRUD[T]) FindByID(ctx context.Context, id string) (*T, error) {
	args := m.MethodCalled("FindByID", ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *mockCRUD[T]) First(ctx context.Context, q repository.Query) (*T, error) {
	args := m.MethodCalled("First", ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *mockCRUD[T]) List(ctx context.Context, q repository.Query) ([]T, error) {
	args := m.MethodCalled("List", ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *mockCRUD[T]) Count(ctx context.Context, q repository.Query) (int64, error) {
	args := m.MethodCalled("Count", ctx, q)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mockCRUD[model.User]
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return m.user(m.MethodCalled("FindByEmail", ctx, email))
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return m.user(m.MethodCalled("FindByUsername", ctx, username))
}

func (m *MockUserRepository) FindByEmailOrUsername(ctx context.Context, login string) (*model.User, error) {
	return m.user(m.MethodCalled("FindByEmailOrUsername", ctx, login))
}

func (m *MockUserRepository) user(args mock.Arguments) (*model.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockPostRepository is a mock implementation of PostRepository.
type MockPostRepository struct {
	mockCRUD[model.Post]
}

// MockRequestRepository is a mock implementation of RequestRepository.
type MockRequestRepository struct {
	mockCRUD[model.Request]
}

func (m *MockRequestRepository) AppendNote(ctx context.Context, note *model.RequestNote) error {
	return m.MethodCalled("AppendNote", ctx, note).Error(0)
}

// MockNotificationRepository is a mock implementation of NotificationRepository.
type MockNotificationRepository struct {
	mockCRUD[model.Notification]
}

// MockAnnouncementRepository is a mock implementation of AnnouncementRepository.
type MockAnnouncementRepository struct {
	mockCRUD[model.Announcement]
}

// MockContactRepository is a mock implementation of ContactRepository.
type MockContactRepository struct {
	mockCRUD[model.EmergencyContact]
}

var (
	_ repository.UserRepository         = (*MockUserRepository)(nil)
	_ repository.PostRepository         = (*MockPostRepository)(nil)
	_ repository.RequestRepository      = (*MockRequestRepository)(nil)
	_ repository.NotificationRepository = (*MockNotificationRepository)(nil)
	_ repository.AnnouncementRepository = (*MockAnnouncementRepository)(nil)
	_ repository.ContactRepository      = (*MockContactRepository)(nil)
)
