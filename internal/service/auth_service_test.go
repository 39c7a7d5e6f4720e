package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"floodwatch/internal/auth"
	apperr "floodwatch/internal/errors"
	"floodwatch/internal/model"
	"floodwatch/internal/repository"
)

var t0 = time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)

func fixedClock(t *time.Time) Clock {
	return func() time.Time { return *t }
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := auth.HashPassword(password)
	require.NoError(t, err)
	return h
}

type authFixture struct {
	repo    *MockUserRepository
	admins  *auth.MemorySessionStore
	refresh *auth.MemorySessionStore
	now     time.Time
	svc     AuthService
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		repo:    new(MockUserRepository),
		admins:  auth.NewMemorySessionStore(),
		refresh: auth.NewMemorySessionStore(),
		now:     t0,
	}
	f.svc = NewAuthService(f.repo, auth.NewJWTService("test-secret"), f.admins, f.refresh, 24*time.Hour, fixedClock(&f.now))
	return f
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		in        RegisterInput
		setupMock func(*MockUserRepository)
		wantErr   error
	}{
		{
			name: "successful registration",
			in:   RegisterInput{Username: "aisha", Password: "password123", Email: "aisha@example.com", Role: model.RoleUser},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "aisha@example.com").Return(nil, repository.ErrNotFound)
				m.On("FindByUsername", mock.Anything, "aisha").Return(nil, repository.ErrNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name: "email already registered",
			in:   RegisterInput{Username: "aisha2", Password: "password123", Email: "aisha@example.com", Role: model.RoleUser},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "aisha@example.com").Return(&model.User{Email: "aisha@example.com"}, nil)
			},
			wantErr: apperr.ErrConflict,
		},
		{
			name: "username taken",
			in:   RegisterInput{Username: "aisha", Password: "password123", Email: "other@example.com", Role: model.RoleExpert},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "other@example.com").Return(nil, repository.ErrNotFound)
				m.On("FindByUsername", mock.Anything, "aisha").Return(&model.User{Username: "aisha"}, nil)
			},
			wantErr: apperr.ErrConflict,
		},
		{
			name: "concurrent insert loses on unique index",
			in:   RegisterInput{Username: "ben", Password: "password123", Email: "ben@example.com"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ben@example.com").Return(nil, repository.ErrNotFound)
				m.On("FindByUsername", mock.Anything, "ben").Return(nil, repository.ErrNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(repository.ErrDuplicate)
			},
			wantErr: apperr.ErrConflict,
		},
		{
			name:      "admin cannot self-register",
			in:        RegisterInput{Username: "root", Password: "password123", Email: "root@example.com", Role: model.RoleAdmin},
			setupMock: func(m *MockUserRepository) {},
			wantErr:   apperr.ErrBadRequest,
		},
		{
			name:      "missing email",
			in:        RegisterInput{Username: "x", Password: "password123"},
			setupMock: func(m *MockUserRepository) {},
			wantErr:   apperr.ErrBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture()
			tt.setupMock(f.repo)

			user, err := f.svc.Register(context.Background(), tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.in.Email, user.Email)
				assert.Equal(t, model.RoleUser, user.Role)
				assert.True(t, user.Active)
				assert.True(t, auth.CheckPassword(user.PasswordHash, tt.in.Password))
				assert.Equal(t, t0, user.CreatedAt)
			}

			f.repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	stored := &model.User{
		ID:           "u-1",
		Username:     "aisha",
		FullName:     "Aisha Rahman",
		Email:        "aisha@example.com",
		PasswordHash: hashed(t, "password123"),
		Role:         model.RoleUser,
		Active:       true,
	}

	tests := []struct {
		name     string
		login    string
		password string
		role     model.Role
		found    bool
		wantErr  error
	}{
		{name: "by email", login: "aisha@example.com", password: "password123", role: model.RoleUser, found: true},
		{name: "by username", login: "aisha", password: "password123", role: model.RoleUser, found: true},
		{name: "unknown user", login: "nobody@example.com", password: "password123", role: model.RoleUser, wantErr: apperr.ErrUnauthorized},
		{name: "wrong password", login: "aisha@example.com", password: "password124", role: model.RoleUser, found: true, wantErr: apperr.ErrUnauthorized},
		{name: "wrong role", login: "aisha@example.com", password: "password123", role: model.RoleExpert, found: true, wantErr: apperr.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture()
			if tt.found {
				f.repo.On("FindByEmailOrUsername", mock.Anything, tt.login).Return(stored, nil)
			} else {
				f.repo.On("FindByEmailOrUsername", mock.Anything, tt.login).Return(nil, repository.ErrNotFound)
			}

			res, err := f.svc.Login(context.Background(), tt.login, tt.password, tt.role)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
				assert.Zero(t, f.refresh.Len())
			} else {
				require.NoError(t, err)
				assert.Equal(t, "u-1", res.User.ID)
				assert.Equal(t, "Aisha Rahman", res.User.DisplayName())
				assert.NotEmpty(t, res.AccessToken)
				assert.NotEmpty(t, res.RefreshToken)
				assert.Equal(t, 900, res.ExpiresIn)
				assert.Equal(t, 1, f.refresh.Len())
			}
			f.repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshAndLogout(t *testing.T) {
	f := newAuthFixture()
	user := &model.User{ID: "u-1", Username: "aisha", Email: "aisha@example.com", PasswordHash: hashed(t, "password123"), Role: model.RoleUser, Active: true}
	f.repo.On("FindByEmailOrUsername", mock.Anything, "aisha").Return(user, nil)
	f.repo.On("FindByID", mock.Anything, "u-1").Return(user, nil)
	ctx := context.Background()

	res, err := f.svc.Login(ctx, "aisha", "password123", model.RoleUser)
	require.NoError(t, err)

	access, err := f.svc.Refresh(ctx, res.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, access)

	require.NoError(t, f.svc.Logout(ctx, res.RefreshToken))
	_, err = f.svc.Refresh(ctx, res.RefreshToken)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	res, err = f.svc.Login(ctx, "aisha", "password123", model.RoleUser)
	require.NoError(t, err)
	f.now = t0.Add(auth.RefreshTokenExpiry)
	_, err = f.svc.Refresh(ctx, res.RefreshToken)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	assert.Zero(t, f.refresh.Len())

	// Disabling the account stops refresh tokens issued before it.
	f.now = t0
	res, err = f.svc.Login(ctx, "aisha", "password123", model.RoleUser)
	require.NoError(t, err)
	user.Active = false
	_, err = f.svc.Refresh(ctx, res.RefreshToken)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
	assert.Zero(t, f.refresh.Len())
}

func TestAuthService_AdminLogin(t *testing.T) {
	admin := &model.User{ID: "a-1", Username: "root", Email: "root@example.com", PasswordHash: hashed(t, "password123"), Role: model.RoleAdmin, Active: true}
	expert := &model.User{ID: "e-1", Username: "eng", Email: "eng@example.com", PasswordHash: hashed(t, "password123"), Role: model.RoleExpert, Active: true}

	t.Run("admin gets a 24h session", func(t *testing.T) {
		f := newAuthFixture()
		f.repo.On("FindByEmailOrUsername", mock.Anything, "root").Return(admin, nil)

		session, err := f.svc.AdminLogin(context.Background(), "root", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
		assert.Equal(t, "a-1", session.UserID)
		assert.Equal(t, t0.Add(24*time.Hour), session.ExpiresAt)
		assert.Equal(t, 1, f.admins.Len())
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		f := newAuthFixture()
		f.repo.On("FindByEmailOrUsername", mock.Anything, "eng").Return(expert, nil)

		_, err := f.svc.AdminLogin(context.Background(), "eng", "password123")
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
		assert.Zero(t, f.admins.Len())
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture()
		f.repo.On("FindByEmailOrUsername", mock.Anything, "root").Return(admin, nil)

		_, err := f.svc.AdminLogin(context.Background(), "root", "nope")
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})
}

func TestAuthService_VerifyAdmin_ExpiresAtRecordedInstant(t *testing.T) {
	admin := &model.User{ID: "a-1", Username: "root", PasswordHash: hashed(t, "password123"), Role: model.RoleAdmin, Active: true}
	f := newAuthFixture()
	f.repo.On("FindByEmailOrUsername", mock.Anything, "root").Return(admin, nil)
	f.repo.On("FindByID", mock.Anything, "a-1").Return(admin, nil)
	ctx := context.Background()

	session, err := f.svc.AdminLogin(ctx, "root", "password123")
	require.NoError(t, err)

	f.now = session.ExpiresAt.Add(-time.Millisecond)
	got, err := f.svc.VerifyAdmin(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, "root", got.Username)

	f.now = session.ExpiresAt.Add(time.Millisecond)
	_, err = f.svc.VerifyAdmin(ctx, session.Token)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
	assert.Zero(t, f.admins.Len())

	_, err = f.svc.VerifyAdmin(ctx, session.Token)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestAuthService_VerifyAdmin_Rejects(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.svc.VerifyAdmin(ctx, "")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = f.svc.VerifyAdmin(ctx, "made-up")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	require.NoError(t, f.admins.Create(ctx, &auth.Session{Token: "at-exact", Role: "admin", ExpiresAt: t0}))
	_, err = f.svc.VerifyAdmin(ctx, "at-exact")
	assert.ErrorIs(t, err, apperr.ErrForbidden)
	assert.Zero(t, f.admins.Len())
}

func TestAuthService_VerifyAdmin_RevokedAccount(t *testing.T) {
	tests := []struct {
		name string
		user *model.User
		err  error
	}{
		{name: "demoted", user: &model.User{ID: "a-1", Role: model.RoleUser, Active: true}},
		{name: "disabled", user: &model.User{ID: "a-1", Role: model.RoleAdmin, Active: false}},
		{name: "deleted", err: repository.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture()
			ctx := context.Background()
			require.NoError(t, f.admins.Create(ctx, &auth.Session{Token: "tok", UserID: "a-1", Role: "admin", ExpiresAt: t0.Add(time.Hour)}))
			if tt.user != nil {
				f.repo.On("FindByID", mock.Anything, "a-1").Return(tt.user, nil)
			} else {
				f.repo.On("FindByID", mock.Anything, "a-1").Return(nil, tt.err)
			}

			_, err := f.svc.VerifyAdmin(ctx, "tok")
			assert.ErrorIs(t, err, apperr.ErrForbidden)
			assert.Zero(t, f.admins.Len())
		})
	}
}

func TestAuthService_AdminLogout(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	f.repo.On("FindByID", mock.Anything, "a-1").Return(&model.User{ID: "a-1", Role: model.RoleAdmin, Active: true}, nil)
	require.NoError(t, f.admins.Create(ctx, &auth.Session{Token: "tok", UserID: "a-1", Role: "admin", ExpiresAt: t0.Add(time.Hour)}))

	require.NoError(t, f.svc.AdminLogout(ctx, "tok"))
	_, err := f.svc.VerifyAdmin(ctx, "tok")
	assert.ErrorIs(t, err, apperr.ErrForbidden)
	assert.ErrorIs(t, f.svc.AdminLogout(ctx, "tok"), apperr.ErrForbidden)
}

func TestAuthService_CreateAdmin(t *testing.T) {
	in := RegisterInput{Username: "root2", Password: "longenough", Email: "root2@example.com"}
	adminCount := mock.MatchedBy(func(q repository.Query) bool {
		return len(q.Filters) == 1 && q.Filters[0].Value == model.RoleAdmin
	})

	t.Run("bootstrap without token", func(t *testing.T) {
		f := newAuthFixture()
		f.repo.On("Count", mock.Anything, adminCount).Return(int64(0), nil)
		f.repo.On("FindByEmail", mock.Anything, in.Email).Return(nil, repository.ErrNotFound)
		f.repo.On("FindByUsername", mock.Anything, in.Username).Return(nil, repository.ErrNotFound)
		f.repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		user, err := f.svc.CreateAdmin(context.Background(), "", in)
		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, user.Role)
		f.repo.AssertExpectations(t)
	})

	t.Run("token required once an admin exists", func(t *testing.T) {
		f := newAuthFixture()
		f.repo.On("Count", mock.Anything, adminCount).Return(int64(1), nil)

		_, err := f.svc.CreateAdmin(context.Background(), "", in)
		assert.ErrorIs(t, err, apperr.ErrForbidden)
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("admin session allows it", func(t *testing.T) {
		f := newAuthFixture()
		ctx := context.Background()
		require.NoError(t, f.admins.Create(ctx, &auth.Session{Token: "tok", UserID: "a-1", Role: "admin", ExpiresAt: t0.Add(time.Hour)}))
		f.repo.On("FindByID", mock.Anything, "a-1").Return(&model.User{ID: "a-1", Role: model.RoleAdmin, Active: true}, nil)
		f.repo.On("Count", mock.Anything, adminCount).Return(int64(1), nil)
		f.repo.On("FindByEmail", mock.Anything, in.Email).Return(nil, repository.ErrNotFound)
		f.repo.On("FindByUsername", mock.Anything, in.Username).Return(nil, repository.ErrNotFound)
		f.repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		_, err := f.svc.CreateAdmin(ctx, "tok", in)
		require.NoError(t, err)
	})

	t.Run("short password", func(t *testing.T) {
		f := newAuthFixture()
		f.repo.On("Count", mock.Anything, adminCount).Return(int64(0), nil)

		short := in
		short.Password = "short"
		_, err := f.svc.CreateAdmin(context.Background(), "", short)
		assert.ErrorIs(t, err, apperr.ErrBadRequest)
	})
}

func TestAuthService_SweepSessions(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	require.NoError(t, f.admins.Create(ctx, &auth.Session{Token: "old", ExpiresAt: t0.Add(-time.Minute)}))
	require.NoError(t, f.admins.Create(ctx, &auth.Session{Token: "live", ExpiresAt: t0.Add(time.Minute)}))
	require.NoError(t, f.refresh.Create(ctx, &auth.Session{Token: "r-old", ExpiresAt: t0}))

	n, err := f.svc.SweepSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, f.admins.Len())
	assert.Zero(t, f.refresh.Len())
}
