package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"floodwatch/internal/auth"
	apperr "floodwatch/internal/errors"
	"floodwatch/internal/model"
	"floodwatch/internal/repository"
)

// RegisterInput carries the fields of a new account.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	FullName string
	Role     model.Role
}

// LoginResult is the identity summary plus the user's tokens.
type LoginResult struct {
	User         *model.User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
}

// AuthService handles registration, user login and admin sessions.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	// Login accepts an email or a username. role must match the stored role.
	Login(ctx context.Context, login, password string, role model.Role) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
	AdminLogin(ctx context.Context, login, password string) (*auth.Session, error)
	// VerifyAdmin returns the session behind token. Expired sessions, and sessions whose account is no longer an
	// active admin, are revoked and rejected.
	VerifyAdmin(ctx context.Context, token string) (*auth.Session, error)
	AdminLogout(ctx context.Context, token string) error
	// CreateAdmin is open while no admin exists; afterwards token must be a live admin session.
	CreateAdmin(ctx context.Context, token string, in RegisterInput) (*model.User, error)
	SweepSessions(ctx context.Context) (int, error)
}

type authService struct {
	users      repository.UserRepository
	jwt        *auth.JWTService
	admins     auth.SessionStore
	refresh    auth.SessionStore
	sessionTTL time.Duration
	now        Clock
}

// DefaultAdminSessionTTL is the admin session lifetime used when none is configured.
const DefaultAdminSessionTTL = 24 * time.Hour

// NewAuthService creates a new authentication service. A non-positive
// sessionTTL means DefaultAdminSessionTTL.
func NewAuthService(users repository.UserRepository, jwt *auth.JWTService, admins, refresh auth.SessionStore, sessionTTL time.Duration, clock Clock) AuthService {
	if clock == nil {
		clock = systemClock
	}
	if sessionTTL <= 0 {
		sessionTTL = DefaultAdminSessionTTL
	}
	return &authService{
		users:      users,
		jwt:        jwt,
		admins:     admins,
		refresh:    refresh,
		sessionTTL: sessionTTL,
		now:        clock,
	}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if in.Role == "" {
		in.Role = model.RoleUser
	}
	switch in.Role {
	case model.RoleUser, model.RoleExpert:
	case model.RoleAdmin:
		return nil, apperr.BadRequest("admin accounts cannot self-register")
	default:
		return nil, apperr.BadRequest("unknown role " + string(in.Role))
	}
	return s.createUser(ctx, in)
}

func (s *authService) createUser(ctx context.Context, in RegisterInput) (*model.User, error) {
	username, err := requiredText("username", in.Username)
	if err != nil {
		return nil, err
	}
	email, err := requiredText("email", in.Email)
	if err != nil {
		return nil, err
	}
	if in.Password == "" {
		return nil, apperr.BadRequest("password is required")
	}

	// Pre-checks give a precise message; the unique indexes settle races.
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, apperr.Conflict("email already registered")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, apperr.Conflict("username already taken")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	user := &model.User{
		Username:     username,
		FullName:     strings.TrimSpace(in.FullName),
		Email:        email,
		PasswordHash: hash,
		Role:         in.Role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Conflict("email or username already registered")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// authenticate resolves login and checks password. Unknown users and wrong passwords are ErrUnauthorized.
func (s *authService) authenticate(ctx context.Context, login, password string) (*model.User, error) {
	user, err := s.users.FindByEmailOrUsername(ctx, strings.TrimSpace(login))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, apperr.ErrUnauthorized
	}
	if !user.Active {
		return nil, apperr.Forbidden("account is disabled")
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, login, password string, role model.Role) (*LoginResult, error) {
	user, err := s.authenticate(ctx, login, password)
	if err != nil {
		return nil, err
	}
	if user.Role != role {
		return nil, apperr.ErrUnauthorized
	}

	accessToken, err := s.jwt.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := auth.NewSessionToken()
	if err != nil {
		return nil, err
	}
	now := s.now()
	if err := s.refresh.Create(ctx, &auth.Session{
		Token:     refreshToken,
		UserID:    user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: now,
		ExpiresAt: now.Add(auth.RefreshTokenExpiry),
	}); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &LoginResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(auth.AccessTokenExpiry.Seconds()),
	}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	invalid := apperr.Unauthorized("invalid or expired refresh token")

	session, err := s.refresh.Get(ctx, refreshToken)
	if errors.Is(err, auth.ErrSessionNotFound) {
		return "", invalid
	}
	if err != nil {
		return "", fmt.Errorf("load refresh token: %w", err)
	}
	if session.Expired(s.now()) {
		_ = s.refresh.Revoke(ctx, refreshToken)
		return "", invalid
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		_ = s.refresh.Revoke(ctx, refreshToken)
		return "", invalid
	}
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}
	if !user.Active {
		_ = s.refresh.Revoke(ctx, refreshToken)
		return "", apperr.Forbidden("account is disabled")
	}

	accessToken, err := s.jwt.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	return s.refresh.Revoke(ctx, refreshToken)
}

func (s *authService) AdminLogin(ctx context.Context, login, password string) (*auth.Session, error) {
	user, err := s.authenticate(ctx, login, password)
	if err != nil {
		return nil, err
	}
	if user.Role != model.RoleAdmin {
		return nil, apperr.ErrUnauthorized
	}

	token, err := auth.NewSessionToken()
	if err != nil {
		return nil, err
	}
	now := s.now()
	session := &auth.Session{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.admins.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("store admin session: %w", err)
	}
	return session, nil
}

func (s *authService) VerifyAdmin(ctx context.Context, token string) (*auth.Session, error) {
	if token == "" {
		return nil, apperr.Forbidden("admin token required")
	}
	session, err := s.admins.Get(ctx, token)
	if errors.Is(err, auth.ErrSessionNotFound) {
		return nil, apperr.Forbidden("invalid admin token")
	}
	if err != nil {
		return nil, fmt.Errorf("load admin session: %w", err)
	}
	if session.Expired(s.now()) {
		if err := s.admins.Revoke(ctx, token); err != nil {
			return nil, fmt.Errorf("revoke expired session: %w", err)
		}
		return nil, apperr.Forbidden("admin session expired")
	}
	if session.Role != string(model.RoleAdmin) {
		return nil, apperr.Forbidden("admin privileges required")
	}

	// The account may have been disabled or demoted since login.
	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("load admin account: %w", err)
	}
	if err != nil || !user.Active || user.Role != model.RoleAdmin {
		if err := s.admins.Revoke(ctx, token); err != nil {
			return nil, fmt.Errorf("revoke admin session: %w", err)
		}
		return nil, apperr.Forbidden("admin privileges revoked")
	}
	return session, nil
}

func (s *authService) AdminLogout(ctx context.Context, token string) error {
	if _, err := s.VerifyAdmin(ctx, token); err != nil {
		return err
	}
	return s.admins.Revoke(ctx, token)
}

func (s *authService) CreateAdmin(ctx context.Context, token string, in RegisterInput) (*model.User, error) {
	admins, err := s.users.Count(ctx, repository.Query{
		Filters: []repository.Filter{repository.Eq("role", model.RoleAdmin)},
	})
	if err != nil {
		return nil, fmt.Errorf("count admins: %w", err)
	}
	if admins > 0 {
		if _, err := s.VerifyAdmin(ctx, token); err != nil {
			return nil, err
		}
	}
	if len(in.Password) < minPasswordLen {
		return nil, apperr.BadRequest(fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}
	in.Role = model.RoleAdmin
	return s.createUser(ctx, in)
}

func (s *authService) SweepSessions(ctx context.Context) (int, error) {
	now := s.now()
	admins, err := s.admins.SweepExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("sweep admin sessions: %w", err)
	}
	refresh, err := s.refresh.SweepExpired(ctx, now)
	if err != nil {
		return admins, fmt.Errorf("sweep refresh tokens: %w", err)
	}
	return admins + refresh, nil
}
