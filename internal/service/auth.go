package service

import (
	"context"
	"fmt"
	"time"

	"mandir/internal/auth"
	"mandir/internal/models"
)

// ErrBadCredentials covers both unknown email and wrong password, so a
// login probe cannot tell which one it hit.
var ErrBadCredentials = fmt.Errorf("%w: invalid email or password", ErrInvalid)

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	AddRole(ctx context.Context, userID string, role models.AppRole) error
	GetRoles(ctx context.Context, userID string) ([]models.AppRole, error)
	UpdateLastLogin(ctx context.Context, userID string) error
	CreateProfile(ctx context.Context, p *models.Profile) error
}

type AuthService struct {
	users      UserStore
	jwtSecret  string
	tokenTTL   int
	bcryptCost int
}

func NewAuthService(users UserStore, jwtSecret string, tokenTTLMin, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTLMin,
		bcryptCost: bcryptCost,
	}
}

// Register creates an account with the devotee role and signs it in.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email is already registered", ErrInvalid)
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{Email: req.Email, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.users.AddRole(ctx, user.ID, models.RoleDevotee); err != nil {
		return nil, fmt.Errorf("failed to assign role: %w", err)
	}

	profile := &models.Profile{
		UserID:      user.ID,
		DisplayName: optional(req.DisplayName),
		Phone:       optional(req.Phone),
	}
	if err := s.users.CreateProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return s.issue(user.ID, []models.AppRole{models.RoleDevotee})
}

// Login verifies credentials and signs the user in.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !auth.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, ErrBadCredentials
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	roles, err := s.users.GetRoles(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}

	return s.issue(user.ID, roles)
}

// Roles returns the role set for an authenticated user id.
func (s *AuthService) Roles(ctx context.Context, userID string) ([]models.AppRole, error) {
	return s.users.GetRoles(ctx, userID)
}

func (s *AuthService) issue(userID string, roles []models.AppRole) (*models.AuthResponse, error) {
	token, err := auth.NewAccessToken(s.jwtSecret, userID, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &models.AuthResponse{
		Token:     token.Token,
		ExpiresAt: token.Exp.Format(time.RFC3339),
		UserID:    userID,
		Roles:     roles,
	}, nil
}
