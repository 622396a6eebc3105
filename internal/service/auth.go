package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Franco-15/classroom-backend/internal/auth"
	"github.com/Franco-15/classroom-backend/internal/domain"
	"github.com/Franco-15/classroom-backend/internal/errdefs"
)

const bcryptCost = 12

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     domain.Role
}

// AuthService registers and authenticates users and resolves principals from
// presented tokens.
type AuthService struct {
	userRepo UserRepository
	tokens   *auth.TokenManager
}

func NewAuthService(userRepo UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, *auth.TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	name := strings.TrimSpace(input.Name)

	if !strings.Contains(email, "@") {
		return nil, nil, fmt.Errorf("%w: invalid email", errdefs.ErrValidation)
	}
	if len(input.Password) < 6 {
		return nil, nil, fmt.Errorf("%w: password must be at least 6 characters", errdefs.ErrValidation)
	}
	if len(name) < 3 {
		return nil, nil, fmt.Errorf("%w: name must be at least 3 characters", errdefs.ErrValidation)
	}

	role := input.Role
	if role == "" {
		role = domain.RoleStudent
	}
	if !role.IsValid() {
		return nil, nil, fmt.Errorf("%w: invalid role", errdefs.ErrValidation)
	}
	// Admin accounts are provisioned out of band, never self-assigned.
	if role == domain.RoleAdmin {
		return nil, nil, fmt.Errorf("%w: invalid role", errdefs.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, *auth.TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, nil, fmt.Errorf("%w: email and password are required", errdefs.ErrValidation)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errdefs.ErrNotFound) {
			return nil, nil, errdefs.ErrUnauthenticated
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, errdefs.ErrUnauthenticated
	}

	pair, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh exchanges a valid refresh token for a new pair. A token naming a
// since-deleted user fails as unauthenticated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, errdefs.ErrNotFound) {
			return nil, errdefs.ErrUnauthenticated
		}
		return nil, err
	}

	return s.tokens.Issue(user.ID)
}

// ResolvePrincipal verifies an access token and loads the user behind it.
// The role always comes from the store, not the token.
func (s *AuthService) ResolvePrincipal(ctx context.Context, accessToken string) (*domain.User, error) {
	claims, err := s.tokens.VerifyAccess(accessToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, errdefs.ErrNotFound) {
			return nil, errdefs.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
