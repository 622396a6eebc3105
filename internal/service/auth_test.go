package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/Franco-15/classroom-backend/internal/auth"
	"github.com/Franco-15/classroom-backend/internal/domain"
	"github.com/Franco-15/classroom-backend/internal/errdefs"
	"github.com/Franco-15/classroom-backend/internal/service"
	"github.com/Franco-15/classroom-backend/internal/service/mocks"
)

func setupAuth(t *testing.T) (*service.AuthService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userRepo := mocks.NewMockUserRepository(ctrl)
	tokens := auth.NewTokenManager("test-secret", "test-refresh-secret", 15*time.Minute, 24*time.Hour)
	svc := service.NewAuthService(userRepo, tokens)

	return svc, userRepo
}

// ── Register ────────────────────────────────────────────────────────

func TestRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, userRepo := setupAuth(t)

		userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *domain.User) error {
				assert.Equal(t, "ada@example.com", u.Email)
				assert.Equal(t, domain.RoleStudent, u.Role)
				assert.NotEqual(t, "secret123", u.PasswordHash)
				u.ID = uuid.New()
				return nil
			})

		user, pair, err := svc.Register(context.Background(), service.RegisterInput{
			Email:    "  Ada@Example.com ",
			Password: "secret123",
			Name:     "Ada Lovelace",
		})
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("TeacherRole", func(t *testing.T) {
		svc, userRepo := setupAuth(t)

		userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *domain.User) error {
				assert.Equal(t, domain.RoleTeacher, u.Role)
				u.ID = uuid.New()
				return nil
			})

		_, _, err := svc.Register(context.Background(), service.RegisterInput{
			Email:    "grace@example.com",
			Password: "secret123",
			Name:     "Grace Hopper",
			Role:     domain.RoleTeacher,
		})
		require.NoError(t, err)
	})

	t.Run("AdminRoleRejected", func(t *testing.T) {
		svc, _ := setupAuth(t)

		_, _, err := svc.Register(context.Background(), service.RegisterInput{
			Email:    "root@example.com",
			Password: "secret123",
			Name:     "Root User",
			Role:     domain.RoleAdmin,
		})
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		svc, _ := setupAuth(t)

		_, _, err := svc.Register(context.Background(), service.RegisterInput{
			Email:    "not-an-email",
			Password: "secret123",
			Name:     "Someone",
		})
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("ShortPassword", func(t *testing.T) {
		svc, _ := setupAuth(t)

		_, _, err := svc.Register(context.Background(), service.RegisterInput{
			Email:    "a@example.com",
			Password: "12345",
			Name:     "Someone",
		})
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		svc, userRepo := setupAuth(t)

		userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errdefs.ErrAlreadyExists)

		_, _, err := svc.Register(context.Background(), service.RegisterInput{
			Email:    "dup@example.com",
			Password: "secret123",
			Name:     "Duplicate",
		})
		assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
	})
}

// ── Login ───────────────────────────────────────────────────────────

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "ada@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleStudent,
	}

	t.Run("Success", func(t *testing.T) {
		svc, userRepo := setupAuth(t)

		userRepo.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(user, nil)

		result, pair, err := svc.Login(context.Background(), "Ada@Example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, user.ID, result.ID)
		assert.NotEmpty(t, pair.AccessToken)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		svc, userRepo := setupAuth(t)

		userRepo.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(user, nil)

		_, _, err := svc.Login(context.Background(), "ada@example.com", "wrong")
		assert.ErrorIs(t, err, errdefs.ErrUnauthenticated)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		svc, userRepo := setupAuth(t)

		userRepo.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, errdefs.ErrNotFound)

		_, _, err := svc.Login(context.Background(), "ghost@example.com", "secret123")
		assert.ErrorIs(t, err, errdefs.ErrUnauthenticated)
	})

	t.Run("EmptyCredentials", func(t *testing.T) {
		svc, _ := setupAuth(t)

		_, _, err := svc.Login(context.Background(), "", "")
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})
}

// ── Refresh / ResolvePrincipal ──────────────────────────────────────

func TestRefresh(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, userRepo := setupAuth(t)
		user := &domain.User{ID: uuid.New(), Role: domain.RoleStudent}

		userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *domain.User) error {
				u.ID = user.ID
				return nil
			})
		_, pair, err := svc.Register(context.Background(), service.RegisterInput{
			Email:    "ada@example.com",
			Password: "secret123",
			Name:     "Ada Lovelace",
		})
		require.NoError(t, err)

		userRepo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

		next, err := svc.Refresh(context.Background(), pair.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, next.AccessToken)
	})

	t.Run("MalformedToken", func(t *testing.T) {
		svc, _ := setupAuth(t)

		_, err := svc.Refresh(context.Background(), "garbage")
		assert.ErrorIs(t, err, errdefs.ErrTokenMalformed)
	})
}

func TestResolvePrincipal(t *testing.T) {
	t.Run("DeletedUserRejected", func(t *testing.T) {
		svc, userRepo := setupAuth(t)
		userID := uuid.New()

		userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *domain.User) error {
				u.ID = userID
				return nil
			})
		_, pair, err := svc.Register(context.Background(), service.RegisterInput{
			Email:    "gone@example.com",
			Password: "secret123",
			Name:     "Soon Deleted",
		})
		require.NoError(t, err)

		userRepo.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errdefs.ErrNotFound)

		_, err = svc.ResolvePrincipal(context.Background(), pair.AccessToken)
		assert.ErrorIs(t, err, errdefs.ErrUnauthenticated)
	})

	t.Run("RoleComesFromStore", func(t *testing.T) {
		svc, userRepo := setupAuth(t)
		userID := uuid.New()

		userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *domain.User) error {
				u.ID = userID
				return nil
			})
		_, pair, err := svc.Register(context.Background(), service.RegisterInput{
			Email:    "promoted@example.com",
			Password: "secret123",
			Name:     "Promoted User",
		})
		require.NoError(t, err)

		// Promoted to teacher after the token was issued.
		userRepo.EXPECT().GetByID(gomock.Any(), userID).Return(&domain.User{ID: userID, Role: domain.RoleTeacher}, nil)

		user, err := svc.ResolvePrincipal(context.Background(), pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleTeacher, user.Role)
	})
}
