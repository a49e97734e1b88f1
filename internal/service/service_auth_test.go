package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/jmattila/webshop/internal/logger"
	"github.com/jmattila/webshop/internal/mock"
	"github.com/jmattila/webshop/internal/store"
	"github.com/jmattila/webshop/models"
)

func newTestAuthService(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(mockRepo, logger.Nop())
	return svc, mockRepo
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	user := models.User{
		ID:       "6719a1f0c4d2b8a9e3f5d7c1",
		Email:    "admin@example.com",
		Password: mustHash(t, "correct-password"),
		Role:     models.RoleAdmin,
	}

	mockRepo.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)

	principal, err := svc.Authenticate(ctx, user.Email, "correct-password")
	require.NoError(t, err)
	assert.Equal(t, user.ID, principal.ID)
	assert.Equal(t, models.RoleAdmin, principal.Role)
	assert.True(t, principal.IsAdmin())
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	user := models.User{
		ID:       "6719a1f0c4d2b8a9e3f5d7c1",
		Email:    "admin@example.com",
		Password: mustHash(t, "correct-password"),
		Role:     models.RoleAdmin,
	}

	mockRepo.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)

	_, err := svc.Authenticate(ctx, user.Email, "wrong-password")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrUserNotFound)

	// An unknown email must be indistinguishable from a wrong password.
	_, err := svc.Authenticate(ctx, "ghost@example.com", "whatever-password")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestAuthenticate_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	dbErr := errors.New("connection refused")
	mockRepo.EXPECT().FindUserByEmail(ctx, "admin@example.com").Return(models.User{}, dbErr)

	_, err := svc.Authenticate(ctx, "admin@example.com", "correct-password")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAuthenticationFailed)
	assert.ErrorIs(t, err, dbErr)
}
