package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/profilehub/accounts-server/internal/model"
	"github.com/profilehub/accounts-server/internal/testutil"
)

func TestLoginService_Login(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("valid credentials issue a token", func(t *testing.T) {
		userStore := &MockUserStore{}
		tokenManager := &MockTokenManager{}

		userStore.On("GetByUsername", ctx, "john_doe").
			Return(model.User{ID: userID, Username: "john_doe", PasswordHash: hashPassword(t, "secret")}, nil)
		tokenManager.On("GenerateAccessToken", userID).Return("token-value", nil)

		svc := NewLogin(userStore, tokenManager, testutil.MakeNoopLogger())

		token, err := svc.Login(ctx, "john_doe", "secret")

		require.NoError(t, err)
		assert.Equal(t, "token-value", token)
	})

	t.Run("wrong password", func(t *testing.T) {
		userStore := &MockUserStore{}
		tokenManager := &MockTokenManager{}

		userStore.On("GetByUsername", ctx, "john_doe").
			Return(model.User{ID: userID, PasswordHash: hashPassword(t, "secret")}, nil)

		svc := NewLogin(userStore, tokenManager, testutil.MakeNoopLogger())

		_, err := svc.Login(ctx, "john_doe", "wrong")

		assert.ErrorIs(t, err, model.ErrUnauthenticated)
		tokenManager.AssertNotCalled(t, "GenerateAccessToken", mock.Anything)
	})

	t.Run("unknown username looks like wrong password", func(t *testing.T) {
		userStore := &MockUserStore{}
		userStore.On("GetByUsername", ctx, "nobody").Return(model.User{}, model.ErrNotFound)

		svc := NewLogin(userStore, &MockTokenManager{}, testutil.MakeNoopLogger())

		_, err := svc.Login(ctx, "nobody", "secret")

		assert.ErrorIs(t, err, model.ErrUnauthenticated)
	})
}
