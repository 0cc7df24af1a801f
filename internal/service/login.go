package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/profilehub/accounts-server/internal/logger"
	"github.com/profilehub/accounts-server/internal/model"
)

type Login struct {
	userStore    model.UserStore
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewLogin(
	userStore model.UserStore,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Login {
	return &Login{
		userStore:    userStore,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Login verifies the username/password pair and issues an access token.
// Unknown usernames and wrong passwords are indistinguishable to the
// caller.
func (s *Login) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.ErrUnauthenticated
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by username: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return "", model.ErrUnauthenticated
	}
	if err != nil {
		return "", fmt.Errorf("failed to verify password: %w", err)
	}

	token, err := s.tokenManager.GenerateAccessToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("Login service: user logged in", "user_id", user.ID)

	return token, nil
}
