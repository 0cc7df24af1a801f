package handler

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/profilehub/accounts-server/internal/model"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Validate(method string, in model.UserInput) error {
	args := m.Called(method, in)
	return args.Error(0)
}

func (m *MockUserService) Create(ctx context.Context, in model.UserInput) (model.User, model.Profile, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.User), args.Get(1).(model.Profile), args.Error(2)
}

func (m *MockUserService) Update(ctx context.Context, method string, id uuid.UUID, in model.UserInput) (model.User, error) {
	args := m.Called(ctx, method, id, in)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id uuid.UUID) (model.User, model.Profile, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Get(1).(model.Profile), args.Error(2)
}

func (m *MockUserService) List(ctx context.Context) ([]model.User, map[uuid.UUID]model.Profile, error) {
	args := m.Called(ctx)
	var users []model.User
	if args.Get(0) != nil {
		users = args.Get(0).([]model.User)
	}
	var profiles map[uuid.UUID]model.Profile
	if args.Get(1) != nil {
		profiles = args.Get(1).(map[uuid.UUID]model.Profile)
	}
	return users, profiles, args.Error(2)
}

func (m *MockUserService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Get(ctx context.Context, id uuid.UUID) (model.Profile, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Profile), args.Error(1)
}

func (m *MockProfileService) UpdateImage(ctx context.Context, id uuid.UUID, filename string, reader io.Reader, size int64, contentType string) (model.Profile, error) {
	args := m.Called(ctx, id, filename, reader, size, contentType)
	return args.Get(0).(model.Profile), args.Error(1)
}

func (m *MockProfileService) DownloadImage(ctx context.Context, id uuid.UUID) (io.ReadCloser, error) {
	args := m.Called(ctx, id)
	var reader io.ReadCloser
	if args.Get(0) != nil {
		reader = args.Get(0).(io.ReadCloser)
	}
	return reader, args.Error(1)
}

type MockLoginService struct {
	mock.Mock
}

func (m *MockLoginService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func strPtr(s string) *string {
	return &s
}
