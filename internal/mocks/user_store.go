package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/mrkiwinator/mesto-server/internal/model"
)

// UserStore is a mock implementation of model.UserStore.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *UserStore) UpdateProfile(ctx context.Context, id uuid.UUID, name, about string) (model.User, error) {
	args := m.Called(ctx, id, name, about)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) UpdateAvatar(ctx context.Context, id uuid.UUID, avatar string) (model.User, error) {
	args := m.Called(ctx, id, avatar)
	return args.Get(0).(model.User), args.Error(1)
}
