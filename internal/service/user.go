package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mrkiwinator/mesto-server/internal/logger"
	"github.com/mrkiwinator/mesto-server/internal/model"
)

// User handles profile reads and updates.
type User struct {
	store  model.UserStore
	logger *logger.Logger
}

// NewUser creates a User service.
func NewUser(store model.UserStore, logger *logger.Logger) *User {
	return &User{
		store:  store,
		logger: logger,
	}
}

// GetByID returns the user with the given ID.
func (s *User) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.NewErrUserNotFound()
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// List returns all users.
func (s *User) List(ctx context.Context) ([]model.User, error) {
	users, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// UpdateProfile changes name and about on the requester's own record.
func (s *User) UpdateProfile(ctx context.Context, userID uuid.UUID, name, about string) (model.User, error) {
	if !validFieldLen(name) || !validFieldLen(about) {
		return model.User{}, model.NewErrInvalidProfileData()
	}

	user, err := s.store.UpdateProfile(ctx, userID, name, about)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.NewErrUserNotFound()
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.Info("user service: profile updated",
		"user_id", userID)

	return user, nil
}

// UpdateAvatar changes the avatar URL on the requester's own record.
func (s *User) UpdateAvatar(ctx context.Context, userID uuid.UUID, avatar string) (model.User, error) {
	if !validHTTPURL(avatar) {
		return model.User{}, model.NewErrInvalidAvatarData()
	}

	user, err := s.store.UpdateAvatar(ctx, userID, avatar)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.NewErrUserNotFound()
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update avatar: %w", err)
	}

	s.logger.Info("user service: avatar updated",
		"user_id", userID)

	return user, nil
}
