package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/mrkiwinator/mesto-server/internal/model"
)

// CardStore is a mock implementation of model.CardStore.
type CardStore struct {
	mock.Mock
}

func (m *CardStore) Create(ctx context.Context, card model.Card) (model.Card, error) {
	args := m.Called(ctx, card)
	return args.Get(0).(model.Card), args.Error(1)
}

func (m *CardStore) GetByID(ctx context.Context, id uuid.UUID) (model.Card, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Card), args.Error(1)
}

func (m *CardStore) List(ctx context.Context) ([]model.Card, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Card), args.Error(1)
}

func (m *CardStore) Delete(ctx context.Context, id uuid.UUID) (model.Card, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Card), args.Error(1)
}

func (m *CardStore) AddLike(ctx context.Context, cardID, userID uuid.UUID) (model.Card, error) {
	args := m.Called(ctx, cardID, userID)
	return args.Get(0).(model.Card), args.Error(1)
}

func (m *CardStore) RemoveLike(ctx context.Context, cardID, userID uuid.UUID) (model.Card, error) {
	args := m.Called(ctx, cardID, userID)
	return args.Get(0).(model.Card), args.Error(1)
}
