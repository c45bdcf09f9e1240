package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrkiwinator/mesto-server/internal/logger"
	"github.com/mrkiwinator/mesto-server/internal/model"
)

// Card handles card creation, deletion and likes.
type Card struct {
	store  model.CardStore
	logger *logger.Logger
}

// NewCard creates a Card service.
func NewCard(store model.CardStore, logger *logger.Logger) *Card {
	return &Card{
		store:  store,
		logger: logger,
	}
}

// Create stores a card owned by the requester.
func (s *Card) Create(ctx context.Context, ownerID uuid.UUID, name, link string) (model.Card, error) {
	if !validFieldLen(name) || !validHTTPURL(link) {
		return model.Card{}, model.NewErrInvalidCardData()
	}

	card := model.Card{
		ID:        uuid.New(),
		Name:      name,
		Link:      link,
		OwnerID:   ownerID,
		Likes:     []uuid.UUID{},
		CreatedAt: time.Now(),
	}

	created, err := s.store.Create(ctx, card)
	if err != nil {
		return model.Card{}, fmt.Errorf("failed to create card: %w", err)
	}

	s.logger.Info("card service: card created",
		"card_id", created.ID,
		"owner_id", ownerID)

	return created, nil
}

// List returns all cards.
func (s *Card) List(ctx context.Context) ([]model.Card, error) {
	cards, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	return cards, nil
}

// Delete removes a card owned by the requester and returns it.
// Existence is checked before ownership: a missing card is NotFound and
// a foreign card is Forbidden, in that order, regardless of concurrency.
func (s *Card) Delete(ctx context.Context, requesterID, cardID uuid.UUID) (model.Card, error) {
	card, err := s.store.GetByID(ctx, cardID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Card{}, model.NewErrCardNotFound()
	}
	if err != nil {
		return model.Card{}, fmt.Errorf("failed to get card: %w", err)
	}

	if card.OwnerID != requesterID {
		s.logger.Info("card service: delete denied",
			"card_id", cardID,
			"owner_id", card.OwnerID,
			"requester_id", requesterID)
		return model.Card{}, model.NewErrCardAccessDenied()
	}

	deleted, err := s.store.Delete(ctx, cardID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Card{}, model.NewErrCardNotFound()
	}
	if err != nil {
		return model.Card{}, fmt.Errorf("failed to delete card: %w", err)
	}

	s.logger.Info("card service: card deleted",
		"card_id", cardID,
		"requester_id", requesterID)

	return deleted, nil
}

// Like adds the user to the card's likes set. Liking an already liked
// card is a no-op, not an error.
func (s *Card) Like(ctx context.Context, cardID, userID uuid.UUID) (model.Card, error) {
	card, err := s.store.AddLike(ctx, cardID, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Card{}, model.NewErrCardNotFound()
	}
	if err != nil {
		return model.Card{}, fmt.Errorf("failed to add like: %w", err)
	}

	return card, nil
}

// Dislike removes the user from the card's likes set. Removing an
// absent like is a no-op.
func (s *Card) Dislike(ctx context.Context, cardID, userID uuid.UUID) (model.Card, error) {
	card, err := s.store.RemoveLike(ctx, cardID, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Card{}, model.NewErrCardNotFound()
	}
	if err != nil {
		return model.Card{}, fmt.Errorf("failed to remove like: %w", err)
	}

	return card, nil
}
