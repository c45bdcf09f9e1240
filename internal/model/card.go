package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CardStore defines persistence operations for cards.
//
// AddLike and RemoveLike must be single atomic store operations: the
// membership check and the mutation happen in one statement and the
// post-mutation state is returned, so concurrent likes of the same card
// never lose updates and never produce duplicate entries.
type CardStore interface {
	Create(ctx context.Context, card Card) (Card, error)
	GetByID(ctx context.Context, id uuid.UUID) (Card, error)
	List(ctx context.Context) ([]Card, error)
	Delete(ctx context.Context, id uuid.UUID) (Card, error)
	AddLike(ctx context.Context, cardID, userID uuid.UUID) (Card, error)
	RemoveLike(ctx context.Context, cardID, userID uuid.UUID) (Card, error)
}

// Card represents an image card. OwnerID is set once at creation and
// never reassigned. Likes is a set: no duplicates regardless of how many
// times the same user likes the card.
type Card struct {
	ID        uuid.UUID   `json:"_id"`
	Name      string      `json:"name"`
	Link      string      `json:"link"`
	OwnerID   uuid.UUID   `json:"owner"`
	Likes     []uuid.UUID `json:"likes"`
	CreatedAt time.Time   `json:"createdAt"`
}
