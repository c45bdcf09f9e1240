package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mrkiwinator/mesto-server/internal/model"
)

var _ model.CardStore = (*CardRepository)(nil)

type CardRepository struct {
	db *Connection
}

func NewCardRepository(db *Connection) *CardRepository {
	return &CardRepository{
		db: db,
	}
}

func (r *CardRepository) Create(ctx context.Context, card model.Card) (model.Card, error) {
	query := `INSERT INTO cards (id, name, link, owner_id, likes, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, name, link, owner_id, likes, created_at`

	var savedCard model.Card
	err := r.db.QueryRow(ctx, query,
		card.ID, card.Name, card.Link, card.OwnerID, card.Likes, card.CreatedAt,
	).Scan(
		&savedCard.ID, &savedCard.Name, &savedCard.Link, &savedCard.OwnerID,
		&savedCard.Likes, &savedCard.CreatedAt,
	)
	if err != nil {
		return model.Card{}, fmt.Errorf("failed to create card: %w", err)
	}

	return savedCard, nil
}

func (r *CardRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Card, error) {
	query := `SELECT id, name, link, owner_id, likes, created_at
			  FROM cards WHERE id = $1`

	var card model.Card
	err := r.db.QueryRow(ctx, query, id).Scan(
		&card.ID, &card.Name, &card.Link, &card.OwnerID, &card.Likes, &card.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Card{}, model.ErrNotFound
		}
		return model.Card{}, fmt.Errorf("failed to get card by id: %w", err)
	}

	return card, nil
}

func (r *CardRepository) List(ctx context.Context) ([]model.Card, error) {
	query := `SELECT id, name, link, owner_id, likes, created_at
			  FROM cards ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	var cards []model.Card
	for rows.Next() {
		var card model.Card
		err := rows.Scan(
			&card.ID, &card.Name, &card.Link, &card.OwnerID, &card.Likes, &card.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cards: %w", err)
	}

	return cards, nil
}

func (r *CardRepository) Delete(ctx context.Context, id uuid.UUID) (model.Card, error) {
	query := `DELETE FROM cards WHERE id = $1
			  RETURNING id, name, link, owner_id, likes, created_at`

	var card model.Card
	err := r.db.QueryRow(ctx, query, id).Scan(
		&card.ID, &card.Name, &card.Link, &card.OwnerID, &card.Likes, &card.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Card{}, model.ErrNotFound
		}
		return model.Card{}, fmt.Errorf("failed to delete card: %w", err)
	}

	return card, nil
}

// AddLike appends the user to the likes set unless already present.
// The membership check and the append happen inside one UPDATE, so the
// row lock makes concurrent likes safe and the set stays duplicate-free.
func (r *CardRepository) AddLike(ctx context.Context, cardID, userID uuid.UUID) (model.Card, error) {
	query := `UPDATE cards
			  SET likes = CASE WHEN $2 = ANY(likes) THEN likes ELSE array_append(likes, $2) END
			  WHERE id = $1
			  RETURNING id, name, link, owner_id, likes, created_at`

	var card model.Card
	err := r.db.QueryRow(ctx, query, cardID, userID).Scan(
		&card.ID, &card.Name, &card.Link, &card.OwnerID, &card.Likes, &card.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Card{}, model.ErrNotFound
		}
		return model.Card{}, fmt.Errorf("failed to add like: %w", err)
	}

	return card, nil
}

// RemoveLike removes every occurrence of the user from the likes set.
// Removing an absent like leaves the row unchanged and is not an error.
func (r *CardRepository) RemoveLike(ctx context.Context, cardID, userID uuid.UUID) (model.Card, error) {
	query := `UPDATE cards
			  SET likes = array_remove(likes, $2)
			  WHERE id = $1
			  RETURNING id, name, link, owner_id, likes, created_at`

	var card model.Card
	err := r.db.QueryRow(ctx, query, cardID, userID).Scan(
		&card.ID, &card.Name, &card.Link, &card.OwnerID, &card.Likes, &card.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Card{}, model.ErrNotFound
		}
		return model.Card{}, fmt.Errorf("failed to remove like: %w", err)
	}

	return card, nil
}
