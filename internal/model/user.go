package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Default profile fields applied on registration when the client omits them.
// Values match what the reference frontend expects for a fresh account.
const (
	DefaultUserName   = "Жак-Ив Кусто"
	DefaultUserAbout  = "Исследователь"
	DefaultUserAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name, about string) (User, error)
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatar string) (User, error)
}

// User represents a stored user account. PasswordHash is only populated
// by GetByEmail and must never leave the service layer.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	About        string
	Avatar       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the public view of a user, safe to serialize in responses.
type Profile struct {
	ID     uuid.UUID `json:"_id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	About  string    `json:"about"`
	Avatar string    `json:"avatar"`
}

// Profile strips authentication material from the user.
func (u User) Profile() Profile {
	return Profile{
		ID:     u.ID,
		Email:  u.Email,
		Name:   u.Name,
		About:  u.About,
		Avatar: u.Avatar,
	}
}
