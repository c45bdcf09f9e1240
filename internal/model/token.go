package model

import "github.com/google/uuid"

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "jwt"

// TokenManager issues and verifies session tokens.
type TokenManager interface {
	Generate(userID uuid.UUID) (string, error)
	Parse(token string) (uuid.UUID, error)
}
