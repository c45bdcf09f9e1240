package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mrkiwinator/mesto-server/internal/model"
)

// sessionTTL is the signature-embedded validity of a session token. The
// client-side cookie expiry is shorter and advisory only; this value is
// authoritative.
const sessionTTL = 7 * 24 * time.Hour

// Claims represents session token claims with the user ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
}

// JWT implements model.TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
}

// NewJWT creates a token manager with the provided secret key.
func NewJWT(secretKey string) model.TokenManager {
	return &JWT{secretKey: secretKey}
}

// Generate creates a signed session token for the user.
func (j *JWT) Generate(userID uuid.UUID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// Parse validates the signature and expiry and extracts the user ID.
// Every failure mode collapses into model.ErrInvalidToken: a client must
// not be able to tell a malformed token from a bad signature or an
// expired one.
func (j *JWT) Parse(tokenString string) (uuid.UUID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return uuid.Nil, model.ErrInvalidToken
	}
	if !token.Valid {
		return uuid.Nil, model.ErrInvalidToken
	}
	if claims.UserID == uuid.Nil {
		return uuid.Nil, model.ErrInvalidToken
	}
	return claims.UserID, nil
}
