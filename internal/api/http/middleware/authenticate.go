package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/mrkiwinator/mesto-server/internal/logger"
	"github.com/mrkiwinator/mesto-server/internal/model"
)

// TokenManager resolves the user ID from a session token.
type TokenManager interface {
	Parse(token string) (uuid.UUID, error)
}

// Authenticate validates the session cookie and injects the user ID into
// the request context. A missing or invalid token rejects the request
// before any handler runs.
type Authenticate struct {
	tokens         TokenManager
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates an Authenticate middleware instance.
func NewAuthenticate(tokens TokenManager, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, contextManager: contextManager, logger: logger}
}

// Handle wraps next with session authentication.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(model.SessionCookieName)
		if err != nil {
			m.reject(w)
			return
		}

		userID, err := m.tokens.Parse(cookie.Value)
		if err != nil {
			m.reject(w)
			return
		}

		ctx := m.contextManager.SetUserIDToContext(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// reject writes the uniform unauthorized response. Absent, malformed,
// forged and expired tokens are deliberately indistinguishable here.
func (m *Authenticate) reject(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Ошибка авторизации"})
}
