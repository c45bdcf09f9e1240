package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mrkiwinator/mesto-server/internal/logger"
	"github.com/mrkiwinator/mesto-server/internal/model"
	"github.com/mrkiwinator/mesto-server/internal/service"
)

// sessionCookieMaxAge is the client-side cookie lifetime in seconds. It
// is advisory: the token's embedded expiry is authoritative.
const sessionCookieMaxAge = 3600

// Auth handles registration, login and logout requests.
type Auth struct {
	service *service.Auth
	logger  *logger.Logger
}

// NewAuth creates an Auth handler.
func NewAuth(service *service.Auth, logger *logger.Logger) *Auth {
	return &Auth{service: service, logger: logger}
}

// SignUp handles POST /signup.
func (h *Auth) SignUp(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		About    string `json:"about"`
		Avatar   string `json:"avatar"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, model.NewErrInvalidUserData())
		return
	}

	user, err := h.service.Register(r.Context(), service.RegisterParams{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		About:    req.About,
		Avatar:   req.Avatar,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user.Profile())
}

// SignIn handles POST /signin. On success the session token is set as an
// http-only cookie and the public profile is returned.
func (h *Auth) SignIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, model.NewErrInvalidUserData())
		return
	}

	user, tokenString, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     model.SessionCookieName,
		Value:    tokenString,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	writeJSON(w, http.StatusOK, user.Profile())
}

// SignOut handles /signout. It always succeeds: the server keeps no
// session state, so logout only clears the client-side cookie.
func (h *Auth) SignOut(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     model.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Выход выполнен"})
}
