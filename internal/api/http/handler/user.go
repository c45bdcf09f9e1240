package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/mrkiwinator/mesto-server/internal/logger"
	"github.com/mrkiwinator/mesto-server/internal/model"
	"github.com/mrkiwinator/mesto-server/internal/service"
)

// User handles profile requests.
type User struct {
	service        *service.User
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a User handler.
func NewUser(service *service.User, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{service: service, contextManager: contextManager, logger: logger}
}

// List handles GET /users.
func (h *User) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	profiles := make([]model.Profile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, user.Profile())
	}
	writeJSON(w, http.StatusOK, profiles)
}

// GetMe handles GET /users/me.
func (h *User) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, model.NewErrUnauthorized())
		return
	}

	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user.Profile())
}

// GetByID handles GET /users/{id}.
func (h *User) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(w, model.NewErrInvalidUserID())
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user.Profile())
}

// UpdateProfile handles PATCH /users/me. It only ever touches the
// requester's own record.
func (h *User) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, model.NewErrUnauthorized())
		return
	}

	var req struct {
		Name  string `json:"name"`
		About string `json:"about"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, model.NewErrInvalidProfileData())
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), userID, req.Name, req.About)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user.Profile())
}

// UpdateAvatar handles PATCH /users/me/avatar.
func (h *User) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, model.NewErrUnauthorized())
		return
	}

	var req struct {
		Avatar string `json:"avatar"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, model.NewErrInvalidAvatarData())
		return
	}

	user, err := h.service.UpdateAvatar(r.Context(), userID, req.Avatar)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user.Profile())
}
