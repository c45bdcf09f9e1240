package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/mrkiwinator/mesto-server/internal/logger"
	"github.com/mrkiwinator/mesto-server/internal/model"
	"github.com/mrkiwinator/mesto-server/internal/service"
)

// Card handles card requests.
type Card struct {
	service        *service.Card
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewCard creates a Card handler.
func NewCard(service *service.Card, contextManager model.ContextManager, logger *logger.Logger) *Card {
	return &Card{service: service, contextManager: contextManager, logger: logger}
}

// Create handles POST /cards. The owner is always the requester.
func (h *Card) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, model.NewErrUnauthorized())
		return
	}

	var req struct {
		Name string `json:"name"`
		Link string `json:"link"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, model.NewErrInvalidCardData())
		return
	}

	card, err := h.service.Create(r.Context(), userID, req.Name, req.Link)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, card)
}

// List handles GET /cards.
func (h *Card) List(w http.ResponseWriter, r *http.Request) {
	cards, err := h.service.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cards)
}

// Delete handles DELETE /cards/{id}. The malformed-id check runs before
// any store access, then the service checks existence before ownership.
func (h *Card) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, model.NewErrUnauthorized())
		return
	}

	cardID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(w, model.NewErrInvalidDeleteCardID())
		return
	}

	card, err := h.service.Delete(r.Context(), userID, cardID)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, card)
}

// Like handles PUT /cards/{id}/likes.
func (h *Card) Like(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, model.NewErrUnauthorized())
		return
	}

	cardID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(w, model.NewErrInvalidLikeCardID())
		return
	}

	card, err := h.service.Like(r.Context(), cardID, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, card)
}

// Dislike handles DELETE /cards/{id}/likes.
func (h *Card) Dislike(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, model.NewErrUnauthorized())
		return
	}

	cardID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(w, model.NewErrInvalidDislikeCardID())
		return
	}

	card, err := h.service.Dislike(r.Context(), cardID, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, card)
}
