package handler

import (
	"errors"
	"net/http"

	"github.com/mrkiwinator/mesto-server/internal/model"
)

func statusFromKind(kind model.Kind) int {
	switch kind {
	case model.KindBadRequest:
		return http.StatusBadRequest
	case model.KindUnauthorized:
		return http.StatusUnauthorized
	case model.KindForbidden:
		return http.StatusForbidden
	case model.KindNotFound:
		return http.StatusNotFound
	case model.KindConflict:
		return http.StatusConflict
	case model.KindInternal:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// handleError is the only boundary translating errors to responses.
// Classified errors carry their kind and client message; anything else,
// including raw store and crypto failures, collapses into a generic 500.
func handleError(w http.ResponseWriter, err error) {
	var apiErr *model.Error
	if errors.As(err, &apiErr) {
		writeError(w, statusFromKind(apiErr.Kind), apiErr.Message)
		return
	}

	if errors.Is(err, model.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Запрашиваемый ресурс не найден")
		return
	}

	writeError(w, http.StatusInternalServerError, "Произошла ошибка сервера")
}
