package handler

import (
	"net/http"

	"github.com/mrkiwinator/mesto-server/internal/model"
)

// Healthz is the liveness probe. It is one of the few routes that bypass
// session authentication.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NotFound answers every unmatched route.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	handleError(w, model.NewErrPageNotFound())
}
