package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrkiwinator/mesto-server/internal/testutil"
)

func TestLogging_Handle_PassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	l := NewLogging(testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/cards", nil)
	rec := httptest.NewRecorder()

	l.Handle(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, `{"ok":true}`, rec.Body.String())
}

func TestStatusRecorder_DefaultsToOK(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	l := NewLogging(testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	l.Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
