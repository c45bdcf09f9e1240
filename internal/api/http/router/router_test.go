package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	httpcontext "github.com/mrkiwinator/mesto-server/internal/api/http/context"
	"github.com/mrkiwinator/mesto-server/internal/mocks"
	"github.com/mrkiwinator/mesto-server/internal/model"
	"github.com/mrkiwinator/mesto-server/internal/service"
	"github.com/mrkiwinator/mesto-server/internal/testutil"
	"github.com/mrkiwinator/mesto-server/internal/token"
)

func setupRouter(t *testing.T, userStore *mocks.UserStore, cardStore *mocks.CardStore) (http.Handler, model.TokenManager) {
	t.Helper()

	log := testutil.MakeNoopLogger()
	tokens := token.NewJWT("test-secret")
	contextManager := httpcontext.NewManager()

	authService := service.NewAuth(userStore, tokens, log)
	userService := service.NewUser(userStore, log)
	cardService := service.NewCard(cardStore, log)

	r := New(authService, userService, cardService, tokens, contextManager, log)
	return r.Register(), tokens
}

func TestRouter_Healthz(t *testing.T) {
	h, _ := setupRouter(t, &mocks.UserStore{}, &mocks.CardStore{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_ProtectedRoutesRequireSession(t *testing.T) {
	cardStore := &mocks.CardStore{}
	h, _ := setupRouter(t, &mocks.UserStore{}, cardStore)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users"},
		{http.MethodGet, "/users/me"},
		{http.MethodPatch, "/users/me"},
		{http.MethodPatch, "/users/me/avatar"},
		{http.MethodGet, "/cards"},
		{http.MethodPost, "/cards"},
		{http.MethodDelete, "/cards/" + uuid.NewString()},
		{http.MethodPut, "/cards/" + uuid.NewString() + "/likes"},
		{http.MethodDelete, "/cards/" + uuid.NewString() + "/likes"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, nil)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"message":"Ошибка авторизации"}`, rec.Body.String())
		})
	}

	cardStore.AssertNotCalled(t, "List")
}

func TestRouter_UnknownRoute(t *testing.T) {
	h, tokens := setupRouter(t, &mocks.UserStore{}, &mocks.CardStore{})

	sessionToken, err := tokens.Generate(uuid.New())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	req.AddCookie(&http.Cookie{Name: model.SessionCookieName, Value: sessionToken})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Запрашиваемая страница не найдена"}`, rec.Body.String())
}

func TestRouter_SignInSetsSessionCookie(t *testing.T) {
	password := "secret-pass"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := model.User{
		ID:           uuid.New(),
		Email:        "jacques@sea.fr",
		PasswordHash: string(hash),
		Name:         model.DefaultUserName,
		About:        model.DefaultUserAbout,
		Avatar:       model.DefaultUserAvatar,
	}

	userStore := &mocks.UserStore{}
	userStore.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	h, tokens := setupRouter(t, userStore, &mocks.CardStore{})

	body := `{"email":"jacques@sea.fr","password":"secret-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/signin", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, model.SessionCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	userID, err := tokens.Parse(cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestRouter_AuthenticatedCardList(t *testing.T) {
	userID := uuid.New()

	cards := []model.Card{
		{
			ID:      uuid.New(),
			Name:    "Карачаевск",
			Link:    "https://example.com/karachaevsk.jpg",
			OwnerID: userID,
			Likes:   []uuid.UUID{},
		},
	}

	cardStore := &mocks.CardStore{}
	cardStore.On("List", mock.Anything).Return(cards, nil)

	h, tokens := setupRouter(t, &mocks.UserStore{}, cardStore)

	sessionToken, err := tokens.Generate(userID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/cards", nil)
	req.AddCookie(&http.Cookie{Name: model.SessionCookieName, Value: sessionToken})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), cards[0].ID.String())
	cardStore.AssertExpectations(t)
}
