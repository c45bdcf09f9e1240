package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mrkiwinator/mesto-server/internal/mocks"
	"github.com/mrkiwinator/mesto-server/internal/model"
	"github.com/mrkiwinator/mesto-server/internal/testutil"
	"github.com/mrkiwinator/mesto-server/internal/token"
)

func TestAuth_Register_AppliesDefaults(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	tokens := &mocks.TokenManager{}

	var created model.User
	userStore.On("Create", mock.Anything, mock.AnythingOfType("model.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(model.User)
		}).
		Return(model.User{ID: uuid.New(), Email: "a@b.com", Name: model.DefaultUserName}, nil)

	a := NewAuth(userStore, tokens, testutil.MakeNoopLogger())

	got, err := a.Register(ctx, RegisterParams{Email: "a@b.com", Password: "secret12"})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultUserName, got.Name)

	assert.Equal(t, model.DefaultUserName, created.Name)
	assert.Equal(t, model.DefaultUserAbout, created.About)
	assert.Equal(t, model.DefaultUserAvatar, created.Avatar)
	assert.NotEqual(t, "secret12", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret12")))
}

func TestAuth_Register_InvalidInput(t *testing.T) {
	ctx := context.Background()
	a := NewAuth(&mocks.UserStore{}, &mocks.TokenManager{}, testutil.MakeNoopLogger())

	tests := []struct {
		name   string
		params RegisterParams
	}{
		{name: "bad email", params: RegisterParams{Email: "not-an-email", Password: "secret12"}},
		{name: "empty password", params: RegisterParams{Email: "a@b.com", Password: ""}},
		{name: "name too short", params: RegisterParams{Email: "a@b.com", Password: "secret12", Name: "x"}},
		{name: "about too long", params: RegisterParams{Email: "a@b.com", Password: "secret12", About: "оченьдлинноеполеоченьдлинноеполе"}},
		{name: "avatar not http", params: RegisterParams{Email: "a@b.com", Password: "secret12", Avatar: "ftp://pictures.example.com/a.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Register(ctx, tt.params)
			var apiErr *model.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, model.KindBadRequest, apiErr.Kind)
		})
	}
}

func TestAuth_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	userStore.On("Create", mock.Anything, mock.Anything).Return(model.User{}, model.NewErrEmailIsTaken())

	a := NewAuth(userStore, &mocks.TokenManager{}, testutil.MakeNoopLogger())

	_, err := a.Register(ctx, RegisterParams{Email: "taken@b.com", Password: "secret12"})
	var apiErr *model.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, model.KindConflict, apiErr.Kind)
}

func TestAuth_Login_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	tokens := &mocks.TokenManager{}

	hash, err := bcrypt.GenerateFromPassword([]byte("secret12"), bcryptCost)
	require.NoError(t, err)

	userID := uuid.New()
	userStore.On("GetByEmail", mock.Anything, "a@b.com").
		Return(model.User{ID: userID, Email: "a@b.com", PasswordHash: string(hash)}, nil)
	tokens.On("Generate", userID).Return("session-token", nil)

	a := NewAuth(userStore, tokens, testutil.MakeNoopLogger())

	user, tokenString, err := a.Login(ctx, "a@b.com", "secret12")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "session-token", tokenString)
}

func TestAuth_Login_WrongCredentials(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}

	hash, err := bcrypt.GenerateFromPassword([]byte("secret12"), bcryptCost)
	require.NoError(t, err)

	userStore.On("GetByEmail", mock.Anything, "unknown@b.com").Return(model.User{}, model.ErrNotFound)
	userStore.On("GetByEmail", mock.Anything, "a@b.com").
		Return(model.User{ID: uuid.New(), PasswordHash: string(hash)}, nil)

	a := NewAuth(userStore, &mocks.TokenManager{}, testutil.MakeNoopLogger())

	// Unknown email and wrong password must be indistinguishable.
	_, _, errUnknown := a.Login(ctx, "unknown@b.com", "secret12")
	_, _, errWrongPass := a.Login(ctx, "a@b.com", "wrong-pass")

	for _, err := range []error{errUnknown, errWrongPass} {
		var apiErr *model.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, model.KindUnauthorized, apiErr.Kind)
		assert.Equal(t, "Неверный логин или пароль", apiErr.Message)
	}
}

func TestAuth_RegisterThenLogin_TokenResolvesIdentity(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	tokens := token.NewJWT("secret")

	var created model.User
	userStore.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(model.User)
		}).
		Return(model.User{}, nil).
		Once()

	a := NewAuth(userStore, tokens, testutil.MakeNoopLogger())

	_, err := a.Register(ctx, RegisterParams{Email: "new@b.com", Password: "secret12"})
	require.NoError(t, err)

	userStore.On("GetByEmail", mock.Anything, "new@b.com").Return(created, nil)

	_, tokenString, err := a.Login(ctx, "new@b.com", "secret12")
	require.NoError(t, err)

	subject, err := tokens.Parse(tokenString)
	require.NoError(t, err)
	assert.Equal(t, created.ID, subject)
}
