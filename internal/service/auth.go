package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mrkiwinator/mesto-server/internal/logger"
	"github.com/mrkiwinator/mesto-server/internal/model"
)

const bcryptCost = 10

// Auth handles registration and login.
type Auth struct {
	userStore model.UserStore
	tokens    model.TokenManager
	logger    *logger.Logger
}

// NewAuth creates an Auth service.
func NewAuth(userStore model.UserStore, tokens model.TokenManager, logger *logger.Logger) *Auth {
	return &Auth{
		userStore: userStore,
		tokens:    tokens,
		logger:    logger,
	}
}

// RegisterParams contains registration input. Name, About and Avatar are
// optional: empty values fall back to the defaults.
type RegisterParams struct {
	Email    string
	Password string
	Name     string
	About    string
	Avatar   string
}

func (p *RegisterParams) applyDefaults() {
	if p.Name == "" {
		p.Name = model.DefaultUserName
	}
	if p.About == "" {
		p.About = model.DefaultUserAbout
	}
	if p.Avatar == "" {
		p.Avatar = model.DefaultUserAvatar
	}
}

func (p RegisterParams) validate() error {
	if !validEmail(p.Email) || p.Password == "" {
		return model.NewErrInvalidUserData()
	}
	if !validFieldLen(p.Name) || !validFieldLen(p.About) || !validHTTPURL(p.Avatar) {
		return model.NewErrInvalidUserData()
	}
	return nil
}

// Register creates a user account. The password is hashed with a
// per-call random salt; the plaintext is never stored. A duplicate email
// surfaces as a Conflict error from the store.
func (a *Auth) Register(ctx context.Context, params RegisterParams) (model.User, error) {
	a.logger.Debug("auth service: starting user registration",
		"email", params.Email)

	params.applyDefaults()
	if err := params.validate(); err != nil {
		a.logger.Info("auth service: invalid registration input",
			"email", params.Email)
		return model.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcryptCost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Email:        params.Email,
		PasswordHash: string(hash),
		Name:         params.Name,
		About:        params.About,
		Avatar:       params.Avatar,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := a.userStore.Create(ctx, user)
	if err != nil {
		a.logger.Error("auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return model.User{}, err
	}

	a.logger.Info("auth service: user registered",
		"email", created.Email,
		"user_id", created.ID)

	return created, nil
}

// Login verifies credentials and issues a session token. An unknown
// email and a wrong password produce the identical Unauthorized error so
// the response does not reveal which one failed.
func (a *Auth) Login(ctx context.Context, email, password string) (model.User, string, error) {
	a.logger.Debug("auth service: starting login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, "", model.NewErrWrongCredentials()
	}
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.User{}, "", model.NewErrWrongCredentials()
	}

	tokenString, err := a.tokens.Generate(user.ID)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	a.logger.Info("auth service: login succeeded",
		"email", email,
		"user_id", user.ID)

	return user, tokenString, nil
}
