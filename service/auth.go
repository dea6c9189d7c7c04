package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/loopgrid/domain"
	"github.com/beka-birhanu/loopgrid/service/i"
	"github.com/google/uuid"
)

// Claim keys carried by player tokens.
const (
	ClaimUserID   = "userID"
	ClaimUsername = "username"

	tokenLifetime = 24 * time.Hour
)

var _ i.Authenticator = &Auth{}

// Auth registers players and signs them in.
type Auth struct {
	userRepo  i.UserRepo
	tokenizer i.Tokenizer
	logger    i.Logger
}

// NewAuthService creates an Auth service.
func NewAuthService(userRepo i.UserRepo, tokenizer i.Tokenizer, logger i.Logger) (*Auth, error) {
	if userRepo == nil || tokenizer == nil || logger == nil {
		return nil, errors.New("auth service: missing dependency")
	}
	return &Auth{
		userRepo:  userRepo,
		tokenizer: tokenizer,
		logger:    logger,
	}, nil
}

// Register creates a player account.
func (a *Auth) Register(ctx context.Context, username, password string) (*dmn.User, error) {
	if _, err := a.userRepo.ByUsername(ctx, username); err == nil {
		return nil, dmn.ErrUsernameConflict
	} else if !errors.Is(err, dmn.ErrUserNotFound) {
		return nil, err
	}

	user, err := dmn.NewUser(dmn.UserConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return nil, err
	}

	if err := a.userRepo.Save(ctx, user); err != nil {
		a.logger.Error(fmt.Sprintf("Saving user %s: %s", username, err))
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("Registered user: ID=%s Username=%s", user.ID, user.Username))
	return user, nil
}

// SignIn checks the credentials and returns the user with a fresh token.
func (a *Auth) SignIn(ctx context.Context, username, password string) (*dmn.User, string, error) {
	user, err := a.userRepo.ByUsername(ctx, username)
	if err != nil {
		return nil, "", dmn.ErrInvalidCredential
	}

	if !user.VerifyPassword(password) {
		return nil, "", dmn.ErrInvalidCredential
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		ClaimUserID:   user.ID.String(),
		ClaimUsername: user.Username,
	}, tokenLifetime)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
