// Copyright (c) 2026 Yiffer.xyz. All rights reserved.
// Author: contact@yiffer.xyz

package auth

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/apperr"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/constants"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/sec"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/validate"
	"github.com/ragnarob/yiffer.xyz-contributions/pkg/uuidv7"
)

// TokenResult is what a successful login or refresh returns.
type TokenResult struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in"`
}

type Service struct {
	users    UserRepository
	sessions SessionStore
	tokens   *sec.TokenService
	logger   *slog.Logger
}

func NewService(users UserRepository, sessions SessionStore, tokens *sec.TokenService, logger *slog.Logger) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates a regular user account. Moderator and admin roles are only
// ever granted out of band.
func (service *Service) Register(context context.Context, username, email, password string) (*User, error) {
	validator := &validate.Validator{}
	err := validator.
		Required(FieldUsername, username).
		MinLen(FieldUsername, username, 2).
		MaxLen(FieldUsername, username, 25).
		Email(FieldEmail, email).
		MinLen(FieldPassword, password, 6).
		Err()
	if err != nil {
		return nil, err
	}

	hash, err := sec.HashPassword(password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &User{
		Username:     username,
		Email:        strings.ToLower(email),
		PasswordHash: hash,
		Role:         sec.RoleUser,
	}
	id, err := service.users.Create(context, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	service.logger.InfoContext(context, "user registered", "user_id", id, "username", username)
	return user, nil
}

// Login authenticates by username or email and opens a refresh session.
func (service *Service) Login(context context.Context, login, password string) (*TokenResult, error) {
	validator := &validate.Validator{}
	err := validator.
		Required(FieldLogin, login).
		Required(FieldPassword, password).
		Err()
	if err != nil {
		return nil, err
	}

	user, err := service.findByLogin(context, login)
	if err != nil || !sec.CheckPasswordHash(password, user.PasswordHash) {
		// Same answer for unknown account and wrong password.
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	session := &Session{
		ID:        uuidv7.Must(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(constants.RefreshSessionTTL),
	}
	if err := service.sessions.Save(context, session); err != nil {
		return nil, err
	}

	accessToken, err := service.accessToken(user)
	if err != nil {
		return nil, err
	}

	return &TokenResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: session.ID,
		ExpiresIn:    int(constants.AccessTokenTTL.Seconds()),
	}, nil
}

// Refresh exchanges a live session for a fresh access token. The user's role
// is re-read so promotions and demotions take effect within one token TTL.
func (service *Service) Refresh(context context.Context, sessionID string) (*TokenResult, error) {
	session, err := service.sessions.Find(context, sessionID)
	if err != nil {
		return nil, apperr.Unauthorized("Session expired")
	}

	user, err := service.users.FindByID(context, session.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("Session expired")
	}

	accessToken, err := service.accessToken(user)
	if err != nil {
		return nil, err
	}

	return &TokenResult{
		User:        user,
		AccessToken: accessToken,
		ExpiresIn:   int(constants.AccessTokenTTL.Seconds()),
	}, nil
}

// Logout revokes the refresh session. Already-issued access tokens stay valid
// until they expire.
func (service *Service) Logout(context context.Context, sessionID string) error {
	return service.sessions.Delete(context, sessionID)
}

// Me returns the account behind a set of verified claims.
func (service *Service) Me(context context.Context, claims *sec.AuthClaims) (*User, error) {
	userID, err := strconv.Atoi(claims.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid token subject")
	}
	return service.users.FindByID(context, userID)
}

func (service *Service) findByLogin(context context.Context, login string) (*User, error) {
	if strings.Contains(login, "@") {
		return service.users.FindByEmail(context, strings.ToLower(login))
	}
	return service.users.FindByUsername(context, login)
}

func (service *Service) accessToken(user *User) (string, error) {
	token, err := service.tokens.GenerateAccessToken(
		strconv.Itoa(user.ID), user.Username, string(user.Role), constants.AccessTokenTTL)
	if err != nil {
		return "", apperr.Internal(err)
	}
	return token, nil
}
