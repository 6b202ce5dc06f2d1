// Copyright (c) 2026 Yiffer.xyz. All rights reserved.
// Author: contact@yiffer.xyz

package auth_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/apperr"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/sec"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/users/auth"
)

type fakeUsers struct {
	byUsername map[string]*auth.User
	byEmail    map[string]*auth.User
	byID       map[int]*auth.User
	nextID     int
}

func (f *fakeUsers) FindByID(_ context.Context, id int) (*auth.User, error) {
	if user, ok := f.byID[id]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUsers) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	if user, ok := f.byUsername[username]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	if user, ok := f.byEmail[email]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUsers) Create(_ context.Context, user *auth.User) (int, error) {
	f.nextID++
	stored := *user
	stored.ID = f.nextID
	if f.byID == nil {
		f.byID = map[int]*auth.User{}
		f.byUsername = map[string]*auth.User{}
		f.byEmail = map[string]*auth.User{}
	}
	f.byID[stored.ID] = &stored
	f.byUsername[stored.Username] = &stored
	f.byEmail[stored.Email] = &stored
	return stored.ID, nil
}

type fakeSessions struct {
	sessions map[string]*auth.Session
}

func (f *fakeSessions) Save(_ context.Context, session *auth.Session) error {
	if f.sessions == nil {
		f.sessions = map[string]*auth.Session{}
	}
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessions) Find(_ context.Context, sessionID string) (*auth.Session, error) {
	if session, ok := f.sessions[sessionID]; ok {
		return session, nil
	}
	return nil, apperr.NotFound("Session")
}

func (f *fakeSessions) Delete(_ context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

func newService(t *testing.T, users *fakeUsers, sessions *fakeSessions) *auth.Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return auth.NewService(users, sessions, nil, logger)
}

func TestRegister(t *testing.T) {
	users := &fakeUsers{}
	service := newService(t, users, &fakeSessions{})

	user, err := service.Register(context.Background(), "malann", "mal@yiffer.xyz", "hunter22")
	require.NoError(t, err)

	assert.Equal(t, 1, user.ID)
	assert.Equal(t, sec.RoleUser, user.Role)
	assert.NotEqual(t, "hunter22", user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("hunter22", user.PasswordHash))
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"short_username", "m", "mal@yiffer.xyz", "hunter22"},
		{"bad_email", "malann", "not-an-email", "hunter22"},
		{"short_password", "malann", "mal@yiffer.xyz", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newService(t, &fakeUsers{}, &fakeSessions{})
			_, err := service.Register(context.Background(), tt.username, tt.email, tt.password)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	users := &fakeUsers{}
	service := newService(t, users, &fakeSessions{})

	_, err := service.Register(context.Background(), "malann", "mal@yiffer.xyz", "hunter22")
	require.NoError(t, err)

	_, err = service.Login(context.Background(), "malann", "wrong")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	service := newService(t, &fakeUsers{}, &fakeSessions{})

	_, err := service.Login(context.Background(), "nobody", "hunter22")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

func TestLogout_RemovesSession(t *testing.T) {
	sessions := &fakeSessions{sessions: map[string]*auth.Session{
		"sid-1": {ID: "sid-1", UserID: 1, ExpiresAt: time.Now().Add(time.Hour)},
	}}
	service := newService(t, &fakeUsers{}, sessions)

	require.NoError(t, service.Logout(context.Background(), "sid-1"))
	_, err := sessions.Find(context.Background(), "sid-1")
	require.Error(t, err)
}
