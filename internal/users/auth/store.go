// Copyright (c) 2026 Yiffer.xyz. All rights reserved.
// Author: contact@yiffer.xyz

package auth

import "context"

// UserRepository is the data access contract for user accounts.
type UserRepository interface {
	FindByID(context context.Context, id int) (*User, error)
	FindByUsername(context context.Context, username string) (*User, error)
	FindByEmail(context context.Context, email string) (*User, error)
	Create(context context.Context, user *User) (int, error)
}

// SessionStore holds refresh sessions. Implementations expire sessions on
// their own; Find never returns an expired session.
type SessionStore interface {
	Save(context context.Context, session *Session) error
	Find(context context.Context, sessionID string) (*Session, error)
	Delete(context context.Context, sessionID string) error
}
