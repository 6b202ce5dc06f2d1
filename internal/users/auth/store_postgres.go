// Copyright (c) 2026 Yiffer.xyz. All rights reserved.
// Author: contact@yiffer.xyz

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/database/schema"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/dberr"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (repository *PostgresUserRepository) FindByID(context context.Context, id int) (*User, error) {
	return repository.findBy(context, schema.Users.ID, id)
}

func (repository *PostgresUserRepository) FindByUsername(context context.Context, username string) (*User, error) {
	return repository.findBy(context, schema.Users.Username, username)
}

func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	return repository.findBy(context, schema.Users.Email, email)
}

func (repository *PostgresUserRepository) findBy(context context.Context, column string, value any) (*User, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.Users.ID, schema.Users.Username, schema.Users.Email,
		schema.Users.PasswordHash, schema.Users.Role, schema.Users.CreatedAt,
		schema.Users.Table, column,
	)

	user := &User{}
	err := repository.db.QueryRow(context, query, value).Scan(
		&user.ID, &user.Username, &user.Email,
		&user.PasswordHash, &user.Role, &user.CreatedAt,
	)
	return user, dberr.Wrap(err, "find_user")
}

func (repository *PostgresUserRepository) Create(context context.Context, user *User) (int, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4) RETURNING %s`,
		schema.Users.Table,
		schema.Users.Username, schema.Users.Email, schema.Users.PasswordHash, schema.Users.Role,
		schema.Users.ID,
	)

	var id int
	err := repository.db.QueryRow(context, query,
		user.Username, user.Email, user.PasswordHash, user.Role,
	).Scan(&id)
	if err != nil {
		return 0, dberr.Wrap(err, "create_user")
	}
	return id, nil
}
