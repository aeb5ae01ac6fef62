// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/danielhkuo/waterlily/apperr"
	"github.com/danielhkuo/waterlily/db"
	"github.com/danielhkuo/waterlily/models"
)

// ErrUserExists is returned when the email is already registered
var ErrUserExists = apperr.Conflict("User already exists")

type UserStore struct {
	db      *sql.DB
	dialect db.Dialect
	now     func() time.Time
}

func NewUserStore(conn *sql.DB, d db.Dialect) *UserStore {
	return &UserStore{
		db:      conn,
		dialect: d,
		now:     storeClock,
	}
}

// Create inserts a user. passwordHash must already be hashed.
func (s *UserStore) Create(ctx context.Context, name, email, passwordHash string, isAdmin bool) (models.User, error) {
	u := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		IsAdmin:      isAdmin,
		CreatedAt:    s.now(),
	}

	err := s.db.QueryRowContext(ctx, s.dialect.Rebind(`
		INSERT INTO users (name, email, password, is_admin, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`), u.Name, u.Email, u.PasswordHash, u.IsAdmin, u.CreatedAt, u.CreatedAt).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrUserExists
		}
		return models.User{}, apperr.Internal("insert user", err)
	}

	return u, nil
}

// FindByEmail returns nil, nil when no user has the email
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, s.dialect.Rebind(`
		SELECT id, name, email, password, is_admin, created_at
		FROM users
		WHERE email = ?
	`), email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Internal("query user", err)
	}

	return &u, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
