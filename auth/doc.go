// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and bearer token utilities.

# Passwords

Passwords are stored as bcrypt hashes with cost 10:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, password) // ErrInvalidCredentials on mismatch

# Bearer Tokens

Tokens are HS256 JWTs carrying the caller identity:

	{"id": 1, "email": "ann@example.com", "is_admin": false, "iat": ..., "exp": ...}

TokenIssuer signs and verifies them:

	ti := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiresIn)
	token, err := ti.Issue(auth.Identity{ID: u.ID, Email: u.Email})
	id, err := ti.Verify(token)

Verify only accepts HS256, requires an expiry and a positive id, and returns
ErrInvalidToken for every failure so callers cannot tell a missing signature
from an expired token.
*/
package auth
