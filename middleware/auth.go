// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/waterlily/apperr"
	"github.com/danielhkuo/waterlily/auth"
)

type identityKey struct{}

// ErrUnauthorized is the single answer for a missing, malformed or rejected token
var ErrUnauthorized = apperr.Authentication("Unauthorized")

// TokenVerifier checks a bearer token. auth.TokenIssuer satisfies it.
type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// Authenticate rejects requests without a valid bearer token before the
// handler runs. Every failure gets the same 401 body.
func Authenticate(verifier TokenVerifier, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			WriteError(w, r, ErrUnauthorized)
			return
		}

		id, err := verifier.Verify(token)
		if err != nil {
			slog.Debug("token rejected", "request_id", RequestID(r.Context()), "error", err)
			WriteError(w, r, ErrUnauthorized)
			return
		}

		next(w, r.WithContext(WithIdentity(r.Context(), id)))
	}
}

// WithIdentity stores the caller's identity in ctx
func WithIdentity(ctx context.Context, id auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity set by Authenticate
func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(auth.Identity)
	return id, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
