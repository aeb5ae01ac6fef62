// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/waterlily/apperr"
	"github.com/danielhkuo/waterlily/auth"
	"github.com/danielhkuo/waterlily/models"
)

func TestAuthenticate(t *testing.T) {
	issuer := auth.NewTokenIssuer("middleware-secret", time.Hour)
	valid, err := issuer.Issue(auth.Identity{ID: 7, Email: "ann@example.com", IsAdmin: true})
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	foreign, err := auth.NewTokenIssuer("other-secret", time.Hour).Issue(auth.Identity{ID: 7, Email: "ann@example.com"})
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	testCases := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{"valid token", "Bearer " + valid, http.StatusOK},
		{"lowercase scheme", "bearer " + valid, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"scheme only", "Bearer", http.StatusUnauthorized},
		{"empty token", "Bearer   ", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"other secret", "Bearer " + foreign, http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			var got auth.Identity
			handler := Authenticate(issuer, func(w http.ResponseWriter, r *http.Request) {
				called = true
				got, _ = IdentityFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/api/survey-responses/my", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected status %d, got %d", tc.expectedStatus, w.Code)
			}

			if tc.expectedStatus != http.StatusOK {
				if called {
					t.Error("Expected handler not to run")
				}
				var resp models.ErrorResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("Failed to decode error response: %v", err)
				}
				if resp.Error != "Unauthorized" || resp.Message != "Unauthorized" {
					t.Errorf("Expected 'Unauthorized' error body, got %+v", resp)
				}
				return
			}

			if got.ID != 7 || got.Email != "ann@example.com" || !got.IsAdmin {
				t.Errorf("Unexpected identity in context: %+v", got)
			}
		})
	}
}

func TestIdentityFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if _, ok := IdentityFromContext(req.Context()); ok {
		t.Error("Expected no identity on a bare request")
	}
}

func TestErrUnauthorizedKind(t *testing.T) {
	if !apperr.Is(ErrUnauthorized, apperr.KindAuthentication) {
		t.Errorf("Expected an authentication error, got %v", ErrUnauthorized)
	}
	if apperr.Status(ErrUnauthorized) != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", apperr.Status(ErrUnauthorized))
	}
}
