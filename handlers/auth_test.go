// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/waterlily/auth"
	"github.com/danielhkuo/waterlily/middleware"
	"github.com/danielhkuo/waterlily/models"
	"github.com/danielhkuo/waterlily/testutil"
)

func newTestAuthHandler(t *testing.T) (*AuthHandler, *auth.TokenIssuer, func()) {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiresIn)
	return NewAuthHandler(conn, cfg, issuer), issuer, func() { conn.Close() }
}

func TestRegister(t *testing.T) {
	testCases := []struct {
		name            string
		body            interface{}
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:           "valid registration",
			body:           models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "admin registration",
			body:           models.RegisterRequest{Name: "Root", Email: "root@example.com", Password: "secret", IsAdmin: true},
			expectedStatus: http.StatusCreated,
		},
		{
			name:            "missing name",
			body:            models.RegisterRequest{Email: "ann@example.com", Password: "secret"},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Name, email, and password are required",
		},
		{
			name:            "missing email",
			body:            models.RegisterRequest{Name: "Ann", Password: "secret"},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Name, email, and password are required",
		},
		{
			name:            "missing password",
			body:            models.RegisterRequest{Name: "Ann", Email: "ann@example.com"},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Name, email, and password are required",
		},
		{
			name:            "invalid JSON",
			body:            `{"name":`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid JSON",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, issuer, done := newTestAuthHandler(t)
			defer done()

			req := testutil.MakeRequest("POST", "/api/auth/register", tc.body, nil)
			w := httptest.NewRecorder()

			h.Register(w, req)

			testutil.AssertStatus(t, w, tc.expectedStatus)

			if tc.expectedStatus != http.StatusCreated {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Message != tc.expectedMessage {
					t.Errorf("Expected message '%s', got '%s'", tc.expectedMessage, resp.Message)
				}
				return
			}

			var resp models.AuthResponse
			testutil.AssertJSON(t, w, &resp)

			reg := tc.body.(models.RegisterRequest)
			if resp.User.ID == 0 {
				t.Error("Expected a user id")
			}
			if resp.User.Email != reg.Email || resp.User.Name != reg.Name || resp.User.IsAdmin != reg.IsAdmin {
				t.Errorf("Unexpected user in response: %+v", resp.User)
			}

			id, err := issuer.Verify(resp.Token)
			if err != nil {
				t.Fatalf("Expected a valid token, got error: %v", err)
			}
			if id.ID != resp.User.ID || id.Email != reg.Email || id.IsAdmin != reg.IsAdmin {
				t.Errorf("Token identity %+v does not match user %+v", id, resp.User)
			}
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	h, _, done := newTestAuthHandler(t)
	defer done()

	body := models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret"}

	w := httptest.NewRecorder()
	h.Register(w, testutil.MakeRequest("POST", "/api/auth/register", body, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	w = httptest.NewRecorder()
	h.Register(w, testutil.MakeRequest("POST", "/api/auth/register", body, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "User already exists" {
		t.Errorf("Expected 'User already exists', got '%s'", resp.Message)
	}
}

func TestLogin(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiresIn)
	h := NewAuthHandler(conn, cfg, issuer)

	userID := testutil.CreateTestUser(t, conn, "Ann", "ann@example.com")

	testCases := []struct {
		name            string
		body            interface{}
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:           "valid credentials",
			body:           models.LoginRequest{Email: "ann@example.com", Password: testutil.TestPassword},
			expectedStatus: http.StatusOK,
		},
		{
			name:            "wrong password",
			body:            models.LoginRequest{Email: "ann@example.com", Password: "wrong"},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid credentials",
		},
		{
			name:            "unknown email",
			body:            models.LoginRequest{Email: "nobody@example.com", Password: testutil.TestPassword},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid credentials",
		},
		{
			name:            "missing password",
			body:            models.LoginRequest{Email: "ann@example.com"},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Email and password are required",
		},
		{
			name:            "missing email",
			body:            models.LoginRequest{Password: testutil.TestPassword},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Email and password are required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/auth/login", tc.body, nil)
			w := httptest.NewRecorder()

			h.Login(w, req)

			testutil.AssertStatus(t, w, tc.expectedStatus)

			if tc.expectedStatus != http.StatusOK {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Message != tc.expectedMessage {
					t.Errorf("Expected message '%s', got '%s'", tc.expectedMessage, resp.Message)
				}
				return
			}

			var resp models.AuthResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.User.ID != userID {
				t.Errorf("Expected user id %d, got %d", userID, resp.User.ID)
			}
			if _, err := issuer.Verify(resp.Token); err != nil {
				t.Errorf("Expected a valid token, got error: %v", err)
			}
		})
	}
}

func TestMe(t *testing.T) {
	h, issuer, done := newTestAuthHandler(t)
	defer done()

	token, err := issuer.Issue(auth.Identity{ID: 12, Email: "ann@example.com", IsAdmin: true})
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	handler := middleware.Authenticate(issuer, h.Me)

	t.Run("with token", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler(w, testutil.MakeRequest("GET", "/api/auth/me", nil, testutil.BearerHeader(token)))

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.MeResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.ID != 12 || resp.Email != "ann@example.com" || !resp.IsAdmin {
			t.Errorf("Unexpected identity: %+v", resp)
		}
	})

	t.Run("without token", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler(w, testutil.MakeRequest("GET", "/api/auth/me", nil, nil))
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})
}
