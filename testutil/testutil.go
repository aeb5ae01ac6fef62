// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/waterlily/auth"
	"github.com/danielhkuo/waterlily/cliparse"
	"github.com/danielhkuo/waterlily/db"
)

// TestDBURL is an in-memory sqlite database, private to each connection pool
const TestDBURL = ":memory:"

// TestPasswordHash is the bcrypt hash (cost 10) of TestPassword
var TestPasswordHash = mustHash(TestPassword)

const TestPassword = "correct horse"

func mustHash(pw string) string {
	h, err := auth.HashPassword(pw)
	if err != nil {
		panic(err)
	}
	return h
}

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.SQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3000,
		DatabaseURL:  TestDBURL,
		DatabaseType: cliparse.DatabaseSQLite,
		JWTSecret:    "test-jwt-secret",
		JWTExpiresIn: time.Hour,
		CORSOrigin:   "http://localhost:5173",
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// CreateTestUser inserts a user with TestPassword and returns its ID
func CreateTestUser(t *testing.T, conn *sql.DB, name, email string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO users (name, email, password, is_admin, created_at, updated_at)
		VALUES (?, ?, ?, 0, ?, ?)
		RETURNING id
	`, name, email, TestPasswordHash, time.Now().UTC(), time.Now().UTC()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// InsertTestAnswer writes an answer row with an explicit timestamp
func InsertTestAnswer(t *testing.T, conn *sql.DB, userID int64, surveyFormID string, questionID int64, answer string, at time.Time) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO survey_responses (user_id, question_id, answer, survey_form_id, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`, userID, questionID, answer, surveyFormID, at.UTC()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test answer: %v", err)
	}

	return id
}

// CountAnswers returns how many answer rows exist in total
func CountAnswers(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM survey_responses`).Scan(&n); err != nil {
		t.Fatalf("Failed to count answers: %v", err)
	}
	return n
}

// TestToken issues a bearer token for the user using the test config secret
func TestToken(t *testing.T, cfg cliparse.Config, userID int64, email string) string {
	t.Helper()

	tok, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiresIn).Issue(auth.Identity{ID: userID, Email: email})
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}
	return tok
}

// BearerHeader builds the Authorization header map for MakeRequest
func BearerHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		var jsonBody []byte
		if raw, ok := body.(string); ok {
			jsonBody = []byte(raw)
		} else {
			jsonBody, _ = json.Marshal(body)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
