package models

import (
	"encoding/json"
	"time"
)

// Question type constants
const (
	TypeSingleChoice = "single-choice"
	TypeMultiChoice  = "multi-choice"
)

// MultiSeparator joins the parts of a multi-choice answer
const MultiSeparator = ";"

// TimeLayout is the fixed-width ISO-8601 form used for every timestamp on
// the wire. Fixed width keeps lexical order equal to chronological order.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTime renders t in UTC using TimeLayout
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// Request types

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SubmitRequest keeps each field raw so its JSON type can be checked
// before anything is stored.
type SubmitRequest struct {
	QuestionID   json.RawMessage `json:"question_id"`
	SurveyFormID json.RawMessage `json:"survey_form_id"`
	Answer       json.RawMessage `json:"answer"`
}

// Response types

type UserInfo struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

type AuthResponse struct {
	User  UserInfo `json:"user"`
	Token string   `json:"token"`
}

type MeResponse struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// Answer values are either float64 (numeric-looking text) or string
type SubmitResponse struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"user_id"`
	SurveyFormID string `json:"survey_form_id"`
	QuestionID   int64  `json:"question_id"`
	Answer       any    `json:"answer"`
	CreatedAt    string `json:"createdAt"`
}

type SessionSummary struct {
	SurveyFormID   string `json:"survey_form_id"`
	QuestionID     int64  `json:"question_id"`
	AnswerCount    int    `json:"answer_count"`
	FirstCreatedAt string `json:"first_created_at"`
	LastCreatedAt  string `json:"last_created_at"`
}

type ResponseItem struct {
	QuestionID int64  `json:"question_id"`
	Answer     any    `json:"answer"`
	CreatedAt  string `json:"createdAt"`
}

type SessionResponses struct {
	SurveyFormID string         `json:"survey_form_id"`
	UserID       int64          `json:"user_id"`
	TotalAnswers int            `json:"total_answers"`
	Responses    []ResponseItem `json:"responses"`
}

type HistoryEntry struct {
	Answer        any    `json:"answer"`
	DisplayAnswer string `json:"display_answer"`
	CreatedAt     string `json:"createdAt"`
}

type ResolvedQuestion struct {
	QuestionID    int64          `json:"question_id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Type          string         `json:"type"`
	Required      bool           `json:"required"`
	Answer        any            `json:"answer"`
	DisplayAnswer string         `json:"display_answer"`
	CreatedAt     string         `json:"createdAt"`
	History       []HistoryEntry `json:"history"`
}

type ResolvedSession struct {
	SurveyFormID    string             `json:"survey_form_id"`
	UserID          int64              `json:"user_id"`
	TotalAnswers    int                `json:"total_answers"`
	StartedAt       *string            `json:"started_at,omitempty"`
	CompletedAt     *string            `json:"completed_at,omitempty"`
	DurationMinutes int64              `json:"duration_minutes"`
	Questions       []ResolvedQuestion `json:"questions"`
}

// Domain types

// AnswerEvent is one stored submission. Rows are append-only.
type AnswerEvent struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	SurveyFormID string    `json:"survey_form_id"`
	QuestionID   int64     `json:"question_id"`
	Answer       string    `json:"answer"`
	CreatedAt    time.Time `json:"createdAt"`
}

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u User) Info() UserInfo {
	return UserInfo{ID: u.ID, Name: u.Name, Email: u.Email, IsAdmin: u.IsAdmin}
}

type Question struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Options     []string `json:"options"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
