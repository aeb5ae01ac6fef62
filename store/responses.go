// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/danielhkuo/waterlily/apperr"
	"github.com/danielhkuo/waterlily/db"
	"github.com/danielhkuo/waterlily/models"
)

// ResponseStore persists answer rows. It only ever inserts and reads.
type ResponseStore struct {
	db      *sql.DB
	dialect db.Dialect
	now     func() time.Time
}

func NewResponseStore(conn *sql.DB, d db.Dialect) *ResponseStore {
	return &ResponseStore{
		db:      conn,
		dialect: d,
		now:     storeClock,
	}
}

// storeClock truncates to the millisecond precision timestamps are rendered with
func storeClock() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Append stores one answer and returns the new row
func (s *ResponseStore) Append(ctx context.Context, userID int64, surveyFormID string, questionID int64, answer string) (models.AnswerEvent, error) {
	if userID <= 0 {
		return models.AnswerEvent{}, apperr.Validation("user_id", "Invalid user_id")
	}
	if surveyFormID == "" {
		return models.AnswerEvent{}, apperr.Validation("survey_form_id", "Invalid survey_form_id")
	}

	ev := models.AnswerEvent{
		UserID:       userID,
		SurveyFormID: surveyFormID,
		QuestionID:   questionID,
		Answer:       answer,
		CreatedAt:    s.now(),
	}

	err := s.db.QueryRowContext(ctx, s.dialect.Rebind(`
		INSERT INTO survey_responses (user_id, question_id, answer, survey_form_id, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`), ev.UserID, ev.QuestionID, ev.Answer, ev.SurveyFormID, ev.CreatedAt).Scan(&ev.ID)
	if err != nil {
		return models.AnswerEvent{}, apperr.Internal("insert survey response", err)
	}

	return ev, nil
}

// ListByUser returns every answer of the user, newest first.
// Only question_id, survey_form_id and created_at are loaded.
func (s *ResponseStore) ListByUser(ctx context.Context, userID int64) ([]models.AnswerEvent, error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.Rebind(`
		SELECT question_id, survey_form_id, created_at
		FROM survey_responses
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`), userID)
	if err != nil {
		return nil, apperr.Internal("query survey responses", err)
	}
	defer rows.Close()

	events := []models.AnswerEvent{}
	for rows.Next() {
		ev := models.AnswerEvent{UserID: userID}
		if err := rows.Scan(&ev.QuestionID, &ev.SurveyFormID, &ev.CreatedAt); err != nil {
			return nil, apperr.Internal("scan survey response", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Internal("iterate survey responses", err)
	}

	return events, nil
}

// ListByUserAndSession returns one session's answers, oldest first
func (s *ResponseStore) ListByUserAndSession(ctx context.Context, userID int64, surveyFormID string) ([]models.AnswerEvent, error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.Rebind(`
		SELECT id, question_id, answer, created_at
		FROM survey_responses
		WHERE user_id = ? AND survey_form_id = ?
		ORDER BY created_at ASC, id ASC
	`), userID, surveyFormID)
	if err != nil {
		return nil, apperr.Internal("query session responses", err)
	}
	defer rows.Close()

	events := []models.AnswerEvent{}
	for rows.Next() {
		ev := models.AnswerEvent{UserID: userID, SurveyFormID: surveyFormID}
		if err := rows.Scan(&ev.ID, &ev.QuestionID, &ev.Answer, &ev.CreatedAt); err != nil {
			return nil, apperr.Internal("scan session response", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Internal("iterate session responses", err)
	}

	return events, nil
}
