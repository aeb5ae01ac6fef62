// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/waterlily/apperr"
	"github.com/danielhkuo/waterlily/cliparse"
	"github.com/danielhkuo/waterlily/db"
	"github.com/danielhkuo/waterlily/middleware"
	"github.com/danielhkuo/waterlily/models"
	"github.com/danielhkuo/waterlily/store"
	"github.com/danielhkuo/waterlily/survey"
)

var errQuestionNotFound = apperr.NotFound("Question not found")

type SurveyHandler struct {
	responses  *store.ResponseStore
	aggregator *survey.Aggregator
	catalog    *survey.Catalog
	strict     bool
}

func NewSurveyHandler(conn *sql.DB, cfg cliparse.Config) *SurveyHandler {
	responses := store.NewResponseStore(conn, db.Dialect(cfg.DatabaseType))
	catalog := survey.DefaultCatalog()
	return &SurveyHandler{
		responses:  responses,
		aggregator: survey.NewAggregator(responses, catalog),
		catalog:    catalog,
		strict:     cfg.StrictAnswers,
	}
}

// Submit handles POST /api/survey-responses/submit
// Each call appends one answer row; earlier answers are never touched.
func (h *SurveyHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		middleware.WriteError(w, r, middleware.ErrUnauthorized)
		return
	}

	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	sub, err := survey.ParseSubmission(req)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	if h.strict {
		if err := h.catalog.ValidateAnswer(sub.QuestionID, sub.Answer); err != nil {
			middleware.WriteError(w, r, err)
			return
		}
	}

	ev, err := h.responses.Append(r.Context(), id.ID, sub.SurveyFormID, sub.QuestionID, sub.Answer)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	slog.Info("survey response recorded",
		"request_id", middleware.RequestID(r.Context()),
		"user_id", id.ID,
		"survey_form_id", ev.SurveyFormID,
		"question_id", ev.QuestionID,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponse{
		ID:           ev.ID,
		UserID:       ev.UserID,
		SurveyFormID: ev.SurveyFormID,
		QuestionID:   ev.QuestionID,
		Answer:       survey.CoercePrefix(ev.Answer),
		CreatedAt:    models.FormatTime(ev.CreatedAt),
	})
}

// MySessions handles GET /api/survey-responses/my
func (h *SurveyHandler) MySessions(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		middleware.WriteError(w, r, middleware.ErrUnauthorized)
		return
	}

	sessions, err := h.aggregator.MySessions(r.Context(), id.ID)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, sessions)
}

// SessionResponses handles GET /api/survey-responses/{survey_form_id}/responses
// A session with no answers is an empty list, not a 404.
func (h *SurveyHandler) SessionResponses(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		middleware.WriteError(w, r, middleware.ErrUnauthorized)
		return
	}

	formID := r.PathValue("survey_form_id")

	resp, err := h.aggregator.SessionResponses(r.Context(), id.ID, formID)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Latest handles GET /api/survey-responses/{survey_form_id}/latest
func (h *SurveyHandler) Latest(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		middleware.WriteError(w, r, middleware.ErrUnauthorized)
		return
	}

	formID := r.PathValue("survey_form_id")

	resp, err := h.aggregator.Latest(r.Context(), id.ID, formID)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// ListQuestions handles GET /api/questions
func (h *SurveyHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.catalog.All())
}

// GetQuestion handles GET /api/questions/{id}
func (h *SurveyHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	qid, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.WriteError(w, r, errQuestionNotFound)
		return
	}

	q, ok := h.catalog.Lookup(qid)
	if !ok {
		middleware.WriteError(w, r, errQuestionNotFound)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, q)
}
