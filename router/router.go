// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/waterlily/auth"
	"github.com/danielhkuo/waterlily/cliparse"
	"github.com/danielhkuo/waterlily/handlers"
	"github.com/danielhkuo/waterlily/middleware"
)

// Banner is served at GET /
const Banner = "Waterlily API v1"

// NewRouter builds the route table wrapped in CORS and, when
// cfg.RateLimit > 0, per-IP rate limiting.
func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiresIn)
	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.Authenticate(issuer, h))
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg, issuer)
	surveyHandler := handlers.NewSurveyHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts
	mux.HandleFunc("POST /api/auth/register", middleware.WithLogging(authHandler.Register))
	mux.HandleFunc("POST /api/auth/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("GET /api/auth/me", protected(authHandler.Me))

	// Survey responses (caller's own rows only)
	mux.HandleFunc("POST /api/survey-responses/submit", protected(surveyHandler.Submit))
	mux.HandleFunc("GET /api/survey-responses/my", protected(surveyHandler.MySessions))
	mux.HandleFunc("GET /api/survey-responses/{survey_form_id}/responses", protected(surveyHandler.SessionResponses))
	mux.HandleFunc("GET /api/survey-responses/{survey_form_id}/latest", protected(surveyHandler.Latest))

	// Question catalog (public)
	mux.HandleFunc("GET /api/questions", middleware.WithLogging(surveyHandler.ListQuestions))
	mux.HandleFunc("GET /api/questions/{id}", middleware.WithLogging(surveyHandler.GetQuestion))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(Banner))
	})

	// CORS stays outermost so browsers can read 429 bodies
	var handler http.Handler = mux
	if cfg.RateLimit > 0 {
		handler = middleware.NewRateLimiter(float64(cfg.RateLimit), cfg.RateBurst).Middleware(handler)
	}
	return middleware.CORS(cfg.CORSOrigin)(handler)
}
