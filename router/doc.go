// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Waterlily API.

# Route Registration

NewRouter returns the full handler, CORS and rate limiting included:

	handler := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health
	GET /

Accounts:

	POST /api/auth/register - Create account, returns token
	POST /api/auth/login    - Exchange credentials for a token
	GET  /api/auth/me       - Identity behind the token (bearer)

Survey responses (bearer token required):

	POST /api/survey-responses/submit                     - Append one answer
	GET  /api/survey-responses/my                         - Session summaries
	GET  /api/survey-responses/{survey_form_id}/responses - Answers, oldest first
	GET  /api/survey-responses/{survey_form_id}/latest    - Latest answer per question

Questions (public):

	GET /api/questions
	GET /api/questions/{id}

# Handler Initialization

One token issuer is built from cfg and shared by the auth handler and the
Authenticate middleware:

	authHandler := handlers.NewAuthHandler(db, cfg, issuer)
	surveyHandler := handlers.NewSurveyHandler(db, cfg)
*/
package router
