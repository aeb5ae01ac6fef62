// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Waterlily API.

# Handler Types

Each handler is a struct built from the database connection and config:

  - AuthHandler: registration, login and the current identity
  - SurveyHandler: answer submission, session views and the question catalog

	authHandler := handlers.NewAuthHandler(db, cfg, issuer)
	surveyHandler := handlers.NewSurveyHandler(db, cfg)

# Authentication

	POST /api/auth/register → Register (returns user and token)
	POST /api/auth/login    → Login
	GET  /api/auth/me       → Me

Register and Login answer 400 for missing fields, a taken email and bad
credentials. Tokens are HS256 and carry id, email and is_admin.

# Survey Responses

All of these require a bearer token (see middleware.Authenticate) and only
ever see the caller's own rows:

	POST /api/survey-responses/submit                     → Submit
	GET  /api/survey-responses/my                         → MySessions
	GET  /api/survey-responses/{survey_form_id}/responses → SessionResponses
	GET  /api/survey-responses/{survey_form_id}/latest    → Latest

Submit appends; answering a question again adds a row rather than replacing
one. With StrictAnswers enabled, answers must match the catalog options.

# Questions

Public, read-only:

	GET /api/questions      → ListQuestions
	GET /api/questions/{id} → GetQuestion
*/
package handlers
