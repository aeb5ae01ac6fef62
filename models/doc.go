// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: name, email, password, is_admin
  - LoginRequest: email, password
  - SubmitRequest: question_id, survey_form_id, answer (kept raw for type checks)

# Response Types

Types for JSON responses:

  - AuthResponse: user, token
  - MeResponse: id, email, is_admin
  - SubmitResponse: the stored row with its answer coerced
  - SessionSummary: one entry of the my-sessions list
  - SessionResponses: every answer of one session, oldest first
  - ResolvedSession: latest answer per question with history
  - ErrorResponse: error, message

# Domain Types

  - AnswerEvent: one immutable answer row
  - User: account with bcrypt password hash
  - Question: catalog entry

# Timestamps

Every timestamp on the wire is rendered with FormatTime, a fixed-width
UTC ISO-8601 layout with millisecond precision:

	2025-03-01T09:15:00.000Z

Question types:

	TypeSingleChoice = "single-choice"
	TypeMultiChoice  = "multi-choice"
*/
package models
