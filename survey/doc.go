// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package survey derives read views from a user's stored answers.

Nothing here is persisted. Each view is recomputed from the event list on
every request:

	agg := survey.NewAggregator(responses, survey.DefaultCatalog())
	sessions, err := agg.MySessions(ctx, userID)

# Views

	MySessions        one SessionSummary per survey_form_id, latest activity first
	SessionResponses  every answer in one session, oldest first
	Latest            one entry per question holding its newest answer plus history

# Numbers

Answers are stored as text. Listings turn text that is entirely a number
("42", "3.5") back into a JSON number with CoerceFull. The submission echo
uses CoercePrefix, which also accepts a leading number ("42abc" → 42).

# Catalog

The questionnaire is fixed. Multi-choice answers are stored ;-joined and
shown ", "-joined. Catalog.ValidateAnswer is only consulted when strict
answer checking is switched on.
*/
package survey
