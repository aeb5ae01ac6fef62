// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"context"

	"github.com/danielhkuo/waterlily/models"
)

// EventSource reads a user's stored answers. store.ResponseStore satisfies it.
type EventSource interface {
	// ListByUser returns every event for the user, newest first
	ListByUser(ctx context.Context, userID int64) ([]models.AnswerEvent, error)
	// ListByUserAndSession returns one session's events, oldest first
	ListByUserAndSession(ctx context.Context, userID int64, surveyFormID string) ([]models.AnswerEvent, error)
}

// Aggregator computes per-request views over a user's answers.
// It holds no state beyond its source and catalog.
type Aggregator struct {
	events  EventSource
	catalog *Catalog
}

func NewAggregator(events EventSource, catalog *Catalog) *Aggregator {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Aggregator{events: events, catalog: catalog}
}

// MySessions summarizes every session the user has answered in
func (a *Aggregator) MySessions(ctx context.Context, userID int64) ([]models.SessionSummary, error) {
	events, err := a.events.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return GroupSessions(events), nil
}

// SessionResponses lists one session's answers oldest first.
// An unknown session is an empty list, not an error.
func (a *Aggregator) SessionResponses(ctx context.Context, userID int64, surveyFormID string) (models.SessionResponses, error) {
	events, err := a.events.ListByUserAndSession(ctx, userID, surveyFormID)
	if err != nil {
		return models.SessionResponses{}, err
	}
	return ListResponses(userID, surveyFormID, events), nil
}

// Latest resolves each question in a session to its most recent answer
func (a *Aggregator) Latest(ctx context.Context, userID int64, surveyFormID string) (models.ResolvedSession, error) {
	events, err := a.events.ListByUserAndSession(ctx, userID, surveyFormID)
	if err != nil {
		return models.ResolvedSession{}, err
	}
	return ResolveLatest(userID, surveyFormID, events, a.catalog), nil
}
