// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"math"
	"sort"

	"github.com/danielhkuo/waterlily/models"
)

// GroupSessions folds a user's events, newest first, into one summary per
// survey_form_id.
//
// The first event seen for a session fixes its question_id and both
// timestamps. Every later event adds one to answer_count and overwrites
// last_created_at. With newest-first input that leaves first_created_at
// holding the newest timestamp and last_created_at the oldest; clients
// depend on these exact values, so the fold is kept as is.
//
// The result is sorted by last_created_at descending. Ties keep the order
// in which sessions were first seen.
func GroupSessions(events []models.AnswerEvent) []models.SessionSummary {
	out := make([]models.SessionSummary, 0)
	index := make(map[string]int)

	for _, ev := range events {
		ts := models.FormatTime(ev.CreatedAt)
		if i, ok := index[ev.SurveyFormID]; ok {
			out[i].AnswerCount++
			out[i].LastCreatedAt = ts
			continue
		}
		index[ev.SurveyFormID] = len(out)
		out = append(out, models.SessionSummary{
			SurveyFormID:   ev.SurveyFormID,
			QuestionID:     ev.QuestionID,
			AnswerCount:    1,
			FirstCreatedAt: ts,
			LastCreatedAt:  ts,
		})
	}

	// Fixed-width timestamps compare lexically in time order
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastCreatedAt > out[j].LastCreatedAt
	})
	return out
}

// ListResponses renders one session's events in the order given, with
// answers coerced by CoerceFull.
func ListResponses(userID int64, surveyFormID string, events []models.AnswerEvent) models.SessionResponses {
	items := make([]models.ResponseItem, 0, len(events))
	for _, ev := range events {
		items = append(items, models.ResponseItem{
			QuestionID: ev.QuestionID,
			Answer:     CoerceFull(ev.Answer),
			CreatedAt:  models.FormatTime(ev.CreatedAt),
		})
	}
	return models.SessionResponses{
		SurveyFormID: surveyFormID,
		UserID:       userID,
		TotalAnswers: len(items),
		Responses:    items,
	}
}

// newer orders events by created_at, then id
func newer(a, b models.AnswerEvent) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

// ResolveLatest groups one session's events by question. The event with the
// greatest created_at (then id) is the question's current answer; every
// event for the question is kept in history, newest first. Input order does
// not matter. Questions come back ascending by id.
func ResolveLatest(userID int64, surveyFormID string, events []models.AnswerEvent, catalog *Catalog) models.ResolvedSession {
	byQuestion := make(map[int64][]models.AnswerEvent)
	for _, ev := range events {
		byQuestion[ev.QuestionID] = append(byQuestion[ev.QuestionID], ev)
	}

	ids := make([]int64, 0, len(byQuestion))
	for id := range byQuestion {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	resolved := models.ResolvedSession{
		SurveyFormID: surveyFormID,
		UserID:       userID,
		TotalAnswers: len(events),
		Questions:    make([]models.ResolvedQuestion, 0, len(ids)),
	}

	for _, id := range ids {
		group := byQuestion[id]
		sort.SliceStable(group, func(i, j int) bool { return newer(group[i], group[j]) })

		q, known := catalog.Lookup(id)
		if !known {
			q = models.Question{ID: id}
		}

		history := make([]models.HistoryEntry, 0, len(group))
		for _, ev := range group {
			history = append(history, models.HistoryEntry{
				Answer:        CoerceFull(ev.Answer),
				DisplayAnswer: FormatAnswer(q, ev.Answer),
				CreatedAt:     models.FormatTime(ev.CreatedAt),
			})
		}

		latest := group[0]
		resolved.Questions = append(resolved.Questions, models.ResolvedQuestion{
			QuestionID:    id,
			Title:         catalog.Title(id),
			Description:   q.Description,
			Type:          q.Type,
			Required:      q.Required,
			Answer:        history[0].Answer,
			DisplayAnswer: history[0].DisplayAnswer,
			CreatedAt:     models.FormatTime(latest.CreatedAt),
			History:       history,
		})
	}

	if len(events) > 0 {
		first, last := events[0].CreatedAt, events[0].CreatedAt
		for _, ev := range events[1:] {
			if ev.CreatedAt.Before(first) {
				first = ev.CreatedAt
			}
			if ev.CreatedAt.After(last) {
				last = ev.CreatedAt
			}
		}
		started, completed := models.FormatTime(first), models.FormatTime(last)
		resolved.StartedAt = &started
		resolved.CompletedAt = &completed
		resolved.DurationMinutes = int64(math.Round(last.Sub(first).Minutes()))
	}

	return resolved
}
