// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/waterlily/db"
	"github.com/danielhkuo/waterlily/models"
	"github.com/danielhkuo/waterlily/store"
	"github.com/danielhkuo/waterlily/testutil"
)

type failingSource struct{ err error }

func (f failingSource) ListByUser(context.Context, int64) ([]models.AnswerEvent, error) {
	return nil, f.err
}

func (f failingSource) ListByUserAndSession(context.Context, int64, string) ([]models.AnswerEvent, error) {
	return nil, f.err
}

func TestAggregator_PropagatesSourceErrors(t *testing.T) {
	boom := errors.New("db down")
	agg := NewAggregator(failingSource{err: boom}, nil)
	ctx := context.Background()

	_, err := agg.MySessions(ctx, 1)
	assert.ErrorIs(t, err, boom)

	_, err = agg.SessionResponses(ctx, 1, "s1")
	assert.ErrorIs(t, err, boom)

	_, err = agg.Latest(ctx, 1, "s1")
	assert.ErrorIs(t, err, boom)
}

func TestAggregator_DefaultsCatalog(t *testing.T) {
	agg := NewAggregator(failingSource{}, nil)
	assert.Len(t, agg.catalog.All(), 15)
}

func TestAggregator_OverStore(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	ann := testutil.CreateTestUser(t, conn, "Ann", "ann@example.com")
	bob := testutil.CreateTestUser(t, conn, "Bob", "bob@example.com")

	testutil.InsertTestAnswer(t, conn, ann, "s1", 1, "Under 40", at(0))
	testutil.InsertTestAnswer(t, conn, ann, "s1", 2, "Male", at(1))
	testutil.InsertTestAnswer(t, conn, ann, "s1", 1, "40-49", at(2))
	testutil.InsertTestAnswer(t, conn, ann, "s2", 5, "Good", at(10))
	testutil.InsertTestAnswer(t, conn, bob, "s1", 1, "70+", at(20))

	agg := NewAggregator(store.NewResponseStore(conn, db.SQLite), DefaultCatalog())
	ctx := context.Background()

	sessions, err := agg.MySessions(ctx, ann)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "s2", sessions[0].SurveyFormID)
	assert.Equal(t, 1, sessions[0].AnswerCount)
	assert.Equal(t, "s1", sessions[1].SurveyFormID)
	assert.Equal(t, 3, sessions[1].AnswerCount)

	list, err := agg.SessionResponses(ctx, ann, "s1")
	require.NoError(t, err)
	assert.Equal(t, 3, list.TotalAnswers)
	assert.Equal(t, "Under 40", list.Responses[0].Answer)
	assert.Equal(t, "40-49", list.Responses[2].Answer)

	latest, err := agg.Latest(ctx, ann, "s1")
	require.NoError(t, err)
	require.Len(t, latest.Questions, 2)
	assert.Equal(t, "40-49", latest.Questions[0].Answer)
	assert.Len(t, latest.Questions[0].History, 2)
	assert.Equal(t, "Male", latest.Questions[1].Answer)

	// Bob never sees Ann's rows
	bobList, err := agg.SessionResponses(ctx, bob, "s2")
	require.NoError(t, err)
	assert.Equal(t, 0, bobList.TotalAnswers)
}
