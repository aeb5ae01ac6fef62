// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/waterlily/apperr"
	"github.com/danielhkuo/waterlily/models"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	all := c.All()
	require.Len(t, all, 15)

	var required []int64
	for i, q := range all {
		assert.Equal(t, int64(i+1), q.ID, "questions are ordered by id")
		assert.NotEmpty(t, q.Options, "question %d has options", q.ID)
		if q.Required {
			required = append(required, q.ID)
		}
		if q.ID == 6 {
			assert.Equal(t, models.TypeMultiChoice, q.Type)
		} else {
			assert.Equal(t, models.TypeSingleChoice, q.Type)
		}
	}
	assert.Equal(t, []int64{1, 2, 5, 7, 11, 14}, required)
}

func TestCatalog_LookupReturnsCopy(t *testing.T) {
	c := DefaultCatalog()

	q, ok := c.Lookup(1)
	require.True(t, ok)
	q.Options[0] = "changed"

	again, _ := c.Lookup(1)
	assert.Equal(t, "Under 40", again.Options[0])

	_, ok = c.Lookup(16)
	assert.False(t, ok)
}

func TestCatalog_Title(t *testing.T) {
	c := DefaultCatalog()
	assert.Equal(t, "What is your gender?", c.Title(2))
	assert.Equal(t, "Question 42", c.Title(42))
}

func TestNewCatalog_SortsAndDedupes(t *testing.T) {
	c := NewCatalog([]models.Question{
		{ID: 3, Title: "three"},
		{ID: 1, Title: "one"},
		{ID: 3, Title: "three again"},
	})

	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, "three again", all[1].Title)
}

func TestCatalog_ValidateAnswer(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		name      string
		qid       int64
		answer    string
		wantField string
	}{
		{"single choice option", 1, "Under 40", ""},
		{"single choice unknown value", 1, "Over 90", "answer"},
		{"single choice is case sensitive", 2, "male", "answer"},
		{"multi choice one part", 6, "Diabetes", ""},
		{"multi choice several parts", 6, "Diabetes;Arthritis;Other", ""},
		{"multi choice bad part", 6, "Diabetes;Flu", "answer"},
		{"multi choice repeated part", 6, "Cancer;Cancer", "answer"},
		{"multi choice empty", 6, "", "answer"},
		{"unknown question", 99, "anything", "question_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.ValidateAnswer(tt.qid, tt.answer)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			e, ok := apperr.As(err)
			require.True(t, ok, "expected apperr, got %v", err)
			assert.Equal(t, apperr.KindValidation, e.Kind)
			assert.Equal(t, tt.wantField, e.Field)
		})
	}
}

func TestFormatAnswer(t *testing.T) {
	c := DefaultCatalog()
	multi, _ := c.Lookup(6)
	single, _ := c.Lookup(4)

	assert.Equal(t, "Diabetes, Heart disease", FormatAnswer(multi, "Diabetes;Heart disease"))
	assert.Equal(t, "Diabetes", FormatAnswer(multi, "Diabetes"))
	assert.Equal(t, "Live alone", FormatAnswer(single, "Live alone"))
	assert.Equal(t, "a;b", FormatAnswer(models.Question{}, "a;b"))
}
