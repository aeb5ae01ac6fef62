// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("answer", "Invalid answer"), http.StatusBadRequest},
		{"conflict", Conflict("User already exists"), http.StatusBadRequest},
		{"authentication", Authentication("Unauthorized"), http.StatusUnauthorized},
		{"not found", NotFound("Question not found"), http.StatusNotFound},
		{"internal", Internal("insert failed", errors.New("disk full")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped validation", fmt.Errorf("submit: %w", Validation("question_id", "Invalid question_id")), http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Status(tc.err))
		})
	}
}

func TestPublicMessage_HidesInternalDetail(t *testing.T) {
	err := Internal("insert answer", errors.New("pq: connection refused"))

	assert.Equal(t, InternalMessage, PublicMessage(err))
	assert.Equal(t, InternalMessage, PublicMessage(errors.New("raw driver error")))
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, "Invalid answer", PublicMessage(Validation("answer", "Invalid answer")))
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", Authentication("Unauthorized"))

	assert.True(t, Is(err, KindAuthentication))
	assert.False(t, Is(err, KindValidation))
	assert.False(t, Is(errors.New("x"), KindInternal))

	cause := errors.New("cause")
	assert.ErrorIs(t, Internal("op", cause), cause)
}
