// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantFull   any
		wantPrefix any
	}{
		{"integer", "42", 42.0, 42.0},
		{"decimal", "3.5", 3.5, 3.5},
		{"leading zeros", "007", 7.0, 7.0},
		{"plain text", "Male", "Male", "Male"},
		{"empty", "", "", ""},
		{"number then text", "42abc", "42abc", 42.0},
		{"two dots", "1.5.3", "1.5.3", 1.5},
		{"trailing dot", "4.", "4.", 4.0},
		{"negative", "-1", "-1", "-1"},
		{"leading space", " 42", " 42", " 42"},
		{"text then number", "age 42", "age 42", "age 42"},
		{"range option", "40-49", "40-49", 40.0},
		{"multi choice", "Diabetes;Arthritis", "Diabetes;Arthritis", "Diabetes;Arthritis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantFull, CoerceFull(tt.input), "CoerceFull(%q)", tt.input)
			assert.Equal(t, tt.wantPrefix, CoercePrefix(tt.input), "CoercePrefix(%q)", tt.input)
		})
	}
}

// The listing and the submission echo must disagree on "42abc"
func TestCoerce_Asymmetry(t *testing.T) {
	full := CoerceFull("42abc")
	prefix := CoercePrefix("42abc")

	assert.IsType(t, "", full)
	assert.Equal(t, "42abc", full)

	assert.IsType(t, 0.0, prefix)
	assert.Equal(t, 42.0, prefix)
}

func TestCoerce_OverflowStaysText(t *testing.T) {
	huge := "1" + strings.Repeat("0", 400)
	assert.Equal(t, huge, CoerceFull(huge))
	assert.Equal(t, huge, CoercePrefix(huge))
}
