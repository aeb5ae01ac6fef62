// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"math"
	"regexp"
	"strconv"
)

var (
	numberFull   = regexp.MustCompile(`^\d+(\.\d+)?$`)
	numberPrefix = regexp.MustCompile(`^\d+(\.\d+)?`)
)

// CoerceFull returns answer as a float64 when the whole text is an
// unsigned integer or decimal, otherwise the text unchanged.
// Used when listing a session's answers.
func CoerceFull(answer string) any {
	if !numberFull.MatchString(answer) {
		return answer
	}
	return toNumber(answer, answer)
}

// CoercePrefix returns the leading unsigned integer or decimal of answer
// as a float64 when there is one ("42abc" gives 42), otherwise the text
// unchanged. Used only when echoing a fresh submission, so the two
// coercions disagree on inputs like "42abc".
func CoercePrefix(answer string) any {
	prefix := numberPrefix.FindString(answer)
	if prefix == "" {
		return answer
	}
	return toNumber(prefix, answer)
}

// toNumber parses digits, falling back to orig when the value does not fit
// a finite float64.
func toNumber(digits, orig string) any {
	f, err := strconv.ParseFloat(digits, 64)
	if err != nil || math.IsInf(f, 0) {
		return orig
	}
	return f
}
