// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"github.com/danielhkuo/waterlily/apperr"
	"github.com/danielhkuo/waterlily/models"
)

// Submission is a checked POST /submit body
type Submission struct {
	QuestionID   int64
	SurveyFormID string
	Answer       string
}

var jsonNull = []byte("null")

// ParseSubmission checks each raw field's JSON type.
// question_id must be an integral number, survey_form_id a non-empty
// string, and answer a string, number or boolean (stored as text).
func ParseSubmission(req models.SubmitRequest) (Submission, error) {
	var sub Submission

	qid, err := parseQuestionID(req.QuestionID)
	if err != nil {
		return Submission{}, err
	}
	sub.QuestionID = qid

	var formID string
	if err := json.Unmarshal(req.SurveyFormID, &formID); err != nil || isNull(req.SurveyFormID) || formID == "" {
		return Submission{}, apperr.Validation("survey_form_id", "Invalid survey_form_id")
	}
	sub.SurveyFormID = formID

	answer, err := answerText(req.Answer)
	if err != nil {
		return Submission{}, err
	}
	sub.Answer = answer

	return sub, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}

func parseQuestionID(raw json.RawMessage) (int64, error) {
	invalid := apperr.Validation("question_id", "Invalid question_id")
	if isNull(raw) {
		return 0, invalid
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, invalid
	}
	// json.Number also accepts quoted digits; only a bare number is valid
	if trimmed := bytes.TrimSpace(raw); trimmed[0] == '"' {
		return 0, invalid
	}

	// question_id is an INTEGER column on both dialects
	if id, err := n.Int64(); err == nil {
		if id < math.MinInt32 || id > math.MaxInt32 {
			return 0, invalid
		}
		return id, nil
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, invalid
	}
	return int64(f), nil
}

// answerText renders an answer the way it is stored: strings as-is,
// numbers in shortest decimal form, booleans as true/false.
func answerText(raw json.RawMessage) (string, error) {
	invalid := apperr.Validation("answer", "Invalid answer")
	if isNull(raw) {
		return "", invalid
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", invalid
	}

	switch a := v.(type) {
	case string:
		return a, nil
	case float64:
		return strconv.FormatFloat(a, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(a), nil
	default:
		return "", invalid
	}
}
