// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"fmt"
	"sort"
	"strings"

	"github.com/danielhkuo/waterlily/apperr"
	"github.com/danielhkuo/waterlily/models"
)

// Catalog is a fixed, read-only set of questions keyed by id
type Catalog struct {
	questions []models.Question
	byID      map[int64]int
}

// NewCatalog builds a catalog ordered by question id.
// Duplicate ids keep the last definition.
func NewCatalog(questions []models.Question) *Catalog {
	byID := make(map[int64]models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	sorted := make([]models.Question, 0, len(byID))
	for _, q := range byID {
		sorted = append(sorted, q)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	c := &Catalog{questions: sorted, byID: make(map[int64]int, len(sorted))}
	for i, q := range sorted {
		c.byID[q.ID] = i
	}
	return c
}

// All returns a copy of every question, ascending by id
func (c *Catalog) All() []models.Question {
	out := make([]models.Question, len(c.questions))
	for i, q := range c.questions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

// Lookup finds a question by id
func (c *Catalog) Lookup(id int64) (models.Question, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Question{}, false
	}
	q := c.questions[i]
	q.Options = append([]string(nil), q.Options...)
	return q, true
}

// Title returns the question title, or "Question N" for ids outside the catalog
func (c *Catalog) Title(id int64) string {
	if i, ok := c.byID[id]; ok {
		return c.questions[i].Title
	}
	return fmt.Sprintf("Question %d", id)
}

// ValidateAnswer checks answer against the question's option set.
// Single-choice answers must equal one option; multi-choice answers must
// be a ;-joined list of distinct options.
func (c *Catalog) ValidateAnswer(questionID int64, answer string) error {
	q, ok := c.Lookup(questionID)
	if !ok {
		return apperr.Validation("question_id", "Unknown question_id")
	}

	allowed := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		allowed[o] = true
	}

	if q.Type != models.TypeMultiChoice {
		if !allowed[answer] {
			return apperr.Validation("answer", "Answer is not an allowed option")
		}
		return nil
	}

	seen := make(map[string]bool)
	for _, part := range strings.Split(answer, models.MultiSeparator) {
		if !allowed[part] || seen[part] {
			return apperr.Validation("answer", "Answer is not an allowed option")
		}
		seen[part] = true
	}
	return nil
}

// FormatAnswer renders a stored answer for display. Multi-choice parts are
// joined with ", "; everything else is returned unchanged.
func FormatAnswer(q models.Question, answer string) string {
	if q.Type != models.TypeMultiChoice {
		return answer
	}
	return strings.Join(strings.Split(answer, models.MultiSeparator), ", ")
}

// DefaultCatalog is the care-planning questionnaire served by the API
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultQuestions)
}

var defaultQuestions = []models.Question{
	{
		ID:          1,
		Title:       "What is your age?",
		Description: "Select your age group",
		Type:        models.TypeSingleChoice,
		Required:    true,
		Options:     []string{"Under 40", "40-49", "50-59", "60-69", "70+"},
	},
	{
		ID:          2,
		Title:       "What is your gender?",
		Description: "Select your gender",
		Type:        models.TypeSingleChoice,
		Required:    true,
		Options:     []string{"Male", "Female", "Non-binary / Other", "Prefer not to say"},
	},
	{
		ID:          3,
		Title:       "What is your marital status?",
		Description: "Select your marital status",
		Type:        models.TypeSingleChoice,
		Options:     []string{"Single", "Married / Partnered", "Divorced / Separated", "Widowed"},
	},
	{
		ID:          4,
		Title:       "What is your living situation?",
		Description: "Select your current living arrangement",
		Type:        models.TypeSingleChoice,
		Options:     []string{"Live alone", "Live with spouse/partner", "Live with family", "Assisted living / Other"},
	},
	{
		ID:          5,
		Title:       "How would you rate your overall health?",
		Description: "Select your current health status",
		Type:        models.TypeSingleChoice,
		Required:    true,
		Options:     []string{"Excellent", "Good", "Fair", "Poor"},
	},
	{
		ID:          6,
		Title:       "Do you have any chronic conditions?",
		Description: "Check all conditions that apply",
		Type:        models.TypeMultiChoice,
		Options:     []string{"Diabetes", "Heart disease", "High blood pressure", "Cancer", "Arthritis", "Dementia/Alzheimer’s", "Other"},
	},
	{
		ID:          7,
		Title:       "Do you require help with daily activities?",
		Description: "Select your level of assistance needed",
		Type:        models.TypeSingleChoice,
		Required:    true,
		Options:     []string{"No, I am fully independent", "Occasionally need help", "Regularly need help", "Fully dependent"},
	},
	{
		ID:          8,
		Title:       "How often do you exercise?",
		Description: "Select your exercise frequency",
		Type:        models.TypeSingleChoice,
		Options:     []string{"Daily", "A few times a week", "Occasionally", "Rarely / Never"},
	},
	{
		ID:          9,
		Title:       "Do you smoke or use tobacco products?",
		Description: "Select your smoking status",
		Type:        models.TypeSingleChoice,
		Options:     []string{"Yes, currently", "Used to, but quit", "Never"},
	},
	{
		ID:          10,
		Title:       "Do you consume alcohol?",
		Description: "Select your alcohol consumption frequency",
		Type:        models.TypeSingleChoice,
		Options:     []string{"Yes, regularly", "Occasionally", "Rarely / Never"},
	},
	{
		ID:          11,
		Title:       "What is your approximate annual income?",
		Description: "Select your income bracket",
		Type:        models.TypeSingleChoice,
		Required:    true,
		Options:     []string{"Less than $25,000", "$25,000-$50,000", "$50,000-$100,000", "$100,000-$200,000", "$200,000+"},
	},
	{
		ID:          12,
		Title:       "Do you currently have health or long-term care insurance?",
		Description: "Select your insurance coverage",
		Type:        models.TypeSingleChoice,
		Options:     []string{"Yes, both", "Yes, health insurance only", "Yes, long-term care insurance only", "No"},
	},
	{
		ID:          13,
		Title:       "Do you have savings or investments set aside for future care?",
		Description: "Select your financial preparedness level",
		Type:        models.TypeSingleChoice,
		Options:     []string{"Yes, significant savings/investments", "Yes, some savings", "Very little savings", "None"},
	},
	{
		ID:          14,
		Title:       "How confident are you in being able to afford future care needs?",
		Description: "Select your confidence level",
		Type:        models.TypeSingleChoice,
		Required:    true,
		Options:     []string{"Very confident", "Somewhat confident", "Not confident"},
	},
	{
		ID:          15,
		Title:       "If you needed long-term care, where would you prefer?",
		Description: "Select your preferred care setting",
		Type:        models.TypeSingleChoice,
		Options:     []string{"At home with family support", "At home with professional caregivers", "Assisted living facility", "Nursing home", "Not sure"},
	},
}
