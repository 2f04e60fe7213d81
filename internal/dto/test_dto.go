package dto

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/fadilmartias/rozgar/internal/model"
	"github.com/fadilmartias/rozgar/internal/util"
	"github.com/google/uuid"
)

type QuestionInput struct {
	Text        string   `json:"text"`
	Options     []string `json:"options"`
	AnswerIndex *int     `json:"answerIndex"`
}

type CreateTestRequest struct {
	JobID       string          `json:"jobId"`
	CompanyID   string          `json:"companyId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	DurationSec int             `json:"durationSec"`
	Questions   []QuestionInput `json:"questions"`
}

// Validate checks required fields first, then every question.
func (r *CreateTestRequest) Validate() error {
	if strings.TrimSpace(r.JobID) == "" || strings.TrimSpace(r.CompanyID) == "" ||
		strings.TrimSpace(r.Title) == "" || r.DurationSec <= 0 || len(r.Questions) == 0 {
		return util.NewFormError("jobId, companyId, title, durationSec, questions required", nil)
	}
	errs := map[string]string{}
	for i, q := range r.Questions {
		key := fmt.Sprintf("questions[%d]", i)
		switch {
		case strings.TrimSpace(q.Text) == "":
			errs[key] = "text is required"
		case len(q.Options) < 2:
			errs[key] = "at least 2 options are required"
		case q.AnswerIndex == nil:
			errs[key] = "answerIndex is required"
		case *q.AnswerIndex < 0 || *q.AnswerIndex >= len(q.Options):
			errs[key] = fmt.Sprintf("answerIndex must be between 0 and %d", len(q.Options)-1)
		}
	}
	if len(errs) > 0 {
		return util.NewFormError("invalid questions", errs)
	}
	return nil
}

func (r *CreateTestRequest) Questionnaire() []model.Question {
	out := make([]model.Question, 0, len(r.Questions))
	for _, q := range r.Questions {
		out = append(out, model.Question{
			Text:        strings.TrimSpace(q.Text),
			Options:     q.Options,
			AnswerIndex: *q.AnswerIndex,
		})
	}
	return out
}

type GenerateQuestionsRequest struct {
	Title string `json:"title"`
}

// GeneratedTest is a preview the poster may edit and then submit as CreateTestRequest.
type GeneratedTest struct {
	Questions   []model.Question `json:"questions"`
	DurationSec int              `json:"durationSec"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
}

type SanitizedQuestion struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// SanitizedTest is the test-taker view. It has no answer key field.
type SanitizedTest struct {
	ID          uuid.UUID           `json:"_id"`
	JobID       string              `json:"jobId"`
	CompanyID   string              `json:"companyId"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	DurationSec int                 `json:"durationSec"`
	Questions   []SanitizedQuestion `json:"questions"`
}

func NewSanitizedTest(t *model.Test) *SanitizedTest {
	qs := make([]SanitizedQuestion, 0, len(t.Questions))
	for _, q := range t.Questions {
		qs = append(qs, SanitizedQuestion{Text: q.Text, Options: q.Options})
	}
	return &SanitizedTest{
		ID:          t.ID,
		JobID:       t.JobID,
		CompanyID:   t.CompanyID,
		Title:       t.Title,
		Description: t.Description,
		DurationSec: t.DurationSec,
		Questions:   qs,
	}
}

type SubmitTestRequest struct {
	TestID    string         `json:"testId"`
	JobID     string         `json:"jobId"`
	UserID    string         `json:"userId"`
	Answers   map[string]any `json:"answers"`
	TimeTaken any            `json:"timeTaken"`
}

func (r *SubmitTestRequest) Validate() error {
	if r.TestID == "" || r.JobID == "" || r.UserID == "" || r.Answers == nil {
		return util.NewFormError("Missing fields", nil)
	}
	return nil
}

// Seconds coerces timeTaken to a non-negative whole number; anything unusable is 0.
func (r *SubmitTestRequest) Seconds() int {
	var f float64
	switch v := r.TimeTaken.(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(f)
}

type QualificationView struct {
	Status      model.QualificationStatus `json:"status"`
	Detail      string                    `json:"detail,omitempty"`
	AttemptedAt *time.Time                `json:"attemptedAt,omitempty"`
}

type TestResultView struct {
	model.TestResult
	Percent       float64            `json:"percent"`
	Passed        bool               `json:"passed"`
	Qualification *QualificationView `json:"qualification,omitempty"`
}
