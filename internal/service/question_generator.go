package service

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnusableOutput means the provider answered but nothing usable could be parsed.
var ErrUnusableOutput = errors.New("Failed to generate questions")

// QuestionGenerator asks a generative-text provider for a screening test and
// returns the raw text of its answer.
type QuestionGenerator interface {
	Name() string
	GenerateQuestions(ctx context.Context, title string) (string, error)
}

const (
	GeneratedQuestionCount = 5
	GeneratedOptionCount   = 4
	GeneratedDurationSec   = 900
)

const questionSystemPrompt = "You generate structured JSON only."

func BuildQuestionPrompt(title string) string {
	return fmt.Sprintf(`Create exactly %d multiple-choice screening questions for the job title: %q.
For each question return JSON with fields: text (string), options (array of %d plausible choices), answerIndex (0-%d correct option index).
Return ONLY valid JSON: { "questions": [...], "durationSec": %d, "title": %q, "description": %q }`,
		GeneratedQuestionCount, title, GeneratedOptionCount, GeneratedOptionCount-1,
		GeneratedDurationSec, DefaultTestTitle(title), DefaultTestDescription(title))
}

func DefaultTestTitle(title string) string {
	return title + " Skills Test"
}

func DefaultTestDescription(title string) string {
	return "Auto-generated screening test for " + title
}
