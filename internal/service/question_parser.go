package service

import (
	"fmt"
	"strings"

	"github.com/fadilmartias/rozgar/internal/dto"
	"github.com/fadilmartias/rozgar/internal/model"
	"github.com/tidwall/gjson"
)

// ParseGeneratedTest reads a provider answer into a test preview. Strict JSON is
// tried first, then the first balanced {...} block inside the text.
// It returns ErrUnusableOutput when no JSON object can be found, and a preview
// with zero questions when the object holds no valid question.
func ParseGeneratedTest(content, title string) (*dto.GeneratedTest, error) {
	content = strings.TrimSpace(content)
	if !gjson.Valid(content) || !gjson.Parse(content).IsObject() {
		obj, ok := ExtractJSONObject(content)
		if !ok {
			return nil, fmt.Errorf("%w: no JSON object in provider output", ErrUnusableOutput)
		}
		content = obj
	}

	parsed := gjson.Parse(content)
	out := &dto.GeneratedTest{
		Title:       strings.TrimSpace(parsed.Get("title").String()),
		Description: strings.TrimSpace(parsed.Get("description").String()),
		DurationSec: int(parsed.Get("durationSec").Int()),
	}
	if out.Title == "" {
		out.Title = DefaultTestTitle(title)
	}
	if out.Description == "" {
		out.Description = DefaultTestDescription(title)
	}
	if out.DurationSec <= 0 {
		out.DurationSec = GeneratedDurationSec
	}

	parsed.Get("questions").ForEach(func(_, q gjson.Result) bool {
		if question, ok := parseQuestion(q); ok {
			out.Questions = append(out.Questions, question)
		}
		return true
	})
	return out, nil
}

func parseQuestion(q gjson.Result) (model.Question, bool) {
	text := strings.TrimSpace(q.Get("text").String())
	if text == "" {
		return model.Question{}, false
	}
	var options []string
	for _, o := range q.Get("options").Array() {
		if o.Type != gjson.String || strings.TrimSpace(o.String()) == "" {
			return model.Question{}, false
		}
		options = append(options, o.String())
	}
	if len(options) < 2 {
		return model.Question{}, false
	}
	idx := q.Get("answerIndex")
	if idx.Type != gjson.Number || idx.Num != float64(int(idx.Num)) {
		return model.Question{}, false
	}
	answer := int(idx.Num)
	if answer < 0 || answer >= len(options) {
		return model.Question{}, false
	}
	return model.Question{Text: text, Options: options, AnswerIndex: answer}, true
}

// ExtractJSONObject returns the first balanced {...} block, skipping braces
// that appear inside JSON strings.
func ExtractJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				obj := s[start : i+1]
				if !gjson.Valid(obj) {
					return "", false
				}
				return obj, true
			}
		}
	}
	return "", false
}
