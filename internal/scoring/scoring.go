// Package scoring holds the exact-match scoring rules and the pass threshold
// used for interview auto-qualification.
package scoring

import (
	"encoding/json"
	"strconv"

	"github.com/fadilmartias/rozgar/internal/model"
)

// PassPercent is the fixed auto-qualification threshold.
const PassPercent = 80.0

// Score counts questions whose 1-based number maps to exactly the correct option.
// Only JSON numbers with an integral value can match.
func Score(questions []model.Question, answers map[string]any) int {
	score := 0
	for i, q := range questions {
		chosen, ok := answers[strconv.Itoa(i+1)]
		if !ok {
			continue
		}
		if idx, ok := optionIndex(chosen); ok && idx == q.AnswerIndex {
			score++
		}
	}
	return score
}

func optionIndex(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	}
	return 0, false
}

// Percent is score/total*100, or 0 when total is 0.
func Percent(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(score) / float64(total) * 100
}

func Qualifies(score, total int) bool {
	return Percent(score, total) >= PassPercent
}
