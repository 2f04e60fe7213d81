package usecase

import (
	"fmt"

	"github.com/fadilmartias/rozgar/internal/dto"
	"github.com/fadilmartias/rozgar/internal/model"
	"github.com/fadilmartias/rozgar/internal/service"
)

// FallbackDurationSec is the duration of the built-in test (10 minutes).
const FallbackDurationSec = 600

// FallbackTest is the deterministic test returned when no provider can produce one.
func FallbackTest(title string) *dto.GeneratedTest {
	return &dto.GeneratedTest{
		Questions: []model.Question{
			{
				Text:        fmt.Sprintf("What is the primary responsibility of a %s?", title),
				Options:     []string{"Write code", "Bake cakes", "Drive buses", "Paint houses"},
				AnswerIndex: 0,
			},
			{
				Text:        fmt.Sprintf("Which tool is commonly used by a %s?", title),
				Options:     []string{"React", "Oven", "Steering wheel", "Hammer"},
				AnswerIndex: 0,
			},
			{
				Text:        fmt.Sprintf("How do you measure success for a %s?", title),
				Options:     []string{"Feature delivery", "Cake taste", "Miles driven", "Walls painted"},
				AnswerIndex: 0,
			},
		},
		DurationSec: FallbackDurationSec,
		Title:       service.DefaultTestTitle(title),
		Description: service.DefaultTestDescription(title),
	}
}
