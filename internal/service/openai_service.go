package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/rozgar/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type OpenAIService struct {
	client *resty.Client
	model  string
	policy *RetryPolicy
}

func NewOpenAIService(cfg *config.OpenAIConfig, policy *RetryPolicy) *OpenAIService {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")
	return &OpenAIService{client: client, model: cfg.Model, policy: policy}
}

func (s *OpenAIService) Name() string {
	return "openai"
}

func (s *OpenAIService) GenerateQuestions(ctx context.Context, title string) (string, error) {
	payload := map[string]any{
		"model": s.model,
		"messages": []map[string]string{
			{"role": "system", "content": questionSystemPrompt},
			{"role": "user", "content": BuildQuestionPrompt(title)},
		},
		"temperature":     0.3,
		"response_format": map[string]string{"type": "json_object"},
	}

	var content string
	err := s.policy.Do(ctx, "openai.GenerateQuestions", func(ctx context.Context) error {
		resp, err := s.client.R().
			SetContext(ctx).
			SetBody(payload).
			Post("/chat/completions")
		if err != nil {
			return err
		}
		if resp.IsError() {
			return &StatusError{Code: resp.StatusCode(), Body: truncate(resp.String(), 300)}
		}
		content = gjson.Get(resp.String(), "choices.0.message.content").String()
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("openai generate questions: %w", err)
	}
	return content, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
