package config

import (
	"os"
	"sync"
)

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

var (
	openAIConfig *OpenAIConfig
	openAIOnce   sync.Once
)

func LoadOpenAIConfig() *OpenAIConfig {
	openAIOnce.Do(func() {
		openAIConfig = &OpenAIConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Model:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		}
	})
	return openAIConfig
}

func (c *OpenAIConfig) Enabled() bool {
	return c.APIKey != ""
}
