package config

import (
	"sync"
	"time"
)

// AIConfig is the retry/backoff policy shared by every generative provider call.
type AIConfig struct {
	MaxRetries    int
	BaseDelay     time.Duration
	MaxDelay      time.Duration
	Timeout       time.Duration
	RatePerMinute int
}

var (
	aiConfig *AIConfig
	aiOnce   sync.Once
)

func LoadAIConfig() *AIConfig {
	aiOnce.Do(func() {
		aiConfig = &AIConfig{
			MaxRetries:    getEnvInt("AI_MAX_RETRIES", 3),
			BaseDelay:     getEnvDuration("AI_BASE_DELAY", 2*time.Second),
			MaxDelay:      getEnvDuration("AI_MAX_DELAY", 30*time.Second),
			Timeout:       getEnvDuration("AI_TIMEOUT", 25*time.Second),
			RatePerMinute: getEnvInt("AI_RATE_PER_MINUTE", 30),
		}
	})
	return aiConfig
}
