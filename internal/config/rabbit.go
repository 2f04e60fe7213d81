package config

import (
	"os"
	"sync"
)

type RabbitConfig struct {
	URL   string
	Queue string
}

var (
	rabbitConfig *RabbitConfig
	rabbitOnce   sync.Once
)

func LoadRabbitConfig() *RabbitConfig {
	rabbitOnce.Do(func() {
		rabbitConfig = &RabbitConfig{
			URL:   os.Getenv("RABBITMQ_URL"),
			Queue: getEnv("RABBITMQ_QUALIFICATION_QUEUE", "qualification.tasks"),
		}
	})
	return rabbitConfig
}

func (c *RabbitConfig) Enabled() bool {
	return c.URL != ""
}
