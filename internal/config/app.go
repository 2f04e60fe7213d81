package config

import (
	"log"
	"os"
	"sync"
)

type AppConfig struct {
	Name        string
	Env         string
	Port        string
	BaseURL     string
	FrontendURL string
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
		}
		port := os.Getenv("APP_PORT")
		if port == "" {
			port = ":5000"
		}
		appConfig = &AppConfig{
			Name:        getEnv("APP_NAME", "Rozgar.pk"),
			Env:         env,
			Port:        port,
			BaseURL:     getEnv("APP_URL", "http://localhost:5000"),
			FrontendURL: getEnv("FRONTEND_WELCOME_URL", "http://localhost:5173/welcome"),
		}
	})
	return appConfig
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
