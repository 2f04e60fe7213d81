package config

import (
	"log"
	"os"
	"sync"
	"time"
)

type AuthConfig struct {
	JWTSecret          string
	TokenTTL           time.Duration
	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string
}

var (
	authConfig *AuthConfig
	authOnce   sync.Once
)

func LoadAuthConfig() *AuthConfig {
	authOnce.Do(func() {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			secret = "dev_jwt_secret_change_me"
			log.Println("Warning: JWT_SECRET not set, using development secret")
		}
		authConfig = &AuthConfig{
			JWTSecret:          secret,
			TokenTTL:           getEnvDuration("JWT_TTL", 7*24*time.Hour),
			GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			GoogleCallbackURL:  getEnv("GOOGLE_CALLBACK_URL", "http://localhost:5000/auth/google/callback"),
		}
	})
	return authConfig
}

func (c *AuthConfig) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}
