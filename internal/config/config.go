package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	JWTSecret   string
	Port        string

	GoogleClientIDs string

	// OpenAI-compatible insight provider. Empty key disables insights.
	AIBaseURL string
	AIAPIKey  string
	AIModel   string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DatabaseURL:     getEnv("DATABASE_URL", "moodtrack.db"),
		JWTSecret:       getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		Port:            getEnv("PORT", "8080"),
		GoogleClientIDs: getEnv("GOOGLE_CLIENT_IDS", ""),
		AIBaseURL:       getEnv("AI_URL", "https://api.openai.com"),
		AIAPIKey:        getEnv("AI_API_KEY", ""),
		AIModel:         getEnv("AI_MODEL", "gpt-4o-mini"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
