package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// app config loaded from environment variables
type Config struct {
	Port           string
	MongoURI       string
	MongoDB        string
	JWTSecret      string
	Provider       string
	UploadDir      string
	UploadTTL      time.Duration
	QuestionCost   int
	SignupCredits  int
	QuestionCount  int
	AllowedOrigins []string
}

// loads configuration from environment variables; a local .env file is
// applied first if present
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		MongoURI:       getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:        getEnvOrDefault("MONGODB_DB", "interviewedge"),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", "dev"),
		Provider:       getEnvOrDefault("AI_PROVIDER", "openrouter"),
		UploadDir:      getEnvOrDefault("UPLOAD_DIR", "./uploads"),
		UploadTTL:      getEnvDuration("UPLOAD_TTL", time.Hour),
		QuestionCost:   getEnvInt("QUESTION_COST", 1),
		SignupCredits:  getEnvInt("SIGNUP_CREDITS", 3),
		QuestionCount:  getEnvInt("QUESTION_COUNT", 5),
		AllowedOrigins: splitOrigins(getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:5173")),
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Provider != "openrouter" && config.Provider != "gemini" {
		return errors.New("unsupported AI provider: " + config.Provider + ". Currently supported: openrouter, gemini")
	}
	if config.QuestionCost < 0 {
		return errors.New("QUESTION_COST must not be negative")
	}
	if config.QuestionCount <= 0 {
		return errors.New("QUESTION_COUNT must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
