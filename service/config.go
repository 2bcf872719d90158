package service

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Port        string
	BaseURL     string
	DBPath      string

	Session struct {
		Secret string
	}

	Google struct {
		ProjectID       string
		Location        string
		APIKey          string
		CredentialsJSON string
		CredentialsFile string
	}

	GeneratedImageDir string
}

func LoadConfig() (*Config, error) {
	// Missing .env is fine, real deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8000"),
		DBPath:      getEnv("DB_PATH", "./db/craftally.db"),
	}

	config.Session.Secret = getEnv("SESSION_SECRET", "development-secret")

	config.Google.ProjectID = getEnv("GOOGLE_CLOUD_PROJECT", "")
	config.Google.Location = getEnv("VERTEX_AI_LOCATION", "us-central1")
	config.Google.APIKey = getEnv("GEMINI_API_KEY", "")
	config.Google.CredentialsJSON = getEnv("GOOGLE_APPLICATION_CREDENTIALS_JSON", "")
	config.Google.CredentialsFile = getEnv("GOOGLE_APPLICATION_CREDENTIALS", "")

	config.GeneratedImageDir = getEnv("GENERATED_IMAGE_DIR", "./static/generated_images")

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
