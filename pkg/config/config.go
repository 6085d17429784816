package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                   string
	Host                   string
	StaticDir              string
	DatabaseDSN            string
	JWTSecret              string
	JWTAccessExpiry        time.Duration
	JWTRefreshExpiry       time.Duration
	GeminiApiKey           string
	GeminiTextModel        string
	GeminiImageModel       string
	GeminiBackupImageModel string
	DefaultCredits         int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessExpiry := 15 * time.Minute
	if exp := os.Getenv("JWT_ACCESS_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpiry = parsed
		}
	}

	refreshExpiry := 168 * time.Hour // 7 days
	if exp := os.Getenv("JWT_REFRESH_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			refreshExpiry = parsed
		}
	}

	defaultCredits := 5
	if v := os.Getenv("DEFAULT_CREDITS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			defaultCredits = parsed
		}
	}

	return &Config{
		Port:                   getEnv("PORT", "8080"),
		Host:                   getEnv("HOST", "0.0.0.0"),
		StaticDir:              getEnv("STATIC_DIR", "dist"),
		DatabaseDSN:            getEnv("DATABASE_DSN", ""),
		JWTSecret:              getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiry:        accessExpiry,
		JWTRefreshExpiry:       refreshExpiry,
		GeminiApiKey:           getEnv("GEMINI_API_KEY", ""),
		GeminiTextModel:        getEnv("GEMINI_TEXT_MODEL", "gemini-2.5-flash"),
		GeminiImageModel:       getEnv("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image"),
		GeminiBackupImageModel: getEnv("GEMINI_BACKUP_IMAGE_MODEL", ""),
		DefaultCredits:         defaultCredits,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
