package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	JWTSecret   string
	FrontendURL string
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitUploadThreshold int
	// Upload Configuration
	UploadDir       string
	MaxUploadSizeMB int
	MaxUploadFiles  int
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; ignored in production
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		RateLimitUploadThreshold: getEnvInt("RATE_LIMIT_UPLOAD_THRESHOLD", 10),
		// Upload Configuration
		UploadDir:       getEnv("UPLOAD_DIR", "uploads/resumes"),
		MaxUploadSizeMB: getEnvInt("MAX_UPLOAD_SIZE_MB", 10),
		MaxUploadFiles:  getEnvInt("MAX_UPLOAD_FILES", 10),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Authenticated endpoints will reject all tokens.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
