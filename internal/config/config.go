package config

import (
	"os"
	"strconv"
)

type Config struct {
	// APP
	AppEnv string
	Port   string

	// Database
	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	JWTSecret string

	// Task service
	TaskServiceURL   string
	TaskServiceToken string

	// Admin login
	AdminUsername string
	AdminPassword string

	// Hourly rate table
	// Entry Level 5.00/h, Mid Level 6.00/h, Senior Level 8.00/h
	// Commission report bills everyone the flat rate
	RateEntryLevel     float64
	RateMidLevel       float64
	RateSeniorLevel    float64
	CommissionFlatRate float64

	// Leaderboard
	HighPerformerMinRate float64
}

func Load() (*Config, error) {
	cfg := &Config{
		// App
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "8002"),

		// DB
		DBHost: getEnv("DB_HOST", "127.0.0.1"),
		DBPort: getEnv("DB_PORT", "5432"),
		DBUser: getEnv("DB_USER", "postgres"),
		DBPass: getEnv("DB_PASS", "postgres"),
		DBName: getEnv("DB_NAME", "dubbing_db"),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "secret123"),

		// Task service
		TaskServiceURL:   getEnv("TASK_SERVICE_URL", "http://localhost:8001"),
		TaskServiceToken: getEnv("TASK_SERVICE_TOKEN", ""),

		// Admin login
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "dubbing-admin-2026"),

		// Rates
		RateEntryLevel:     getEnvFloat("RATE_ENTRY_LEVEL", 5.00),
		RateMidLevel:       getEnvFloat("RATE_MID_LEVEL", 6.00),
		RateSeniorLevel:    getEnvFloat("RATE_SENIOR_LEVEL", 8.00),
		CommissionFlatRate: getEnvFloat("COMMISSION_FLAT_RATE", 5.00),

		// Leaderboard
		HighPerformerMinRate: getEnvFloat("HIGH_PERFORMER_MIN_RATE", 0.80),
	}

	return cfg, nil
}

// getEnv returns environment variable or default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvFloat returns float from env or default.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
