package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the application
type Config struct {
	Port           string
	AllowedOrigins []string
	LogLevel       string
	Environment    string

	// Supabase PostgREST connection. URL and service key are required; the
	// application refuses to start without them.
	SupabaseURL        string
	SupabaseServiceKey string
	SupabaseJWTSecret  string

	// Optional events-list cache. Empty disables caching.
	RedisURL string

	// Google Sheets forwarding of contact submissions. Both values must be
	// set for the sync adapter to be constructed.
	GoogleCredentialsFile string
	ContactSpreadsheetID  string
	ContactSheetName      string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:                  getEnv("PORT", "8080"),
		AllowedOrigins:        parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		Environment:           getEnv("ENVIRONMENT", "production"),
		SupabaseURL:           getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey:    getEnv("SUPABASE_SERVICE_KEY", ""),
		SupabaseJWTSecret:     getEnv("SUPABASE_JWT_SECRET", ""),
		RedisURL:              getEnv("REDIS_URL", ""),
		GoogleCredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", ""),
		ContactSpreadsheetID:  getEnv("CONTACT_SPREADSHEET_ID", ""),
		ContactSheetName:      getEnv("CONTACT_SHEET_NAME", "Submissions"),
	}

	if cfg.SupabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL environment variable is not set")
	}
	if cfg.SupabaseServiceKey == "" {
		return nil, fmt.Errorf("SUPABASE_SERVICE_KEY environment variable is not set")
	}

	return cfg, nil
}

// HasSheetsSync reports whether the Google Sheets forwarding is configured.
func (c *Config) HasSheetsSync() bool {
	return c.GoogleCredentialsFile != "" && c.ContactSpreadsheetID != ""
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// parseOrigins parses comma-separated origins into a slice
func parseOrigins(origins string) []string {
	if origins == "" {
		return []string{}
	}

	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
