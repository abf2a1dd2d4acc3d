package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port      string
	GinMode   string
	LogFormat string // "json" or "console"

	GeminiAPIKey string
	GeminiModel  string
	UseMockLLM   bool

	RapidAPIKey          string
	TravelAdvisorBaseURL string
	HotelCacheTTL        time.Duration

	// DatabaseDSN is empty when reports should stay in memory.
	DatabaseDSN string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getDurationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

// Load reads the environment. Call godotenv first to pick up a .env file.
func Load() (*Config, error) {
	ttl, err := getDurationEnv("HOTEL_CACHE_TTL", time.Hour)
	if err != nil {
		return nil, err
	}

	apiKey := getEnv("GEMINI_API_KEY", getEnv("GOOGLE_API_KEY", ""))
	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		GinMode:   getEnv("GIN_MODE", "debug"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		GeminiAPIKey: apiKey,
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		UseMockLLM:   getBoolEnv("USE_MOCK_LLM", apiKey == ""),

		RapidAPIKey:          getEnv("RAPIDAPI_KEY", ""),
		TravelAdvisorBaseURL: getEnv("TRAVEL_ADVISOR_BASE_URL", "https://travel-advisor.p.rapidapi.com"),
		HotelCacheTTL:        ttl,

		DatabaseDSN: buildDSN(),
	}

	if !cfg.UseMockLLM && cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY must be set unless USE_MOCK_LLM is true")
	}
	return cfg, nil
}

// buildDSN prefers DATABASE_URL, then DB_HOST and friends. No DSN means the
// in-memory report store.
func buildDSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	host := os.Getenv("DB_HOST")
	if host == "" {
		return ""
	}

	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	pass := getEnv("DB_PASSWORD", "postgres")
	name := getEnv("DB_NAME", "travelmate")
	sslmode := getEnv("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, name, sslmode)
}
