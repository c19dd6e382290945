package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// APIConfig holds the fixed parts of every content API request.
// It is passed by value and never modified after Load.
type APIConfig struct {
	BaseURL  string
	APIKey   string
	Section  string
	FromDate string
	ShowTags string
	Query    string
}

// RedisConfig selects the Redis instance backing preference and read-history storage
type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	Key        string
	HistoryKey string
	HistoryTTL time.Duration
}

// Config is the complete process configuration
type Config struct {
	API   APIConfig
	Redis RedisConfig
	Port  string
}

// DefaultAPIConfig returns the built-in request parameters
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		BaseURL:  DefaultBaseURL,
		APIKey:   DefaultAPIKey,
		Section:  DefaultSection,
		FromDate: DefaultFromDate,
		ShowTags: DefaultShowTags,
		Query:    DefaultQuery,
	}
}

// Load reads configuration from the environment, after loading a .env file if present
func Load() (*Config, error) {
	// Non-fatal if missing
	_ = godotenv.Load()

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	historyTTL, err := getEnvInt("HISTORY_TTL_SECONDS", int(DefaultHistoryTTL/time.Second))
	if err != nil {
		return nil, err
	}
	if historyTTL <= 0 {
		return nil, &ConfigError{Field: "HISTORY_TTL_SECONDS", Message: "must be positive"}
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL:  getEnvOrDefault("CONTENT_API_URL", DefaultBaseURL),
			APIKey:   getEnvOrDefault("CONTENT_API_KEY", DefaultAPIKey),
			Section:  getEnvOrDefault("CONTENT_SECTION", DefaultSection),
			FromDate: getEnvOrDefault("CONTENT_FROM_DATE", DefaultFromDate),
			ShowTags: getEnvOrDefault("CONTENT_SHOW_TAGS", DefaultShowTags),
			Query:    getEnvOrDefault("CONTENT_QUERY", DefaultQuery),
		},
		Redis: RedisConfig{
			Addr:       getEnvOrDefault("REDIS_ADDR", DefaultRedisAddr),
			Password:   os.Getenv("REDIS_PASS"),
			DB:         redisDB,
			Key:        getEnvOrDefault("PREFERENCES_KEY", DefaultPreferencesKey),
			HistoryKey: getEnvOrDefault("HISTORY_KEY", DefaultHistoryKey),
			HistoryTTL: time.Duration(historyTTL) * time.Second,
		},
		Port: getEnvOrDefault("PORT", DefaultPort),
	}

	if err := cfg.API.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the base URL is an absolute http(s) URL and the from-date is well formed
func (c APIConfig) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return &ConfigError{Field: "CONTENT_API_URL", Message: "invalid url: " + err.Error()}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &ConfigError{Field: "CONTENT_API_URL", Message: "scheme must be http or https"}
	}
	if u.Host == "" {
		return &ConfigError{Field: "CONTENT_API_URL", Message: "host is required"}
	}
	if c.FromDate != "" {
		if _, err := time.Parse(FromDateLayout, c.FromDate); err != nil {
			return &ConfigError{Field: "CONTENT_FROM_DATE", Message: "expected YYYY-MM-DD"}
		}
	}
	return nil
}

// Host returns host:port of the base URL, defaulting the port from the scheme
func (c APIConfig) Host() string {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Host == "" {
		return ""
	}
	if u.Port() != "" {
		return u.Host
	}
	if u.Scheme == "http" {
		return u.Hostname() + ":80"
	}
	return u.Hostname() + ":443"
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable, failing on a malformed value
func getEnvInt(key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ConfigError{Field: key, Message: "must be an integer"}
	}
	return n, nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
