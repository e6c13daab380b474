package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Authentication
	APIKey     string
	APIKeyName string // request header carrying the key

	// Generator
	MinVisitors int
	MaxVisitors int

	// API Server
	APIPort         string
	APIHost         string
	ExampleDefaults bool // fill in example dates when a request names none

	// Logging
	LogLevel string

	// CLI
	APIEndpoint string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	minVisitors, err := getEnvInt("MIN_VISITORS", 50)
	if err != nil {
		return nil, err
	}
	maxVisitors, err := getEnvInt("MAX_VISITORS", 500)
	if err != nil {
		return nil, err
	}
	exampleDefaults, err := getEnvBool("EXAMPLE_DEFAULTS", true)
	if err != nil {
		return nil, err
	}

	return &Config{
		APIKey:          getEnv("DATA_API_KEY", ""),
		APIKeyName:      getEnv("DATA_API_KEY_NAME", "X-API-Key"),
		MinVisitors:     minVisitors,
		MaxVisitors:     maxVisitors,
		APIPort:         getEnv("API_PORT", "8000"),
		APIHost:         getEnv("API_HOST", "0.0.0.0"),
		ExampleDefaults: exampleDefaults,
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		APIEndpoint:     getEnv("API_ENDPOINT", "http://localhost:8000"),
	}, nil
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &ConfigError{Field: key, Message: "must be an integer"}
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, &ConfigError{Field: key, Message: "must be a boolean"}
	}
	return b, nil
}

// Validate validates the configuration for serving the API
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return &ConfigError{Field: "DATA_API_KEY", Message: "API key is required"}
	}
	if c.APIKeyName == "" {
		return &ConfigError{Field: "DATA_API_KEY_NAME", Message: "API key header name is required"}
	}
	if c.MinVisitors < 0 {
		return &ConfigError{Field: "MIN_VISITORS", Message: "must not be negative"}
	}
	if c.MinVisitors > c.MaxVisitors {
		return &ConfigError{Field: "MAX_VISITORS", Message: "must be greater than or equal to MIN_VISITORS"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
