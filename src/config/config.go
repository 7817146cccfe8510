package config

import (
	cryptoRand "crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	Port           int           `yaml:"port"`
	APIBaseURL     string        `yaml:"api_base_url"`
	SessionFile    string        `yaml:"session_file"`
	CookieSecret   string        `yaml:"cookie_secret"`
	TemplatesPath  string        `yaml:"templates_path"`
	AllowedOrigins string        `yaml:"allowed_origins"`
	LogLevel       string        `yaml:"log_level"`
	LogFormat      string        `yaml:"log_format"`
	StatsRefresh   time.Duration `yaml:"stats_refresh"`
}

// Load builds configuration from an optional YAML file (CONFIG_FILE, default
// ./config.yaml) overridden by environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          8090,
		APIBaseURL:    "http://localhost:3000/api",
		TemplatesPath: "./src/templates",
		LogLevel:      "info",
		LogFormat:     "json",
		StatsRefresh:  30 * time.Second,
	}

	path := getEnv("CONFIG_FILE", "config.yaml")
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// config file is optional
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.Port = getEnvInt("PORT", cfg.Port)
	cfg.APIBaseURL = getEnv("API_BASE_URL", cfg.APIBaseURL)
	cfg.SessionFile = getEnv("SESSION_FILE", cfg.SessionFile)
	cfg.CookieSecret = getEnv("COOKIE_SECRET", cfg.CookieSecret)
	cfg.TemplatesPath = getEnv("TEMPLATES_PATH", cfg.TemplatesPath)
	cfg.AllowedOrigins = getEnv("ALLOWED_ORIGINS", cfg.AllowedOrigins)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	if v, exists := os.LookupEnv("STATS_REFRESH"); exists {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid STATS_REFRESH: %w", err)
		}
		cfg.StatsRefresh = d
	}

	// Generate a cookie secret if not provided; flashes won't survive a
	// restart in that case, which is acceptable for transient notifications.
	if cfg.CookieSecret == "" {
		cfg.CookieSecret = generateRandomSecret(32)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// generateRandomSecret generates a cryptographically secure random secret for
// signing the flash cookie
func generateRandomSecret(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	if _, err := cryptoRand.Read(result); err != nil {
		panic("failed to generate random secret: " + err.Error())
	}
	for i := range result {
		result[i] = charset[result[i]%byte(len(charset))]
	}
	return string(result)
}
