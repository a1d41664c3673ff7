// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/aristath/holidays/internal/modules/holidays"
	"github.com/aristath/holidays/internal/scheduler"
)

// Config holds application configuration
type Config struct {
	DataDir             string // Directory holding holidays.db, always absolute
	LogLevel            string
	Port                int
	DevMode             bool
	DefaultLocale       string
	CacheTTL            time.Duration
	WarmSchedule        string
	WarmYearsAhead      int
	MaintenanceSchedule string
	Publish             *PublishConfig
}

// PublishConfig holds the object storage publishing settings
type PublishConfig struct {
	Enabled   bool
	Schedule  string
	Bucket    string
	Prefix    string
	Endpoint  string // empty means AWS S3
	Region    string
	AccessKey string
	SecretKey string
	Locales   []string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dataDir, err := filepath.Abs(getEnv("HOLIDAYS_DATA_DIR", "./data"))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:             dataDir,
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		Port:                getEnvAsInt("HOLIDAYS_PORT", 8080),
		DevMode:             getEnvAsBool("DEV_MODE", false),
		DefaultLocale:       getEnv("HOLIDAYS_DEFAULT_LOCALE", holidays.DefaultLocale),
		CacheTTL:            time.Duration(getEnvAsInt("HOLIDAYS_CACHE_TTL_HOURS", 720)) * time.Hour,
		WarmSchedule:        getEnv("HOLIDAYS_WARM_SCHEDULE", "0 0 3 * * *"),
		WarmYearsAhead:      getEnvAsInt("HOLIDAYS_WARM_YEARS_AHEAD", 1),
		MaintenanceSchedule: getEnv("HOLIDAYS_MAINTENANCE_SCHEDULE", "0 30 4 * * *"),
		Publish:             loadPublishConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DatabasePath returns the location of the snapshot database
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "holidays.db")
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got %s", c.CacheTTL)
	}
	if c.WarmYearsAhead < 0 {
		return fmt.Errorf("warm years ahead must not be negative, got %d", c.WarmYearsAhead)
	}

	locale, err := holidays.NormalizeLocale(c.DefaultLocale)
	if err != nil {
		return fmt.Errorf("default locale: %w", err)
	}
	c.DefaultLocale = locale

	if err := scheduler.ValidateSchedule(c.WarmSchedule); err != nil {
		return fmt.Errorf("invalid warm schedule %q: %w", c.WarmSchedule, err)
	}
	if err := scheduler.ValidateSchedule(c.MaintenanceSchedule); err != nil {
		return fmt.Errorf("invalid maintenance schedule %q: %w", c.MaintenanceSchedule, err)
	}

	if c.Publish != nil && c.Publish.Enabled {
		if c.Publish.Bucket == "" {
			return fmt.Errorf("publishing is enabled but HOLIDAYS_PUBLISH_BUCKET is not set")
		}
		if err := scheduler.ValidateSchedule(c.Publish.Schedule); err != nil {
			return fmt.Errorf("invalid publish schedule %q: %w", c.Publish.Schedule, err)
		}
		for i, l := range c.Publish.Locales {
			locale, err := holidays.NormalizeLocale(l)
			if err != nil {
				return fmt.Errorf("publish locales: %w", err)
			}
			c.Publish.Locales[i] = locale
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

func loadPublishConfig() *PublishConfig {
	return &PublishConfig{
		Enabled:   getEnvAsBool("HOLIDAYS_PUBLISH_ENABLED", false),
		Schedule:  getEnv("HOLIDAYS_PUBLISH_SCHEDULE", "0 0 4 * * *"),
		Bucket:    getEnv("HOLIDAYS_PUBLISH_BUCKET", ""),
		Prefix:    getEnv("HOLIDAYS_PUBLISH_PREFIX", "holidays"),
		Endpoint:  getEnv("HOLIDAYS_PUBLISH_ENDPOINT", ""),
		Region:    getEnv("HOLIDAYS_PUBLISH_REGION", "auto"),
		AccessKey: getEnv("HOLIDAYS_PUBLISH_ACCESS_KEY", ""),
		SecretKey: getEnv("HOLIDAYS_PUBLISH_SECRET_KEY", ""),
		Locales:   getEnvAsList("HOLIDAYS_PUBLISH_LOCALES", []string{holidays.DefaultLocale}),
	}
}
