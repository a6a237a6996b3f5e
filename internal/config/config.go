package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all tool configuration
type Config struct {
	AppEnv   string
	LogLevel string
	WebURL   string // Public site, used for the links printed after seeding
	CMS      CMSConfig
	Demo     DemoConfig
	Paths    PathConfig
}

// CMSConfig holds content API configuration
type CMSConfig struct {
	URL      string
	Timeout  time.Duration
	PageSize int
	EnvFile  string // File holding the SEED_TOKEN line
}

// DemoConfig identifies the demo being exported or seeded
type DemoConfig struct {
	Slug  string
	Title string
}

// PathConfig holds output file locations
type PathConfig struct {
	SeedFile   string
	ExportFile string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("CMS_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CMS_TIMEOUT: %w", err)
	}

	pageSize, err := strconv.Atoi(getEnv("CMS_PAGE_SIZE", "50"))
	if err != nil {
		return nil, fmt.Errorf("invalid CMS_PAGE_SIZE: %w", err)
	}
	if pageSize <= 0 {
		return nil, fmt.Errorf("CMS_PAGE_SIZE must be positive, got %d", pageSize)
	}

	return &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		WebURL:   getEnv("WEB_URL", "http://localhost:3000"),
		CMS: CMSConfig{
			URL:      getEnv("CMS_URL", "http://localhost:1337"),
			Timeout:  timeout,
			PageSize: pageSize,
			EnvFile:  getEnv("SEED_ENV_FILE", filepath.Join("apps", "cms", ".env")),
		},
		Demo: DemoConfig{
			Slug:  getEnv("DEMO_SLUG", "awni-electronics"),
			Title: getEnv("DEMO_TITLE", "Awni Electronics"),
		},
		Paths: PathConfig{
			SeedFile:   getEnv("SEED_FILE", filepath.Join("seed", "awni-electronics.json")),
			ExportFile: getEnv("EXPORT_FILE", filepath.Join(os.TempDir(), "awni-export.json")),
		},
	}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
