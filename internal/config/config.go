package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Notion content source configuration
	Notion NotionConfig

	// Interaction store configuration
	Interactions InteractionsConfig

	// Static export configuration
	Export ExportConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// NotionConfig holds settings for the Notion content source
type NotionConfig struct {
	APIKey     string
	DatabaseID string
	BaseURL    string
	Version    string
	// Timeout bounds every outbound Notion call; 0 disables it.
	Timeout time.Duration
}

// InteractionsConfig selects and configures the interaction store backend
type InteractionsConfig struct {
	// Backend is "file" or "sqlite"
	Backend        string
	FilePath       string
	DBPath         string
	MigrationsPath string
}

// ExportConfig holds static export settings
type ExportConfig struct {
	OutputDir string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "3000"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Notion: NotionConfig{
			APIKey:     getEnv("NOTION_API_KEY", ""),
			DatabaseID: getEnv("NOTION_DATABASE_ID", ""),
			BaseURL:    getEnv("NOTION_BASE_URL", "https://api.notion.com/v1"),
			Version:    getEnv("NOTION_VERSION", "2022-06-28"),
			Timeout:    getDurationEnv("NOTION_TIMEOUT", 30*time.Second),
		},
		Interactions: InteractionsConfig{
			Backend:        getEnv("INTERACTIONS_BACKEND", "file"),
			FilePath:       getEnv("INTERACTIONS_FILE", "./data/interactions.json"),
			DBPath:         getEnv("INTERACTIONS_DB", "./data/interactions.db"),
			MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
		},
		Export: ExportConfig{
			OutputDir: getEnv("EXPORT_DIR", "./public"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Notion.APIKey == "" {
		return fmt.Errorf("NOTION_API_KEY is required")
	}
	if c.Notion.DatabaseID == "" {
		return fmt.Errorf("NOTION_DATABASE_ID is required")
	}
	if c.Interactions.Backend != "file" && c.Interactions.Backend != "sqlite" {
		return fmt.Errorf("INTERACTIONS_BACKEND must be \"file\" or \"sqlite\"")
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
