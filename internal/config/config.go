// Package config loads chorehouse settings from the environment and an
// optional .env file.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for chorehouse
type Config struct {
	Generator GeneratorConfig
	Library   LibraryConfig
	Logging   LoggingConfig
	Viewer    ViewerConfig
}

// GeneratorConfig controls layout generation
type GeneratorConfig struct {
	NumRooms    int
	Seed        int64
	MaxAttempts int
}

// LibraryConfig points at the room libraries
type LibraryConfig struct {
	Path    string // Explicit library file; empty means the built-in house
	DataDir string // Directory scanned for libraries
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Debug  bool
	Prefix string
}

// ViewerConfig holds settings for the layout viewer window
type ViewerConfig struct {
	CellSize     int
	WindowWidth  int
	WindowHeight int
}

// Load reads configuration from environment variables and a .env file in the
// current working directory
func Load() (*Config, error) {
	return LoadFiles()
}

// LoadFiles is Load with explicit .env files. Missing files are not an error.
// Variables with a non-empty value in the environment win over file values; an
// empty variable counts as unset, the same as in the getEnv helpers.
func LoadFiles(filenames ...string) (*Config, error) {
	values, err := godotenv.Read(filenames...)
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}
	for key, value := range values {
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}

	config := &Config{
		Generator: GeneratorConfig{
			NumRooms:    getIntEnv("CHOREHOUSE_ROOMS", 8),
			Seed:        getInt64Env("CHOREHOUSE_SEED", 0),
			MaxAttempts: getIntEnv("CHOREHOUSE_MAX_ATTEMPTS", 5),
		},
		Library: LibraryConfig{
			Path:    getEnv("CHOREHOUSE_LIBRARY", ""),
			DataDir: getEnv("CHOREHOUSE_DATA_DIR", "data"),
		},
		Logging: LoggingConfig{
			Debug:  getBoolEnv("CHOREHOUSE_DEBUG", false),
			Prefix: getEnv("CHOREHOUSE_LOG_PREFIX", "chorehouse: "),
		},
		Viewer: ViewerConfig{
			CellSize:     getIntEnv("CHOREHOUSE_CELL_SIZE", 48),
			WindowWidth:  getIntEnv("CHOREHOUSE_WINDOW_WIDTH", 960),
			WindowHeight: getIntEnv("CHOREHOUSE_WINDOW_HEIGHT", 720),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks that configured values are usable
func (c *Config) Validate() error {
	if c.Generator.NumRooms < 3 {
		return fmt.Errorf("CHOREHOUSE_ROOMS must be at least 3, got %d", c.Generator.NumRooms)
	}
	if c.Generator.MaxAttempts < 1 {
		return fmt.Errorf("CHOREHOUSE_MAX_ATTEMPTS must be positive, got %d", c.Generator.MaxAttempts)
	}
	if c.Viewer.CellSize < 8 {
		return fmt.Errorf("CHOREHOUSE_CELL_SIZE must be at least 8, got %d", c.Viewer.CellSize)
	}
	if c.Viewer.WindowWidth <= 0 || c.Viewer.WindowHeight <= 0 {
		return fmt.Errorf("viewer window size must be positive, got %dx%d", c.Viewer.WindowWidth, c.Viewer.WindowHeight)
	}
	return nil
}

// Helper functions for environment variable access

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid integer value for %s: %s, using default: %d", key, value, defaultValue)
		return defaultValue
	}
	return intValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Printf("Warning: invalid integer value for %s: %s, using default: %d", key, value, defaultValue)
		return defaultValue
	}
	return intValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Warning: invalid boolean value for %s: %s, using default: %t", key, value, defaultValue)
		return defaultValue
	}
	return boolValue
}
